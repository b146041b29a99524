package handler

import (
	"net/http"

	"github.com/StoreManagemantProject/shop-microsservice/internal/config"
	"github.com/StoreManagemantProject/shop-microsservice/internal/middleware"
	"github.com/StoreManagemantProject/shop-microsservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

//middleware.AuthJWT が c.Set("user_id", uuid.UUID) した値を取り出す

func getRequestOwner(c echo.Context) (uuid.UUID, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}

	return id, true
}

// ショップ作成・更新のリクエストボディ
type ShopRequest struct {
	Name          string    `json:"name"`
	TaxID         string    `json:"tax_id"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Description   string    `json:"description"`
	ResponsibleID uuid.UUID `json:"responsible_id"`
	OpeningHours  string    `json:"opening_hours"`
	ClosingHours  string    `json:"closing_hours"`
	ImageURL      string    `json:"image_url"`
	LogoURL       string    `json:"logo_url"`
	BannerURL     string    `json:"banner_url"`
}

func (r ShopRequest) toInput() usecase.CreateShopInput {
	return usecase.CreateShopInput{
		Name:          r.Name,
		TaxID:         r.TaxID,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		Description:   r.Description,
		ResponsibleID: r.ResponsibleID,
		OpeningHours:  r.OpeningHours,
		ClosingHours:  r.ClosingHours,
		ImageURL:      r.ImageURL,
		LogoURL:       r.LogoURL,
		BannerURL:     r.BannerURL,
	}
}

type ShopCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// /api/shops のAPI
type ShopHandler struct {
	uc *usecase.ShopUsecase
}

// DI
func NewShopHandler(uc *usecase.ShopUsecase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// ルート登録。読み取りは公開、変更系はJWT必須。
func (h *ShopHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/shops")

	g.GET("/list-all", h.listAll)
	g.GET("/list/:shopId", h.getByID)

	auth := g.Group("", middleware.AuthJWT(cfg))
	auth.POST("/create", h.create)
	auth.PUT("/update/:shopId", h.update)
	auth.PUT("/activate/:shopId", h.activate)
	auth.PUT("/deactivate/:shopId", h.deactivate)
}

func (h *ShopHandler) create(c echo.Context) error {
	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := h.uc.CreateShop(c.Request().Context(), req.toInput(), requestOwner)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, ShopCreatedResponse{
		Message: "Shop created successfully",
		ID:      id.String(),
	})
}

func (h *ShopHandler) listAll(c echo.Context) error {
	shops, err := h.uc.GetAllShops(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, shops)
}

func (h *ShopHandler) getByID(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shop id"})
	}

	shop, err := h.uc.GetShopByID(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) update(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shop id"})
	}

	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.UpdateShop(c.Request().Context(), shopID, req.toInput(), requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Shop updated successfully"})
}

func (h *ShopHandler) activate(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shop id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.ActivateShop(c.Request().Context(), shopID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Shop activated successfully"})
}

func (h *ShopHandler) deactivate(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shop id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeactivateShop(c.Request().Context(), shopID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Shop deactivated successfully"})
}
