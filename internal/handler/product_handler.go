package handler

import (
	"net/http"
	"strconv"

	"github.com/StoreManagemantProject/shop-microsservice/internal/config"
	"github.com/StoreManagemantProject/shop-microsservice/internal/middleware"
	"github.com/StoreManagemantProject/shop-microsservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 商品作成・更新のリクエストボディ
type ProductRequest struct {
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// 商品更新はボディでproduct_idを受ける
type ProductUpdateRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type ProductCreatedResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

// /api/products のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ルート登録。取得は公開、変更系はJWT必須。
func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/products")

	g.GET("/get/:productId", h.getByID)

	auth := g.Group("", middleware.AuthJWT(cfg))
	auth.POST("/create/:storageId", h.create)
	auth.PUT("/update", h.update)
	auth.PUT("/activate/:productId", h.activate)
	auth.PUT("/deactivate/:productId", h.deactivate)
	auth.DELETE("/delete/:storageId/:productId", h.delete)
}

func (h *ProductHandler) create(c echo.Context) error {
	storageID, err := strconv.ParseInt(c.Param("storageId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid storage id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	productID, err := h.uc.CreateProduct(
		c.Request().Context(),
		usecase.CreateProductInput{
			Quantity: req.Quantity,
			Price:    req.Price,
		},
		storageID,
		requestOwner,
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductCreatedResponse{
		Message:   "Product created successfully",
		ProductID: productID.String(),
	})
}

func (h *ProductHandler) getByID(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	product, err := h.uc.GetProductByID(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	err := h.uc.UpdateProduct(
		c.Request().Context(),
		req.ProductID,
		usecase.CreateProductInput{
			Quantity: req.Quantity,
			Price:    req.Price,
		},
		requestOwner,
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Product updated successfully"})
}

func (h *ProductHandler) activate(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.ActivateProduct(c.Request().Context(), productID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Product activated successfully"})
}

func (h *ProductHandler) deactivate(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeactivateProduct(c.Request().Context(), productID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Product deactivated successfully"})
}

func (h *ProductHandler) delete(c echo.Context) error {
	storageID, err := strconv.ParseInt(c.Param("storageId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid storage id"})
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID, storageID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted successfully"})
}
