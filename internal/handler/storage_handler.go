package handler

import (
	"net/http"
	"strconv"

	"github.com/StoreManagemantProject/shop-microsservice/internal/config"
	"github.com/StoreManagemantProject/shop-microsservice/internal/middleware"
	"github.com/StoreManagemantProject/shop-microsservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// 倉庫作成のリクエストボディ
type StorageCreateRequest struct {
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	ResponsibleID uuid.UUID `json:"responsible_id"`
}

// 倉庫更新のリクエストボディ。更新できるフィールドだけを受ける。
type StorageUpdateRequest struct {
	StorageID     int64     `json:"storage_id"`
	Description   string    `json:"description"`
	ResponsibleID uuid.UUID `json:"responsible_id"`
	IsActive      bool      `json:"is_active"`
}

type StorageCreatedResponse struct {
	Message   string `json:"message"`
	StorageID int64  `json:"storageId"`
}

// /api/storage のAPI
type StorageHandler struct {
	uc *usecase.StorageUsecase
}

// DI
func NewStorageHandler(uc *usecase.StorageUsecase) *StorageHandler {
	return &StorageHandler{uc: uc}
}

// ルート登録。すべて変更系なのでJWT必須。
func (h *StorageHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/storage", middleware.AuthJWT(cfg))

	g.POST("/create/:storeId", h.create)
	g.POST("/update/:storeId", h.update)
	g.POST("/addProduct/:storeId/:storageId/:productId", h.addProduct)
	g.POST("/removeProduct/:storeId/:storageId/:productId", h.removeProduct)
	g.PUT("/activate/:storeId/:storageId", h.activate)
	g.PUT("/deactivate/:storeId/:storageId", h.deactivate)
}

func (h *StorageHandler) create(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store id"})
	}

	var req StorageCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	storageID, err := h.uc.CreateStorage(
		c.Request().Context(),
		usecase.CreateStorageInput{
			Name:          req.Name,
			Location:      req.Location,
			Description:   req.Description,
			ResponsibleID: req.ResponsibleID,
		},
		storeID,
		requestOwner,
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, StorageCreatedResponse{
		Message:   "Storage created successfully",
		StorageID: storageID,
	})
}

func (h *StorageHandler) update(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store id"})
	}

	var req StorageUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	err = h.uc.UpdateStorage(
		c.Request().Context(),
		req.StorageID,
		usecase.UpdateStorageInput{
			Description:   req.Description,
			ResponsibleID: req.ResponsibleID,
			IsActive:      req.IsActive,
		},
		storeID,
		requestOwner,
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Storage updated successfully"})
}

// パスからstoreId/storageId/productIdをまとめて取り出す
func storageProductParams(c echo.Context) (uuid.UUID, int64, uuid.UUID, error) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return uuid.Nil, 0, uuid.Nil, err
	}
	storageID, err := strconv.ParseInt(c.Param("storageId"), 10, 64)
	if err != nil {
		return uuid.Nil, 0, uuid.Nil, err
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return uuid.Nil, 0, uuid.Nil, err
	}
	return storeID, storageID, productID, nil
}

func (h *StorageHandler) addProduct(c echo.Context) error {
	storeID, storageID, productID, err := storageProductParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid path params"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.AddProductToStorage(c.Request().Context(), storageID, productID, storeID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Product added to storage successfully"})
}

func (h *StorageHandler) removeProduct(c echo.Context) error {
	storeID, storageID, productID, err := storageProductParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid path params"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.RemoveProductFromStorage(c.Request().Context(), storageID, productID, storeID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Product removed from storage successfully"})
}

func (h *StorageHandler) activate(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store id"})
	}
	storageID, err := strconv.ParseInt(c.Param("storageId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid storage id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.ActivateStorage(c.Request().Context(), storageID, storeID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Storage activated successfully"})
}

func (h *StorageHandler) deactivate(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store id"})
	}
	storageID, err := strconv.ParseInt(c.Param("storageId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid storage id"})
	}

	requestOwner, ok := getRequestOwner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeactivateStorage(c.Request().Context(), storageID, storeID, requestOwner); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Storage deactivated successfully"})
}
