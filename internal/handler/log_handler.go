package handler

import (
	"net/http"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	"github.com/StoreManagemantProject/shop-microsservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /api/logs のAPI。監査ログの取得のみ（書き込みは各usecase経由）。
type LogHandler struct {
	uc *usecase.LogUsecase
}

// DI
func NewLogHandler(uc *usecase.LogUsecase) *LogHandler {
	return &LogHandler{uc: uc}
}

func (h *LogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/logs/get-all/:storeId", h.getAll)
}

func (h *LogHandler) getAll(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store id"})
	}

	permission, ok := parsePermission(c.QueryParam("permission"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid permission"})
	}

	logs := h.uc.GetAllLogs(c.Request().Context(), storeID, permission)
	return c.JSON(http.StatusOK, logs)
}

// permissionクエリを列挙型へ。知らない値は弾く。
func parsePermission(v string) (model.LogPermission, bool) {
	switch model.LogPermission(v) {
	case model.LogPermissionManager, model.LogPermissionAdmin, model.LogPermissionUser, model.LogPermissionGuest:
		return model.LogPermission(v), true
	default:
		return "", false
	}
}
