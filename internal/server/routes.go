package server

import (
	"github.com/StoreManagemantProject/shop-microsservice/internal/config"
	"github.com/StoreManagemantProject/shop-microsservice/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, shopH *handler.ShopHandler, storageH *handler.StorageHandler, productH *handler.ProductHandler, logH *handler.LogHandler) {
	shopH.RegisterRoutes(e, cfg)
	storageH.RegisterRoutes(e, cfg)
	productH.RegisterRoutes(e, cfg)
	logH.RegisterRoutes(e)
}
