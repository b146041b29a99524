package server

import (
	"github.com/StoreManagemantProject/shop-microsservice/internal/config"
	"github.com/StoreManagemantProject/shop-microsservice/internal/handler"

	"github.com/labstack/echo/v4"
)

func Start(addr string, cfg config.Config, shopH *handler.ShopHandler, storageH *handler.StorageHandler, productH *handler.ProductHandler, logH *handler.LogHandler) error {
	e := echo.New()
	e.HideBanner = true

	RegisterRoutes(e, cfg, shopH, storageH, productH, logH)
	return e.Start(addr)
}
