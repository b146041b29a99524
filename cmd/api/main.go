package main

import (
	"github.com/StoreManagemantProject/shop-microsservice/internal/config"
	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	"github.com/StoreManagemantProject/shop-microsservice/internal/handler"
	"github.com/StoreManagemantProject/shop-microsservice/internal/infra/db"
	infraRepo "github.com/StoreManagemantProject/shop-microsservice/internal/infra/repository"
	"github.com/StoreManagemantProject/shop-microsservice/internal/server"
	"github.com/StoreManagemantProject/shop-microsservice/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Shop{},
		&model.Storage{},
		&model.Product{},
		&model.StoreLog{},
		&model.ProductLog{},
	); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	storageRepo := infraRepo.NewStorageGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	logRepo := infraRepo.NewLogGormRepository(gormDB)

	//Usecase生成。監査ログは他のusecaseへ注入する
	logUC := usecase.NewLogUsecase(logRepo, logger)
	shopUC := usecase.NewShopUsecase(shopRepo, logUC)
	storageUC := usecase.NewStorageUsecase(storageRepo, productRepo, logUC)
	productUC := usecase.NewProductUsecase(productRepo, storageRepo, logUC)

	//Handler生成
	shopH := handler.NewShopHandler(shopUC)
	storageH := handler.NewStorageHandler(storageUC)
	productH := handler.NewProductHandler(productUC)
	logH := handler.NewLogHandler(logUC)

	//Server起動
	addr := ":" + cfg.Port
	logger.Info("starting server", zap.String("addr", addr))
	if err := server.Start(addr, cfg, shopH, storageH, productH, logH); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
