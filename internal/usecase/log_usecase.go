package usecase

import (
	"context"
	"time"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 監査ログの記録（best-effort）。失敗しても呼び出し元の処理は止めない。
type AuditRecorder interface {
	SaveStoreLog(ctx context.Context, message string, permission model.LogPermission, storeID uuid.UUID, details string, logOwnerID uuid.UUID, logType model.LogType)
	SaveProductLog(ctx context.Context, message string, permission model.LogPermission, productID uuid.UUID, details string, logOwnerID uuid.UUID, logType model.LogType)
}

type LogUsecase struct {
	logRepo repo.LogRepository
	logger  *zap.Logger
}

// DI
func NewLogUsecase(logRepo repo.LogRepository, logger *zap.Logger) *LogUsecase {
	return &LogUsecase{
		logRepo: logRepo,
		logger:  logger,
	}
}

// 店舗ログを保存する。保存失敗はここで握りつぶす（記録するだけ）。
func (u *LogUsecase) SaveStoreLog(ctx context.Context, message string, permission model.LogPermission, storeID uuid.UUID, details string, logOwnerID uuid.UUID, logType model.LogType) {
	log := model.StoreLog{
		Message:    message,
		Permission: permission,
		StoreID:    storeID,
		Details:    details,
		LogOwnerID: logOwnerID,
		LogType:    logType,
		Timestamp:  time.Now(),
	}
	if err := u.logRepo.CreateStoreLog(ctx, &log); err != nil {
		u.logger.Error("failed to save store log",
			zap.String("message", message),
			zap.String("store_id", storeID.String()),
			zap.Error(err),
		)
		return
	}
	u.logger.Info("store log saved",
		zap.String("store_id", storeID.String()),
		zap.String("log_type", string(logType)),
	)
}

// 商品ログを保存する。保存失敗はここで握りつぶす。
func (u *LogUsecase) SaveProductLog(ctx context.Context, message string, permission model.LogPermission, productID uuid.UUID, details string, logOwnerID uuid.UUID, logType model.LogType) {
	log := model.ProductLog{
		Message:    message,
		Permission: permission,
		ProductID:  productID,
		Details:    details,
		LogOwnerID: logOwnerID,
		LogType:    logType,
		Timestamp:  time.Now(),
	}
	if err := u.logRepo.CreateProductLog(ctx, &log); err != nil {
		u.logger.Error("failed to save product log",
			zap.String("message", message),
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		return
	}
	u.logger.Info("product log saved",
		zap.String("product_id", productID.String()),
		zap.String("log_type", string(logType)),
	)
}

// 店舗ID・権限の完全一致で店舗ログを返す。
// 取得に失敗したら空で返す（エラーは伝播させない方針）。
func (u *LogUsecase) GetAllLogs(ctx context.Context, storeID uuid.UUID, permission model.LogPermission) []model.StoreLog {
	logs, err := u.logRepo.FindStoreLogs(ctx, storeID, permission)
	if err != nil {
		u.logger.Error("failed to retrieve store logs",
			zap.String("store_id", storeID.String()),
			zap.Error(err),
		)
		return []model.StoreLog{}
	}
	u.logger.Info("store logs retrieved",
		zap.String("store_id", storeID.String()),
		zap.Int("count", len(logs)),
	)
	return logs
}
