package repository

import (
	"context"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type logGormRepository struct {
	db *gorm.DB
}

func NewLogGormRepository(db *gorm.DB) repo.LogRepository {
	return &logGormRepository{db: db}
}

func (r *logGormRepository) CreateStoreLog(ctx context.Context, log *model.StoreLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *logGormRepository) CreateProductLog(ctx context.Context, log *model.ProductLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// 店舗ID・権限の完全一致で取得。新しい順。
func (r *logGormRepository) FindStoreLogs(ctx context.Context, storeID uuid.UUID, permission model.LogPermission) ([]model.StoreLog, error) {
	var logs []model.StoreLog
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND permission = ?", storeID, permission).
		Order("id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
