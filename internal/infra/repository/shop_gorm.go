package repository

import (
	"context"
	"errors"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopGormRepository struct {
	db *gorm.DB
}

// DI
func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

// IDでショップを取得
func (r *ShopGormRepository) FindByID(ctx context.Context, shopID uuid.UUID) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).First(&s, "id = ?", shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

// 全ショップを取得
func (r *ShopGormRepository) FindAll(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// ショップの保存（新規・更新どちらも）
func (r *ShopGormRepository) Save(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}
