package repository

import (
	"context"
	"errors"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, productID uuid.UUID) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の保存（新規・更新どちらも）
func (r *ProductGormRepository) Save(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// 商品の削除（物理削除）
func (r *ProductGormRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
