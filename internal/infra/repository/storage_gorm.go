package repository

import (
	"context"
	"errors"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"

	"gorm.io/gorm"
)

type StorageGormRepository struct {
	db *gorm.DB
}

// DI
func NewStorageGormRepository(db *gorm.DB) *StorageGormRepository {
	return &StorageGormRepository{db: db}
}

// IDで倉庫を取得。商品集合もまとめてロードする。
func (r *StorageGormRepository) FindByID(ctx context.Context, storageID int64) (model.Storage, error) {
	var st model.Storage
	err := r.db.WithContext(ctx).Preload("Products").First(&st, storageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Storage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Storage{}, err
	}
	return st, nil
}

// 倉庫の保存。本体と商品集合（関連テーブル）を同一トランザクションで揃える。
// Replaceを使うので、集合から外れた商品の関連行も消える。
func (r *StorageGormRepository) Save(ctx context.Context, storage *model.Storage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products", "Shops").Save(storage).Error; err != nil {
			return err
		}
		if err := tx.Model(storage).Association("Products").Replace(storage.Products); err != nil {
			return err
		}
		return nil
	})
}
