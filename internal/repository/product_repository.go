package repository

import (
	"context"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"

	"github.com/google/uuid"
)

// 商品の永続化（保存・取得・削除）だけを約束。
type ProductRepository interface {
	FindByID(ctx context.Context, productID uuid.UUID) (model.Product, error)
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, productID uuid.UUID) error
}
