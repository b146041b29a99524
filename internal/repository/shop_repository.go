package repository

import (
	"context"
	"errors"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"

	"github.com/google/uuid"
)

// 対象が見つからないときの共通エラー。
var ErrNotFound = errors.New("not found")

// ショップの永続化（保存・取得）だけを約束。
type ShopRepository interface {
	FindByID(ctx context.Context, shopID uuid.UUID) (model.Shop, error)
	FindAll(ctx context.Context) ([]model.Shop, error)
	Save(ctx context.Context, shop *model.Shop) error
}
