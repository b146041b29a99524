package repository

import (
	"context"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
)

// 倉庫の永続化の約束。FindByIDは商品集合込みで返す。
// Saveは合計値と商品集合（関連テーブル）をまとめて保存する。
type StorageRepository interface {
	FindByID(ctx context.Context, storageID int64) (model.Storage, error)
	Save(ctx context.Context, storage *model.Storage) error
}
