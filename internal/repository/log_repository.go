package repository

import (
	"context"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"

	"github.com/google/uuid"
)

// 監査ログの保存・取得の約束。店舗ログと商品ログは別テーブル。
type LogRepository interface {
	//店舗ログを1件保存
	CreateStoreLog(ctx context.Context, log *model.StoreLog) error

	//商品ログを1件保存
	CreateProductLog(ctx context.Context, log *model.ProductLog) error

	//店舗ID・権限の完全一致で店舗ログを取得
	FindStoreLogs(ctx context.Context, storeID uuid.UUID, permission model.LogPermission) ([]model.StoreLog, error)
}
