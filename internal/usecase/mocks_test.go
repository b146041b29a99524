package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ShopRepoMock struct{ mock.Mock }

func (m *ShopRepoMock) FindByID(ctx context.Context, shopID uuid.UUID) (model.Shop, error) {
	args := m.Called(ctx, shopID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) FindAll(ctx context.Context) ([]model.Shop, error) {
	args := m.Called(ctx)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) Save(ctx context.Context, shop *model.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

type StorageRepoMock struct{ mock.Mock }

func (m *StorageRepoMock) FindByID(ctx context.Context, storageID int64) (model.Storage, error) {
	args := m.Called(ctx, storageID)
	st, _ := args.Get(0).(model.Storage)
	return st, args.Error(1)
}

func (m *StorageRepoMock) Save(ctx context.Context, storage *model.Storage) error {
	args := m.Called(ctx, storage)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, productID uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Save(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type LogRepoMock struct{ mock.Mock }

func (m *LogRepoMock) CreateStoreLog(ctx context.Context, log *model.StoreLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *LogRepoMock) CreateProductLog(ctx context.Context, log *model.ProductLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *LogRepoMock) FindStoreLogs(ctx context.Context, storeID uuid.UUID, permission model.LogPermission) ([]model.StoreLog, error) {
	args := m.Called(ctx, storeID, permission)
	logs, _ := args.Get(0).([]model.StoreLog)
	return logs, args.Error(1)
}

var _ repo.LogRepository = (*LogRepoMock)(nil)

// 監査ログのスタブ。記録された操作種別だけ覚えておく。
type auditStub struct {
	storeLogs   []model.LogType
	productLogs []model.LogType
}

func (a *auditStub) SaveStoreLog(ctx context.Context, message string, permission model.LogPermission, storeID uuid.UUID, details string, logOwnerID uuid.UUID, logType model.LogType) {
	a.storeLogs = append(a.storeLogs, logType)
}

func (a *auditStub) SaveProductLog(ctx context.Context, message string, permission model.LogPermission, productID uuid.UUID, details string, logOwnerID uuid.UUID, logType model.LogType) {
	a.productLogs = append(a.productLogs, logType)
}

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %q", want, err.Error())
	}
}
