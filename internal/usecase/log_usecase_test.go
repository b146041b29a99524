package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	"github.com/StoreManagemantProject/shop-microsservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestLogUsecase_SaveStoreLog_FillsTimestamp(t *testing.T) {
	lRepo := new(LogRepoMock)
	uc := usecase.NewLogUsecase(lRepo, zap.NewNop())

	storeID := uuid.New()
	owner := uuid.New()

	var saved *model.StoreLog
	lRepo.On("CreateStoreLog", mock.Anything, mock.AnythingOfType("*model.StoreLog")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.StoreLog) }).
		Return(nil)

	uc.SaveStoreLog(context.Background(),
		"Shop created: "+storeID.String(),
		model.LogPermissionAdmin, storeID, "details", owner, model.LogTypeCreate)

	assert.Equal(t, storeID, saved.StoreID)
	assert.Equal(t, owner, saved.LogOwnerID)
	assert.Equal(t, model.LogTypeCreate, saved.LogType)
	assert.False(t, saved.Timestamp.IsZero())
}

// 監査ログの保存失敗は呼び出し元に伝播しない
func TestLogUsecase_SaveStoreLog_SwallowsRepositoryError(t *testing.T) {
	lRepo := new(LogRepoMock)
	uc := usecase.NewLogUsecase(lRepo, zap.NewNop())

	lRepo.On("CreateStoreLog", mock.Anything, mock.Anything).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		uc.SaveStoreLog(context.Background(),
			"Shop created", model.LogPermissionAdmin, uuid.New(), "", uuid.New(), model.LogTypeCreate)
	})
	lRepo.AssertExpectations(t)
}

func TestLogUsecase_SaveProductLog_SwallowsRepositoryError(t *testing.T) {
	lRepo := new(LogRepoMock)
	uc := usecase.NewLogUsecase(lRepo, zap.NewNop())

	lRepo.On("CreateProductLog", mock.Anything, mock.Anything).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		uc.SaveProductLog(context.Background(),
			"Product created", model.LogPermissionManager, uuid.New(), "", uuid.New(), model.LogTypeCreate)
	})
}

func TestLogUsecase_GetAllLogs_ReturnsMatches(t *testing.T) {
	lRepo := new(LogRepoMock)
	uc := usecase.NewLogUsecase(lRepo, zap.NewNop())

	storeID := uuid.New()
	want := []model.StoreLog{
		{ID: 2, StoreID: storeID, Permission: model.LogPermissionAdmin, LogType: model.LogTypeUpdate},
		{ID: 1, StoreID: storeID, Permission: model.LogPermissionAdmin, LogType: model.LogTypeCreate},
	}
	lRepo.On("FindStoreLogs", mock.Anything, storeID, model.LogPermissionAdmin).Return(want, nil)

	got := uc.GetAllLogs(context.Background(), storeID, model.LogPermissionAdmin)
	assert.Equal(t, want, got)
}

// 取得失敗はエラーではなく空リスト
func TestLogUsecase_GetAllLogs_EmptyOnRepositoryError(t *testing.T) {
	lRepo := new(LogRepoMock)
	uc := usecase.NewLogUsecase(lRepo, zap.NewNop())

	storeID := uuid.New()
	lRepo.On("FindStoreLogs", mock.Anything, storeID, model.LogPermissionUser).
		Return([]model.StoreLog(nil), errors.New("db down"))

	got := uc.GetAllLogs(context.Background(), storeID, model.LogPermissionUser)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// 監査ログが落ちていても業務処理は成功する
func TestLogUsecase_AuditFailureDoesNotBlockShopCreation(t *testing.T) {
	lRepo := new(LogRepoMock)
	lRepo.On("CreateStoreLog", mock.Anything, mock.Anything).Return(errors.New("db down"))
	logUC := usecase.NewLogUsecase(lRepo, zap.NewNop())

	sRepo := new(ShopRepoMock)
	sRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Shop")).Return(nil)
	shopUC := usecase.NewShopUsecase(sRepo, logUC)

	owner := uuid.New()
	id, err := shopUC.CreateShop(context.Background(), validShopInput(owner), owner)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

// 監査ログが落ちていても商品作成は成功する
func TestLogUsecase_AuditFailureDoesNotBlockProductCreation(t *testing.T) {
	lRepo := new(LogRepoMock)
	lRepo.On("CreateProductLog", mock.Anything, mock.Anything).Return(errors.New("db down"))
	logUC := usecase.NewLogUsecase(lRepo, zap.NewNop())

	pRepo := new(ProductRepoMock)
	stRepo := new(StorageRepoMock)
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Storage{ID: 1, IsActive: true}, nil)
	pRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	stRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewProductUsecase(pRepo, stRepo, logUC)

	id, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		Quantity: 1,
		Price:    decimal.RequireFromString("1.00"),
	}, 1, uuid.New())

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}
