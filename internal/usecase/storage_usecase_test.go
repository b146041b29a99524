package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"
	"github.com/StoreManagemantProject/shop-microsservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStorageUsecase_CreateStorage_TotalsStartAtZero(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	storeID := uuid.New()

	stRepo := new(StorageRepoMock)
	audit := &auditStub{}
	uc := usecase.NewStorageUsecase(stRepo, new(ProductRepoMock), audit)

	var saved *model.Storage
	stRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Storage")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Storage)
			saved.ID = 42
		}).
		Return(nil)

	id, err := uc.CreateStorage(ctx, usecase.CreateStorageInput{
		Name:          "Central",
		Location:      "Dock 4",
		ResponsibleID: owner,
	}, storeID, owner)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.True(t, saved.IsActive)
	assert.Equal(t, int64(0), saved.TotalProductsQuantity)
	assert.True(t, saved.TotalProductsValue.IsZero())
	assert.Equal(t, []model.LogType{model.LogTypeCreate}, audit.storeLogs)
}

// 作成→商品追加→合計値反映→商品除去→ゼロに戻る、の一連
func TestStorageUsecase_AddThenRemoveProduct_TotalsScenario(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	storeID := uuid.New()

	product := model.Product{
		ID:       uuid.New(),
		Quantity: 10,
		Price:    decimal.RequireFromString("100.00"),
		IsActive: true,
	}
	storage := model.Storage{ID: 1, ResponsibleID: owner, IsActive: true}

	stRepo := new(StorageRepoMock)
	pRepo := new(ProductRepoMock)
	audit := &auditStub{}
	uc := usecase.NewStorageUsecase(stRepo, pRepo, audit)

	var saved *model.Storage
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(storage, nil).Once()
	pRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	stRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Storage")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.Storage) }).
		Return(nil)

	assert.NoError(t, uc.AddProductToStorage(ctx, 1, product.ID, storeID, owner))
	assert.Equal(t, int64(10), saved.TotalProductsQuantity)
	assert.True(t, saved.TotalProductsValue.Equal(decimal.RequireFromString("1000.00")))

	// 2回目のロードは追加済みの状態を返す
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(*saved, nil).Once()

	assert.NoError(t, uc.RemoveProductFromStorage(ctx, 1, product.ID, storeID, owner))
	assert.Equal(t, int64(0), saved.TotalProductsQuantity)
	assert.True(t, saved.TotalProductsValue.IsZero())

	assert.Equal(t, []model.LogType{model.LogTypeAddProduct, model.LogTypeRemoveProduct}, audit.storeLogs)
}

func TestStorageUsecase_AddProduct_StorageNotFound(t *testing.T) {
	stRepo := new(StorageRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewStorageUsecase(stRepo, pRepo, &auditStub{})

	stRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Storage{}, repo.ErrNotFound)

	err := uc.AddProductToStorage(context.Background(), 9, uuid.New(), uuid.New(), uuid.New())

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	pRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestStorageUsecase_AddProduct_ProductNotFound(t *testing.T) {
	stRepo := new(StorageRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewStorageUsecase(stRepo, pRepo, &auditStub{})

	productID := uuid.New()
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Storage{ID: 1}, nil)
	pRepo.On("FindByID", mock.Anything, productID).Return(model.Product{}, repo.ErrNotFound)

	err := uc.AddProductToStorage(context.Background(), 1, productID, uuid.New(), uuid.New())

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	stRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStorageUsecase_UpdateStorage_Forbidden(t *testing.T) {
	owner := uuid.New()

	stRepo := new(StorageRepoMock)
	uc := usecase.NewStorageUsecase(stRepo, new(ProductRepoMock), &auditStub{})
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Storage{ID: 1, ResponsibleID: owner, IsActive: true}, nil)

	err := uc.UpdateStorage(context.Background(), 1, usecase.UpdateStorageInput{Description: "x", ResponsibleID: owner, IsActive: true}, uuid.New(), uuid.New())

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
	stRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// updateが触るのはdescription/responsibleId/isActive/updatedAtのみ
func TestStorageUsecase_UpdateStorage_TouchesSelectedFieldsOnly(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	newOwner := uuid.New()

	existing := model.Storage{
		ID:                    1,
		Name:                  "Central",
		Location:              "Dock 4",
		Description:           "old",
		ResponsibleID:         owner,
		IsActive:              true,
		TotalProductsQuantity: 5,
		TotalProductsValue:    decimal.RequireFromString("500.00"),
	}

	stRepo := new(StorageRepoMock)
	uc := usecase.NewStorageUsecase(stRepo, new(ProductRepoMock), &auditStub{})
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)

	var saved *model.Storage
	stRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Storage")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.Storage) }).
		Return(nil)

	err := uc.UpdateStorage(ctx, 1, usecase.UpdateStorageInput{
		Description:   "new",
		ResponsibleID: newOwner,
		IsActive:      false,
	}, uuid.New(), owner)

	assert.NoError(t, err)
	assert.Equal(t, "new", saved.Description)
	assert.Equal(t, newOwner, saved.ResponsibleID)
	assert.False(t, saved.IsActive)
	// 名前・場所・合計値はそのまま
	assert.Equal(t, "Central", saved.Name)
	assert.Equal(t, "Dock 4", saved.Location)
	assert.Equal(t, int64(5), saved.TotalProductsQuantity)
	assert.True(t, saved.TotalProductsValue.Equal(decimal.RequireFromString("500.00")))
}

func TestStorageUsecase_DeactivateStorage_AlreadyDeactivated(t *testing.T) {
	owner := uuid.New()

	stRepo := new(StorageRepoMock)
	uc := usecase.NewStorageUsecase(stRepo, new(ProductRepoMock), &auditStub{})
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Storage{ID: 1, ResponsibleID: owner, IsActive: false}, nil)

	err := uc.DeactivateStorage(context.Background(), 1, uuid.New(), owner)
	assertErrContains(t, err, "already deactivated")
}

func TestStorageUsecase_ActivateStorage_Success(t *testing.T) {
	owner := uuid.New()

	stRepo := new(StorageRepoMock)
	audit := &auditStub{}
	uc := usecase.NewStorageUsecase(stRepo, new(ProductRepoMock), audit)
	stRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Storage{ID: 1, ResponsibleID: owner, IsActive: false}, nil)

	var saved *model.Storage
	stRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Storage")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.Storage) }).
		Return(nil)

	assert.NoError(t, uc.ActivateStorage(context.Background(), 1, uuid.New(), owner))
	assert.True(t, saved.IsActive)
	assert.Equal(t, []model.LogType{model.LogTypeActivate}, audit.storeLogs)
}

func TestStorageUsecase_UpdateStorage_InvalidID(t *testing.T) {
	uc := usecase.NewStorageUsecase(new(StorageRepoMock), new(ProductRepoMock), &auditStub{})

	err := uc.UpdateStorage(context.Background(), 0, usecase.UpdateStorageInput{}, uuid.New(), uuid.New())

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
