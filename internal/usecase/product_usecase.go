package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"
	"github.com/StoreManagemantProject/shop-microsservice/internal/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	storageRepo repo.StorageRepository
	audit       AuditRecorder
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, storageRepo repo.StorageRepository, audit AuditRecorder) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		storageRepo: storageRepo,
		audit:       audit,
	}
}

// 商品作成の入力DTO
type CreateProductInput struct {
	Quantity int64
	Price    decimal.Decimal
}

// 商品作成。検証→保存→倉庫集合へ追加の順。検証で落ちたら永続化は一切走らない。
func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput, storageID int64, requestOwner uuid.UUID) (uuid.UUID, error) {
	product := model.Product{
		Quantity: in.Quantity,
		Price:    in.Price,
	}
	if err := validator.ValidateProduct(product); err != nil {
		return uuid.Nil, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	storage, err := u.storageRepo.FindByID(ctx, storageID)
	if errors.Is(err, repo.ErrNotFound) {
		return uuid.Nil, NewHTTPError(http.StatusNotFound, "storage not found")
	}
	if err != nil {
		return uuid.Nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	product.ID = uuid.New()
	product.IsActive = true
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := u.productRepo.Save(ctx, &product); err != nil {
		return uuid.Nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	storage.AddProduct(&product)
	storage.UpdatedAt = now
	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return uuid.Nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveProductLog(ctx,
		"Product created: "+product.ID.String(),
		model.LogPermissionManager,
		product.ID,
		fmt.Sprintf("Created product with ID: %s in storage ID: %d", product.ID, storageID),
		requestOwner,
		model.LogTypeCreate,
	)

	return product.ID, nil
}

// IDで商品を取得。取得も監査に残す（所有者は記録しない）。
func (u *ProductUsecase) GetProductByID(ctx context.Context, productID uuid.UUID) (model.Product, error) {
	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveProductLog(ctx,
		"Product retrieved: "+product.ID.String(),
		model.LogPermissionManager,
		product.ID,
		"Retrieved product with ID: "+product.ID.String(),
		uuid.Nil,
		model.LogTypeRetrieve,
	)

	return product, nil
}

// 商品更新。quantity / price / updatedAt だけ触る。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID uuid.UUID, in CreateProductInput, requestOwner uuid.UUID) error {
	if err := validator.ValidateProduct(model.Product{Quantity: in.Quantity, Price: in.Price}); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	product.Quantity = in.Quantity
	product.Price = in.Price
	product.UpdatedAt = time.Now()

	if err := u.productRepo.Save(ctx, &product); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveProductLog(ctx,
		"Product updated: "+product.ID.String(),
		model.LogPermissionManager,
		product.ID,
		"Updated product with ID: "+product.ID.String(),
		requestOwner,
		model.LogTypeUpdate,
	)

	return nil
}

// 商品停止。すでに停止中ならエラー。
func (u *ProductUsecase) DeactivateProduct(ctx context.Context, productID uuid.UUID, requestOwner uuid.UUID) error {
	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !product.IsActive {
		return NewHTTPError(http.StatusBadRequest, "product is already deactivated")
	}

	product.IsActive = false
	product.UpdatedAt = time.Now()
	if err := u.productRepo.Save(ctx, &product); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveProductLog(ctx,
		"Product deactivated: "+product.ID.String(),
		model.LogPermissionManager,
		product.ID,
		"Deactivated product with ID: "+product.ID.String(),
		requestOwner,
		model.LogTypeDeactivate,
	)

	return nil
}

// 商品再開。すでに稼働中ならエラー。
func (u *ProductUsecase) ActivateProduct(ctx context.Context, productID uuid.UUID, requestOwner uuid.UUID) error {
	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if product.IsActive {
		return NewHTTPError(http.StatusBadRequest, "product is already active")
	}

	product.IsActive = true
	product.UpdatedAt = time.Now()
	if err := u.productRepo.Save(ctx, &product); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveProductLog(ctx,
		"Product activated: "+product.ID.String(),
		model.LogPermissionManager,
		product.ID,
		"Activated product with ID: "+product.ID.String(),
		requestOwner,
		model.LogTypeActivate,
	)

	return nil
}

// 商品削除。先に倉庫の集合から外して合計値を正し、そのあと本体を消す。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID uuid.UUID, storageID int64, requestOwner uuid.UUID) error {
	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	storage, err := u.storageRepo.FindByID(ctx, storageID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "storage not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	storage.RemoveProduct(&product)
	storage.UpdatedAt = time.Now()
	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveProductLog(ctx,
		"Product deleted: "+product.ID.String(),
		model.LogPermissionManager,
		product.ID,
		fmt.Sprintf("Deleted product with ID: %s from storage ID: %d", product.ID, storageID),
		requestOwner,
		model.LogTypeDelete,
	)

	return nil
}
