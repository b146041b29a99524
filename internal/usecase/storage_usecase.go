package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
	repo "github.com/StoreManagemantProject/shop-microsservice/internal/repository"

	"github.com/google/uuid"
)

type StorageUsecase struct {
	storageRepo repo.StorageRepository
	productRepo repo.ProductRepository
	audit       AuditRecorder
}

// DI
func NewStorageUsecase(storageRepo repo.StorageRepository, productRepo repo.ProductRepository, audit AuditRecorder) *StorageUsecase {
	return &StorageUsecase{
		storageRepo: storageRepo,
		productRepo: productRepo,
		audit:       audit,
	}
}

// 倉庫作成の入力DTO
type CreateStorageInput struct {
	Name          string
	Location      string
	Description   string
	ResponsibleID uuid.UUID
}

// 倉庫更新の入力DTO。更新できるのはこのフィールドだけ。
type UpdateStorageInput struct {
	Description   string
	ResponsibleID uuid.UUID
	IsActive      bool
}

// 倉庫作成。合計値はゼロ始まり、activeで作る。
func (u *StorageUsecase) CreateStorage(ctx context.Context, in CreateStorageInput, storeID uuid.UUID, requestOwner uuid.UUID) (int64, error) {
	now := time.Now()
	storage := model.Storage{
		Name:          in.Name,
		Location:      in.Location,
		Description:   in.Description,
		ResponsibleID: in.ResponsibleID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		fmt.Sprintf("Storage created: %d", storage.ID),
		model.LogPermissionManager,
		storeID,
		fmt.Sprintf("Created storage with ID: %d", storage.ID),
		requestOwner,
		model.LogTypeCreate,
	)

	return storage.ID, nil
}

// 倉庫更新。description / responsibleId / isActive / updatedAt だけ触る。所有者のみ。
func (u *StorageUsecase) UpdateStorage(ctx context.Context, storageID int64, in UpdateStorageInput, storeID uuid.UUID, requestOwner uuid.UUID) error {
	if storageID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "storage id cannot be null")
	}

	storage, err := u.storageRepo.FindByID(ctx, storageID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "storage not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !storage.OwnedBy(requestOwner) {
		return NewHTTPError(http.StatusForbidden, "you do not have permission to update this storage")
	}

	storage.Description = in.Description
	storage.ResponsibleID = in.ResponsibleID
	storage.IsActive = in.IsActive
	storage.UpdatedAt = time.Now()

	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		fmt.Sprintf("Storage updated: %d", storage.ID),
		model.LogPermissionManager,
		storeID,
		fmt.Sprintf("Updated storage with ID: %d", storage.ID),
		requestOwner,
		model.LogTypeUpdate,
	)

	return nil
}

// 倉庫に商品を追加する。合計値の加算は集合への追加が成立したときだけ。
func (u *StorageUsecase) AddProductToStorage(ctx context.Context, storageID int64, productID uuid.UUID, storeID uuid.UUID, requestOwner uuid.UUID) error {
	storage, err := u.storageRepo.FindByID(ctx, storageID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "storage not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// すでに入っている場合は集合も合計値も変わらない
	storage.AddProduct(&product)
	storage.UpdatedAt = time.Now()

	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		fmt.Sprintf("Product added to storage: %d", storageID),
		model.LogPermissionManager,
		storeID,
		fmt.Sprintf("Added product %s to storage %d", productID, storageID),
		requestOwner,
		model.LogTypeAddProduct,
	)

	return nil
}

// 倉庫から商品を外す。外せなかった（未所属）ときは合計値に触らない。
func (u *StorageUsecase) RemoveProductFromStorage(ctx context.Context, storageID int64, productID uuid.UUID, storeID uuid.UUID, requestOwner uuid.UUID) error {
	storage, err := u.storageRepo.FindByID(ctx, storageID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "storage not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	storage.RemoveProduct(&product)
	storage.UpdatedAt = time.Now()

	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		fmt.Sprintf("Product removed from storage: %d", storageID),
		model.LogPermissionManager,
		storeID,
		fmt.Sprintf("Removed product %s from storage %d", productID, storageID),
		requestOwner,
		model.LogTypeRemoveProduct,
	)

	return nil
}

// 倉庫停止。すでに停止中ならエラー。所有者のみ。
func (u *StorageUsecase) DeactivateStorage(ctx context.Context, storageID int64, storeID uuid.UUID, requestOwner uuid.UUID) error {
	storage, err := u.storageRepo.FindByID(ctx, storageID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "storage not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !storage.IsActive {
		return NewHTTPError(http.StatusBadRequest, "storage is already deactivated")
	}
	if !storage.OwnedBy(requestOwner) {
		return NewHTTPError(http.StatusForbidden, "you do not have permission to deactivate this storage")
	}

	storage.IsActive = false
	storage.UpdatedAt = time.Now()
	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		fmt.Sprintf("Storage deactivated: %d", storageID),
		model.LogPermissionManager,
		storeID,
		fmt.Sprintf("Deactivated storage with ID: %d", storageID),
		requestOwner,
		model.LogTypeDeactivate,
	)

	return nil
}

// 倉庫再開。すでに稼働中ならエラー。所有者のみ。
func (u *StorageUsecase) ActivateStorage(ctx context.Context, storageID int64, storeID uuid.UUID, requestOwner uuid.UUID) error {
	storage, err := u.storageRepo.FindByID(ctx, storageID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "storage not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if storage.IsActive {
		return NewHTTPError(http.StatusBadRequest, "storage is already active")
	}
	if !storage.OwnedBy(requestOwner) {
		return NewHTTPError(http.StatusForbidden, "you do not have permission to activate this storage")
	}

	storage.IsActive = true
	storage.UpdatedAt = time.Now()
	if err := u.storageRepo.Save(ctx, &storage); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		fmt.Sprintf("Storage activated: %d", storageID),
		model.LogPermissionManager,
		storeID,
		fmt.Sprintf("Activated storage with ID: %d", storageID),
		requestOwner,
		model.LogTypeActivate,
	)

	return nil
}
