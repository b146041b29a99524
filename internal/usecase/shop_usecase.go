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
)

type ShopUsecase struct {
	shopRepo repo.ShopRepository
	audit    AuditRecorder
}

// DI
func NewShopUsecase(shopRepo repo.ShopRepository, audit AuditRecorder) *ShopUsecase {
	return &ShopUsecase{
		shopRepo: shopRepo,
		audit:    audit,
	}
}

// ショップ作成の入力DTO
type CreateShopInput struct {
	Name          string
	TaxID         string
	Address       string
	Phone         string
	Email         string
	Description   string
	ResponsibleID uuid.UUID
	OpeningHours  string
	ClosingHours  string
	ImageURL      string
	LogoURL       string
	BannerURL     string
}

func (in CreateShopInput) toModel() model.Shop {
	return model.Shop{
		Name:          in.Name,
		TaxID:         in.TaxID,
		Address:       in.Address,
		Phone:         in.Phone,
		Email:         in.Email,
		Description:   in.Description,
		ResponsibleID: in.ResponsibleID,
		OpeningHours:  in.OpeningHours,
		ClosingHours:  in.ClosingHours,
		ImageURL:      in.ImageURL,
		LogoURL:       in.LogoURL,
		BannerURL:     in.BannerURL,
	}
}

// ショップ作成。作成時はstatusを必ずtrueにする。
func (u *ShopUsecase) CreateShop(ctx context.Context, in CreateShopInput, requestOwner uuid.UUID) (uuid.UUID, error) {
	shop := in.toModel()
	if err := validator.ValidateShop(shop); err != nil {
		return uuid.Nil, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	now := time.Now()
	shop.ID = uuid.New()
	shop.CreatedAt = now
	shop.UpdatedAt = now
	shop.Status = true

	if err := u.shopRepo.Save(ctx, &shop); err != nil {
		return uuid.Nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		"Shop created: "+shop.ID.String(),
		model.LogPermissionAdmin,
		shop.ID,
		"Created shop with ID: "+shop.ID.String(),
		requestOwner,
		model.LogTypeCreate,
	)

	return shop.ID, nil
}

// 全ショップの取得
func (u *ShopUsecase) GetAllShops(ctx context.Context) ([]model.Shop, error) {
	shops, err := u.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

// IDでショップを取得
func (u *ShopUsecase) GetShopByID(ctx context.Context, shopID uuid.UUID) (model.Shop, error) {
	shop, err := u.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shop, nil
}

// ショップ更新。停止中は更新不可。所有者のみ。
func (u *ShopUsecase) UpdateShop(ctx context.Context, shopID uuid.UUID, in CreateShopInput, requestOwner uuid.UUID) error {
	existing, err := u.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !existing.Status {
		return NewHTTPError(http.StatusBadRequest, "cannot update a deactivated shop")
	}
	if !existing.OwnedBy(requestOwner) {
		return NewHTTPError(http.StatusForbidden, "you do not have permission to update this shop")
	}

	updated := in.toModel()
	if err := validator.ValidateShop(updated); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// idとstatus、作成時刻は引き継ぐ
	updated.ID = existing.ID
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := u.shopRepo.Save(ctx, &updated); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		"Shop updated: "+updated.ID.String(),
		model.LogPermissionAdmin,
		updated.ID,
		"Updated shop with ID: "+updated.ID.String(),
		requestOwner,
		model.LogTypeUpdate,
	)

	return nil
}

// ショップ停止。すでに停止中ならエラー。所有者のみ。
func (u *ShopUsecase) DeactivateShop(ctx context.Context, shopID uuid.UUID, requestOwner uuid.UUID) error {
	shop, err := u.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !shop.Status {
		return NewHTTPError(http.StatusBadRequest, "shop is already deactivated")
	}
	if !shop.OwnedBy(requestOwner) {
		return NewHTTPError(http.StatusForbidden, "you do not have permission to deactivate this shop")
	}

	shop.Status = false
	shop.UpdatedAt = time.Now()
	if err := u.shopRepo.Save(ctx, &shop); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		"Shop deactivated: "+shop.ID.String(),
		model.LogPermissionAdmin,
		shop.ID,
		"Deactivated shop with ID: "+shop.ID.String(),
		requestOwner,
		model.LogTypeDeactivate,
	)

	return nil
}

// ショップ再開。すでに稼働中ならエラー。所有者のみ。
func (u *ShopUsecase) ActivateShop(ctx context.Context, shopID uuid.UUID, requestOwner uuid.UUID) error {
	shop, err := u.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if shop.Status {
		return NewHTTPError(http.StatusBadRequest, "shop is already active")
	}
	if !shop.OwnedBy(requestOwner) {
		return NewHTTPError(http.StatusForbidden, "you do not have permission to activate this shop")
	}

	shop.Status = true
	shop.UpdatedAt = time.Now()
	if err := u.shopRepo.Save(ctx, &shop); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.SaveStoreLog(ctx,
		"Shop activated: "+shop.ID.String(),
		model.LogPermissionAdmin,
		shop.ID,
		fmt.Sprintf("Activated shop with ID: %s", shop.ID),
		requestOwner,
		model.LogTypeActivate,
	)

	return nil
}
