package validator

import (
	"errors"
	"regexp"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"

	"github.com/google/uuid"
)

// 簡易メール形式
var emailRe = regexp.MustCompile(`^[\w.+-]+@[\w-]+\.[A-Za-z]{2,}$`)

// ValidateShop はショップの入力を検証する。純粋関数（I/Oなし）。
// 最初に見つかった不備を返す。
func ValidateShop(shop model.Shop) error {
	// 必須チェック
	if shop.Name == "" {
		return errors.New("shop name cannot be empty")
	}
	if shop.TaxID == "" {
		return errors.New("tax id cannot be empty")
	}
	if shop.Address == "" {
		return errors.New("address cannot be empty")
	}
	if shop.Phone == "" {
		return errors.New("phone cannot be empty")
	}

	// email形式
	if shop.Email == "" || !emailRe.MatchString(shop.Email) {
		return errors.New("email cannot be empty or invalid")
	}

	if shop.Description == "" {
		return errors.New("description cannot be empty")
	}
	if shop.ResponsibleID == uuid.Nil {
		return errors.New("responsible id cannot be null")
	}
	if shop.OpeningHours == "" {
		return errors.New("opening hours cannot be null")
	}
	if shop.ClosingHours == "" {
		return errors.New("closing hours cannot be null")
	}
	if shop.ImageURL == "" {
		return errors.New("image url cannot be empty")
	}
	if shop.LogoURL == "" {
		return errors.New("logo url cannot be empty")
	}
	if shop.BannerURL == "" {
		return errors.New("banner url cannot be empty")
	}
	return nil
}
