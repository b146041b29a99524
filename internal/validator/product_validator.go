package validator

import (
	"errors"

	"github.com/StoreManagemantProject/shop-microsservice/internal/domain/model"
)

// ValidateProduct は商品の入力を検証する。純粋関数（I/Oなし）。
// 0は許可、負数だけ拒否。
func ValidateProduct(p model.Product) error {
	if p.Quantity < 0 {
		return errors.New("invalid quantity")
	}
	if p.Price.IsNegative() {
		return errors.New("invalid price")
	}
	return nil
}
