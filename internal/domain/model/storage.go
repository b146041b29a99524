package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 倉庫。商品の集合と、その合計数量・合計金額を持つ集約。
// 合計値は都度の加減算で維持する（全件再計算はしない）。
type Storage struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                  string          `gorm:"type:varchar(255);not null" json:"name"`
	Location              string          `gorm:"type:varchar(255)" json:"location"`
	Description           string          `gorm:"type:text" json:"description"`
	ResponsibleID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"responsible_id"`
	IsActive              bool            `gorm:"not null;default:false" json:"is_active"`
	TotalProductsQuantity int64           `gorm:"not null;default:0" json:"total_products_quantity"`
	TotalProductsValue    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_products_value"`
	Products              []Product       `gorm:"many2many:storage_products" json:"products"`
	Shops                 []Shop          `gorm:"many2many:storage_shops" json:"-"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`
}

// HasProduct は商品が集合に含まれるか。
func (s *Storage) HasProduct(productID uuid.UUID) bool {
	for _, p := range s.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// AddProduct は商品を集合に追加し、合計値を加算する。
// すでに含まれている場合は二重計上しない（追加できたときだけ加算）。
func (s *Storage) AddProduct(product *Product) bool {
	if product == nil {
		return false
	}
	if s.HasProduct(product.ID) {
		return false
	}

	s.Products = append(s.Products, *product)
	s.TotalProductsQuantity += product.Quantity
	s.TotalProductsValue = s.TotalProductsValue.Add(product.Subtotal())
	return true
}

// RemoveProduct は商品を集合から外し、合計値を減算する。
// 含まれていなければ何もしない（減算もしない）。
func (s *Storage) RemoveProduct(product *Product) bool {
	if product == nil {
		return false
	}

	for i, p := range s.Products {
		if p.ID == product.ID {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			s.TotalProductsQuantity -= product.Quantity
			s.TotalProductsValue = s.TotalProductsValue.Sub(product.Subtotal())
			return true
		}
	}
	return false
}

// OwnedBy は所有者チェック。ResponsibleIDが未設定なら常にfalse。
func (s *Storage) OwnedBy(userID uuid.UUID) bool {
	if s.ResponsibleID == uuid.Nil {
		return false
	}
	return s.ResponsibleID == userID
}
