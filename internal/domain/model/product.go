package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 商品。外部に見せるIDはこのUUIDひとつだけ。
type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Quantity  int64           `gorm:"not null;default:0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	IsActive  bool            `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// Subtotal は price × quantity。
func (p *Product) Subtotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}
