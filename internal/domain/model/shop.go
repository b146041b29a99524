package model

import (
	"time"

	"github.com/google/uuid"
)

// ショップ（店舗）。オーナー（ResponsibleID）だけが変更できる。
type Shop struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	TaxID         string    `gorm:"column:tax_id;type:varchar(32);not null" json:"tax_id"`
	Address       string    `gorm:"type:varchar(255);not null" json:"address"`
	Phone         string    `gorm:"type:varchar(32);not null" json:"phone"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	Description   string    `gorm:"type:text" json:"description"`
	ResponsibleID uuid.UUID `gorm:"type:uuid;not null;index" json:"responsible_id"`
	OpeningHours  string    `gorm:"type:varchar(16)" json:"opening_hours"`
	ClosingHours  string    `gorm:"type:varchar(16)" json:"closing_hours"`
	ImageURL      string    `gorm:"type:varchar(512)" json:"image_url"`
	LogoURL       string    `gorm:"type:varchar(512)" json:"logo_url"`
	BannerURL     string    `gorm:"type:varchar(512)" json:"banner_url"`
	Status        bool      `gorm:"not null;default:false" json:"status"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

// OwnedBy は所有者チェック。ResponsibleIDが未設定なら常にfalse。
func (s *Shop) OwnedBy(userID uuid.UUID) bool {
	if s.ResponsibleID == uuid.Nil {
		return false
	}
	return s.ResponsibleID == userID
}
