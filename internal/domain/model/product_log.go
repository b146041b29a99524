package model

import (
	"time"

	"github.com/google/uuid"
)

// 商品スコープの監査ログ。店舗ログとは別テーブルに残す。
type ProductLog struct {
	ID         int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Message    string        `gorm:"type:varchar(255);not null" json:"message"`
	Permission LogPermission `gorm:"type:varchar(20);not null;index" json:"permission"`
	ProductID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"product_id"`
	Details    string        `gorm:"type:text" json:"details"`
	LogOwnerID uuid.UUID     `gorm:"type:uuid" json:"log_owner_id"`
	LogType    LogType       `gorm:"type:varchar(20);not null;index" json:"log_type"`
	Timestamp  time.Time     `gorm:"not null;index" json:"timestamp"`
}
