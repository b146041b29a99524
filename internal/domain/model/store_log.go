package model

import (
	"time"

	"github.com/google/uuid"
)

// 監査ログの権限レベル。
type LogPermission string

const (
	LogPermissionManager LogPermission = "MANAGER"
	LogPermissionAdmin   LogPermission = "ADMIN"
	LogPermissionUser    LogPermission = "USER"
	LogPermissionGuest   LogPermission = "GUEST"
)

// 操作の種類。
type LogType string

const (
	LogTypeCreate        LogType = "CREATE"
	LogTypeUpdate        LogType = "UPDATE"
	LogTypeDelete        LogType = "DELETE"
	LogTypeActivate      LogType = "ACTIVATE"
	LogTypeDeactivate    LogType = "DEACTIVATE"
	LogTypeAddProduct    LogType = "ADD_PRODUCT"
	LogTypeRemoveProduct LogType = "REMOVE_PRODUCT"
	LogTypeRetrieve      LogType = "RETRIEVE"
)

// 店舗スコープの監査ログ。追記のみで、更新・削除はしない。
type StoreLog struct {
	ID         int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Message    string        `gorm:"type:varchar(255);not null" json:"message"`
	Permission LogPermission `gorm:"type:varchar(20);not null;index" json:"permission"`
	StoreID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"store_id"`
	Details    string        `gorm:"type:text" json:"details"`
	LogOwnerID uuid.UUID     `gorm:"type:uuid" json:"log_owner_id"`
	LogType    LogType       `gorm:"type:varchar(20);not null;index" json:"log_type"`
	Timestamp  time.Time     `gorm:"not null;index" json:"timestamp"`
}
