package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteSetting is one key/value pair of the storefront identity bundle
// (business name, whatsapp number, checkout mode, ...).
type SiteSetting struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Key       string    `gorm:"column:key;not null;uniqueIndex"`
	Value     string    `gorm:"column:value;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
