package models

import (
	"time"

	"github.com/google/uuid"
)

// FeatureFlag toggles an optional storefront behavior by key.
type FeatureFlag struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Key       string    `gorm:"column:key;not null;uniqueIndex"`
	Enabled   bool      `gorm:"column:enabled;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
