package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CMSPage is a slug-addressed institutional page built from content blocks.
type CMSPage struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug            string          `gorm:"column:slug;not null;uniqueIndex"`
	Title           string          `gorm:"column:title;not null"`
	Content         json.RawMessage `gorm:"column:content;type:jsonb"`
	MetaTitle       *string         `gorm:"column:meta_title"`
	MetaDescription *string         `gorm:"column:meta_description"`
	Active          bool            `gorm:"column:active;not null;default:true"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
