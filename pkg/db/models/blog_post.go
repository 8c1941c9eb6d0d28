package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BlogPost is an article edited as a sequence of content blocks. Content is
// stored as raw JSON; internal/cms owns the block codec, including the
// fallback for rows that predate the block editor.
type BlogPost struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title           string          `gorm:"column:title;not null"`
	Slug            string          `gorm:"column:slug;not null;uniqueIndex"`
	Excerpt         string          `gorm:"column:excerpt;not null;default:''"`
	Content         json.RawMessage `gorm:"column:content;type:jsonb"`
	Category        string          `gorm:"column:category;not null;default:'General'"`
	CoverImage      *string         `gorm:"column:cover_image"`
	MetaTitle       *string         `gorm:"column:meta_title"`
	MetaDescription *string         `gorm:"column:meta_description"`
	FocusKeyword    *string         `gorm:"column:focus_keyword"`
	SEOScore        int             `gorm:"column:seo_score;not null;default:0"`
	Active          bool            `gorm:"column:active;not null;default:true"`
	PublishedAt     time.Time       `gorm:"column:published_at;autoCreateTime"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
