package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Kits are products too: IsKit marks rows whose
// composition lives in kit_items.
type Product struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string          `gorm:"column:name;not null"`
	Slug            string          `gorm:"column:slug;not null;uniqueIndex"`
	Description     *string         `gorm:"column:description"`
	Price           decimal.Decimal `gorm:"column:price;type:numeric(14,0);not null"`
	Category        string          `gorm:"column:category;not null"`
	ImageURL        *string         `gorm:"column:image_url"`
	MainImage       *string         `gorm:"column:main_image"`
	IsFeaturedHome  bool            `gorm:"column:is_featured_home;not null;default:false"`
	Active          bool            `gorm:"column:active;not null;default:true"`
	Stock           int             `gorm:"column:stock;not null;default:0"`
	IsKit           bool            `gorm:"column:is_kit;not null;default:false"`
	MetaTitle       *string         `gorm:"column:meta_title"`
	MetaDescription *string         `gorm:"column:meta_description"`
	FocusKeyword    *string         `gorm:"column:focus_keyword"`
	SEOScore        int             `gorm:"column:seo_score;not null;default:0"`
	KitItems        []KitItem       `gorm:"foreignKey:KitID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// KitItem is one component line of a kit. Name and Price are snapshots taken
// when the line was added; they are not re-synced from the catalog.
type KitItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	KitID     uuid.UUID       `gorm:"column:kit_id;type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	Quantity  int             `gorm:"column:quantity;not null;default:1"`
	Name      string          `gorm:"column:name;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(14,0);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
