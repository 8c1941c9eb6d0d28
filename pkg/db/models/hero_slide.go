package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HeroSlide is one rotating slide of the home page hero.
type HeroSlide struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string         `gorm:"column:title;not null"`
	Subtitle    string         `gorm:"column:subtitle;not null;default:''"`
	BadgeText   *string        `gorm:"column:badge_text"`
	TrustText   *string        `gorm:"column:trust_text"`
	TrustImages pq.StringArray `gorm:"column:trust_images;type:text[];not null;default:ARRAY[]::text[]"`
	Button1Text string         `gorm:"column:button_1_text;not null;default:''"`
	Button1Link string         `gorm:"column:button_1_link;not null;default:''"`
	Button2Text *string        `gorm:"column:button_2_text"`
	Button2Link *string        `gorm:"column:button_2_link"`
	ImageURL    *string        `gorm:"column:image_url"`
	Position    int            `gorm:"column:position;not null;default:0"`
	Active      bool           `gorm:"column:active;not null;default:true"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
