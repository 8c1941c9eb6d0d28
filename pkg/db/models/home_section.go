package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyperpy/pyper-backend/pkg/enums"
)

// HomeSection is one editable card of the home page (solution, extra service,
// category tile or stat counter, per Category).
type HomeSection struct {
	ID          uuid.UUID                 `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string                    `gorm:"column:title;not null"`
	Subtitle    *string                   `gorm:"column:subtitle"`
	Icon        string                    `gorm:"column:icon;not null;default:'star'"`
	Description string                    `gorm:"column:description;not null;default:''"`
	Link        string                    `gorm:"column:link;not null;default:''"`
	Category    enums.HomeSectionCategory `gorm:"column:category;not null;index"`
	BgColor     *string                   `gorm:"column:bg_color"`
	Position    int                       `gorm:"column:position;not null;default:0"`
	Active      bool                      `gorm:"column:active;not null;default:true"`
	CreatedAt   time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}
