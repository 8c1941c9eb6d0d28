package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pyperpy/pyper-backend/pkg/enums"
)

// Banner is a scheduled promotional creative. StartTime and EndTime hold
// zero-padded HH:MM:SS strings; DaysOfWeek holds English long weekday names.
type Banner struct {
	ID           uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ImageURL     string                `gorm:"column:image_url;not null"`
	LinkURL      *string               `gorm:"column:link_url"`
	Placement    enums.BannerPlacement `gorm:"column:placement;not null;index"`
	DaysOfWeek   pq.StringArray        `gorm:"column:days_of_week;type:text[];not null;default:ARRAY[]::text[]"`
	StartTime    string                `gorm:"column:start_time;not null;default:'00:00:00'"`
	EndTime      string                `gorm:"column:end_time;not null;default:'23:59:59'"`
	AlwaysActive bool                  `gorm:"column:always_active;not null;default:false"`
	IsActive     bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
