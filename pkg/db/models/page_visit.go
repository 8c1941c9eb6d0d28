package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyperpy/pyper-backend/pkg/enums"
)

// PageVisit is one recorded storefront page view. Admin paths are never
// written here.
type PageVisit struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VisitorID    string           `gorm:"column:visitor_id;not null;index"`
	SessionID    string           `gorm:"column:session_id;not null;index"`
	PagePath     string           `gorm:"column:page_path;not null"`
	Referrer     *string          `gorm:"column:referrer"`
	DeviceType   enums.DeviceType `gorm:"column:device_type;not null"`
	IsNewVisitor bool             `gorm:"column:is_new_visitor;not null;default:false"`
	IsNewSession bool             `gorm:"column:is_new_session;not null;default:false"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime;index"`
}

// AnalyticsDaily is one rolled-up day of visit counters, produced by the
// cron worker.
type AnalyticsDaily struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Day            time.Time `gorm:"column:day;type:date;not null;uniqueIndex"`
	Visits         int       `gorm:"column:visits;not null;default:0"`
	UniqueVisitors int       `gorm:"column:unique_visitors;not null;default:0"`
	Sessions       int       `gorm:"column:sessions;not null;default:0"`
	MobileVisits   int       `gorm:"column:mobile_visits;not null;default:0"`
	DesktopVisits  int       `gorm:"column:desktop_visits;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
