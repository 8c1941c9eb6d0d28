package models

import (
	"time"

	"github.com/google/uuid"
)

// FooterColumn groups footer links under a heading.
type FooterColumn struct {
	ID        uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title     string       `gorm:"column:title;not null"`
	Position  int          `gorm:"column:position;not null;default:0"`
	Active    bool         `gorm:"column:active;not null;default:true"`
	Links     []FooterLink `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

// FooterLink is one link inside a footer column.
type FooterLink struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ColumnID  uuid.UUID `gorm:"column:column_id;type:uuid;not null;index"`
	Label     string    `gorm:"column:label;not null"`
	Link      string    `gorm:"column:link;not null"`
	Position  int       `gorm:"column:position;not null;default:0"`
	Active    bool      `gorm:"column:active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
