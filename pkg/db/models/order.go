package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pyperpy/pyper-backend/pkg/enums"
	"github.com/pyperpy/pyper-backend/pkg/types"
)

// Order is a purchase request captured from the storefront. Line items are a
// denormalized snapshot; there is no join back to the catalog.
type Order struct {
	ID            uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName  string                 `gorm:"column:customer_name;not null"`
	CustomerPhone string                 `gorm:"column:customer_phone;not null"`
	Message       *string                `gorm:"column:message"`
	Items         types.OrderItems       `gorm:"column:items;type:jsonb;serializer:json"`
	TotalAmount   decimal.Decimal        `gorm:"column:total_amount;type:numeric(14,0);not null"`
	RequestType   enums.OrderRequestType `gorm:"column:request_type;not null"`
	Status        enums.OrderStatus      `gorm:"column:status;not null;default:Pendiente"`
	CreatedAt     time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
