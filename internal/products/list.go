package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pyperpy/pyper-backend/pkg/pagination"
)

// ListFilters describe the supported filter knobs for the public browse
// endpoint.
type ListFilters struct {
	Category     *string `json:"category,omitempty"`
	FeaturedHome *bool   `json:"featured,omitempty"`
	IsKit        *bool   `json:"is_kit,omitempty"`
	Query        string  `json:"q,omitempty"`
}

// ListInput captures the inputs needed to paginate and filter the catalog.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// Summary is the lightweight card shape the storefront grids consume.
type Summary struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	ImageURL       *string         `json:"image_url,omitempty"`
	MainImage      *string         `json:"main_image,omitempty"`
	IsFeaturedHome bool            `json:"is_featured_home"`
	IsKit          bool            `json:"is_kit"`
	Stock          int             `json:"stock"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ListResult is one page of the browse query.
type ListResult struct {
	Products   []Summary `json:"products"`
	NextCursor string    `json:"next_cursor,omitempty"`
}
