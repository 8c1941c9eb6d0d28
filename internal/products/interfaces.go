package product

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
)

// Repository defines persistence operations for the catalog and kit tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListAdmin(ctx context.Context) ([]models.Product, error)
	ListKits(ctx context.Context) ([]models.Product, error)
	ReplaceKitItems(ctx context.Context, kitID uuid.UUID, items []models.KitItem) error
	ListSummaries(ctx context.Context, query ListInput) (*ListResult, error)
	CountActive(ctx context.Context) (int64, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
}
