package product

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/pagination"
)

// repository is the GORM-backed implementation of Repository.
type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// CreateProduct inserts a new product row.
func (r *repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Omit("KitItems").Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product row.
func (r *repository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Omit("KitItems").Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by ID. Kit lines go with it via the FK.
func (r *repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

// FindByID loads the product with its kit composition.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("KitItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&product, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySlug loads an active product by slug for the public detail page.
func (r *repository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("KitItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&product, "slug = ? AND active = ?", slug, true).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListAdmin returns every product, newest first, for the inventory grid.
func (r *repository) ListAdmin(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Preload("KitItems").
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}

// ListKits returns every kit product with its composition.
func (r *repository) ListKits(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Preload("KitItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("is_kit = ?", true).
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}

// ReplaceKitItems swaps the full composition of a kit. Lines are deleted and
// reinserted so repeated saves of the same composition converge on the same
// rows.
func (r *repository) ReplaceKitItems(ctx context.Context, kitID uuid.UUID, items []models.KitItem) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("kit_id = ?", kitID).Delete(&models.KitItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].KitID = kitID
	}
	return tx.Create(&items).Error
}

// CountActive returns the number of purchasable products, for the dashboard.
func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("active = ?", true).
		Count(&count).
		Error
	return count, err
}

// TopCategories returns the categories with the most active products.
func (r *repository) TopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("category, COUNT(*) AS count").
		Where("active = ?", true).
		Group("category").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).
		Error
	return rows, err
}

// CategoryCount is one row of the dashboard category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ListSummaries runs the public browse query with cursor pagination.
func (r *repository) ListSummaries(ctx context.Context, query ListInput) (*ListResult, error) {
	pageSize := pagination.NormalizeLimit(query.Pagination.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(query.Pagination.Limit)
	if limitWithBuffer <= pageSize {
		limitWithBuffer = pageSize + 1
	}

	cursor, err := pagination.ParseCursor(query.Pagination.Cursor)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).
		Table("products p").
		Select(strings.Join([]string{
			"p.id",
			"p.name",
			"p.slug",
			"p.price",
			"p.category",
			"p.image_url",
			"p.main_image",
			"p.is_featured_home",
			"p.is_kit",
			"p.stock",
			"p.created_at",
		}, ", ")).
		Where("p.active = ?", true)

	filter := query.Filters
	if filter.Category != nil {
		qb = qb.Where("p.category = ?", *filter.Category)
	}
	if filter.FeaturedHome != nil {
		qb = qb.Where("p.is_featured_home = ?", *filter.FeaturedHome)
	}
	if filter.IsKit != nil {
		qb = qb.Where("p.is_kit = ?", *filter.IsKit)
	}
	if search := strings.TrimSpace(filter.Query); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(p.name) LIKE ? OR LOWER(p.category) LIKE ?)", pattern, pattern)
	}

	if cursor != nil {
		qb = qb.Where("(p.created_at < ?) OR (p.created_at = ? AND p.id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	qb = qb.Order("p.created_at DESC").Order("p.id DESC").Limit(limitWithBuffer)

	var records []productSummaryRecord
	if err := qb.Scan(&records).Error; err != nil {
		return nil, err
	}

	resultRows := records
	nextCursor := ""
	if len(records) > pageSize {
		resultRows = records[:pageSize]
		last := resultRows[len(resultRows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	summaries := make([]Summary, 0, len(resultRows))
	for _, record := range resultRows {
		summaries = append(summaries, record.toSummary())
	}

	return &ListResult{
		Products:   summaries,
		NextCursor: nextCursor,
	}, nil
}

type productSummaryRecord struct {
	ID             uuid.UUID
	Name           string
	Slug           string
	Price          decimal.Decimal
	Category       string
	ImageURL       sql.NullString
	MainImage      sql.NullString
	IsFeaturedHome bool
	IsKit          bool
	Stock          int
	CreatedAt      time.Time
}

func (r productSummaryRecord) toSummary() Summary {
	return Summary{
		ID:             r.ID,
		Name:           r.Name,
		Slug:           r.Slug,
		Price:          r.Price,
		Category:       r.Category,
		ImageURL:       nullStringPtr(r.ImageURL),
		MainImage:      nullStringPtr(r.MainImage),
		IsFeaturedHome: r.IsFeaturedHome,
		IsKit:          r.IsKit,
		Stock:          r.Stock,
		CreatedAt:      r.CreatedAt,
	}
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}
