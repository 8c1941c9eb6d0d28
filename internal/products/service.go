package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/internal/seo"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes catalog management and public browse operations.
type Service interface {
	Create(ctx context.Context, input SaveInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input SaveInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Browse(ctx context.Context, input ListInput) (*ListResult, error)
	ListAdmin(ctx context.Context) ([]models.Product, error)
	ListKits(ctx context.Context) ([]models.Product, error)
	PreviewSEO(input SEOPreviewInput) seo.Result
}

// KitItemInput references a component product; Quantity below one is treated
// as one.
type KitItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// SaveInput holds the validated payload to create or update a product.
type SaveInput struct {
	Name            string
	Slug            string
	Description     *string
	Price           decimal.Decimal
	Category        string
	ImageURL        *string
	MainImage       *string
	IsFeaturedHome  bool
	Active          bool
	Stock           int
	IsKit           bool
	MetaTitle       *string
	MetaDescription *string
	FocusKeyword    *string
	KitItems        []KitItemInput
}

// SEOPreviewInput feeds the live score preview in the product editor.
type SEOPreviewInput struct {
	FocusKeyword    string `json:"focus_keyword"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	MetaDescription string `json:"meta_description"`
	MainImage       string `json:"main_image"`
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs a catalog service instance.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// Create persists a new product and, for kits, its composition, in one
// transaction.
func (s *service) Create(ctx context.Context, input SaveInput) (*models.Product, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	product := &models.Product{}
	applySave(product, input)

	draft, err := s.buildDraft(ctx, uuid.Nil, input)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		created, err := repo.CreateProduct(ctx, product)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert product")
		}
		product = created
		if product.IsKit {
			if err := repo.ReplaceKitItems(ctx, product.ID, draft.Items(product.ID)); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert kit items")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, product.ID)
}

// Update saves changes to an existing product. The kit composition is
// replaced wholesale so resubmitting the same payload leaves the same lines.
func (s *service) Update(ctx context.Context, id uuid.UUID, input SaveInput) (*models.Product, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applySave(product, input)

	draft, err := s.buildDraft(ctx, id, input)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.UpdateProduct(ctx, product); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
		}
		// Non-kits keep no composition rows.
		items := []models.KitItem{}
		if product.IsKit {
			items = draft.Items(product.ID)
		}
		if err := repo.ReplaceKitItems(ctx, product.ID, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace kit items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a product and its kit lines.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

// Get loads a product with its composition for the admin editor.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

// GetBySlug serves the public detail page; inactive products read as missing.
func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

// Browse serves the public catalog grid.
func (s *service) Browse(ctx context.Context, input ListInput) (*ListResult, error) {
	result, err := s.repo.ListSummaries(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return result, nil
}

// ListAdmin returns the full inventory for the admin grid.
func (s *service) ListAdmin(ctx context.Context) ([]models.Product, error) {
	rows, err := s.repo.ListAdmin(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return rows, nil
}

// ListKits returns kit products with their compositions.
func (s *service) ListKits(ctx context.Context) ([]models.Product, error) {
	rows, err := s.repo.ListKits(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list kits")
	}
	return rows, nil
}

// PreviewSEO scores a draft without persisting anything.
func (s *service) PreviewSEO(input SEOPreviewInput) seo.Result {
	return seo.ScoreProduct(seo.ProductInput{
		FocusKeyword:    input.FocusKeyword,
		Name:            input.Name,
		Slug:            input.Slug,
		Description:     input.Description,
		MetaDescription: input.MetaDescription,
		MainImage:       input.MainImage,
	})
}

// buildDraft snapshots the referenced component products into kit lines.
// kitID guards against a kit listing itself as a component.
func (s *service) buildDraft(ctx context.Context, kitID uuid.UUID, input SaveInput) (*KitDraft, error) {
	draft := &KitDraft{}
	if !resolveIsKit(input) {
		return draft, nil
	}
	for _, item := range input.KitItems {
		if kitID != uuid.Nil && item.ProductID == kitID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "a kit cannot contain itself")
		}
		component, err := s.repo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("kit component %s does not exist", item.ProductID))
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load kit component")
		}
		if component.IsKit {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "kits cannot nest other kits")
		}
		draft.AddItem(component.ID, component.Name, component.Price, item.Quantity)
	}
	return draft, nil
}

func validateSave(input SaveInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	if input.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.Stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}
	return nil
}

// resolveIsKit folds the three signals the editor can send: the explicit
// flag, a kit category, or a non-empty composition.
func resolveIsKit(input SaveInput) bool {
	if input.IsKit || len(input.KitItems) > 0 {
		return true
	}
	return strings.Contains(strings.ToLower(input.Category), "kit")
}

func applySave(product *models.Product, input SaveInput) {
	product.Name = input.Name
	product.Slug = strings.TrimSpace(input.Slug)
	if product.Slug == "" {
		product.Slug = seo.Slugify(input.Name)
	}
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.ImageURL = input.ImageURL
	product.MainImage = input.MainImage
	product.IsFeaturedHome = input.IsFeaturedHome
	product.Active = input.Active
	product.Stock = input.Stock
	product.IsKit = resolveIsKit(input)
	product.MetaTitle = input.MetaTitle
	product.MetaDescription = input.MetaDescription
	product.FocusKeyword = input.FocusKeyword
	product.SEOScore = scoreFor(product)
}

func scoreFor(product *models.Product) int {
	result := seo.ScoreProduct(seo.ProductInput{
		FocusKeyword:    deref(product.FocusKeyword),
		Name:            product.Name,
		Slug:            product.Slug,
		Description:     deref(product.Description),
		MetaDescription: deref(product.MetaDescription),
		MainImage:       coalesce(deref(product.MainImage), deref(product.ImageURL)),
	})
	return result.Score
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
