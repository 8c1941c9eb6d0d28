package sitecfg

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
)

// Repository defines persistence operations for the site configuration
// tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	ListSettings(ctx context.Context) ([]models.SiteSetting, error)
	UpsertSetting(ctx context.Context, key, value string) error

	ListNavigation(ctx context.Context, activeOnly bool) ([]models.NavigationItem, error)
	SaveNavigationItem(ctx context.Context, item *models.NavigationItem) (*models.NavigationItem, error)
	DeleteNavigationItem(ctx context.Context, id uuid.UUID) error

	ListHeroSlides(ctx context.Context, activeOnly bool) ([]models.HeroSlide, error)
	SaveHeroSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id uuid.UUID) error

	ListHomeSections(ctx context.Context, activeOnly bool) ([]models.HomeSection, error)
	SaveHomeSection(ctx context.Context, section *models.HomeSection) (*models.HomeSection, error)
	DeleteHomeSection(ctx context.Context, id uuid.UUID) error

	ListFooterColumns(ctx context.Context, activeOnly bool) ([]models.FooterColumn, error)
	SaveFooterColumn(ctx context.Context, column *models.FooterColumn) (*models.FooterColumn, error)
	ReplaceFooterLinks(ctx context.Context, columnID uuid.UUID, links []models.FooterLink) error
	DeleteFooterColumn(ctx context.Context, id uuid.UUID) error

	ListFeatureFlags(ctx context.Context) ([]models.FeatureFlag, error)
	UpsertFeatureFlag(ctx context.Context, key string, enabled bool) error
}

// Bundle is everything the storefront shell needs in one payload.
type Bundle struct {
	Settings     map[string]string                                `json:"settings"`
	Navigation   []models.NavigationItem                          `json:"navigation"`
	HeroSlides   []models.HeroSlide                               `json:"hero_slides"`
	HomeSections map[enums.HomeSectionCategory][]models.HomeSection `json:"home_sections"`
	Footer       []models.FooterColumn                            `json:"footer"`
	FeatureFlags map[string]bool                                  `json:"feature_flags"`
}
