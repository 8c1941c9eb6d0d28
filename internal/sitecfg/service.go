package sitecfg

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/pyperpy/pyper-backend/internal/cart"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

// Service exposes the storefront configuration bundle and its admin editors.
type Service interface {
	Bundle(ctx context.Context) (*Bundle, error)
	Settings(ctx context.Context) (map[string]string, error)
	UpdateSettings(ctx context.Context, values map[string]string) error
	Checkout(ctx context.Context) (cart.CheckoutSettings, error)

	SaveNavigationItem(ctx context.Context, item *models.NavigationItem) (*models.NavigationItem, error)
	DeleteNavigationItem(ctx context.Context, id uuid.UUID) error
	ListNavigation(ctx context.Context) ([]models.NavigationItem, error)

	SaveHeroSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id uuid.UUID) error
	ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error)

	SaveHomeSection(ctx context.Context, section *models.HomeSection) (*models.HomeSection, error)
	DeleteHomeSection(ctx context.Context, id uuid.UUID) error
	ListHomeSections(ctx context.Context) ([]models.HomeSection, error)

	SaveFooterColumn(ctx context.Context, column *models.FooterColumn, links []models.FooterLink) (*models.FooterColumn, error)
	DeleteFooterColumn(ctx context.Context, id uuid.UUID) error
	ListFooterColumns(ctx context.Context) ([]models.FooterColumn, error)

	FeatureFlags(ctx context.Context) (map[string]bool, error)
	SetFeatureFlag(ctx context.Context, key string, enabled bool) error
}

type service struct {
	repo Repository
}

// NewService constructs a site configuration service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sitecfg repository required")
	}
	return &service{repo: repo}, nil
}

// Bundle aggregates the full storefront shell. Loader failures are combined
// and the affected sections fall back to defaults or empty lists, so one bad
// table never blanks the whole site.
func (s *service) Bundle(ctx context.Context) (*Bundle, error) {
	var errs error

	settings, err := s.Settings(ctx)
	if err != nil {
		errs = multierr.Append(errs, err)
		settings = settingsWithDefaults(nil)
	}

	nav, err := s.repo.ListNavigation(ctx, true)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list navigation: %w", err))
	}
	slides, err := s.repo.ListHeroSlides(ctx, true)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list hero slides: %w", err))
	}
	sections, err := s.repo.ListHomeSections(ctx, true)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list home sections: %w", err))
	}
	footer, err := s.repo.ListFooterColumns(ctx, true)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list footer columns: %w", err))
	}
	flags, err := s.FeatureFlags(ctx)
	if err != nil {
		errs = multierr.Append(errs, err)
		flags = map[string]bool{}
	}

	grouped := make(map[enums.HomeSectionCategory][]models.HomeSection)
	for _, section := range sections {
		grouped[section.Category] = append(grouped[section.Category], section)
	}

	return &Bundle{
		Settings:     settings,
		Navigation:   nav,
		HeroSlides:   slides,
		HomeSections: grouped,
		Footer:       footer,
		FeatureFlags: flags,
	}, errs
}

// Settings returns the stored key/value pairs overlaid on the defaults.
func (s *service) Settings(ctx context.Context) (map[string]string, error) {
	rows, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list settings")
	}
	return settingsWithDefaults(rows), nil
}

// UpdateSettings upserts each provided key. Checkout mode values are
// validated so the storefront can never be switched into an unknown flow.
func (s *service) UpdateSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no settings provided")
	}
	for key, value := range values {
		if strings.TrimSpace(key) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "setting key cannot be empty")
		}
		if key == KeyCheckoutMode {
			if _, err := enums.ParseCheckoutMode(value); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid checkout_mode")
			}
		}
	}
	for key, value := range values {
		if err := s.repo.UpsertSetting(ctx, key, value); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("upsert setting %q", key))
		}
	}
	return nil
}

// Checkout projects the settings the cart flows read.
func (s *service) Checkout(ctx context.Context) (cart.CheckoutSettings, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return cart.CheckoutSettings{}, err
	}
	mode, err := enums.ParseCheckoutMode(settings[KeyCheckoutMode])
	if err != nil {
		mode = enums.CheckoutModeWhatsApp
	}
	return cart.CheckoutSettings{
		Mode:          mode,
		WhatsAppPhone: settings[KeyWhatsApp],
	}, nil
}

func (s *service) SaveNavigationItem(ctx context.Context, item *models.NavigationItem) (*models.NavigationItem, error) {
	if strings.TrimSpace(item.Label) == "" || strings.TrimSpace(item.Link) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "label and link are required")
	}
	saved, err := s.repo.SaveNavigationItem(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save navigation item")
	}
	return saved, nil
}

func (s *service) DeleteNavigationItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteNavigationItem(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete navigation item")
	}
	return nil
}

func (s *service) ListNavigation(ctx context.Context) ([]models.NavigationItem, error) {
	rows, err := s.repo.ListNavigation(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list navigation")
	}
	return rows, nil
}

func (s *service) SaveHeroSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, error) {
	if strings.TrimSpace(slide.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	saved, err := s.repo.SaveHeroSlide(ctx, slide)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save hero slide")
	}
	return saved, nil
}

func (s *service) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteHeroSlide(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete hero slide")
	}
	return nil
}

func (s *service) ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	rows, err := s.repo.ListHeroSlides(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list hero slides")
	}
	return rows, nil
}

func (s *service) SaveHomeSection(ctx context.Context, section *models.HomeSection) (*models.HomeSection, error) {
	if strings.TrimSpace(section.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if !section.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown section category %q", section.Category))
	}
	saved, err := s.repo.SaveHomeSection(ctx, section)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save home section")
	}
	return saved, nil
}

func (s *service) DeleteHomeSection(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteHomeSection(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete home section")
	}
	return nil
}

func (s *service) ListHomeSections(ctx context.Context) ([]models.HomeSection, error) {
	rows, err := s.repo.ListHomeSections(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list home sections")
	}
	return rows, nil
}

// SaveFooterColumn persists the column and replaces its links.
func (s *service) SaveFooterColumn(ctx context.Context, column *models.FooterColumn, links []models.FooterLink) (*models.FooterColumn, error) {
	if strings.TrimSpace(column.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	saved, err := s.repo.SaveFooterColumn(ctx, column)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save footer column")
	}
	if err := s.repo.ReplaceFooterLinks(ctx, saved.ID, links); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace footer links")
	}
	saved.Links = links
	return saved, nil
}

func (s *service) DeleteFooterColumn(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteFooterColumn(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete footer column")
	}
	return nil
}

func (s *service) ListFooterColumns(ctx context.Context) ([]models.FooterColumn, error) {
	rows, err := s.repo.ListFooterColumns(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list footer columns")
	}
	return rows, nil
}

func (s *service) FeatureFlags(ctx context.Context) (map[string]bool, error) {
	rows, err := s.repo.ListFeatureFlags(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list feature flags")
	}
	flags := make(map[string]bool, len(rows))
	for _, row := range rows {
		flags[row.Key] = row.Enabled
	}
	return flags, nil
}

func (s *service) SetFeatureFlag(ctx context.Context, key string, enabled bool) error {
	if strings.TrimSpace(key) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "flag key cannot be empty")
	}
	if err := s.repo.UpsertFeatureFlag(ctx, key, enabled); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert feature flag")
	}
	return nil
}

func settingsWithDefaults(rows []models.SiteSetting) map[string]string {
	out := make(map[string]string, len(defaultSettings)+len(rows))
	for key, value := range defaultSettings {
		out[key] = value
	}
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out
}
