package sitecfg

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	var rows []models.SiteSetting
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

// UpsertSetting writes the value for a key, inserting the row when absent.
func (r *repository) UpsertSetting(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&models.SiteSetting{Key: key, Value: value}).
		Error
}

func (r *repository) ListNavigation(ctx context.Context, activeOnly bool) ([]models.NavigationItem, error) {
	var rows []models.NavigationItem
	qb := r.db.WithContext(ctx)
	if activeOnly {
		qb = qb.Where("active = ?", true)
	}
	err := qb.Order("position ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) SaveNavigationItem(ctx context.Context, item *models.NavigationItem) (*models.NavigationItem, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) DeleteNavigationItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.NavigationItem{}).Error
}

func (r *repository) ListHeroSlides(ctx context.Context, activeOnly bool) ([]models.HeroSlide, error) {
	var rows []models.HeroSlide
	qb := r.db.WithContext(ctx)
	if activeOnly {
		qb = qb.Where("active = ?", true)
	}
	err := qb.Order("position ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) SaveHeroSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, error) {
	if err := r.db.WithContext(ctx).Save(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

func (r *repository) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HeroSlide{}).Error
}

func (r *repository) ListHomeSections(ctx context.Context, activeOnly bool) ([]models.HomeSection, error) {
	var rows []models.HomeSection
	qb := r.db.WithContext(ctx)
	if activeOnly {
		qb = qb.Where("active = ?", true)
	}
	err := qb.Order("position ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) SaveHomeSection(ctx context.Context, section *models.HomeSection) (*models.HomeSection, error) {
	if err := r.db.WithContext(ctx).Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

func (r *repository) DeleteHomeSection(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HomeSection{}).Error
}

func (r *repository) ListFooterColumns(ctx context.Context, activeOnly bool) ([]models.FooterColumn, error) {
	var rows []models.FooterColumn
	qb := r.db.WithContext(ctx).
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	if activeOnly {
		qb = qb.Where("active = ?", true)
	}
	err := qb.Order("position ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) SaveFooterColumn(ctx context.Context, column *models.FooterColumn) (*models.FooterColumn, error) {
	if err := r.db.WithContext(ctx).Omit("Links").Save(column).Error; err != nil {
		return nil, err
	}
	return column, nil
}

// ReplaceFooterLinks swaps the full link set of a column.
func (r *repository) ReplaceFooterLinks(ctx context.Context, columnID uuid.UUID, links []models.FooterLink) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("column_id = ?", columnID).Delete(&models.FooterLink{}).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	for i := range links {
		links[i].ColumnID = columnID
	}
	return tx.Create(&links).Error
}

func (r *repository) DeleteFooterColumn(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FooterColumn{}).Error
}

func (r *repository) ListFeatureFlags(ctx context.Context) ([]models.FeatureFlag, error) {
	var rows []models.FeatureFlag
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *repository) UpsertFeatureFlag(ctx context.Context, key string, enabled bool) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
		}).
		Create(&models.FeatureFlag{Key: key, Enabled: enabled}).
		Error
}
