package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
)

// Repository defines persistence operations for visit tracking and rollups.
type Repository interface {
	InsertVisit(ctx context.Context, visit *models.PageVisit) error
	DayStats(ctx context.Context, day time.Time) (*DayStats, error)
	UpsertDaily(ctx context.Context, row *models.AnalyticsDaily) error
	CountVisitsSince(ctx context.Context, since time.Time) (int64, error)
	ListDaily(ctx context.Context, from, to time.Time) ([]models.AnalyticsDaily, error)
	TopPages(ctx context.Context, since time.Time, limit int) ([]PageCount, error)
}

// DayStats is the aggregate of one day's raw visits.
type DayStats struct {
	Visits         int
	UniqueVisitors int
	Sessions       int
	MobileVisits   int
	DesktopVisits  int
}

// PageCount is one row of the most-visited pages breakdown.
type PageCount struct {
	PagePath string `json:"page_path"`
	Count    int64  `json:"count"`
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertVisit(ctx context.Context, visit *models.PageVisit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

// DayStats aggregates the raw visits of one calendar day.
func (r *repository) DayStats(ctx context.Context, day time.Time) (*DayStats, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var row struct {
		Visits         int
		UniqueVisitors int
		Sessions       int
		MobileVisits   int
		DesktopVisits  int
	}
	err := r.db.WithContext(ctx).
		Model(&models.PageVisit{}).
		Select(
			"COUNT(*) AS visits, "+
				"COUNT(DISTINCT visitor_id) AS unique_visitors, "+
				"COUNT(DISTINCT session_id) AS sessions, "+
				"COUNT(*) FILTER (WHERE device_type = ?) AS mobile_visits, "+
				"COUNT(*) FILTER (WHERE device_type = ?) AS desktop_visits",
			enums.DeviceTypeMobile, enums.DeviceTypeDesktop,
		).
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(&row).
		Error
	if err != nil {
		return nil, err
	}
	return &DayStats{
		Visits:         row.Visits,
		UniqueVisitors: row.UniqueVisitors,
		Sessions:       row.Sessions,
		MobileVisits:   row.MobileVisits,
		DesktopVisits:  row.DesktopVisits,
	}, nil
}

// UpsertDaily writes the rollup row for its day, replacing existing counters.
func (r *repository) UpsertDaily(ctx context.Context, row *models.AnalyticsDaily) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"visits", "unique_visitors", "sessions", "mobile_visits", "desktop_visits", "updated_at",
			}),
		}).
		Create(row).
		Error
}

func (r *repository) CountVisitsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PageVisit{}).
		Where("created_at >= ?", since).
		Count(&count).
		Error
	return count, err
}

func (r *repository) ListDaily(ctx context.Context, from, to time.Time) ([]models.AnalyticsDaily, error) {
	var rows []models.AnalyticsDaily
	err := r.db.WithContext(ctx).
		Where("day >= ? AND day < ?", from, to).
		Order("day ASC").
		Find(&rows).
		Error
	return rows, err
}

func (r *repository) TopPages(ctx context.Context, since time.Time, limit int) ([]PageCount, error) {
	var rows []PageCount
	err := r.db.WithContext(ctx).
		Model(&models.PageVisit{}).
		Select("page_path, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("page_path").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).
		Error
	return rows, err
}
