package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pyperpy/pyper-backend/internal/orders"
	product "github.com/pyperpy/pyper-backend/internal/products"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

// adminPathPrefix marks the backoffice routes that are never tracked.
const adminPathPrefix = "/admin"

type orderCounter interface {
	DashboardCounts(ctx context.Context, now time.Time) (*orders.DashboardCounts, error)
}

type catalogCounter interface {
	CountActive(ctx context.Context) (int64, error)
	TopCategories(ctx context.Context, limit int) ([]product.CategoryCount, error)
}

// Service records storefront visits and assembles the admin dashboard.
type Service interface {
	Track(ctx context.Context, input TrackInput) error
	RollupDay(ctx context.Context, day time.Time) (*models.AnalyticsDaily, error)
	Dashboard(ctx context.Context, now time.Time) (*Dashboard, error)
	History(ctx context.Context, now time.Time, days int) ([]models.AnalyticsDaily, error)
}

// TrackInput is one page view reported by the storefront.
type TrackInput struct {
	VisitorID    string
	SessionID    string
	PagePath     string
	Referrer     *string
	UserAgent    string
	IsNewVisitor bool
	IsNewSession bool
}

// Dashboard bundles the admin home page counters.
type Dashboard struct {
	PendingOrders  int64                   `json:"pending_orders"`
	OrdersToday    int64                   `json:"orders_today"`
	ActiveProducts int64                   `json:"active_products"`
	VisitsToday    int64                   `json:"visits_today"`
	TopCategories  []product.CategoryCount `json:"top_categories"`
	TopPages       []PageCount             `json:"top_pages"`
}

type service struct {
	repo    Repository
	orders  orderCounter
	catalog catalogCounter
}

// NewService constructs an analytics service instance.
func NewService(repo Repository, orderSvc orderCounter, catalog catalogCounter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("analytics repository required")
	}
	if orderSvc == nil {
		return nil, fmt.Errorf("order counter required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog counter required")
	}
	return &service{repo: repo, orders: orderSvc, catalog: catalog}, nil
}

// Track stores one visit. Backoffice paths are silently dropped so admin
// navigation never skews the numbers.
func (s *service) Track(ctx context.Context, input TrackInput) error {
	path := strings.TrimSpace(input.PagePath)
	if path == "" {
		path = "/"
	}
	if strings.HasPrefix(path, adminPathPrefix) {
		return nil
	}
	if strings.TrimSpace(input.VisitorID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "visitor_id is required")
	}
	if strings.TrimSpace(input.SessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session_id is required")
	}

	visit := &models.PageVisit{
		VisitorID:    input.VisitorID,
		SessionID:    input.SessionID,
		PagePath:     path,
		Referrer:     input.Referrer,
		DeviceType:   DetectDevice(input.UserAgent),
		IsNewVisitor: input.IsNewVisitor,
		IsNewSession: input.IsNewSession,
	}
	if err := s.repo.InsertVisit(ctx, visit); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert visit")
	}
	return nil
}

// RollupDay condenses one day's raw visits into the analytics_daily row.
// Reprocessing a day overwrites the previous rollup.
func (s *service) RollupDay(ctx context.Context, day time.Time) (*models.AnalyticsDaily, error) {
	stats, err := s.repo.DayStats(ctx, day)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate day visits")
	}

	row := &models.AnalyticsDaily{
		Day:            time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		Visits:         stats.Visits,
		UniqueVisitors: stats.UniqueVisitors,
		Sessions:       stats.Sessions,
		MobileVisits:   stats.MobileVisits,
		DesktopVisits:  stats.DesktopVisits,
	}
	if err := s.repo.UpsertDaily(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert daily rollup")
	}
	return row, nil
}

// Dashboard assembles the admin home counters from orders, catalog, and
// visits.
func (s *service) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	orderCounts, err := s.orders.DashboardCounts(ctx, now)
	if err != nil {
		return nil, err
	}
	activeProducts, err := s.catalog.CountActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count products")
	}
	topCategories, err := s.catalog.TopCategories(ctx, 5)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "top categories")
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	visitsToday, err := s.repo.CountVisitsSince(ctx, startOfDay)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count visits")
	}
	topPages, err := s.repo.TopPages(ctx, startOfDay.AddDate(0, 0, -30), 5)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "top pages")
	}

	return &Dashboard{
		PendingOrders:  orderCounts.Pending,
		OrdersToday:    orderCounts.Today,
		ActiveProducts: activeProducts,
		VisitsToday:    visitsToday,
		TopCategories:  topCategories,
		TopPages:       topPages,
	}, nil
}

// History returns up to days of rollups ending today.
func (s *service) History(ctx context.Context, now time.Time, days int) ([]models.AnalyticsDaily, error) {
	if days <= 0 {
		days = 30
	}
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	from := to.AddDate(0, 0, -days)
	rows, err := s.repo.ListDaily(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list daily rollups")
	}
	return rows, nil
}
