package banners

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

// repository is the persistence surface the service depends on.
type repository interface {
	Create(ctx context.Context, banner *models.Banner) (*models.Banner, error)
	Update(ctx context.Context, banner *models.Banner) (*models.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	ListAll(ctx context.Context) ([]models.Banner, error)
	ListActiveByPlacement(ctx context.Context, placement enums.BannerPlacement) ([]models.Banner, error)
}

// Service exposes banner scheduling and administration.
type Service interface {
	Visible(ctx context.Context, placement enums.BannerPlacement, now time.Time) ([]models.Banner, error)
	Popup(ctx context.Context, now time.Time) (*models.Banner, error)
	EligibleCounts(ctx context.Context, now time.Time) (map[enums.BannerPlacement]int, error)
	List(ctx context.Context) ([]models.Banner, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	Create(ctx context.Context, input SaveInput) (*models.Banner, error)
	Update(ctx context.Context, id uuid.UUID, input SaveInput) (*models.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaveInput carries a banner create or update.
type SaveInput struct {
	ImageURL  string
	LinkURL   *string
	Placement enums.BannerPlacement
	Schedule  Schedule
	IsActive  bool
}

type service struct {
	repo repository
}

// NewService builds the banner service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("banners repository required")
	}
	return &service{repo: repo}, nil
}

// Visible returns the banners eligible for a placement at the given instant.
// Every call reads fresh rows; there is no cache to go stale.
func (s *service) Visible(ctx context.Context, placement enums.BannerPlacement, now time.Time) ([]models.Banner, error) {
	if !placement.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown placement %q", placement))
	}
	rows, err := s.repo.ListActiveByPlacement(ctx, placement)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list banners")
	}

	eligible := make([]models.Banner, 0, len(rows))
	for _, row := range rows {
		if EligibleAt(row, placement, now) {
			eligible = append(eligible, row)
		}
	}
	return eligible, nil
}

// Popup returns the most recent eligible popup banner, or nil when none
// qualifies. Dismissal is client session state; the id in the response is
// what the client keys its suppression on.
func (s *service) Popup(ctx context.Context, now time.Time) (*models.Banner, error) {
	eligible, err := s.Visible(ctx, enums.BannerPlacementPopup, now)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	// Rows arrive newest first.
	return &eligible[0], nil
}

// EligibleCounts computes the number of eligible banners per placement,
// feeding the worker's gauges.
func (s *service) EligibleCounts(ctx context.Context, now time.Time) (map[enums.BannerPlacement]int, error) {
	counts := make(map[enums.BannerPlacement]int, len(enums.BannerPlacements()))
	for _, placement := range enums.BannerPlacements() {
		eligible, err := s.Visible(ctx, placement, now)
		if err != nil {
			return nil, err
		}
		counts[placement] = len(eligible)
	}
	return counts, nil
}

// List returns every banner for the admin grid.
func (s *service) List(ctx context.Context) ([]models.Banner, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list banners")
	}
	return rows, nil
}

// Get loads one banner.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	banner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banner")
	}
	return banner, nil
}

// Create validates and persists a new banner.
func (s *service) Create(ctx context.Context, input SaveInput) (*models.Banner, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	banner := &models.Banner{
		ImageURL:     input.ImageURL,
		LinkURL:      input.LinkURL,
		Placement:    input.Placement,
		DaysOfWeek:   input.Schedule.DaysOfWeek,
		StartTime:    input.Schedule.StartTime,
		EndTime:      input.Schedule.EndTime,
		AlwaysActive: input.Schedule.AlwaysActive,
		IsActive:     input.IsActive,
	}
	created, err := s.repo.Create(ctx, banner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert banner")
	}
	return created, nil
}

// Update validates and saves changes to an existing banner.
func (s *service) Update(ctx context.Context, id uuid.UUID, input SaveInput) (*models.Banner, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	banner, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	banner.ImageURL = input.ImageURL
	banner.LinkURL = input.LinkURL
	banner.Placement = input.Placement
	banner.DaysOfWeek = input.Schedule.DaysOfWeek
	banner.StartTime = input.Schedule.StartTime
	banner.EndTime = input.Schedule.EndTime
	banner.AlwaysActive = input.Schedule.AlwaysActive
	banner.IsActive = input.IsActive

	updated, err := s.repo.Update(ctx, banner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update banner")
	}
	return updated, nil
}

// Delete removes a banner.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete banner")
	}
	return nil
}

func validateSaveInput(input SaveInput) error {
	if input.ImageURL == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	if !input.Placement.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown placement %q", input.Placement))
	}
	return input.Schedule.Validate()
}
