package banners

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

type stubBannersRepo struct {
	rows                  []models.Banner
	created               *models.Banner
	updated               *models.Banner
	deleted               []uuid.UUID
	findByID              func(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	listActiveByPlacement func(ctx context.Context, placement enums.BannerPlacement) ([]models.Banner, error)
}

func (s *stubBannersRepo) Create(ctx context.Context, banner *models.Banner) (*models.Banner, error) {
	if banner.ID == uuid.Nil {
		banner.ID = uuid.New()
	}
	s.created = banner
	return banner, nil
}

func (s *stubBannersRepo) Update(ctx context.Context, banner *models.Banner) (*models.Banner, error) {
	s.updated = banner
	return banner, nil
}

func (s *stubBannersRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubBannersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBannersRepo) ListAll(ctx context.Context) ([]models.Banner, error) {
	return s.rows, nil
}

func (s *stubBannersRepo) ListActiveByPlacement(ctx context.Context, placement enums.BannerPlacement) ([]models.Banner, error) {
	if s.listActiveByPlacement != nil {
		return s.listActiveByPlacement(ctx, placement)
	}
	var out []models.Banner
	for _, row := range s.rows {
		if row.IsActive && row.Placement == placement {
			out = append(out, row)
		}
	}
	return out, nil
}

func newTestService(t *testing.T, repo *stubBannersRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}

func TestVisibleFiltersBySchedule(t *testing.T) {
	inWindow := scheduledBanner("08:00:00", "18:00:00")
	inWindow.ID = uuid.New()
	outOfWindow := scheduledBanner("19:00:00", "21:00:00")
	outOfWindow.ID = uuid.New()
	wrongDay := scheduledBanner("00:00:00", "23:59:59", "Sunday")
	wrongDay.ID = uuid.New()

	repo := &stubBannersRepo{rows: []models.Banner{inWindow, outOfWindow, wrongDay}}
	svc := newTestService(t, repo)

	visible, err := svc.Visible(context.Background(), enums.BannerPlacementHomeTop, wednesdayAt("12:00:00"))
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, inWindow.ID, visible[0].ID)
}

func TestVisibleRejectsUnknownPlacement(t *testing.T) {
	svc := newTestService(t, &stubBannersRepo{})

	_, err := svc.Visible(context.Background(), enums.BannerPlacement("footer"), wednesdayAt("12:00:00"))
	require.NotNil(t, pkgerrors.As(err))
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestPopupReturnsNewestEligible(t *testing.T) {
	newest := scheduledBanner("00:00:00", "23:59:59")
	newest.ID = uuid.New()
	newest.Placement = enums.BannerPlacementPopup
	older := scheduledBanner("00:00:00", "23:59:59")
	older.ID = uuid.New()
	older.Placement = enums.BannerPlacementPopup

	// Repo returns newest first.
	repo := &stubBannersRepo{rows: []models.Banner{newest, older}}
	svc := newTestService(t, repo)

	popup, err := svc.Popup(context.Background(), wednesdayAt("12:00:00"))
	require.NoError(t, err)
	require.NotNil(t, popup)
	assert.Equal(t, newest.ID, popup.ID)
}

func TestPopupReturnsNilWhenNoneEligible(t *testing.T) {
	hidden := scheduledBanner("08:00:00", "09:00:00")
	hidden.Placement = enums.BannerPlacementPopup

	repo := &stubBannersRepo{rows: []models.Banner{hidden}}
	svc := newTestService(t, repo)

	popup, err := svc.Popup(context.Background(), wednesdayAt("22:00:00"))
	require.NoError(t, err)
	assert.Nil(t, popup)
}

func TestEligibleCountsCoversEveryPlacement(t *testing.T) {
	carousel := scheduledBanner("00:00:00", "23:59:59")
	carousel.Placement = enums.BannerPlacementCarousel

	repo := &stubBannersRepo{rows: []models.Banner{carousel}}
	svc := newTestService(t, repo)

	counts, err := svc.EligibleCounts(context.Background(), wednesdayAt("12:00:00"))
	require.NoError(t, err)
	assert.Len(t, counts, len(enums.BannerPlacements()))
	assert.Equal(t, 1, counts[enums.BannerPlacementCarousel])
	assert.Equal(t, 0, counts[enums.BannerPlacementPopup])
}

func TestCreateValidatesSchedule(t *testing.T) {
	repo := &stubBannersRepo{}
	svc := newTestService(t, repo)

	input := SaveInput{
		ImageURL:  "https://cdn.pyper.com.py/banner.jpg",
		Placement: enums.BannerPlacementHomeTop,
		Schedule: Schedule{
			DaysOfWeek: []string{"Monday"},
			StartTime:  "18:00:00",
			EndTime:    "08:00:00",
		},
		IsActive: true,
	}
	_, err := svc.Create(context.Background(), input)
	require.NotNil(t, pkgerrors.As(err))
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	assert.Nil(t, repo.created)

	input.Schedule.StartTime = "08:00:00"
	input.Schedule.EndTime = "18:00:00"
	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "08:00:00", created.StartTime)
}

func TestCreateRequiresImageAndPlacement(t *testing.T) {
	svc := newTestService(t, &stubBannersRepo{})

	_, err := svc.Create(context.Background(), SaveInput{Placement: enums.BannerPlacementHomeTop})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), SaveInput{
		ImageURL:  "https://cdn.pyper.com.py/banner.jpg",
		Placement: enums.BannerPlacement("nope"),
	})
	assert.Error(t, err)
}

func TestUpdateLoadsAndSaves(t *testing.T) {
	existing := scheduledBanner("08:00:00", "18:00:00")
	existing.ID = uuid.New()

	repo := &stubBannersRepo{rows: []models.Banner{existing}}
	svc := newTestService(t, repo)

	updated, err := svc.Update(context.Background(), existing.ID, SaveInput{
		ImageURL:  "https://cdn.pyper.com.py/nuevo.jpg",
		Placement: enums.BannerPlacementSidebar,
		Schedule: Schedule{
			DaysOfWeek:   []string{"Saturday"},
			StartTime:    "09:00:00",
			EndTime:      "13:00:00",
			AlwaysActive: true,
		},
		IsActive: false,
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, enums.BannerPlacementSidebar, updated.Placement)
	assert.True(t, updated.AlwaysActive)
	assert.False(t, updated.IsActive)
	require.NotNil(t, repo.updated)
}

func TestUpdateMissingBannerIsNotFound(t *testing.T) {
	svc := newTestService(t, &stubBannersRepo{})

	_, err := svc.Update(context.Background(), uuid.New(), SaveInput{
		ImageURL:  "https://cdn.pyper.com.py/banner.jpg",
		Placement: enums.BannerPlacementHomeTop,
		Schedule: Schedule{
			DaysOfWeek: []string{"Monday"},
			StartTime:  "00:00:00",
			EndTime:    "23:59:59",
		},
	})
	require.NotNil(t, pkgerrors.As(err))
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestDeleteDelegates(t *testing.T) {
	repo := &stubBannersRepo{}
	svc := newTestService(t, repo)

	id := uuid.New()
	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, []uuid.UUID{id}, repo.deleted)
}
