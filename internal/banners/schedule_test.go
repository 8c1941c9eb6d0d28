package banners

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

// Wednesday 2026-03-11, used throughout so weekday checks are deterministic.
func wednesdayAt(clock string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04:05", "2026-03-11 "+clock)
	if err != nil {
		panic(err)
	}
	return ts
}

func scheduledBanner(start, end string, days ...string) models.Banner {
	if len(days) == 0 {
		days = []string{"Wednesday"}
	}
	return models.Banner{
		ImageURL:   "https://cdn.pyper.com.py/banner.jpg",
		Placement:  enums.BannerPlacementHomeTop,
		DaysOfWeek: days,
		StartTime:  start,
		EndTime:    end,
		IsActive:   true,
	}
}

func TestParseClock(t *testing.T) {
	secs, err := ParseClock("08:30:15")
	require.NoError(t, err)
	assert.Equal(t, 8*3600+30*60+15, secs)

	_, err = ParseClock("24:00:00")
	assert.Error(t, err)
	_, err = ParseClock("8:30")
	assert.Error(t, err)
	_, err = ParseClock("")
	assert.Error(t, err)
}

func TestFormatClockRoundTrips(t *testing.T) {
	for _, value := range []string{"00:00:00", "09:05:07", "23:59:59"} {
		secs, err := ParseClock(value)
		require.NoError(t, err)
		assert.Equal(t, value, FormatClock(secs))
	}
}

func TestEligibleAtWindowIsInclusive(t *testing.T) {
	banner := scheduledBanner("08:00:00", "18:00:00")

	assert.False(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("07:59:59")))
	assert.True(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("08:00:00")))
	assert.True(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("12:30:00")))
	assert.True(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("18:00:00")))
	assert.False(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("18:00:01")))
}

func TestEligibleAtRequiresWeekdayMatch(t *testing.T) {
	banner := scheduledBanner("00:00:00", "23:59:59", "Monday", "Friday")
	assert.False(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("12:00:00")))

	banner.DaysOfWeek = append(banner.DaysOfWeek, "Wednesday")
	assert.True(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("12:00:00")))
}

func TestEligibleAtAlwaysActiveOverridesWindow(t *testing.T) {
	banner := scheduledBanner("08:00:00", "09:00:00")
	banner.AlwaysActive = true

	// Out of window but always_active: still shown on a listed day.
	assert.True(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("22:00:00")))

	// always_active never overrides the weekday filter.
	banner.DaysOfWeek = []string{"Sunday"}
	assert.False(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("22:00:00")))
}

func TestEligibleAtInactiveOrWrongPlacement(t *testing.T) {
	banner := scheduledBanner("00:00:00", "23:59:59")

	assert.False(t, EligibleAt(banner, enums.BannerPlacementSidebar, wednesdayAt("12:00:00")))

	banner.IsActive = false
	assert.False(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("12:00:00")))
}

func TestEligibleAtInvertedStoredWindowNeverActive(t *testing.T) {
	// Rows written before save-time validation may carry start > end.
	banner := scheduledBanner("22:00:00", "06:00:00")

	for _, clock := range []string{"00:00:00", "05:59:59", "12:00:00", "22:00:00", "23:30:00"} {
		assert.False(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt(clock)), "at %s", clock)
	}
}

func TestEligibleAtUnparseableTimesFailClosed(t *testing.T) {
	banner := scheduledBanner("not-a-time", "18:00:00")
	assert.False(t, EligibleAt(banner, enums.BannerPlacementHomeTop, wednesdayAt("12:00:00")))
}

func TestScheduleValidate(t *testing.T) {
	valid := Schedule{
		DaysOfWeek: []string{"Monday", "Sunday"},
		StartTime:  "08:00:00",
		EndTime:    "18:00:00",
	}
	assert.NoError(t, valid.Validate())

	t.Run("rejects inverted window", func(t *testing.T) {
		s := valid
		s.StartTime = "20:00:00"
		err := s.Validate()
		require.NotNil(t, pkgerrors.As(err))
		assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	})

	t.Run("rejects unknown weekday", func(t *testing.T) {
		s := valid
		s.DaysOfWeek = []string{"Lunes"}
		err := s.Validate()
		require.NotNil(t, pkgerrors.As(err))
		assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		s := valid
		s.EndTime = "25:00:00"
		assert.Error(t, s.Validate())
	})
}
