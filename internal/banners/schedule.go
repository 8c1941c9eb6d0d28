package banners

import (
	"fmt"
	"time"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

// weekdayNames holds the canonical stored values, Monday first to match the
// admin panel's day picker.
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ParseClock converts a zero-padded HH:MM:SS string into seconds of day.
func ParseClock(value string) (int, error) {
	var h, m, s int
	if _, err := fmt.Sscanf(value, "%2d:%2d:%2d", &h, &m, &s); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", value, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	return h*3600 + m*60 + s, nil
}

// FormatClock renders seconds of day back to the zero-padded wire format.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}

// secondsOfDay projects a wall-clock instant onto the banner time axis.
func secondsOfDay(now time.Time) int {
	return now.Hour()*3600 + now.Minute()*60 + now.Second()
}

// Schedule is the display window of a banner.
type Schedule struct {
	DaysOfWeek   []string
	StartTime    string
	EndTime      string
	AlwaysActive bool
}

// Validate rejects malformed schedules at save time. Inverted windows
// (start after end) are refused: overnight scheduling is expressed as two
// banners, one per day.
func (s Schedule) Validate() error {
	for _, day := range s.DaysOfWeek {
		if !isWeekdayName(day) {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown weekday %q", day))
		}
	}

	start, err := ParseClock(s.StartTime)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid start_time")
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid end_time")
	}
	if start > end {
		return pkgerrors.New(pkgerrors.CodeValidation, "start_time must not be after end_time")
	}
	return nil
}

func isWeekdayName(day string) bool {
	for _, name := range weekdayNames {
		if name == day {
			return true
		}
	}
	return false
}

// EligibleAt reports whether the banner should render in the given placement
// at the given instant. The window is inclusive on both ends. Rows stored
// with an inverted window predate save-time validation and are treated as
// never active.
func EligibleAt(b models.Banner, placement enums.BannerPlacement, now time.Time) bool {
	if !b.IsActive || b.Placement != placement {
		return false
	}
	if !containsDay(b.DaysOfWeek, now.Weekday().String()) {
		return false
	}
	if b.AlwaysActive {
		return true
	}

	start, err := ParseClock(b.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(b.EndTime)
	if err != nil {
		return false
	}
	current := secondsOfDay(now)
	return start <= current && current <= end
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
