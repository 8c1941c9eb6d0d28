package cron

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/logger"
)

type dailyRoller interface {
	RollupDay(ctx context.Context, day time.Time) (*models.AnalyticsDaily, error)
}

// AnalyticsRollupJobParams configure the daily visit rollup.
type AnalyticsRollupJobParams struct {
	Logger    *logger.Logger
	Analytics dailyRoller
}

// NewAnalyticsRollupJob builds the job that condenses raw page visits into
// per-day counters. Yesterday is finalized and today is refreshed so the
// history chart stays usable intraday.
func NewAnalyticsRollupJob(params AnalyticsRollupJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Analytics == nil {
		return nil, fmt.Errorf("analytics service required")
	}
	return &analyticsRollupJob{
		logg:      params.Logger,
		analytics: params.Analytics,
		now:       time.Now,
	}, nil
}

type analyticsRollupJob struct {
	logg      *logger.Logger
	analytics dailyRoller
	now       func() time.Time
}

func (j *analyticsRollupJob) Name() string { return "analytics-rollup" }

func (j *analyticsRollupJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	var errs error
	for _, day := range []time.Time{now.AddDate(0, 0, -1), now} {
		row, err := j.analytics.RollupDay(ctx, day)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rollup %s: %w", day.Format("2006-01-02"), err))
			continue
		}
		logCtx := j.logg.WithFields(ctx, map[string]any{
			"day":    row.Day.Format("2006-01-02"),
			"visits": row.Visits,
		})
		j.logg.Info(logCtx, "daily visits rolled up")
	}
	return errs
}
