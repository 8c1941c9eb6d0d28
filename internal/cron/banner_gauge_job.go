package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/pyperpy/pyper-backend/pkg/enums"
	"github.com/pyperpy/pyper-backend/pkg/logger"
	"github.com/pyperpy/pyper-backend/pkg/metrics"
)

type eligibleCounter interface {
	EligibleCounts(ctx context.Context, now time.Time) (map[enums.BannerPlacement]int, error)
}

// BannerGaugeJobParams configure the banner eligibility gauge refresher.
type BannerGaugeJobParams struct {
	Logger  *logger.Logger
	Banners eligibleCounter
	Metrics *metrics.BannerMetrics
}

// NewBannerGaugeJob builds the job that keeps the per-placement eligible
// banner gauges current. Schedules flip banners on and off without any
// write, so the gauges have to be recomputed on a clock.
func NewBannerGaugeJob(params BannerGaugeJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Banners == nil {
		return nil, fmt.Errorf("banner service required")
	}
	if params.Metrics == nil {
		return nil, fmt.Errorf("banner metrics required")
	}
	return &bannerGaugeJob{
		logg:    params.Logger,
		banners: params.Banners,
		metrics: params.Metrics,
		now:     time.Now,
	}, nil
}

type bannerGaugeJob struct {
	logg    *logger.Logger
	banners eligibleCounter
	metrics *metrics.BannerMetrics
	now     func() time.Time
}

func (j *bannerGaugeJob) Name() string { return "banner-gauge" }

func (j *bannerGaugeJob) Run(ctx context.Context) error {
	counts, err := j.banners.EligibleCounts(ctx, j.now())
	if err != nil {
		return fmt.Errorf("compute eligible banners: %w", err)
	}
	total := 0
	for placement, count := range counts {
		j.metrics.SetEligible(placement.String(), count)
		total += count
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{"eligible_total": total})
	j.logg.Info(logCtx, "banner gauges refreshed")
	return nil
}
