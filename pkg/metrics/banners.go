package metrics

import "github.com/prometheus/client_golang/prometheus"

// BannerMetrics exposes per-placement gauges of currently eligible banners.
// The cron worker refreshes them on the same 30s cadence the storefront polls.
type BannerMetrics struct {
	eligible *prometheus.GaugeVec
}

// NewBannerMetrics registers the banner gauges on the provided registerer.
func NewBannerMetrics(reg prometheus.Registerer) *BannerMetrics {
	if reg == nil {
		return &BannerMetrics{}
	}
	eligible := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "banners_eligible",
		Help: "Banners currently eligible for display, by placement.",
	}, []string{"placement"})
	reg.MustRegister(eligible)
	return &BannerMetrics{eligible: eligible}
}

// SetEligible records the eligible banner count for a placement.
func (b *BannerMetrics) SetEligible(placement string, count int) {
	if b == nil || b.eligible == nil {
		return
	}
	b.eligible.WithLabelValues(normalizeLabel(placement)).Set(float64(count))
}
