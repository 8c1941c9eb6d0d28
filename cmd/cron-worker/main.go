package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pyperpy/pyper-backend/internal/analytics"
	"github.com/pyperpy/pyper-backend/internal/banners"
	"github.com/pyperpy/pyper-backend/internal/cron"
	"github.com/pyperpy/pyper-backend/internal/orders"
	product "github.com/pyperpy/pyper-backend/internal/products"
	"github.com/pyperpy/pyper-backend/pkg/config"
	"github.com/pyperpy/pyper-backend/pkg/db"
	"github.com/pyperpy/pyper-backend/pkg/logger"
	"github.com/pyperpy/pyper-backend/pkg/metrics"
	"github.com/pyperpy/pyper-backend/pkg/migrate"
	"github.com/pyperpy/pyper-backend/pkg/redis"
)

const lockKeyFormat = "pyper:cron-worker:lock:%s:%s"

// The gauge job runs on a short cadence, so its lock must expire well
// before the next tick instead of the day-scale default.
const bannerGaugeLockTTL = 5 * time.Minute

func main() {
	logg := logger.New(logger.Options{ServiceName: "cron-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "cron-worker"

	logg = logger.New(logger.Options{
		ServiceName: "cron-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	bannersService, err := banners.NewService(banners.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create banners service", err)
		os.Exit(1)
	}

	productRepo := product.NewRepository(dbClient.DB())
	ordersService, err := orders.NewService(orders.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}
	analyticsService, err := analytics.NewService(analytics.NewRepository(dbClient.DB()), ordersService, productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	cronMetrics := metrics.NewCronJobMetrics(prometheus.DefaultRegisterer)
	bannerMetrics := metrics.NewBannerMetrics(prometheus.DefaultRegisterer)

	gaugeJob, err := cron.NewBannerGaugeJob(cron.BannerGaugeJobParams{
		Logger:  logg,
		Banners: bannersService,
		Metrics: bannerMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create banner gauge job", err)
		os.Exit(1)
	}
	rollupJob, err := cron.NewAnalyticsRollupJob(cron.AnalyticsRollupJobParams{
		Logger:    logg,
		Analytics: analyticsService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics rollup job", err)
		os.Exit(1)
	}

	gaugeLock, err := cron.NewRedisLock(redisClient, fmt.Sprintf(lockKeyFormat, cfg.App.Env, "banner-gauge"), bannerGaugeLockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create banner gauge lock", err)
		os.Exit(1)
	}
	gaugeService, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(gaugeJob),
		Lock:     gaugeLock,
		Metrics:  cronMetrics,
		Interval: cfg.Cron.BannerGaugeInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create banner gauge scheduler", err)
		os.Exit(1)
	}

	rollupLock, err := cron.NewRedisLock(redisClient, fmt.Sprintf(lockKeyFormat, cfg.App.Env, "analytics-rollup"), 0)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics rollup lock", err)
		os.Exit(1)
	}
	rollupService, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(rollupJob),
		Lock:     rollupLock,
		Metrics:  cronMetrics,
		Interval: cfg.Cron.RollupInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics rollup scheduler", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting cron worker")

	metricsServer := &http.Server{Addr: ":" + cfg.App.Port, Handler: promhttp.Handler()}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "metrics server stopped unexpectedly", err)
		}
	}()
	defer metricsServer.Close()

	var wg sync.WaitGroup
	for _, service := range []*cron.Service{gaugeService, rollupService} {
		wg.Add(1)
		go func(service *cron.Service) {
			defer wg.Done()
			if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logg.Error(ctx, "cron scheduler stopped unexpectedly", err)
			}
		}(service)
	}
	wg.Wait()

	logg.Info(ctx, "cron worker shutting down gracefully")
}
