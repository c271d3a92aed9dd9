package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/JavaFXpert/fish-bite-predictor/internal/advisor"
	httpapi "github.com/JavaFXpert/fish-bite-predictor/internal/api/http"
	"github.com/JavaFXpert/fish-bite-predictor/internal/api/metricsapi"
	"github.com/JavaFXpert/fish-bite-predictor/internal/config"
	"github.com/JavaFXpert/fish-bite-predictor/internal/geocode"
	"github.com/JavaFXpert/fish-bite-predictor/internal/observability"
	"github.com/JavaFXpert/fish-bite-predictor/internal/scheduler"
	"github.com/JavaFXpert/fish-bite-predictor/internal/session"
	"github.com/JavaFXpert/fish-bite-predictor/internal/species"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather/providers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// The species catalog is static data; a violated invariant is a build
	// defect caught here at startup.
	if err := species.Validate(); err != nil {
		log.Error("species catalog invalid", "error", err)
		os.Exit(1)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	forward := geocode.NewNominatimClient(httpClient, cfg.GeocodeBaseURL, cfg.GeocodeCountries, metrics)
	reverse := geocode.NewBigDataCloudClient(httpClient, cfg.ReverseGeocodeBaseURL, metrics)
	geocoder := geocode.NewCached(geocode.Combine(forward, reverse), cfg.GeocodeCacheSize, metrics)

	provider := providers.NewOpenMeteoProvider(httpClient, cfg.WeatherBaseURL, cfg.WeatherTimezone, metrics)

	store := session.NewStore(cfg.SessionMax, cfg.SessionMaxAge)
	service := advisor.NewService(store, provider, geocoder, cfg.Timezone(), log, metrics)

	sched := scheduler.New(service, cfg.RefreshInterval, log)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "fish-bite-predictor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response.
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "fish-bite-predictor",
		})
	})

	httpapi.RegisterRoutes(app, service)

	metricsSrv := metricsapi.NewServer(cfg.MetricsAddr, log)
	go func() {
		if err := metricsSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()

	log.Info("fish-bite-predictor started", "port", cfg.Port, "timezone", cfg.WeatherTimezone)

	// Wait for termination signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("metrics server shutdown error", "error", err)
	}

	log.Info("shutdown complete")
}
