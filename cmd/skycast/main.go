package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "skycast/internal/api/http"
	"skycast/internal/config"
	"skycast/internal/dashboard"
	"skycast/internal/geo"
	"skycast/internal/httpclient"
	"skycast/internal/prefs"
	"skycast/internal/scheduler"
	"skycast/internal/search"
	"skycast/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound upstream calls.
	client := httpclient.New(&http.Client{
		Timeout: cfg.HTTPTimeout,
	})

	// Upstream clients. The best-effort endpoints get circuit breakers.
	fetcher := weather.NewClient(
		client,
		httpclient.NewGuarded(client, "air-quality"),
		cfg.ForecastBaseURL,
		cfg.AirQualityBaseURL,
	)
	searchClient := geo.NewSearchClient(client, cfg.GeocodingBaseURL)
	resolver := geo.NewReverseClient(httpclient.NewGuarded(client, "reverse-geo"), cfg.ReverseGeoBaseURL)

	var locator geo.Locator
	if cfg.GeolocationEnabled {
		locator = geo.NewIPLocator(httpclient.NewGuarded(client, "ip-locate"), cfg.IPLocateURL)
	}

	// Unit preference, persisted across restarts.
	prefsStore := prefs.Open(cfg.PrefsPath)

	// Dashboard controller and debounced search session.
	controller := dashboard.NewController(dashboard.Options{
		Fetcher:      fetcher,
		Resolver:     resolver,
		Locator:      locator,
		DefaultCoord: cfg.DefaultCoord,
		DefaultLabel: cfg.DefaultLabel,
	})
	session := search.NewSession(searchClient.Search, cfg.SearchDebounce)
	defer session.Close()

	// Initial location resolution runs in the background; the dashboard
	// reports a loading state until it settles.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		controller.Resolve(ctx)
	}()

	// Periodic refresh of the active location.
	sched := scheduler.New(controller, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "skycast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
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

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "skycast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Deps{
		Controller: controller,
		Search:     searchClient,
		Session:    session,
		Prefs:      prefsStore,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
