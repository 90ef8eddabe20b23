package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpMetrics "auraSync/app/echo-server/metrics"
	"auraSync/app/echo-server/router"
	"auraSync/business/analysis"
	"auraSync/business/bodyshape"
	"auraSync/business/catalog"
	"auraSync/business/onboarding"
	"auraSync/business/points"
	"auraSync/domain"
	"auraSync/internal/middleware"
	psqlRepo "auraSync/internal/repository/postgres"
	redisRepo "auraSync/internal/repository/redis"
	"auraSync/internal/rest"
	"auraSync/pkg/config"
	"auraSync/pkg/database"
	redisDB "auraSync/pkg/database/redis"
	"auraSync/pkg/logger"
	"auraSync/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting AuraSync", "version", cfg.App.Version)

	metrics.Init()
	httpMetrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.AutoMigrate(
		&domain.BodyProfile{},
		&domain.Outfit{},
		&domain.PointsTransaction{},
		&domain.PointsBalance{},
	); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	healthChecks := map[string]rest.HealthCheck{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}

	// Catalog cache is optional: without redis every listing reads postgres
	var outfitCache catalog.OutfitCache
	redisClient, err := redisDB.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, outfit cache disabled", "error", err.Error())
	} else {
		defer redisClient.Close()
		outfitCache = redisRepo.NewOutfitCache(redisClient, cfg.Redis.CatalogTTL)
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		logger.Info("Redis connected successfully")
	}

	// Init validate
	validate := validator.New()

	// Init repo
	profileRepo := psqlRepo.NewBodyProfileRepository(db)
	outfitRepo := psqlRepo.NewOutfitRepository(db)
	pointsRepo := psqlRepo.NewPointsRepository(db)

	// Init service
	bodyShapeService := bodyshape.NewService()
	pointsService := points.NewPointsService(pointsRepo)
	catalogService := catalog.NewCatalogService(outfitRepo, outfitCache)
	onboardingService := onboarding.NewOnboardingService(profileRepo, pointsService, bodyShapeService, onboarding.Config{
		PhotoConfidenceThreshold: cfg.Onboarding.PhotoConfidenceThreshold,
		PointsPerStep:            cfg.Onboarding.PointsPerStep,
	})

	// Init handler
	bodyShapeHandler := rest.NewBodyShapeHandler(bodyShapeService)
	onboardingHandler := rest.NewOnboardingHandler(onboardingService, analysis.NewParser(validate))
	outfitHandler := rest.NewOutfitHandler(catalogService)
	pointsHandler := rest.NewPointsHandler(pointsService)
	healthHandler := rest.NewHealthHandler(healthChecks)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(httpMetrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", healthHandler.Healthz)

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupBodyShapeRoutes(api, bodyShapeHandler)
	router.SetupOnboardingRoutes(api, onboardingHandler, authRequired)
	router.SetupOutfitRoutes(api, outfitHandler, authRequired, adminOnly)
	router.SetupPointsRoutes(api, pointsHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
