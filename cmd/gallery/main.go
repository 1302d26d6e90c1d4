package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"landmark-gallery/internal/api"
	"landmark-gallery/internal/bundle"
	"landmark-gallery/internal/config"
	"landmark-gallery/internal/imagestore"
	"landmark-gallery/internal/logger"
	"landmark-gallery/internal/models"
	"landmark-gallery/internal/repository"
	"landmark-gallery/internal/services"
	"landmark-gallery/internal/views"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.WithError(err).Fatal("Invalid configuration")
	}

	logCloser, err := logger.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		logger.Logger.WithError(err).Fatal("Failed to initialize logger")
	}
	defer logCloser.Close()

	assets := bundle.Embedded()
	if cfg.AssetsDir != "" {
		assets = bundle.Dir(cfg.AssetsDir)
	}

	// The dataset is a build-time asset: without it there is nothing to serve.
	landmarks, err := repository.LoadLandmarks(assets, cfg.LandmarkResource)
	if err != nil {
		logger.Logger.WithError(err).WithField("resource", cfg.LandmarkResource).Fatal("Couldn't load landmark data")
	}

	images := imagestore.New(assets, cfg.ImageScale)
	if len(cfg.WarmSizes) > 0 {
		warmCache(images, landmarks, cfg)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Logger.WithError(err).Fatal("Failed to parse templates")
	}

	landmarkRepo := repository.NewLandmarkRepository(landmarks)
	landmarkService := services.NewLandmarkService(landmarkRepo)

	router := api.SetupRoutes(api.Dependencies{
		Landmarks:          landmarkService,
		Stats:              services.NewLandmarkStatsService(repository.NewLandmarkStatsRepository(landmarkRepo)),
		Categories:         services.NewCategoryService(repository.NewCategoryRepository(landmarkRepo)),
		Suggestions:        services.NewSuggestionService(landmarkService, 10),
		Uptime:             services.NewUptimeService(),
		Images:             images,
		Renderer:           renderer,
		JPEGQuality:        cfg.JPEGQuality,
		ImageSizes:         cfg.ServedImageSizes(),
		PlaceholderOnError: cfg.PlaceholderOnError,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		AllowedOrigins:     cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Handler:      router,
		Addr:         cfg.Addr(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Logger.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	logger.LogEvent(logrus.InfoLevel, "Server starting", logrus.Fields{
		"addr":      srv.Addr,
		"landmarks": len(landmarks),
		"scale":     images.ScaleFactor(),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Logger.WithError(err).Fatal("Server stopped")
	}
	logger.Logger.Info("Server stopped")
}

// warmCache pre-renders the configured sizes for every landmark. A failure is
// fatal unless the server is allowed to degrade to placeholders.
func warmCache(images *imagestore.Store, landmarks []models.Landmark, cfg *config.Config) {
	names := make([]string, 0, len(landmarks))
	for _, l := range landmarks {
		names = append(names, l.ImageName)
	}

	start := time.Now()
	err := images.Warm(names, cfg.WarmSizes)
	fields := logrus.Fields{
		"images":   len(names),
		"sizes":    cfg.WarmSizes,
		"entries":  images.Len(),
		"duration": time.Since(start).String(),
	}
	if err != nil {
		if !cfg.PlaceholderOnError {
			logger.Logger.WithFields(fields).WithError(err).Fatal("Couldn't warm image cache")
		}
		logger.Logger.WithFields(fields).WithError(err).Warn("Image cache partially warmed")
		return
	}
	logger.LogEvent(logrus.InfoLevel, "Image cache warmed", fields)
}
