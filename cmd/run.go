package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"RBCMap-App/internal/application"
	"RBCMap-App/internal/config"
	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/handler"
	"RBCMap-App/internal/usecase"
	"RBCMap-App/pkg/logger"
)

func runServe(ctx context.Context, portOverride string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Component("server")

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	catalogs, err := application.NewCatalogStore(ctx, deps.Catalog)
	if err != nil {
		log.WithError(err).Error("❌ Catalog unavailable at startup")
		return err
	}

	mapService := application.NewMapService(catalogs, deps.Destination, application.MapServiceConfig{
		Zoom:        cfg.DefaultZoom,
		MinimapSize: cfg.MinimapSize,
		Metric:      cfg.Metric,
		Tracked:     cfg.Tracked,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	handler.NewMapHandler(mapService).RegisterRoutes(router)

	port := cfg.Port
	if portOverride != "" {
		port = portOverride
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("RBCMap-App server starting on :%s...", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("Shutting down")
	return srv.Shutdown(shutdownCtx)
}

type nearestOptions struct {
	Column   string
	Row      string
	Category string
	Profile  string
}

func runNearest(ctx context.Context, out io.Writer, opts nearestOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	catalogs, err := application.NewCatalogStore(ctx, deps.Catalog)
	if err != nil {
		return err
	}

	session := usecase.NewMapSessionUseCase(ctx, catalogs, deps.Destination, usecase.SessionOptions{
		Profile:     opts.Profile,
		Zoom:        cfg.DefaultZoom,
		MinimapSize: cfg.MinimapSize,
		Metric:      cfg.Metric,
		Tracked:     cfg.Tracked,
	})
	projection := session.GoTo(opts.Column, opts.Row)

	if opts.Category != "" {
		category, err := model.ParseCategory(opts.Category)
		if err != nil {
			return err
		}
		return writeRanked(out, category, session.Nearest(category))
	}

	fmt.Fprintf(out, "Center %s (%s metric)\n\n", projection.Center, projection.Metric)
	for _, line := range projection.Summary() {
		fmt.Fprintln(out, line)
		fmt.Fprintln(out)
	}
	return nil
}
