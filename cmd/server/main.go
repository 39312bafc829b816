// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/database"
	"github.com/javajoker/shopsmart-backend/internal/i18n"
	"github.com/javajoker/shopsmart-backend/internal/router"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	utils.ConfigureLogger(cfg.Log)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize slot store
	slotStore := database.OpenStore(ctx, cfg)
	defer slotStore.Close()

	// Initialize catalog
	source, err := services.NewCatalogSource(cfg)
	if err != nil {
		logrus.Fatal("Failed to configure catalog source: ", err)
	}
	catalogService := services.NewCatalogService(source, cfg.Catalog)

	// Load the catalog in the background; handlers answer 503 until it is ready.
	go func() {
		if _, err := catalogService.Load(ctx); err != nil {
			logrus.WithError(err).Warn("Serving an empty catalog")
		}
	}()

	if cfg.Catalog.Watch {
		startWatcher(ctx, cfg, catalogService)
	}

	profileService := services.NewProfileService(ctx, slotStore)
	selectionService := services.NewSelectionService(ctx, slotStore, profileService)
	chatService := services.NewChatService(nil)

	limiter := router.NewRateLimiter(cfg.RateLimit)
	if limiter != nil {
		go limiter.Run(ctx)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(cfg, router.Services{
		Catalog:     catalogService,
		Selection:   selectionService,
		Profile:     profileService,
		Chat:        chatService,
		RateLimiter: limiter,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
		os.Exit(1)
	}

	logrus.Info("Server exited")
}

func startWatcher(ctx context.Context, cfg *config.Config, catalogService *services.CatalogService) {
	fileSource, ok := catalogService.Source().(*services.FileSource)
	if !ok {
		logrus.WithField("source", catalogService.Source().Describe()).Warn("Catalog watching only supports file sources, disabling watcher")
		return
	}

	watcher, err := services.NewCatalogWatcher(fileSource.Path(), time.Duration(cfg.Catalog.DebounceMS)*time.Millisecond, func(ctx context.Context) {
		catalogService.Reload(ctx)
	})
	if err != nil {
		logrus.WithError(err).Warn("Failed to start catalog watcher")
		return
	}

	go func() {
		watcher.Run(ctx)
		watcher.Close()
	}()
}
