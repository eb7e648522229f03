package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/database"
	http_controllers "github.com/openpress/newsroom/internal/http"
	"github.com/openpress/newsroom/internal/logger"
	"github.com/openpress/newsroom/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Run wires the database, scheduler and router together and serves until
// interrupted.
func Run(cfg *config.Config, version string) {
	log := logger.New()
	log.Info().Str("version", version).Msg("Starting newsroom")

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	syncScheduler := scheduler.NewWordPressSyncScheduler(db, cfg, log)
	if err := syncScheduler.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start sync scheduler")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:  db,
		ImportCfg: cfg.Import,
		Log:       log,
		Version:   version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		syncScheduler.Stop()
	})
}

// Serve runs the HTTP server with graceful shutdown on SIGINT/SIGTERM.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	log := logger.New()
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info().Str("host", cfg.HTTP.Host).Int32("port", cfg.HTTP.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server exiting")
}
