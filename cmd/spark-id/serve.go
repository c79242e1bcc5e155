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
	"github.com/spf13/cobra"

	"github.com/aexoo-ai/spark-id/internal/config"
	"github.com/aexoo-ai/spark-id/internal/handler"
	"github.com/aexoo-ai/spark-id/internal/metrics"
	pkglog "github.com/aexoo-ai/spark-id/pkg/log"
	"github.com/aexoo-ai/spark-id/pkg/response"
	"github.com/aexoo-ai/spark-id/sparkid"
)

// NewServeCommand builds the serve subcommand, which runs the HTTP API.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the id generation HTTP service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "spark-id",
	})
	logger := pkglog.L()

	// Apply id settings process-wide and fail fast on bad values
	sparkid.Configure(cfg.ID.Options()...)
	stats, err := sparkid.GetStats()
	if err != nil {
		return fmt.Errorf("id config: %w", err)
	}
	logger.Info().
		Int("entropy_bits", stats.EntropyBits).
		Int("raw_length", stats.RawLength).
		Str("case", string(stats.Case)).
		Msg("id generator configured")

	// Setup Gin router
	if err := checkServerMode(cfg.Server.Mode); err != nil {
		return err
	}
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))
	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware())
		r.GET("/metrics", metrics.Handler())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	// Register routes
	h := handler.NewHandler()
	h.RegisterRoutes(r)

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("addr", addr).Msg("spark-id listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down spark-id")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
		return err
	}

	logger.Info().Msg("spark-id stopped")
	return nil
}

// checkServerMode rejects mode strings gin.SetMode would panic on.
func checkServerMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("unknown server mode %q (want debug, release or test)", mode)
	}
}
