package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/thrivetrack/backend/internal/config"
	"github.com/thrivetrack/backend/internal/handlers"
	"github.com/thrivetrack/backend/internal/logger"
	"github.com/thrivetrack/backend/internal/middleware"
	"github.com/thrivetrack/backend/internal/resources"
	"github.com/thrivetrack/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := setupLogger(cfg)
	log.Info("starting ThriveTrack API server",
		logger.String("env", cfg.Server.Env),
		logger.String("store", cfg.Store.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closer, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closer.Close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	catalog, err := resources.Default()
	if err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}

	clock := clockwork.NewRealClock()
	visits := service.NewVisitStore(cfg.Insights.VisitCapacity, cfg.Insights.VisitTTL, clock)

	// Initialize services
	entryService := service.NewMoodEntryService(repo, clock)
	insightsService := service.NewMoodInsightsService(repo, visits, clock, loc)

	// Initialize handlers
	entryHandler := handlers.NewMoodEntryHandler(entryService)
	insightsHandler := handlers.NewMoodInsightsHandler(insightsService)
	resourcesHandler := handlers.NewResourcesHandler(catalog)
	healthHandler := handlers.NewHealthHandler(repo, cfg.Store.Driver)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.Server.RateLimit))
	v1.Use(middleware.UserScope(cfg.Insights.DefaultUserID))
	handlers.RegisterRoutes(v1, entryHandler, insightsHandler, resourcesHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", logger.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
