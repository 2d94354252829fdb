package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-sentiment-dashboard/internal/dashboard/config"
	delivery "stock-sentiment-dashboard/internal/dashboard/delivery/http"
	_ "stock-sentiment-dashboard/internal/dashboard/docs"
	"stock-sentiment-dashboard/internal/dashboard/render"
	"stock-sentiment-dashboard/internal/dashboard/repository"
	"stock-sentiment-dashboard/internal/dashboard/service"
	"stock-sentiment-dashboard/pkg/logger"
	"stock-sentiment-dashboard/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"golang.org/x/sync/errgroup"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service",
		logger.Field("name", cfg.App.Name),
		logger.Field("backend", cfg.Backend.BaseURL),
		logger.Field("session_store", cfg.Session.Store),
	)

	// Initialize view state storage
	var states repository.ViewStateRepository
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		states = repository.NewRedisViewStateRepository(redisClient.Client, cfg.Session.TTL)
	case config.SessionStoreMemory:
		states = repository.NewMemoryViewStateRepository(cfg.Session.TTL)
	default:
		appLogger.Fatal("Unknown session store", logger.StringField("store", cfg.Session.Store))
	}

	backendRepo := repository.NewBackendRepository(cfg.Backend, appLogger)
	sessionSvc := service.NewSessionService(backendRepo, states, appLogger, cfg.Dashboard.SeedKeyword, cfg.Session.TTL)

	renderer, err := render.NewRenderer()
	if err != nil {
		appLogger.Fatal("Failed to initialize renderer", logger.ErrorField(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(delivery.RequestContext())

	cookie := delivery.SessionCookie{Name: cfg.Session.CookieName, TTL: cfg.Session.TTL}
	delivery.NewDashboardHandler(sessionSvc, cookie, appLogger).RegisterRoutes(e.Group(""))
	delivery.NewAPIHandler(sessionSvc, cookie, appLogger).RegisterRoutes(e.Group("/api/v1"))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", swagger.WrapHandler)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return drain(shutdownCtx, sessionSvc)
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// drain waits for in-flight dashboard operations until ctx expires.
func drain(ctx context.Context, sessions service.SessionService) error {
	done := make(chan struct{})
	go func() {
		sessions.Drain()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pending dashboard operations: %w", ctx.Err())
	}
}

// @title Stock Sentiment Dashboard API
// @version 1.0
// @description Session-scoped JSON API of the stock sentiment dashboard.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
