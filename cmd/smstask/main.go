// Package main is the entry point for the smstask gateway.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/smstask/internal/cache"
	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/controller"
	"github.com/popeskul/smstask/internal/dispatch"
	"github.com/popeskul/smstask/internal/handler"
	"github.com/popeskul/smstask/internal/infrastructure/migrate"
	"github.com/popeskul/smstask/internal/middleware"
	"github.com/popeskul/smstask/internal/network"
	"github.com/popeskul/smstask/internal/repository"
	"github.com/popeskul/smstask/internal/service"
	"github.com/popeskul/smstask/internal/smsapi"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	configPath := os.Getenv("SMSTASK_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, logger)
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	repo := repository.NewRepository(db)

	client, err := smsapi.NewClient(&cfg.Remote, logger)
	if err != nil {
		logger.Fatal("Failed to create SMS server client", zap.Error(err))
	}

	modem := dispatch.NewHTTPModem(&cfg.Modem, logger)
	inflight := cache.NewInFlightCache(redisClient, &cfg.Redis, logger)
	dispatcher := dispatch.NewDispatcher(&cfg.Modem, modem, modem, inflight, logger)

	checker := network.NewChecker(client.BaseURL, time.Duration(cfg.Network.DialTimeout)*time.Second, logger)
	gateway := controller.New(cfg.Gateway, client, dispatcher, repo.Preferences(), checker, logger)

	svc := service.NewService(cfg, repo, redisClient, client, gateway, inflight, checker, logger)

	startGateway(ctx, svc, gateway, logger)

	h := handler.NewHandler(svc, logger)
	router := setupRouter(h)

	middlewareConfig := &middleware.Config{
		Logger:         logger,
		AuthToken:      cfg.Server.AuthToken,
		PublicPaths:    []string{"/api/openapi.yaml"},
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: 30 * time.Second,
	}
	if cfg.Middleware.EnableCORS {
		middlewareConfig.CORS = middleware.DefaultCORSConfig(cfg.Middleware.AllowedOrigins...)
	}

	chain, limiter := middleware.Chain(middlewareConfig)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      chain(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if svc.AutoSend.IsRunning() {
		if err := svc.AutoSend.Stop(); err != nil {
			logger.Error("Failed to stop auto-send", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	gateway.Stop()
	dispatcher.Wait()
	limiter.Close()

	logger.Info("Server exited")
}

// startGateway restores the saved settings and loads the first lists before serving.
func startGateway(ctx context.Context, svc *service.Service, gateway *controller.Controller, logger *zap.Logger) {
	if err := svc.Settings.Load(ctx); err != nil {
		logger.Error("Failed to load settings", zap.Error(err))
	}

	if err := gateway.DetectAvailableSims(ctx); err != nil {
		logger.Warn("Failed to detect SIM cards", zap.Error(err))
	}

	if err := gateway.RefreshAll(ctx); err != nil {
		logger.Warn("Initial refresh failed", zap.Error(err))
	}

	if err := svc.Stats.LoadAll(ctx); err != nil {
		logger.Warn("Initial statistics load failed", zap.Error(err))
	}

	if err := gateway.Start(ctx); err != nil {
		logger.Fatal("Failed to start gateway", zap.Error(err))
	}

	if err := svc.AutoSend.Start(); err != nil {
		logger.Error("Failed to start auto-send", zap.Error(err))
	} else {
		logger.Info("Auto-send scheduler started")
	}
}
