package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/repository"
	"github.com/popeskul/smstask/internal/smsapi"
)

type Service struct {
	Gateway  GatewayService
	Stats    StatsService
	Settings SettingsService
	AutoSend AutoSendService
	Health   HealthService
	Dispatch DispatchService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	client smsapi.Client,
	gateway GatewayService,
	tracker DispatchTracker,
	reachability ReachabilityChecker,
	logger *zap.Logger,
) *Service {
	prefs := repo.Preferences()

	statsService := NewStatsService(client, cfg.Gateway.StatsRecentLimit, logger)
	settingsService := NewSettingsService(prefs, client, gateway, cfg.Remote.BaseURL, logger)
	autoSendService := NewAutoSendService(cfg, client, prefs, gateway, logger)
	healthService := NewHealthService(repo, redisClient, autoSendService, client, gateway, reachability)
	dispatchService := NewDispatchService(tracker, logger)

	return &Service{
		Gateway:  gateway,
		Stats:    statsService,
		Settings: settingsService,
		AutoSend: autoSendService,
		Health:   healthService,
		Dispatch: dispatchService,
	}
}
