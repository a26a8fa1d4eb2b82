package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/smstask/internal/api"
	"github.com/popeskul/smstask/internal/breaker"
	"github.com/popeskul/smstask/internal/repository"
	"github.com/popeskul/smstask/internal/smsapi"
)

type healthService struct {
	repo            repository.Repository
	redisClient     *redis.Client
	autoSendService AutoSendService
	client          smsapi.Client
	gateway         GatewayService
	reachability    ReachabilityChecker
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	autoSendService AutoSendService,
	client smsapi.Client,
	gateway GatewayService,
	reachability ReachabilityChecker,
) HealthService {
	return &healthService{
		repo:            repo,
		redisClient:     redisClient,
		autoSendService: autoSendService,
		client:          client,
		gateway:         gateway,
		reachability:    reachability,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: api.Healthy,
	}

	if s.autoSendService.IsRunning() {
		status.SchedulerStatus = api.HealthResponseSchedulerStatusRunning
	} else {
		status.SchedulerStatus = api.HealthResponseSchedulerStatusStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()

	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.client.BreakerStatus()
	status.CircuitBreakerState = api.HealthResponseCircuitBreakerState(state)
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	status.NetworkAvailable = s.gateway.IsNetworkAvailable()
	status.ServerReachable = s.checkServerReachable()
	status.SyncQueueSize = len(s.gateway.SyncQueueStatus())

	// Storage is required; the remote server being unreachable only degrades the gateway.
	if status.DatabaseStatus != api.HealthResponseDatabaseStatusConnected || status.RedisStatus != api.HealthResponseRedisStatusConnected {
		status.Status = api.Unhealthy
	} else if state == breaker.Open || !status.NetworkAvailable || !status.ServerReachable {
		status.Status = api.Degraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() api.HealthResponseDatabaseStatus {
	err := s.repo.Ping()
	if err != nil {
		return api.HealthResponseDatabaseStatusDisconnected
	}
	return api.HealthResponseDatabaseStatusConnected
}

func (s *healthService) checkRedisHealth() api.HealthResponseRedisStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return api.HealthResponseRedisStatusDisconnected
	}

	return api.HealthResponseRedisStatusConnected
}

func (s *healthService) checkServerReachable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return s.reachability.HasInternetAccess(ctx)
}
