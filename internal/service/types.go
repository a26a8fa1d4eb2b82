package service

import (
	"github.com/popeskul/smstask/internal/api"
	"github.com/popeskul/smstask/internal/cache"
	"github.com/popeskul/smstask/internal/models"
)

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	SchedulerStatus      api.HealthResponseSchedulerStatus     `json:"scheduler_status"`
	DatabaseStatus       api.HealthResponseDatabaseStatus      `json:"database_status"`
	RedisStatus          api.HealthResponseRedisStatus         `json:"redis_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	NetworkAvailable     bool                                  `json:"network_available"`
	ServerReachable      bool                                  `json:"server_reachable"`
	SyncQueueSize        int                                   `json:"sync_queue_size"`
}

// Statistics periods accepted by the remote server.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// StatsView is what the statistics screen shows: the cached periods, the selected one and
// a local breakdown of the recent messages.
type StatsView struct {
	Period          string            `json:"period"`
	Current         models.StatsData  `json:"current"`
	Daily           models.StatsData  `json:"daily"`
	Weekly          models.StatsData  `json:"weekly"`
	Monthly         models.StatsData  `json:"monthly"`
	RecentBreakdown *models.StatsData `json:"recent_breakdown,omitempty"`
	ErrorMessage    string            `json:"error_message,omitempty"`
}

// DispatchStatus is the Redis view of a single dispatch. Outcome is nil until a result was
// recorded or after it expired.
type DispatchStatus struct {
	ID       int64          `json:"id"`
	InFlight bool           `json:"in_flight"`
	Outcome  *cache.Outcome `json:"outcome,omitempty"`
}
