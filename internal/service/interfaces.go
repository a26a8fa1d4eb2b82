package service

import (
	"context"

	"github.com/popeskul/smstask/internal/cache"
	"github.com/popeskul/smstask/internal/controller"
	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/syncqueue"
)

// GatewayService is the part of the controller the HTTP layer and the other services drive.
type GatewayService interface {
	Snapshot() controller.State
	IsRunning() bool
	IsNetworkAvailable() bool

	RefreshAll(ctx context.Context) error
	LoadPending(ctx context.Context) error
	LoadFailed(ctx context.Context) error
	LoadRecent(ctx context.Context) error

	SendMessageByID(ctx context.Context, id int64) error
	SendMessageHybrid(ctx context.Context, msg models.PendingMessage) error
	StartSendAll() error
	IsSendAllRunning() bool
	SwipeDeleteMessage(ctx context.Context, id int64) error
	MarkDelivered(ctx context.Context, id int64) error

	SyncQueueStatus() []models.SyncQueueEntry
	RetryFailedSyncs(ctx context.Context) (syncqueue.RunReport, error)
	RetrySpecificSync(ctx context.Context, id int64) error
	ClearSyncQueue() int
	MaxSyncRetries() int

	DetectAvailableSims(ctx context.Context) error
	SelectSimSlot(ctx context.Context, slot int) error
	SelectedSimShortName() string

	ToggleAutoSend(enabled bool)
}

var _ GatewayService = (*controller.Controller)(nil)

type StatsService interface {
	LoadAll(ctx context.Context) error
	SelectPeriod(ctx context.Context, period string) error
	Refresh(ctx context.Context) error
	Live(ctx context.Context, period string) (models.StatsData, error)
	View() StatsView
}

type SettingsService interface {
	Load(ctx context.Context) error
	BaseURL() string
	SetBaseURL(ctx context.Context, raw string) error
	AutoSendEnabled(ctx context.Context) (bool, error)
	SetAutoSend(ctx context.Context, enabled bool) error
}

type AutoSendService interface {
	Start() error
	Stop() error
	IsRunning() bool
	RunOnce(ctx context.Context) (int, error)
}

type HealthService interface {
	GetHealth() *HealthStatus
}

// ReachabilityChecker probes whether the remote server answers HTTP requests.
type ReachabilityChecker interface {
	HasInternetAccess(ctx context.Context) bool
}

// DispatchTracker exposes the Redis dispatch markers of a message.
type DispatchTracker interface {
	InFlight(ctx context.Context, id int64) (bool, error)
	Outcome(ctx context.Context, id int64) (*cache.Outcome, error)
}

type DispatchService interface {
	Status(ctx context.Context, id int64) (*DispatchStatus, error)
}
