package dispatch

import (
	"context"

	"github.com/popeskul/smstask/internal/models"
)

// Transport hands the parts of one SMS to the radio of a SIM subscription.
type Transport interface {
	SendMultipart(ctx context.Context, sim models.SimInfo, to string, parts []string, reference string) (ResultCode, error)
}

// SimProvider knows the configured subscriptions and which of them are active.
type SimProvider interface {
	Subscriptions(ctx context.Context) ([]models.SimInfo, error)
	Subscription(slot int) (models.SimInfo, bool)
}

// InFlightTracker guards against sending the same message twice while its outcome is unknown.
type InFlightTracker interface {
	Acquire(ctx context.Context, id int64) (bool, error)
	Release(ctx context.Context, id int64) error
	RecordOutcome(ctx context.Context, id int64, success bool) error
}

// ResultHandler receives the single completion report of a hybrid send.
type ResultHandler func(id int64, success bool)
