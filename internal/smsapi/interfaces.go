// Package smsapi is the client of the remote server that owns the SMS work queue.
package smsapi

import (
	"context"

	"github.com/popeskul/smstask/internal/breaker"
	"github.com/popeskul/smstask/internal/models"
)

const (
	DefaultListLimit   = 200
	DefaultRecentLimit = 10
)

// Client lists the endpoints of the remote SMS server.
type Client interface {
	GetPending(ctx context.Context, limit int) ([]models.SmsPendingResponse, error)
	GetFailed(ctx context.Context, limit int) ([]models.SmsPendingResponse, error)
	GetRecent(ctx context.Context, limit int) ([]models.RecentMessageResponse, error)

	MarkSent(ctx context.Context, id int64) (*models.APIResponse, error)
	MarkFailed(ctx context.Context, id int64) (*models.APIResponse, error)
	MarkDelivered(ctx context.Context, id int64) (*models.APIResponse, error)
	MarkSwiped(ctx context.Context, id int64) (*models.APIResponse, error)

	GetStats(ctx context.Context, period string) (*models.StatsResponse, error)
	GetAllStats(ctx context.Context) (*models.AllStatsResponse, error)

	BaseURL() string
	SetBaseURL(raw string) error
	BreakerStatus() (state breaker.State, requests, failures uint32)
}
