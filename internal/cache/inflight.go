// Package cache keeps short-lived dispatch state in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/config"
)

const (
	inFlightPrefix = "sms:inflight:"
	outcomePrefix  = "sms:outcome:"

	outcomeSent   = "sent"
	outcomeFailed = "failed"
)

// ErrNoOutcome is returned when no outcome was recorded for a message or it expired.
var ErrNoOutcome = errors.New("no dispatch outcome recorded")

// Outcome is the last recorded result of a dispatch.
type Outcome struct {
	Success    bool
	RecordedAt time.Time
}

// InFlightCache marks messages handed to a modem so that the auto-send worker and a manual
// send-all never dispatch the same message at once.
type InFlightCache struct {
	client      *redis.Client
	inFlightTTL time.Duration
	outcomeTTL  time.Duration
	logger      *zap.Logger
}

func NewInFlightCache(client *redis.Client, cfg *config.RedisConfig, logger *zap.Logger) *InFlightCache {
	return &InFlightCache{
		client:      client,
		inFlightTTL: time.Duration(cfg.InFlightTTL) * time.Second,
		outcomeTTL:  time.Duration(cfg.OutcomeTTL) * time.Second,
		logger:      logger,
	}
}

func inFlightKey(id int64) string { return inFlightPrefix + strconv.FormatInt(id, 10) }
func outcomeKey(id int64) string  { return outcomePrefix + strconv.FormatInt(id, 10) }

// Acquire sets the in-flight marker. It reports false when the marker already exists.
func (c *InFlightCache) Acquire(ctx context.Context, id int64) (bool, error) {
	ok, err := c.client.SetNX(ctx, inFlightKey(id), time.Now().UTC().Format(time.RFC3339), c.inFlightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set in-flight marker: %w", err)
	}
	return ok, nil
}

// Release drops the marker so the message can be dispatched again.
func (c *InFlightCache) Release(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, inFlightKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete in-flight marker: %w", err)
	}
	return nil
}

// RecordOutcome stores the dispatch result.
func (c *InFlightCache) RecordOutcome(ctx context.Context, id int64, success bool) error {
	value := outcomeFailed
	if success {
		value = outcomeSent
	}
	value += "|" + time.Now().UTC().Format(time.RFC3339)

	if err := c.client.Set(ctx, outcomeKey(id), value, c.outcomeTTL).Err(); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}
	c.logger.Debug("Dispatch outcome recorded", zap.Int64("smsID", id), zap.Bool("success", success))
	return nil
}

// Outcome returns the recorded result of a dispatch.
func (c *InFlightCache) Outcome(ctx context.Context, id int64) (*Outcome, error) {
	raw, err := c.client.Get(ctx, outcomeKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoOutcome
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read outcome: %w", err)
	}

	status, at, found := strings.Cut(raw, "|")
	if !found {
		return nil, fmt.Errorf("malformed outcome %q", raw)
	}
	recordedAt, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("malformed outcome time: %w", err)
	}
	return &Outcome{Success: status == outcomeSent, RecordedAt: recordedAt}, nil
}

// InFlight reports whether a message currently holds the marker.
func (c *InFlightCache) InFlight(ctx context.Context, id int64) (bool, error) {
	n, err := c.client.Exists(ctx, inFlightKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check in-flight marker: %w", err)
	}
	return n > 0, nil
}
