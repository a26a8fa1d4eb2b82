package breaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/breaker"
	"github.com/popeskul/smstask/internal/config"
)

func newBreaker(cfg config.CircuitBreakerConfig) *breaker.CircuitBreaker {
	return breaker.NewCircuitBreaker("test", &cfg, zap.NewNop())
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := newBreaker(config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10,
		Timeout:          60,
		FailureRatio:     0.6,
		ConsecutiveFails: 5,
	})

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, breaker.Closed, cb.GetState())
}

func TestCircuitBreaker_Execute_Failure(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(*breaker.CircuitBreaker)
		ctx       func() context.Context
		function  func() error
		wantIs    error
		wantMsg   string
	}{
		{
			name:     "function returns error",
			function: func() error { return errors.New("modem error") },
			wantMsg:  "modem error",
		},
		{
			name: "context cancelled",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			function: func() error { return nil },
			wantIs:   context.Canceled,
		},
		{
			name: "circuit breaker open",
			setupFunc: func(cb *breaker.CircuitBreaker) {
				for i := 0; i < 10; i++ {
					_ = cb.Execute(context.Background(), func() error {
						return errors.New("failure")
					})
				}
			},
			function: func() error { return nil },
			wantIs:   breaker.ErrOpen,
			wantMsg:  "service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newBreaker(config.CircuitBreakerConfig{
				MaxRequests:      3,
				Interval:         10,
				Timeout:          60,
				FailureRatio:     0.5,
				ConsecutiveFails: 3,
			})
			if tt.setupFunc != nil {
				tt.setupFunc(cb)
			}

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			err := cb.Execute(ctx, tt.function)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCircuitBreaker_CanceledCallsDoNotTrip(t *testing.T) {
	cb := newBreaker(config.CircuitBreakerConfig{
		MaxRequests:      1,
		Interval:         10,
		Timeout:          60,
		FailureRatio:     0.5,
		ConsecutiveFails: 2,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		_ = cb.Execute(ctx, func() error { return nil })
	}

	assert.Equal(t, breaker.Closed, cb.GetState())
}

func TestCircuitBreaker_GetCounts(t *testing.T) {
	cb := newBreaker(config.CircuitBreakerConfig{
		MaxRequests:      10,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.8,
		ConsecutiveFails: 10,
	})

	requests, failures := cb.GetCounts()
	assert.Equal(t, uint32(0), requests)
	assert.Equal(t, uint32(0), failures)

	for i := 0; i < 5; i++ {
		i := i
		_ = cb.Execute(context.Background(), func() error {
			if i%2 == 1 {
				return errors.New("failure")
			}
			return nil
		})
	}

	requests, failures = cb.GetCounts()
	assert.Equal(t, uint32(5), requests)
	assert.Equal(t, uint32(2), failures)
}

func TestCircuitBreaker_StateTransitions(t *testing.T) {
	cb := newBreaker(config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10,
		Timeout:          1,
		FailureRatio:     0.5,
		ConsecutiveFails: 2,
	})

	assert.Equal(t, breaker.Closed, cb.GetState())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("failure")
		})
	}
	assert.Equal(t, breaker.Open, cb.GetState())

	err := cb.Execute(context.Background(), func() error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, breaker.ErrOpen)

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, breaker.HalfOpen, cb.GetState())

	for i := 0; i < 3; i++ {
		if err := cb.Execute(context.Background(), func() error { return nil }); err != nil {
			break
		}
	}
	assert.Equal(t, breaker.Closed, cb.GetState())
}
