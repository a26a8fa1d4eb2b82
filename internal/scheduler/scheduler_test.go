package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/scheduler"
)

func noopTask(context.Context) error { return nil }

func TestScheduler_Lifecycle(t *testing.T) {
	tests := []struct {
		name        string
		steps       func(s *scheduler.Scheduler) error
		expectedErr error
		running     bool
	}{
		{
			name:    "start",
			steps:   func(s *scheduler.Scheduler) error { return s.Start(context.Background()) },
			running: true,
		},
		{
			name: "start twice",
			steps: func(s *scheduler.Scheduler) error {
				if err := s.Start(context.Background()); err != nil {
					return err
				}
				return s.Start(context.Background())
			},
			expectedErr: scheduler.ErrSchedulerAlreadyRunning,
			running:     true,
		},
		{
			name: "stop after start",
			steps: func(s *scheduler.Scheduler) error {
				if err := s.Start(context.Background()); err != nil {
					return err
				}
				return s.Stop()
			},
		},
		{
			name:        "stop without start",
			steps:       func(s *scheduler.Scheduler) error { return s.Stop() },
			expectedErr: scheduler.ErrSchedulerNotRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scheduler.NewScheduler(zap.NewNop(), 100*time.Millisecond, noopTask, scheduler.WithName(tt.name))
			defer func() {
				if s.IsRunning() {
					_ = s.Stop()
				}
			}()

			assert.Equal(t, tt.expectedErr, tt.steps(s))
			assert.Equal(t, tt.running, s.IsRunning())
		})
	}
}

func TestScheduler_TaskExecution(t *testing.T) {
	tests := []struct {
		name         string
		taskFunc     func(context.Context) error
		interval     time.Duration
		testDuration time.Duration
		minCalls     int
		maxCalls     int
	}{
		{
			name: "task executes multiple times",
			taskFunc: func(ctx context.Context) error {
				return nil
			},
			interval:     50 * time.Millisecond,
			testDuration: 250 * time.Millisecond,
			minCalls:     5,
			maxCalls:     7,
		},
		{
			name: "task handles errors",
			taskFunc: func(ctx context.Context) error {
				return errors.New("task error")
			},
			interval:     50 * time.Millisecond,
			testDuration: 150 * time.Millisecond,
			minCalls:     3,
			maxCalls:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var callCount atomic.Int32
			taskFunc := func(ctx context.Context) error {
				callCount.Add(1)
				return tt.taskFunc(ctx)
			}

			s := scheduler.NewScheduler(zap.NewNop(), tt.interval, taskFunc)
			err := s.Start(context.Background())
			assert.NoError(t, err)
			time.Sleep(tt.testDuration)

			err = s.Stop()
			assert.NoError(t, err)

			assert.GreaterOrEqual(t, int(callCount.Load()), tt.minCalls)
			assert.LessOrEqual(t, int(callCount.Load()), tt.maxCalls)
		})
	}
}

func TestScheduler_ContextCancellation(t *testing.T) {
	var mu sync.Mutex
	taskCalls := 0
	taskFunc := func(ctx context.Context) error {
		mu.Lock()
		taskCalls++
		mu.Unlock()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, taskFunc)

	err := s.Start(ctx)
	assert.NoError(t, err)
	assert.True(t, s.IsRunning())

	// Wait for at least 2 executions
	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	callsBeforeCancel := taskCalls
	mu.Unlock()

	// Should have at least 2 calls (initial + 2 intervals)
	assert.GreaterOrEqual(t, callsBeforeCancel, 2)

	cancel()

	// Wait for scheduler to stop
	time.Sleep(100 * time.Millisecond)
	assert.False(t, s.IsRunning())

	// Get final call count
	mu.Lock()
	finalCalls := taskCalls
	mu.Unlock()

	// Should not have significantly more calls after cancel
	assert.LessOrEqual(t, finalCalls-callsBeforeCancel, 1)
}

func TestScheduler_ConcurrentAccess(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, noopTask)

	done := make(chan bool)
	errors := make(chan error, 10)

	for i := 0; i < 5; i++ {
		go func() {
			if err := s.Start(context.Background()); err != nil && err != scheduler.ErrSchedulerAlreadyRunning {
				errors <- err
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}

	assert.True(t, s.IsRunning())
	assert.Len(t, errors, 0)

	err := s.Stop()
	assert.NoError(t, err)
}

func TestScheduler_Options(t *testing.T) {
	tests := []struct {
		name          string
		opts          []scheduler.Option
		wait          time.Duration
		expectedCalls int32
		expectTimeout time.Duration
	}{
		{
			name:          "runs on start by default",
			wait:          30 * time.Millisecond,
			expectedCalls: 1,
			expectTimeout: time.Hour - time.Second,
		},
		{
			name:          "delayed start skips the first run",
			opts:          []scheduler.Option{scheduler.WithDelayedStart()},
			wait:          30 * time.Millisecond,
			expectedCalls: 0,
			expectTimeout: time.Hour - time.Second,
		},
		{
			name:          "custom task timeout",
			opts:          []scheduler.Option{scheduler.WithTaskTimeout(10 * time.Minute), scheduler.WithName("autosend")},
			wait:          30 * time.Millisecond,
			expectedCalls: 1,
			expectTimeout: 10 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			var deadline atomic.Int64
			start := time.Now()

			s := scheduler.NewScheduler(zap.NewNop(), time.Hour, func(ctx context.Context) error {
				calls.Add(1)
				if d, ok := ctx.Deadline(); ok {
					deadline.Store(int64(d.Sub(start)))
				}
				return nil
			}, tt.opts...)

			assert.NoError(t, s.Start(context.Background()))
			time.Sleep(tt.wait)
			assert.NoError(t, s.Stop())

			assert.Equal(t, tt.expectedCalls, calls.Load())
			if tt.expectedCalls > 0 {
				assert.InDelta(t, float64(tt.expectTimeout), float64(deadline.Load()), float64(time.Second))
			}
		})
	}
}

func TestScheduler_ShortIntervalKeepsUsableTimeout(t *testing.T) {
	errCh := make(chan error, 1)
	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, func(ctx context.Context) error {
		select {
		case errCh <- ctx.Err():
		default:
		}
		return nil
	})

	assert.NoError(t, s.Start(context.Background()))
	err := <-errCh
	assert.NoError(t, s.Stop())

	assert.NoError(t, err)
}

func TestScheduler_RestartAfterStop(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, noopTask)

	assert.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	assert.NoError(t, s.Stop())
}
