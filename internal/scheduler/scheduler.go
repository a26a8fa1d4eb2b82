package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithTaskTimeout bounds a single run of the task. The default is one second less than the interval.
func WithTaskTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.taskTimeout = d
		}
	}
}

// WithDelayedStart skips the run that normally happens right after Start.
func WithDelayedStart() Option {
	return func(s *Scheduler) {
		s.runOnStart = false
	}
}

// WithName labels the scheduler in logs.
func WithName(name string) Option {
	return func(s *Scheduler) {
		s.logger = s.logger.With(zap.String("scheduler", name))
	}
}

// Scheduler runs a task periodically until stopped.
type Scheduler struct {
	logger      *zap.Logger
	interval    time.Duration
	taskTimeout time.Duration
	runOnStart  bool
	taskFunc    func(context.Context) error
	stopCh      chan struct{}
	doneCh      chan struct{}
	isRunning   bool
	mu          sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error, opts ...Option) *Scheduler {
	s := &Scheduler{
		logger:     logger,
		interval:   interval,
		runOnStart: true,
		taskFunc:   taskFunc,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}

	s.taskTimeout = interval - time.Second
	if s.taskTimeout <= 0 {
		s.taskTimeout = interval
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler and waits for a running task to return.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	if s.runOnStart {
		if err := s.executeTask(ctx); err != nil {
			s.logger.Error("Failed to execute initial task", zap.Error(err))
		}
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-stopCh:
			s.logger.Debug("Scheduler stop signal received")
			return
		case <-ticker.C:
			if err := s.executeTask(ctx); err != nil {
				s.logger.Error("Failed to execute scheduled task", zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) executeTask(ctx context.Context) error {
	s.logger.Debug("Executing scheduled task")

	taskCtx, cancel := context.WithTimeout(ctx, s.taskTimeout)
	defer cancel()

	return s.taskFunc(taskCtx)
}
