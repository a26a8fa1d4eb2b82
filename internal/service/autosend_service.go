package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/dispatch"
	"github.com/popeskul/smstask/internal/repository"
	"github.com/popeskul/smstask/internal/scheduler"
	"github.com/popeskul/smstask/internal/smsapi"
)

type autoSendService struct {
	scheduler *scheduler.Scheduler
	client    smsapi.Client
	prefs     repository.PreferencesRepository
	gateway   GatewayService
	batchSize int
	spacing   time.Duration
	logger    *zap.Logger
}

func NewAutoSendService(
	cfg *config.Config,
	client smsapi.Client,
	prefs repository.PreferencesRepository,
	gateway GatewayService,
	logger *zap.Logger,
) AutoSendService {
	interval := time.Duration(cfg.AutoSend.IntervalSec) * time.Second

	svc := &autoSendService{
		client:    client,
		prefs:     prefs,
		gateway:   gateway,
		batchSize: cfg.AutoSend.BatchSize,
		spacing:   cfg.Gateway.SendSpacing(),
		logger:    logger,
	}

	opts := []scheduler.Option{scheduler.WithName("auto-send")}
	if cfg.AutoSend.TaskTimeoutSec > 0 {
		opts = append(opts, scheduler.WithTaskTimeout(time.Duration(cfg.AutoSend.TaskTimeoutSec)*time.Second))
	}
	svc.scheduler = scheduler.NewScheduler(logger, interval, svc.executeSendTask, opts...)
	return svc
}

func (s *autoSendService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *autoSendService) Stop() error {
	return s.scheduler.Stop()
}

func (s *autoSendService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *autoSendService) executeSendTask(ctx context.Context) error {
	_, err := s.RunOnce(ctx)
	return err
}

// RunOnce sends one batch of pending messages when auto-send is enabled and no send-all
// is running. It returns how many sends were launched.
func (s *autoSendService) RunOnce(ctx context.Context) (int, error) {
	enabled, err := s.prefs.AutoSendEnabled(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read auto-send flag: %w", err)
	}
	if !enabled || s.gateway.IsSendAllRunning() {
		return 0, nil
	}

	batch, err := s.client.GetPending(ctx, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch pending messages: %w", err)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	s.logger.Info("Auto-send batch", zap.Int("count", len(batch)))

	launched := 0
	for _, item := range batch {
		if launched > 0 && s.spacing > 0 {
			select {
			case <-ctx.Done():
				return launched, ctx.Err()
			case <-time.After(s.spacing):
			}
		}

		err := s.gateway.SendMessageHybrid(ctx, item.ToPendingMessage())
		switch {
		case err == nil:
			launched++
		case errors.Is(err, dispatch.ErrAlreadyInFlight):
			s.logger.Debug("Skipping message already in flight", zap.Int64("smsID", item.IDSms))
		default:
			s.logger.Warn("Auto-send failed", zap.Int64("smsID", item.IDSms), zap.Error(err))
		}
	}
	return launched, nil
}
