package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/cache"
)

type dispatchService struct {
	tracker DispatchTracker
	logger  *zap.Logger
}

func NewDispatchService(tracker DispatchTracker, logger *zap.Logger) DispatchService {
	return &dispatchService{
		tracker: tracker,
		logger:  logger,
	}
}

// Status reports whether id still holds the in-flight marker and what its last dispatch did.
func (s *dispatchService) Status(ctx context.Context, id int64) (*DispatchStatus, error) {
	inFlight, err := s.tracker.InFlight(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read dispatch state of message %d: %w", id, err)
	}

	status := &DispatchStatus{ID: id, InFlight: inFlight}

	outcome, err := s.tracker.Outcome(ctx, id)
	switch {
	case errors.Is(err, cache.ErrNoOutcome):
	case err != nil:
		return nil, fmt.Errorf("failed to read dispatch outcome of message %d: %w", id, err)
	default:
		status.Outcome = outcome
	}

	s.logger.Debug("Dispatch status read",
		zap.Int64("smsID", id),
		zap.Bool("inFlight", inFlight),
		zap.Bool("hasOutcome", status.Outcome != nil))
	return status, nil
}
