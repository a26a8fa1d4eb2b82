package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/smsapi"
)

type statsService struct {
	client      smsapi.Client
	recentLimit int
	logger      *zap.Logger

	mu   sync.RWMutex
	view StatsView
}

func NewStatsService(client smsapi.Client, recentLimit int, logger *zap.Logger) StatsService {
	if recentLimit <= 0 {
		recentLimit = smsapi.DefaultRecentLimit
	}
	return &statsService{
		client:      client,
		recentLimit: recentLimit,
		logger:      logger,
		view:        StatsView{Period: PeriodDay},
	}
}

// NormalizePeriod maps anything but week and month to the daily period.
func NormalizePeriod(period string) string {
	switch period {
	case PeriodWeek, PeriodMonth:
		return period
	default:
		return PeriodDay
	}
}

func (s *statsService) View() StatsView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.view
	if v.RecentBreakdown != nil {
		b := *v.RecentBreakdown
		v.RecentBreakdown = &b
	}
	return v
}

// LoadAll fetches the three periods at once. On failure every count is reset to zero.
func (s *statsService) LoadAll(ctx context.Context) error {
	all, err := s.client.GetAllStats(ctx)
	if err != nil {
		s.logger.Error("Failed to load statistics", zap.Error(err))
		s.mu.Lock()
		s.view.Daily = models.StatsData{}
		s.view.Weekly = models.StatsData{}
		s.view.Monthly = models.StatsData{}
		s.view.Current = models.StatsData{}
		s.view.ErrorMessage = fmt.Sprintf("load statistics: %v", err)
		s.mu.Unlock()
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	s.mu.Lock()
	s.view.Daily = all.Daily.ToStatsData()
	s.view.Weekly = all.Weekly.ToStatsData()
	s.view.Monthly = all.Monthly.ToStatsData()
	s.view.Current = s.cachedLocked(s.view.Period)
	s.view.ErrorMessage = ""
	s.mu.Unlock()
	return nil
}

// SelectPeriod switches the current view. The cache is used when it already has data for
// the period, otherwise everything is reloaded.
func (s *statsService) SelectPeriod(ctx context.Context, period string) error {
	period = NormalizePeriod(period)

	s.mu.Lock()
	s.view.Period = period
	cached := s.cachedLocked(period)
	if cached.Total > 0 {
		s.view.Current = cached
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	return s.LoadAll(ctx)
}

// Refresh reloads the periods and the breakdown of the recent messages.
// The two loads are independent; a failed period load is returned after the breakdown.
func (s *statsService) Refresh(ctx context.Context) error {
	loadErr := s.LoadAll(ctx)

	recent, err := s.client.GetRecent(ctx, s.recentLimit)
	if err != nil {
		s.logger.Warn("Failed to load recent messages for statistics", zap.Error(err))
		return loadErr
	}

	breakdown := CalculateFromRecent(recent)
	s.mu.Lock()
	s.view.RecentBreakdown = &breakdown
	s.mu.Unlock()
	return loadErr
}

// Live asks the server for one period without touching the cache.
func (s *statsService) Live(ctx context.Context, period string) (models.StatsData, error) {
	resp, err := s.client.GetStats(ctx, NormalizePeriod(period))
	if err != nil {
		return models.StatsData{}, fmt.Errorf("failed to load %s statistics: %w", NormalizePeriod(period), err)
	}
	return models.StatsData{
		Total:   resp.Total,
		Sent:    resp.Sent,
		Failed:  resp.Failed,
		Pending: resp.Pending,
	}, nil
}

func (s *statsService) cachedLocked(period string) models.StatsData {
	switch period {
	case PeriodWeek:
		return s.view.Weekly
	case PeriodMonth:
		return s.view.Monthly
	default:
		return s.view.Daily
	}
}

// CalculateFromRecords counts server rows by statut. Rows without a statut count as pending.
func CalculateFromRecords(records []models.SmsRecord) models.StatsData {
	stats := models.StatsData{Total: len(records)}
	for _, r := range records {
		statut := models.StatutPending
		if r.Statut != nil {
			statut = *r.Statut
		}
		switch statut {
		case models.StatutSent:
			stats.Sent++
		case models.StatutFailed:
			stats.Failed++
		default:
			stats.Pending++
		}
	}
	return stats
}

// CalculateFromRecent counts dashboard rows by status.
func CalculateFromRecent(recent []models.RecentMessageResponse) models.StatsData {
	records := make([]models.SmsRecord, 0, len(recent))
	for _, r := range recent {
		statut := models.StatutPending
		switch models.ParseMessageStatus(r.Status) {
		case models.MessageStatusSent:
			statut = models.StatutSent
		case models.MessageStatusFailed:
			statut = models.StatutFailed
		}
		records = append(records, models.SmsRecord{
			IDSms:              r.IDSms,
			NumeroDestinataire: r.NumeroDestinataire,
			Statut:             &statut,
		})
	}
	return CalculateFromRecords(records)
}
