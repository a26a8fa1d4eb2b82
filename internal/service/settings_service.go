package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/controller"
	"github.com/popeskul/smstask/internal/repository"
	"github.com/popeskul/smstask/internal/smsapi"
)

type settingsService struct {
	prefs          repository.PreferencesRepository
	client         smsapi.Client
	gateway        GatewayService
	defaultBaseURL string
	logger         *zap.Logger
}

func NewSettingsService(
	prefs repository.PreferencesRepository,
	client smsapi.Client,
	gateway GatewayService,
	defaultBaseURL string,
	logger *zap.Logger,
) SettingsService {
	return &settingsService{
		prefs:          prefs,
		client:         client,
		gateway:        gateway,
		defaultBaseURL: defaultBaseURL,
		logger:         logger,
	}
}

// Load applies the saved server URL and auto-send flag at startup.
func (s *settingsService) Load(ctx context.Context) error {
	baseURL, err := s.prefs.BaseURL(ctx, s.defaultBaseURL)
	if err != nil {
		return fmt.Errorf("failed to load base url: %w", err)
	}
	if err := s.client.SetBaseURL(baseURL); err != nil {
		s.logger.Warn("Saved base URL is invalid, keeping the configured one",
			zap.String("baseURL", baseURL), zap.Error(err))
	}

	enabled, err := s.prefs.AutoSendEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to load auto-send flag: %w", err)
	}
	s.gateway.ToggleAutoSend(enabled)

	s.logger.Info("Settings loaded",
		zap.String("baseURL", s.client.BaseURL()),
		zap.Bool("autoSend", enabled))
	return nil
}

func (s *settingsService) BaseURL() string {
	return s.client.BaseURL()
}

// SetBaseURL validates and saves the URL, then points the client at it.
func (s *settingsService) SetBaseURL(ctx context.Context, raw string) error {
	u, err := smsapi.ParseBaseURL(raw)
	if err != nil {
		return err
	}
	if err := s.prefs.SaveBaseURL(ctx, u.String()); err != nil {
		return fmt.Errorf("failed to save base url: %w", err)
	}
	return s.client.SetBaseURL(u.String())
}

func (s *settingsService) AutoSendEnabled(ctx context.Context) (bool, error) {
	return s.prefs.AutoSendEnabled(ctx)
}

// SetAutoSend saves the flag. Enabling it also sends whatever is pending right away.
func (s *settingsService) SetAutoSend(ctx context.Context, enabled bool) error {
	if err := s.prefs.SaveAutoSendEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("failed to save auto-send flag: %w", err)
	}
	s.gateway.ToggleAutoSend(enabled)

	if enabled {
		if err := s.gateway.StartSendAll(); err != nil && !errors.Is(err, controller.ErrSendAllInProgress) {
			return err
		}
	}
	return nil
}
