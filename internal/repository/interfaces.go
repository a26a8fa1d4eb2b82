package repository

import "context"

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Preferences returns the settings store
	Preferences() PreferencesRepository
}

// PreferencesRepository persists the gateway's user settings as key/value pairs.
type PreferencesRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	All(ctx context.Context) (map[string]string, error)

	SelectedSimSlot(ctx context.Context) (int, error)
	SaveSelectedSimSlot(ctx context.Context, slot int) error
	BaseURL(ctx context.Context, fallback string) (string, error)
	SaveBaseURL(ctx context.Context, baseURL string) error
	AutoSendEnabled(ctx context.Context) (bool, error)
	SaveAutoSendEnabled(ctx context.Context, enabled bool) error
}
