package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
)

// Preference keys.
const (
	KeyBaseURL         = "base_url"
	KeySelectedSimSlot = "selected_sim_slot"
	KeyAutoSend        = "auto_send_enabled"
)

// DefaultSimSlot means the system default subscription.
const DefaultSimSlot = -1

type preference struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

type preferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) PreferencesRepository {
	return &preferencesRepository{
		db: db,
	}
}

func (r *preferencesRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM preferences WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return value, nil
}

func (r *preferencesRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}

func (r *preferencesRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}

func (r *preferencesRepository) All(ctx context.Context) (map[string]string, error) {
	var rows []preference
	if err := r.db.SelectContext(ctx, &rows, `SELECT key, value, updated_at FROM preferences ORDER BY key`); err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, p := range rows {
		out[p.Key] = p.Value
	}
	return out, nil
}

// SelectedSimSlot returns the saved slot, or DefaultSimSlot when none was saved.
func (r *preferencesRepository) SelectedSimSlot(ctx context.Context) (int, error) {
	raw, err := r.Get(ctx, KeySelectedSimSlot)
	if errors.Is(err, ErrNotFound) {
		return DefaultSimSlot, nil
	}
	if err != nil {
		return DefaultSimSlot, err
	}

	slot, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultSimSlot, fmt.Errorf("invalid stored SIM slot %q: %w", raw, err)
	}
	return slot, nil
}

func (r *preferencesRepository) SaveSelectedSimSlot(ctx context.Context, slot int) error {
	return r.Set(ctx, KeySelectedSimSlot, strconv.Itoa(slot))
}

// BaseURL returns the saved server URL or fallback when none was saved.
func (r *preferencesRepository) BaseURL(ctx context.Context, fallback string) (string, error) {
	raw, err := r.Get(ctx, KeyBaseURL)
	if errors.Is(err, ErrNotFound) || (err == nil && raw == "") {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return raw, nil
}

func (r *preferencesRepository) SaveBaseURL(ctx context.Context, baseURL string) error {
	return r.Set(ctx, KeyBaseURL, baseURL)
}

func (r *preferencesRepository) AutoSendEnabled(ctx context.Context) (bool, error) {
	raw, err := r.Get(ctx, KeyAutoSend)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid stored auto-send flag %q: %w", raw, err)
	}
	return enabled, nil
}

func (r *preferencesRepository) SaveAutoSendEnabled(ctx context.Context, enabled bool) error {
	return r.Set(ctx, KeyAutoSend, strconv.FormatBool(enabled))
}
