package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/smstask/internal/repository"
)

func TestPreferencesRepository_GetSet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPreferencesRepository(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(t *testing.T)
		key      string
		expected string
		err      error
	}{
		{
			name:  "missing key",
			setup: func(t *testing.T) {},
			key:   "missing",
			err:   repository.ErrNotFound,
		},
		{
			name: "stored value",
			setup: func(t *testing.T) {
				require.NoError(t, repo.Set(ctx, "theme", "dark"))
			},
			key:      "theme",
			expected: "dark",
		},
		{
			name: "overwrite keeps one row",
			setup: func(t *testing.T) {
				require.NoError(t, repo.Set(ctx, "theme", "dark"))
				require.NoError(t, repo.Set(ctx, "theme", "light"))
			},
			key:      "theme",
			expected: "light",
		},
		{
			name: "deleted key",
			setup: func(t *testing.T) {
				require.NoError(t, repo.Set(ctx, "theme", "dark"))
				require.NoError(t, repo.Delete(ctx, "theme"))
			},
			key: "theme",
			err: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)
			tt.setup(t)

			value, err := repo.Get(ctx, tt.key)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestPreferencesRepository_All(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPreferencesRepository(db)
	ctx := context.Background()

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.SaveSelectedSimSlot(ctx, 1))
	require.NoError(t, repo.SaveAutoSendEnabled(ctx, true))

	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		repository.KeySelectedSimSlot: "1",
		repository.KeyAutoSend:        "true",
	}, all)
}

func TestPreferencesRepository_TypedAccessors(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPreferencesRepository(db)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		cleanupTestData(db)

		slot, err := repo.SelectedSimSlot(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.DefaultSimSlot, slot)

		enabled, err := repo.AutoSendEnabled(ctx)
		require.NoError(t, err)
		assert.False(t, enabled)

		baseURL, err := repo.BaseURL(ctx, "http://192.168.1.113:3000/")
		require.NoError(t, err)
		assert.Equal(t, "http://192.168.1.113:3000/", baseURL)
	})

	t.Run("saved values", func(t *testing.T) {
		cleanupTestData(db)

		require.NoError(t, repo.SaveSelectedSimSlot(ctx, 1))
		require.NoError(t, repo.SaveAutoSendEnabled(ctx, true))
		require.NoError(t, repo.SaveBaseURL(ctx, "http://10.0.0.5:3000/"))

		slot, err := repo.SelectedSimSlot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, slot)

		enabled, err := repo.AutoSendEnabled(ctx)
		require.NoError(t, err)
		assert.True(t, enabled)

		baseURL, err := repo.BaseURL(ctx, "http://fallback/")
		require.NoError(t, err)
		assert.Equal(t, "http://10.0.0.5:3000/", baseURL)
	})

	t.Run("corrupted values", func(t *testing.T) {
		cleanupTestData(db)

		require.NoError(t, repo.Set(ctx, repository.KeySelectedSimSlot, "two"))
		require.NoError(t, repo.Set(ctx, repository.KeyAutoSend, "maybe"))

		slot, err := repo.SelectedSimSlot(ctx)
		assert.Error(t, err)
		assert.Equal(t, repository.DefaultSimSlot, slot)

		_, err = repo.AutoSendEnabled(ctx)
		assert.Error(t, err)
	})
}
