package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/api"
	"github.com/popeskul/smstask/internal/cache"
	"github.com/popeskul/smstask/internal/controller"
	"github.com/popeskul/smstask/internal/dispatch"
	"github.com/popeskul/smstask/internal/handler"
	"github.com/popeskul/smstask/internal/middleware"
	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/service"
	"github.com/popeskul/smstask/internal/service/mocks"
	"github.com/popeskul/smstask/internal/smsapi"
	"github.com/popeskul/smstask/internal/syncqueue"
)

type fixture struct {
	gateway  *mocks.MockGatewayService
	stats    *mocks.MockStatsService
	settings *mocks.MockSettingsService
	health   *mocks.MockHealthService
	dispatch *mocks.MockDispatchService
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		gateway:  mocks.NewMockGatewayService(ctrl),
		stats:    mocks.NewMockStatsService(ctrl),
		settings: mocks.NewMockSettingsService(ctrl),
		health:   mocks.NewMockHealthService(ctrl),
		dispatch: mocks.NewMockDispatchService(ctrl),
	}

	svc := &service.Service{
		Gateway:  f.gateway,
		Stats:    f.stats,
		Settings: f.settings,
		Health:   f.health,
		Dispatch: f.dispatch,
	}
	h := handler.NewHandler(svc, zap.NewNop())
	f.router = api.HandlerWithOptions(h, api.ChiServerOptions{BaseURL: "/api/v1"})
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "test-request-id"))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Timestamp)
	return resp
}

func sampleState() controller.State {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return controller.State{
		Version: 7,
		PendingMessages: []models.PendingMessage{
			{ID: 1, Recipient: "690000001", Message: "hello"},
			{ID: 2, Recipient: "690000002", Message: "bye", PendingSync: true, SyncStatus: "to mark sent"},
		},
		FailedMessages: []models.PendingMessage{{ID: 3, Recipient: "690000003", Message: "x"}},
		RecentMessages: []models.RecentMessage{
			{ID: 4, Recipient: "690000004", Message: "y", Time: "10:00", Status: models.MessageStatusSent},
		},
		IsNetworkAvailable: true,
		LastSyncTime:       &now,
		SyncQueue:          []models.SyncQueueEntry{{ID: 2, Success: true, Attempts: 1}},
		AvailableSimSlots:  []int{0, 1},
		SelectedSimSlot:    1,
		SimInfoList: []models.SimInfo{
			{SlotIndex: 0, SubscriptionID: 10, DisplayName: "SIM 1", CarrierName: "MTN"},
			{SlotIndex: 1, SubscriptionID: 11, DisplayName: "SIM 2", CarrierName: "Orange"},
		},
	}
}

func TestHandler_GetHealth(t *testing.T) {
	tests := []struct {
		name           string
		health         *service.HealthStatus
		expectedStatus int
	}{
		{
			name: "healthy",
			health: &service.HealthStatus{
				Status:               api.Healthy,
				SchedulerStatus:      api.HealthResponseSchedulerStatusRunning,
				DatabaseStatus:       api.HealthResponseDatabaseStatusConnected,
				RedisStatus:          api.HealthResponseRedisStatusConnected,
				CircuitBreakerStatus: "No requests yet",
				CircuitBreakerState:  api.Closed,
				NetworkAvailable:     true,
				ServerReachable:      true,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "degraded still answers",
			health: &service.HealthStatus{
				Status:              api.Degraded,
				DatabaseStatus:      api.HealthResponseDatabaseStatusConnected,
				RedisStatus:         api.HealthResponseRedisStatusConnected,
				CircuitBreakerState: api.Open,
				SyncQueueSize:       3,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unhealthy",
			health: &service.HealthStatus{
				Status:         api.Unhealthy,
				DatabaseStatus: api.HealthResponseDatabaseStatusDisconnected,
				RedisStatus:    api.HealthResponseRedisStatusConnected,
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.health.EXPECT().GetHealth().Return(tt.health)

			w := f.do(http.MethodGet, "/api/v1/health", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp api.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.health.Status, resp.Status)
			require.NotNil(t, resp.DatabaseStatus)
			assert.Equal(t, tt.health.DatabaseStatus, *resp.DatabaseStatus)
			require.NotNil(t, resp.ServerReachable)
			assert.Equal(t, tt.health.ServerReachable, *resp.ServerReachable)
			require.NotNil(t, resp.SyncQueueSize)
			assert.Equal(t, tt.health.SyncQueueSize, *resp.SyncQueueSize)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestHandler_GetState(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().Snapshot().Return(sampleState())
	f.gateway.EXPECT().SelectedSimShortName().Return("SIM 2")

	w := f.do(http.MethodGet, "/api/v1/state", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Version)
	assert.Len(t, resp.PendingMessages, 2)
	require.NotNil(t, resp.PendingMessages[1].SyncStatus)
	assert.Equal(t, "to mark sent", *resp.PendingMessages[1].SyncStatus)
	assert.Nil(t, resp.PendingMessages[0].SyncStatus)
	assert.Equal(t, api.RecentMessageStatusSENT, resp.RecentMessages[0].Status)
	assert.Equal(t, api.SyncQueueEntryDesiredStatusSent, resp.SyncQueue[0].DesiredStatus)
	assert.Equal(t, "SIM 2", resp.SelectedSimName)
	assert.Equal(t, "SIM 2 (Orange)", resp.SimInfoList[1].DisplayText)
	assert.Nil(t, resp.ErrorMessage)
	require.NotNil(t, resp.LastSyncTime)
}

func TestHandler_Messages(t *testing.T) {
	t.Run("pending from the snapshot", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().Snapshot().Return(sampleState())

		w := f.do(http.MethodGet, "/api/v1/messages/pending", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.MessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("refresh failure", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().LoadPending(gomock.Any()).Return(errors.New("timeout"))

		w := f.do(http.MethodPost, "/api/v1/messages/pending/refresh", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "REMOTE_SERVER_ERROR", decodeError(t, w).Error)
	})

	t.Run("failed list is reloaded", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().LoadFailed(gomock.Any()).Return(nil)
		f.gateway.EXPECT().Snapshot().Return(sampleState())

		w := f.do(http.MethodGet, "/api/v1/messages/failed", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.MessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, int64(3), resp.Messages[0].Id)
	})

	t.Run("recent keeps the last list on error", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().LoadRecent(gomock.Any()).Return(errors.New("timeout"))
		f.gateway.EXPECT().Snapshot().Return(sampleState())

		w := f.do(http.MethodGet, "/api/v1/messages/recent", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.RecentMessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})
}

func TestHandler_SendMessage(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		err            error
		expectCall     bool
		expectedStatus int
		expectedCode   string
	}{
		{name: "accepted", path: "/api/v1/messages/5/send", expectCall: true, expectedStatus: http.StatusAccepted},
		{name: "not found", path: "/api/v1/messages/5/send", err: controller.ErrMessageNotFound, expectCall: true, expectedStatus: http.StatusNotFound, expectedCode: "MESSAGE_NOT_FOUND"},
		{name: "in flight", path: "/api/v1/messages/5/send", err: dispatch.ErrAlreadyInFlight, expectCall: true, expectedStatus: http.StatusConflict, expectedCode: "ALREADY_IN_FLIGHT"},
		{name: "invalid number", path: "/api/v1/messages/5/send", err: dispatch.ErrInvalidNumber, expectCall: true, expectedStatus: http.StatusUnprocessableEntity, expectedCode: "INVALID_NUMBER"},
		{name: "no subscription", path: "/api/v1/messages/5/send", err: dispatch.ErrNoSubscription, expectCall: true, expectedStatus: http.StatusUnprocessableEntity, expectedCode: "NO_SUBSCRIPTION"},
		{name: "transport error", path: "/api/v1/messages/5/send", err: errors.New("modem down"), expectCall: true, expectedStatus: http.StatusInternalServerError, expectedCode: "SEND_FAILED"},
		{name: "bad id", path: "/api/v1/messages/abc/send", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.expectCall {
				f.gateway.EXPECT().SendMessageByID(gomock.Any(), int64(5)).Return(tt.err)
			}

			w := f.do(http.MethodPost, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}
		})
	}
}

func TestHandler_SendAllMessages(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.gateway.EXPECT().StartSendAll().Return(nil),
		f.gateway.EXPECT().StartSendAll().Return(controller.ErrSendAllInProgress),
	)

	w := f.do(http.MethodPost, "/api/v1/messages/send-all", "")
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = f.do(http.MethodPost, "/api/v1/messages/send-all", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SEND_ALL_IN_PROGRESS", decodeError(t, w).Error)
}

func TestHandler_DeleteMessage(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.gateway.EXPECT().SwipeDeleteMessage(gomock.Any(), int64(9)).Return(nil),
		f.gateway.EXPECT().SwipeDeleteMessage(gomock.Any(), int64(9)).Return(errors.New("boom")),
		f.gateway.EXPECT().SwipeDeleteMessage(gomock.Any(), int64(9)).Return(
			fmt.Errorf("failed to delete message 9: %w", &smsapi.StatusError{
				Method: http.MethodGet, Endpoint: "mark-swiped.php", StatusCode: http.StatusNotFound,
			})),
	)

	w := f.do(http.MethodDelete, "/api/v1/messages/9", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(http.MethodDelete, "/api/v1/messages/9", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = f.do(http.MethodDelete, "/api/v1/messages/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MESSAGE_NOT_FOUND", decodeError(t, w).Error)
}

func TestHandler_GetDispatchStatus(t *testing.T) {
	recordedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("outcome recorded", func(t *testing.T) {
		f := newFixture(t)
		f.dispatch.EXPECT().Status(gomock.Any(), int64(4)).Return(&service.DispatchStatus{
			ID:       4,
			InFlight: true,
			Outcome:  &cache.Outcome{Success: false, RecordedAt: recordedAt},
		}, nil)

		w := f.do(http.MethodGet, "/api/v1/messages/4/dispatch", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.DispatchStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(4), resp.Id)
		assert.True(t, resp.InFlight)
		require.NotNil(t, resp.Outcome)
		assert.Equal(t, api.DispatchStatusOutcomeFailed, *resp.Outcome)
		require.NotNil(t, resp.RecordedAt)
		assert.True(t, recordedAt.Equal(*resp.RecordedAt))
	})

	t.Run("nothing recorded", func(t *testing.T) {
		f := newFixture(t)
		f.dispatch.EXPECT().Status(gomock.Any(), int64(4)).Return(&service.DispatchStatus{ID: 4}, nil)

		w := f.do(http.MethodGet, "/api/v1/messages/4/dispatch", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.DispatchStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.InFlight)
		assert.Nil(t, resp.Outcome)
		assert.Nil(t, resp.RecordedAt)
	})

	t.Run("redis unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.dispatch.EXPECT().Status(gomock.Any(), int64(4)).Return(nil, errors.New("connection refused"))

		w := f.do(http.MethodGet, "/api/v1/messages/4/dispatch", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "CACHE_UNAVAILABLE", decodeError(t, w).Error)
	})
}

func TestHandler_SyncQueue(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().SyncQueueStatus().Return([]models.SyncQueueEntry{
			{ID: 1, Success: true, Attempts: 2},
			{ID: 2, Success: false},
		})
		f.gateway.EXPECT().MaxSyncRetries().Return(3)

		w := f.do(http.MethodGet, "/api/v1/sync-queue", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.SyncQueueResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, 3, resp.MaxRetries)
		assert.Equal(t, api.SyncQueueEntryDesiredStatusFailed, resp.Entries[1].DesiredStatus)
	})

	t.Run("retry pass", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().RetryFailedSyncs(gomock.Any()).Return(syncqueue.RunReport{Synced: 2, Failed: 1}, nil)

		w := f.do(http.MethodPost, "/api/v1/sync-queue/retry", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.SyncRunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, api.SyncRunResponse{Synced: 2, Failed: 1}, resp)
	})

	t.Run("retry pass already running", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().RetryFailedSyncs(gomock.Any()).Return(syncqueue.RunReport{}, syncqueue.ErrPassInProgress)

		w := f.do(http.MethodPost, "/api/v1/sync-queue/retry", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "SYNC_IN_PROGRESS", decodeError(t, w).Error)
	})

	t.Run("retry one", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.gateway.EXPECT().RetrySpecificSync(gomock.Any(), int64(4)).Return(nil),
			f.gateway.EXPECT().RetrySpecificSync(gomock.Any(), int64(4)).Return(controller.ErrNotQueued),
			f.gateway.EXPECT().RetrySpecificSync(gomock.Any(), int64(4)).Return(errors.New("server down")),
		)

		assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/v1/sync-queue/4/retry", "").Code)
		assert.Equal(t, http.StatusNotFound, f.do(http.MethodPost, "/api/v1/sync-queue/4/retry", "").Code)
		assert.Equal(t, http.StatusBadGateway, f.do(http.MethodPost, "/api/v1/sync-queue/4/retry", "").Code)
	})

	t.Run("clear", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().ClearSyncQueue().Return(4)

		w := f.do(http.MethodDelete, "/api/v1/sync-queue", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cleared":4}`, w.Body.String())
	})
}

func TestHandler_Stats(t *testing.T) {
	view := service.StatsView{
		Period:  service.PeriodWeek,
		Current: models.StatsData{Total: 50, Sent: 40},
		Weekly:  models.StatsData{Total: 50, Sent: 40},
	}

	t.Run("select period", func(t *testing.T) {
		f := newFixture(t)
		f.stats.EXPECT().SelectPeriod(gomock.Any(), "week").Return(nil)
		f.stats.EXPECT().View().Return(view)

		w := f.do(http.MethodGet, "/api/v1/stats?period=week", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.StatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, api.StatsPeriodWeek, resp.Period)
		assert.Equal(t, 50, resp.Current.Total)
	})

	t.Run("cached view without period", func(t *testing.T) {
		f := newFixture(t)
		f.stats.EXPECT().View().Return(view)

		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/stats", "").Code)
	})

	t.Run("live defaults to the day", func(t *testing.T) {
		f := newFixture(t)
		f.stats.EXPECT().Live(gomock.Any(), "day").Return(models.StatsData{Total: 1, Pending: 1}, nil)

		w := f.do(http.MethodGet, "/api/v1/stats/live", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total":1,"sent":0,"failed":0,"pending":1}`, w.Body.String())
	})

	t.Run("refresh failure", func(t *testing.T) {
		f := newFixture(t)
		f.stats.EXPECT().Refresh(gomock.Any()).Return(errors.New("down"))

		w := f.do(http.MethodPost, "/api/v1/stats/refresh", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "STATISTICS_ERROR", decodeError(t, w).Error)
	})
}

func TestHandler_Sims(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().Snapshot().Return(sampleState())
		f.gateway.EXPECT().SelectedSimShortName().Return("SIM 2")

		w := f.do(http.MethodGet, "/api/v1/sims", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.SimListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []int{0, 1}, resp.AvailableSlots)
		assert.Equal(t, 1, resp.SelectedSlot)
		assert.Len(t, resp.Sims, 2)
	})

	t.Run("detect", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().DetectAvailableSims(gomock.Any()).Return(nil)
		f.gateway.EXPECT().Snapshot().Return(sampleState())
		f.gateway.EXPECT().SelectedSimShortName().Return("SIM 2")

		assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/v1/sims/detect", "").Code)
	})

	tests := []struct {
		name           string
		body           string
		err            error
		expectCall     bool
		expectedStatus int
	}{
		{name: "select", body: `{"slot":0}`, expectCall: true, expectedStatus: http.StatusOK},
		{name: "unavailable slot", body: `{"slot":0}`, err: controller.ErrSlotUnavailable, expectCall: true, expectedStatus: http.StatusUnprocessableEntity},
		{name: "bad body", body: `{"slot":`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.expectCall {
				f.gateway.EXPECT().SelectSimSlot(gomock.Any(), 0).Return(tt.err)
			}
			if tt.expectCall && tt.err == nil {
				f.gateway.EXPECT().Snapshot().Return(sampleState())
				f.gateway.EXPECT().SelectedSimShortName().Return("SIM 1")
			}

			w := f.do(http.MethodPut, "/api/v1/sims/selected", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_Settings(t *testing.T) {
	t.Run("base url", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().SetBaseURL(gomock.Any(), "http://10.0.0.5:3000").Return(nil)
		f.settings.EXPECT().BaseURL().Return("http://10.0.0.5:3000/")

		w := f.do(http.MethodPut, "/api/v1/settings/base-url", `{"base_url":"http://10.0.0.5:3000"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"base_url":"http://10.0.0.5:3000/"}`, w.Body.String())
	})

	t.Run("invalid base url", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().SetBaseURL(gomock.Any(), "nope").Return(smsapi.ErrInvalidBaseURL)

		w := f.do(http.MethodPut, "/api/v1/settings/base-url", `{"base_url":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_BASE_URL", decodeError(t, w).Error)
	})

	t.Run("auto-send", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().SetAutoSend(gomock.Any(), true).Return(nil)
		f.settings.EXPECT().AutoSendEnabled(gomock.Any()).Return(true, nil)

		w := f.do(http.MethodPut, "/api/v1/settings/auto-send", `{"enabled":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = f.do(http.MethodGet, "/api/v1/settings/auto-send", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"enabled":true}`, w.Body.String())
	})

	t.Run("auto-send save failure", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().SetAutoSend(gomock.Any(), false).Return(errors.New("db down"))

		w := f.do(http.MethodPut, "/api/v1/settings/auto-send", `{"enabled":false}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_ReceiveDeliveryReport(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(f *fixture)
		expectedStatus int
	}{
		{
			name: "delivered",
			body: `{"id_sms":12,"delivered":true}`,
			setup: func(f *fixture) {
				f.gateway.EXPECT().MarkDelivered(gomock.Any(), int64(12)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "not delivered is only logged",
			body:           `{"id_sms":12,"delivered":false}`,
			setup:          func(*fixture) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "server failure",
			body: `{"id_sms":12,"delivered":true}`,
			setup: func(f *fixture) {
				f.gateway.EXPECT().MarkDelivered(gomock.Any(), int64(12)).Return(errors.New("down"))
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "missing id",
			body:           `{"delivered":true}`,
			setup:          func(*fixture) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			w := f.do(http.MethodPost, "/api/v1/webhooks/delivery", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
