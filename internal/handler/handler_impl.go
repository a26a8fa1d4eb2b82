// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/api"
	"github.com/popeskul/smstask/internal/controller"
	"github.com/popeskul/smstask/internal/dispatch"
	"github.com/popeskul/smstask/internal/middleware"
	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/service"
	"github.com/popeskul/smstask/internal/smsapi"
	"github.com/popeskul/smstask/internal/syncqueue"
)

const (
	errorCodeInvalidRequest   = "INVALID_REQUEST"
	errorCodeMessageNotFound  = "MESSAGE_NOT_FOUND"
	errorCodeAlreadyInFlight  = "ALREADY_IN_FLIGHT"
	errorCodeInvalidNumber    = "INVALID_NUMBER"
	errorCodeNoSubscription   = "NO_SUBSCRIPTION"
	errorCodeSendAllRunning   = "SEND_ALL_IN_PROGRESS"
	errorCodeNotQueued        = "NOT_QUEUED"
	errorCodeSyncRunning      = "SYNC_IN_PROGRESS"
	errorCodeSlotUnavailable  = "SLOT_UNAVAILABLE"
	errorCodeInvalidBaseURL   = "INVALID_BASE_URL"
	errorCodeRemoteFailure    = "REMOTE_SERVER_ERROR"
	errorCodeSendFailed       = "SEND_FAILED"
	errorCodeSettingsFailure  = "SETTINGS_ERROR"
	errorCodeStatisticsFailed = "STATISTICS_ERROR"
	errorCodeCacheUnavailable = "CACHE_UNAVAILABLE"
)

const (
	errorMessageInvalidBody        = "Request body is not valid JSON"
	errorMessageMessageNotFound    = "Message is not in the pending or failed list"
	errorMessageAlreadyInFlight    = "Message is already being sent"
	errorMessageInvalidNumber      = "Recipient phone number is invalid"
	errorMessageNoSubscription     = "No SIM subscription is available"
	errorMessageSendAllRunning     = "Send-all is already running"
	errorMessageNotQueued          = "Message has no queued status update"
	errorMessageSyncRunning        = "A sync pass is already running"
	errorMessageSlotUnavailable    = "SIM slot is not available"
	errorMessageFailedToSend       = "Failed to send message"
	errorMessageFailedToLoad       = "Failed to load messages from the server"
	errorMessageFailedToDelete     = "Failed to delete message"
	errorMessageFailedToSync       = "Failed to sync message status"
	errorMessageFailedToLoadStats  = "Failed to load statistics"
	errorMessageFailedToSave       = "Failed to save settings"
	errorMessageFailedToMarkReport = "Failed to record delivery report"
	errorMessageFailedToReadCache  = "Dispatch state is unavailable"
	errorMessageUnknownOnServer    = "Message is unknown to the server"
)

const (
	actionStatusAccepted = "accepted"
	actionStatusSynced   = "synced"

	actionMessageSendLaunched    = "Send launched"
	actionMessageSendAllLaunched = "Send-all started"
	actionMessageSynced          = "Status synced with the server"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetHealth implements api.ServerInterface.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:           health.Status,
		Timestamp:        time.Now(),
		NetworkAvailable: &health.NetworkAvailable,
		ServerReachable:  &health.ServerReachable,
		SyncQueueSize:    &health.SyncQueueSize,
	}

	if health.SchedulerStatus != "" {
		status := health.SchedulerStatus
		response.SchedulerStatus = &status
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	// Degraded still answers 200 so the local API stays usable while the server is away.
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// GetState implements api.ServerInterface.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, toAPIState(h.service.Gateway.Snapshot(), h.service.Gateway.SelectedSimShortName()))
}

// ListPendingMessages implements api.ServerInterface.
func (h *Handler) ListPendingMessages(w http.ResponseWriter, r *http.Request) {
	h.renderMessages(w, r, h.service.Gateway.Snapshot().PendingMessages)
}

// RefreshPendingMessages implements api.ServerInterface.
func (h *Handler) RefreshPendingMessages(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Gateway.LoadPending(r.Context()); err != nil {
		h.logError(r, "Failed to refresh pending messages", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeRemoteFailure, errorMessageFailedToLoad)
		return
	}
	h.renderMessages(w, r, h.service.Gateway.Snapshot().PendingMessages)
}

// ListFailedMessages implements api.ServerInterface.
func (h *Handler) ListFailedMessages(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Gateway.LoadFailed(r.Context()); err != nil {
		h.logError(r, "Failed to load failed messages", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeRemoteFailure, errorMessageFailedToLoad)
		return
	}
	h.renderMessages(w, r, h.service.Gateway.Snapshot().FailedMessages)
}

// ListRecentMessages implements api.ServerInterface.
func (h *Handler) ListRecentMessages(w http.ResponseWriter, r *http.Request) {
	// The dashboard keeps the last list when the server does not answer.
	_ = h.service.Gateway.LoadRecent(r.Context())

	recent := toAPIRecent(h.service.Gateway.Snapshot().RecentMessages)
	render.JSON(w, r, api.RecentMessageListResponse{Messages: recent, Count: len(recent)})
}

// SendMessage implements api.ServerInterface.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, id int64) {
	err := h.service.Gateway.SendMessageByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrMessageNotFound):
			h.sendError(w, r, http.StatusNotFound, errorCodeMessageNotFound, errorMessageMessageNotFound)
		case errors.Is(err, dispatch.ErrAlreadyInFlight):
			h.sendError(w, r, http.StatusConflict, errorCodeAlreadyInFlight, errorMessageAlreadyInFlight)
		case errors.Is(err, dispatch.ErrInvalidNumber):
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeInvalidNumber, errorMessageInvalidNumber)
		case errors.Is(err, dispatch.ErrNoSubscription):
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeNoSubscription, errorMessageNoSubscription)
		default:
			h.logError(r, "Failed to send message", err, zap.Int64("smsID", id))
			h.sendError(w, r, http.StatusInternalServerError, errorCodeSendFailed, errorMessageFailedToSend)
		}
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, api.ActionResponse{Status: actionStatusAccepted, Message: actionMessageSendLaunched})
}

// SendAllMessages implements api.ServerInterface.
func (h *Handler) SendAllMessages(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Gateway.StartSendAll(); err != nil {
		if errors.Is(err, controller.ErrSendAllInProgress) {
			h.sendError(w, r, http.StatusConflict, errorCodeSendAllRunning, errorMessageSendAllRunning)
			return
		}
		h.logError(r, "Failed to start send-all", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, api.ActionResponse{Status: actionStatusAccepted, Message: actionMessageSendAllLaunched})
}

// DeleteMessage implements api.ServerInterface.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.Gateway.SwipeDeleteMessage(r.Context(), id); err != nil {
		if smsapi.IsStatus(err, http.StatusNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeMessageNotFound, errorMessageUnknownOnServer)
			return
		}
		h.logError(r, "Failed to delete message", err, zap.Int64("smsID", id))
		h.sendError(w, r, http.StatusBadGateway, errorCodeRemoteFailure, errorMessageFailedToDelete)
		return
	}
	render.NoContent(w, r)
}

// GetDispatchStatus implements api.ServerInterface.
func (h *Handler) GetDispatchStatus(w http.ResponseWriter, r *http.Request, id int64) {
	status, err := h.service.Dispatch.Status(r.Context(), id)
	if err != nil {
		h.logError(r, "Failed to read dispatch status", err, zap.Int64("smsID", id))
		h.sendError(w, r, http.StatusServiceUnavailable, errorCodeCacheUnavailable, errorMessageFailedToReadCache)
		return
	}
	render.JSON(w, r, toAPIDispatchStatus(status))
}

// GetSyncQueue implements api.ServerInterface.
func (h *Handler) GetSyncQueue(w http.ResponseWriter, r *http.Request) {
	entries := toAPISyncQueue(h.service.Gateway.SyncQueueStatus())
	render.JSON(w, r, api.SyncQueueResponse{
		Entries:    entries,
		Count:      len(entries),
		MaxRetries: h.service.Gateway.MaxSyncRetries(),
	})
}

// RetrySyncQueue implements api.ServerInterface.
func (h *Handler) RetrySyncQueue(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Gateway.RetryFailedSyncs(r.Context())
	if err != nil {
		if errors.Is(err, syncqueue.ErrPassInProgress) {
			h.sendError(w, r, http.StatusConflict, errorCodeSyncRunning, errorMessageSyncRunning)
			return
		}
		h.logError(r, "Sync pass failed", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
		return
	}

	render.JSON(w, r, api.SyncRunResponse{
		Synced:    report.Synced,
		Failed:    report.Failed,
		Abandoned: report.Abandoned,
		Skipped:   report.Skipped,
	})
}

// RetrySyncEntry implements api.ServerInterface.
func (h *Handler) RetrySyncEntry(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.Gateway.RetrySpecificSync(r.Context(), id); err != nil {
		if errors.Is(err, syncqueue.ErrNotQueued) {
			h.sendError(w, r, http.StatusNotFound, errorCodeNotQueued, errorMessageNotQueued)
			return
		}
		h.logError(r, "Manual sync failed", err, zap.Int64("smsID", id))
		h.sendError(w, r, http.StatusBadGateway, errorCodeRemoteFailure, errorMessageFailedToSync)
		return
	}
	render.JSON(w, r, api.ActionResponse{Status: actionStatusSynced, Message: actionMessageSynced})
}

// ClearSyncQueue implements api.ServerInterface.
func (h *Handler) ClearSyncQueue(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.ClearSyncQueueResponse{Cleared: h.service.Gateway.ClearSyncQueue()})
}

// GetStats implements api.ServerInterface.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request, params api.GetStatsParams) {
	if params.Period != nil {
		// A failed reload is reported through the view's error message.
		if err := h.service.Stats.SelectPeriod(r.Context(), string(*params.Period)); err != nil {
			h.logError(r, "Failed to select statistics period", err)
		}
	}
	render.JSON(w, r, toAPIStats(h.service.Stats.View()))
}

// GetLiveStats implements api.ServerInterface.
func (h *Handler) GetLiveStats(w http.ResponseWriter, r *http.Request, params api.GetLiveStatsParams) {
	period := service.PeriodDay
	if params.Period != nil {
		period = string(*params.Period)
	}

	stats, err := h.service.Stats.Live(r.Context(), period)
	if err != nil {
		h.logError(r, "Failed to load live statistics", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeStatisticsFailed, errorMessageFailedToLoadStats)
		return
	}
	render.JSON(w, r, toAPIStatsData(stats))
}

// RefreshStats implements api.ServerInterface.
func (h *Handler) RefreshStats(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Stats.Refresh(r.Context()); err != nil {
		h.logError(r, "Failed to refresh statistics", err)
		h.sendError(w, r, http.StatusBadGateway, errorCodeStatisticsFailed, errorMessageFailedToLoadStats)
		return
	}
	render.JSON(w, r, toAPIStats(h.service.Stats.View()))
}

// ListSims implements api.ServerInterface.
func (h *Handler) ListSims(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, toAPISimList(h.service.Gateway.Snapshot(), h.service.Gateway.SelectedSimShortName()))
}

// DetectSims implements api.ServerInterface.
func (h *Handler) DetectSims(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Gateway.DetectAvailableSims(r.Context()); err != nil {
		h.logError(r, "SIM detection failed", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
		return
	}
	h.ListSims(w, r)
}

// SelectSim implements api.ServerInterface.
func (h *Handler) SelectSim(w http.ResponseWriter, r *http.Request) {
	var body api.SelectSimJSONRequestBody
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	if err := h.service.Gateway.SelectSimSlot(r.Context(), body.Slot); err != nil {
		if errors.Is(err, controller.ErrSlotUnavailable) {
			h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeSlotUnavailable, errorMessageSlotUnavailable)
			return
		}
		h.logError(r, "Failed to select SIM slot", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
		return
	}
	h.ListSims(w, r)
}

// GetBaseURL implements api.ServerInterface.
func (h *Handler) GetBaseURL(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.BaseURLSettings{BaseUrl: h.service.Settings.BaseURL()})
}

// UpdateBaseURL implements api.ServerInterface.
func (h *Handler) UpdateBaseURL(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateBaseURLJSONRequestBody
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	if err := h.service.Settings.SetBaseURL(r.Context(), body.BaseUrl); err != nil {
		if errors.Is(err, smsapi.ErrInvalidBaseURL) {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBaseURL, err.Error())
			return
		}
		h.logError(r, "Failed to save base URL", err)
		h.sendError(w, r, http.StatusInternalServerError, errorCodeSettingsFailure, errorMessageFailedToSave)
		return
	}
	h.GetBaseURL(w, r)
}

// GetAutoSend implements api.ServerInterface.
func (h *Handler) GetAutoSend(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.service.Settings.AutoSendEnabled(r.Context())
	if err != nil {
		h.logError(r, "Failed to read auto-send flag", err)
		h.sendError(w, r, http.StatusInternalServerError, errorCodeSettingsFailure, middleware.ErrorMessageInternal)
		return
	}
	render.JSON(w, r, api.AutoSendSettings{Enabled: enabled})
}

// UpdateAutoSend implements api.ServerInterface.
func (h *Handler) UpdateAutoSend(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateAutoSendJSONRequestBody
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	if err := h.service.Settings.SetAutoSend(r.Context(), body.Enabled); err != nil {
		h.logError(r, "Failed to save auto-send flag", err)
		h.sendError(w, r, http.StatusInternalServerError, errorCodeSettingsFailure, errorMessageFailedToSave)
		return
	}
	render.JSON(w, r, api.AutoSendSettings{Enabled: body.Enabled})
}

// ReceiveDeliveryReport implements api.ServerInterface.
func (h *Handler) ReceiveDeliveryReport(w http.ResponseWriter, r *http.Request) {
	var body api.ReceiveDeliveryReportJSONRequestBody
	if err := render.DecodeJSON(r.Body, &body); err != nil || body.IdSms <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	if !body.Delivered {
		h.logger.Info("Delivery not confirmed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Int64("smsID", body.IdSms))
		render.NoContent(w, r)
		return
	}

	if err := h.service.Gateway.MarkDelivered(r.Context(), body.IdSms); err != nil {
		h.logError(r, "Failed to record delivery", err, zap.Int64("smsID", body.IdSms))
		h.sendError(w, r, http.StatusBadGateway, errorCodeRemoteFailure, errorMessageFailedToMarkReport)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) renderMessages(w http.ResponseWriter, r *http.Request, list []models.PendingMessage) {
	messages := toAPIPending(list)
	render.JSON(w, r, api.MessageListResponse{Messages: messages, Count: len(messages)})
}

func (h *Handler) logError(r *http.Request, msg string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.logger.Error(msg, fields...)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:   errorCode,
		Message: message,
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}
