package handler

import (
	"github.com/popeskul/smstask/internal/api"
	"github.com/popeskul/smstask/internal/controller"
	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/service"
)

func toAPIPending(list []models.PendingMessage) []api.PendingMessage {
	out := make([]api.PendingMessage, 0, len(list))
	for _, m := range list {
		msg := api.PendingMessage{
			Id:          m.ID,
			Recipient:   m.Recipient,
			Message:     m.Message,
			IsSending:   m.IsSending,
			SyncFailed:  m.SyncFailed,
			PendingSync: m.PendingSync,
		}
		if m.SyncStatus != "" {
			status := m.SyncStatus
			msg.SyncStatus = &status
		}
		out = append(out, msg)
	}
	return out
}

func toAPIRecent(list []models.RecentMessage) []api.RecentMessage {
	out := make([]api.RecentMessage, 0, len(list))
	for _, m := range list {
		out = append(out, api.RecentMessage{
			Id:        m.ID,
			Recipient: m.Recipient,
			Message:   m.Message,
			Time:      m.Time,
			Status:    api.RecentMessageStatus(m.Status),
		})
	}
	return out
}

func toAPISyncQueue(entries []models.SyncQueueEntry) []api.SyncQueueEntry {
	out := make([]api.SyncQueueEntry, 0, len(entries))
	for _, e := range entries {
		desired := api.SyncQueueEntryDesiredStatusFailed
		if e.Success {
			desired = api.SyncQueueEntryDesiredStatusSent
		}
		out = append(out, api.SyncQueueEntry{
			Id:            e.ID,
			DesiredStatus: desired,
			Attempts:      e.Attempts,
		})
	}
	return out
}

func toAPIDispatchStatus(s *service.DispatchStatus) api.DispatchStatus {
	resp := api.DispatchStatus{Id: s.ID, InFlight: s.InFlight}
	if s.Outcome != nil {
		outcome := api.DispatchStatusOutcomeFailed
		if s.Outcome.Success {
			outcome = api.DispatchStatusOutcomeSent
		}
		recordedAt := s.Outcome.RecordedAt
		resp.Outcome = &outcome
		resp.RecordedAt = &recordedAt
	}
	return resp
}

func toAPISims(infos []models.SimInfo) []api.SimInfo {
	out := make([]api.SimInfo, 0, len(infos))
	for _, s := range infos {
		out = append(out, api.SimInfo{
			SlotIndex:      s.SlotIndex,
			SubscriptionId: s.SubscriptionID,
			DisplayName:    s.DisplayName,
			CarrierName:    s.CarrierName,
			Number:         s.Number,
			DisplayText:    s.DisplayText(),
		})
	}
	return out
}

func toAPIState(s controller.State, simName string) api.StateResponse {
	resp := api.StateResponse{
		Version:            int64(s.Version),
		PendingMessages:    toAPIPending(s.PendingMessages),
		FailedMessages:     toAPIPending(s.FailedMessages),
		RecentMessages:     toAPIRecent(s.RecentMessages),
		IsLoading:          s.IsLoading,
		IsNetworkAvailable: s.IsNetworkAvailable,
		IsAutoSendEnabled:  s.IsAutoSendEnabled,
		LastSyncTime:       s.LastSyncTime,
		SyncQueue:          toAPISyncQueue(s.SyncQueue),
		AvailableSimSlots:  append([]int{}, s.AvailableSimSlots...),
		SelectedSimSlot:    s.SelectedSimSlot,
		SelectedSimName:    simName,
		SimInfoList:        toAPISims(s.SimInfoList),
	}
	if s.ErrorMessage != "" {
		msg := s.ErrorMessage
		resp.ErrorMessage = &msg
	}
	return resp
}

func toAPISimList(s controller.State, simName string) api.SimListResponse {
	return api.SimListResponse{
		AvailableSlots: append([]int{}, s.AvailableSimSlots...),
		SelectedSlot:   s.SelectedSimSlot,
		SelectedName:   simName,
		Sims:           toAPISims(s.SimInfoList),
	}
}

func toAPIStatsData(d models.StatsData) api.StatsData {
	return api.StatsData{Total: d.Total, Sent: d.Sent, Failed: d.Failed, Pending: d.Pending}
}

func toAPIStats(v service.StatsView) api.StatsResponse {
	resp := api.StatsResponse{
		Period:  api.StatsPeriod(v.Period),
		Current: toAPIStatsData(v.Current),
		Daily:   toAPIStatsData(v.Daily),
		Weekly:  toAPIStatsData(v.Weekly),
		Monthly: toAPIStatsData(v.Monthly),
	}
	if v.RecentBreakdown != nil {
		b := toAPIStatsData(*v.RecentBreakdown)
		resp.RecentBreakdown = &b
	}
	if v.ErrorMessage != "" {
		msg := v.ErrorMessage
		resp.ErrorMessage = &msg
	}
	return resp
}
