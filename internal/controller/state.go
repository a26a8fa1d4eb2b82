package controller

import (
	"time"

	"github.com/popeskul/smstask/internal/models"
)

// State is a consistent copy of everything the gateway shows about its work.
// Version grows by one with every change, so readers can tell whether they missed an update.
type State struct {
	Version            uint64                  `json:"version"`
	PendingMessages    []models.PendingMessage `json:"pending_messages"`
	FailedMessages     []models.PendingMessage `json:"failed_messages"`
	RecentMessages     []models.RecentMessage  `json:"recent_messages"`
	IsLoading          bool                    `json:"is_loading"`
	ErrorMessage       string                  `json:"error_message,omitempty"`
	IsNetworkAvailable bool                    `json:"is_network_available"`
	IsAutoSendEnabled  bool                    `json:"is_auto_send_enabled"`
	LastSyncTime       *time.Time              `json:"last_sync_time,omitempty"`
	SyncQueue          []models.SyncQueueEntry `json:"sync_queue"`
	AvailableSimSlots  []int                   `json:"available_sim_slots"`
	SelectedSimSlot    int                     `json:"selected_sim_slot"`
	SimInfoList        []models.SimInfo        `json:"sim_info_list"`
}

type state struct {
	version           uint64
	pending           []models.PendingMessage
	failed            []models.PendingMessage
	recent            []models.RecentMessage
	loading           bool
	errorMessage      string
	networkAvailable  bool
	autoSendEnabled   bool
	lastSync          time.Time
	availableSimSlots []int
	selectedSimSlot   int
	simInfoList       []models.SimInfo
}

func (s *state) snapshot(queue []models.SyncQueueEntry) State {
	out := State{
		Version:            s.version,
		PendingMessages:    append([]models.PendingMessage{}, s.pending...),
		FailedMessages:     append([]models.PendingMessage{}, s.failed...),
		RecentMessages:     append([]models.RecentMessage{}, s.recent...),
		IsLoading:          s.loading,
		ErrorMessage:       s.errorMessage,
		IsNetworkAvailable: s.networkAvailable,
		IsAutoSendEnabled:  s.autoSendEnabled,
		SyncQueue:          queue,
		AvailableSimSlots:  append([]int{}, s.availableSimSlots...),
		SelectedSimSlot:    s.selectedSimSlot,
		SimInfoList:        append([]models.SimInfo{}, s.simInfoList...),
	}
	if !s.lastSync.IsZero() {
		t := s.lastSync
		out.LastSyncTime = &t
	}
	return out
}

func findMessage(list []models.PendingMessage, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func removeMessage(list []models.PendingMessage, id int64) ([]models.PendingMessage, bool) {
	i := findMessage(list, id)
	if i < 0 {
		return list, false
	}
	return append(list[:i:i], list[i+1:]...), true
}

func syncStatusText(success bool) string {
	if success {
		return "to mark sent"
	}
	return "to mark failed"
}
