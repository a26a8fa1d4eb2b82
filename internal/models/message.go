// Package models defines data structures used throughout the application.
package models

import "fmt"

type MessageStatus string

const (
	MessageStatusSent    MessageStatus = "SENT"
	MessageStatusFailed  MessageStatus = "FAILED"
	MessageStatusPending MessageStatus = "PENDING"
)

// ParseMessageStatus maps the server's status text; anything unknown is pending.
func ParseMessageStatus(s string) MessageStatus {
	switch MessageStatus(s) {
	case MessageStatusSent:
		return MessageStatusSent
	case MessageStatusFailed:
		return MessageStatusFailed
	default:
		return MessageStatusPending
	}
}

// Numeric status codes stored by the server in the statut column.
const (
	StatutPending = 0
	StatutSent    = 1
	StatutFailed  = 2
)

// PendingMessage is an SMS the gateway still has to send, with its transient send/sync flags.
type PendingMessage struct {
	ID          int64  `json:"id"`
	Recipient   string `json:"recipient"`
	Message     string `json:"message"`
	IsSending   bool   `json:"is_sending"`
	SyncFailed  bool   `json:"sync_failed"`
	PendingSync bool   `json:"pending_sync"`
	SyncStatus  string `json:"sync_status,omitempty"`
}

// RecentMessage is a dashboard row.
type RecentMessage struct {
	ID        int64         `json:"id"`
	Recipient string        `json:"recipient"`
	Message   string        `json:"message"`
	Time      string        `json:"time"`
	Status    MessageStatus `json:"status"`
}

// StatsData holds aggregate counts for one period.
type StatsData struct {
	Total   int `json:"total"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}

// SimInfo describes an active SIM subscription.
type SimInfo struct {
	SlotIndex      int    `json:"slot_index"`
	SubscriptionID int    `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	CarrierName    string `json:"carrier_name"`
	Number         string `json:"number"`
}

func (s SimInfo) DisplayText() string {
	return fmt.Sprintf("%s (%s)", s.DisplayName, s.CarrierName)
}

// SyncQueueEntry is a status update still owed to the server.
type SyncQueueEntry struct {
	ID       int64 `json:"id"`
	Success  bool  `json:"success"`
	Attempts int   `json:"attempts"`
}
