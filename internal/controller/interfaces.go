package controller

import (
	"context"

	"github.com/popeskul/smstask/internal/dispatch"
	"github.com/popeskul/smstask/internal/models"
)

// Sender hands messages to the radio and reports each outcome once.
type Sender interface {
	SendHybrid(ctx context.Context, id int64, phone, text string, slot int) error
	SetResultHandler(h dispatch.ResultHandler)
	SelectSimSlot(slot int)
	AvailableSimSlots(ctx context.Context) []int
	SimInfoList(ctx context.Context) []models.SimInfo
}

// SimPreferences persists the chosen SIM slot.
type SimPreferences interface {
	SelectedSimSlot(ctx context.Context) (int, error)
	SaveSelectedSimSlot(ctx context.Context, slot int) error
}

// NetworkChecker reports whether the remote server is reachable.
type NetworkChecker interface {
	IsAvailable(ctx context.Context) bool
}
