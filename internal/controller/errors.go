package controller

import (
	"errors"

	"github.com/popeskul/smstask/internal/syncqueue"
)

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrSlotUnavailable   = errors.New("SIM slot is not available")
	ErrSendAllInProgress = errors.New("send-all is already running")
	ErrNotQueued         = syncqueue.ErrNotQueued
)
