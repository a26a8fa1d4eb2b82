package syncqueue

import "errors"

var (
	ErrNotQueued      = errors.New("message is not in the sync queue")
	ErrPassInProgress = errors.New("sync pass already in progress")
)
