package syncqueue

import "context"

// StatusPusher records a message status on the remote server.
type StatusPusher interface {
	PushStatus(ctx context.Context, id int64, success bool) error
}

// PusherFunc adapts a function to StatusPusher.
type PusherFunc func(ctx context.Context, id int64, success bool) error

func (f PusherFunc) PushStatus(ctx context.Context, id int64, success bool) error {
	return f(ctx, id, success)
}
