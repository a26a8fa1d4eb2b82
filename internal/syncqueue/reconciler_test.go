package syncqueue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/syncqueue"
	"github.com/popeskul/smstask/internal/syncqueue/mocks"
)

type callbacks struct {
	synced    map[int64]bool
	abandoned map[int64]bool
}

func newCallbacks() *callbacks {
	return &callbacks{synced: map[int64]bool{}, abandoned: map[int64]bool{}}
}

func (c *callbacks) options() []syncqueue.ReconcilerOption {
	return []syncqueue.ReconcilerOption{
		syncqueue.WithItemDelay(0),
		syncqueue.WithOnSynced(func(id int64, success bool) { c.synced[id] = success }),
		syncqueue.WithOnAbandoned(func(id int64, success bool) { c.abandoned[id] = success }),
	}
}

var errServer = errors.New("server unreachable")

func TestReconciler_Run(t *testing.T) {
	tests := []struct {
		name              string
		setup             func(q *syncqueue.Queue, p *mocks.MockStatusPusher)
		expectedReport    syncqueue.RunReport
		expectedLen       int
		expectedSynced    map[int64]bool
		expectedAbandoned map[int64]bool
	}{
		{
			name:              "empty queue",
			setup:             func(q *syncqueue.Queue, p *mocks.MockStatusPusher) {},
			expectedSynced:    map[int64]bool{},
			expectedAbandoned: map[int64]bool{},
		},
		{
			name: "all entries synced",
			setup: func(q *syncqueue.Queue, p *mocks.MockStatusPusher) {
				q.Add(1, true)
				q.Add(2, false)
				p.EXPECT().PushStatus(gomock.Any(), int64(1), true).Return(nil)
				p.EXPECT().PushStatus(gomock.Any(), int64(2), false).Return(nil)
			},
			expectedReport:    syncqueue.RunReport{Synced: 2},
			expectedSynced:    map[int64]bool{1: true, 2: false},
			expectedAbandoned: map[int64]bool{},
		},
		{
			name: "failure keeps entry below max",
			setup: func(q *syncqueue.Queue, p *mocks.MockStatusPusher) {
				q.Add(1, true)
				p.EXPECT().PushStatus(gomock.Any(), int64(1), true).Return(errServer)
			},
			expectedReport:    syncqueue.RunReport{Failed: 1},
			expectedLen:       1,
			expectedSynced:    map[int64]bool{},
			expectedAbandoned: map[int64]bool{},
		},
		{
			name: "third failure abandons entry",
			setup: func(q *syncqueue.Queue, p *mocks.MockStatusPusher) {
				q.Add(1, true)
				q.Fail(1)
				q.Fail(1)
				p.EXPECT().PushStatus(gomock.Any(), int64(1), true).Return(errServer)
			},
			expectedReport:    syncqueue.RunReport{Failed: 1, Abandoned: 1},
			expectedSynced:    map[int64]bool{},
			expectedAbandoned: map[int64]bool{1: true},
		},
		{
			name: "exhausted entry is not retried",
			setup: func(q *syncqueue.Queue, p *mocks.MockStatusPusher) {
				q.Add(1, false)
				q.Fail(1)
				q.Fail(1)
				q.Fail(1)
			},
			expectedReport:    syncqueue.RunReport{Skipped: 1},
			expectedLen:       1,
			expectedSynced:    map[int64]bool{},
			expectedAbandoned: map[int64]bool{},
		},
		{
			name: "mixed outcomes",
			setup: func(q *syncqueue.Queue, p *mocks.MockStatusPusher) {
				q.Add(1, true)
				q.Add(2, true)
				q.Fail(2)
				q.Fail(2)
				q.Add(3, false)
				gomock.InOrder(
					p.EXPECT().PushStatus(gomock.Any(), int64(1), true).Return(nil),
					p.EXPECT().PushStatus(gomock.Any(), int64(2), true).Return(errServer),
					p.EXPECT().PushStatus(gomock.Any(), int64(3), false).Return(errServer),
				)
			},
			expectedReport:    syncqueue.RunReport{Synced: 1, Failed: 2, Abandoned: 1},
			expectedLen:       1,
			expectedSynced:    map[int64]bool{1: true},
			expectedAbandoned: map[int64]bool{2: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pusher := mocks.NewMockStatusPusher(ctrl)
			q := syncqueue.NewQueue()
			cb := newCallbacks()
			tt.setup(q, pusher)

			r := syncqueue.NewReconciler(q, pusher, zap.NewNop(), cb.options()...)
			report, err := r.Run(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedReport, report)
			assert.Equal(t, tt.expectedLen, q.Len())
			assert.Equal(t, tt.expectedSynced, cb.synced)
			assert.Equal(t, tt.expectedAbandoned, cb.abandoned)
		})
	}
}

func TestReconciler_Run_NeverExceedsMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mocks.NewMockStatusPusher(ctrl)
	q := syncqueue.NewQueue()
	cb := newCallbacks()
	q.Add(5, true)

	pusher.EXPECT().PushStatus(gomock.Any(), int64(5), true).Return(errServer).Times(2)

	r := syncqueue.NewReconciler(q, pusher, zap.NewNop(), append(cb.options(), syncqueue.WithMaxRetries(2))...)
	for i := 0; i < 4; i++ {
		_, err := r.Run(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, map[int64]bool{5: true}, cb.abandoned)
}

func TestReconciler_Run_EntryRequeuedDuringPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mocks.NewMockStatusPusher(ctrl)
	q := syncqueue.NewQueue()
	cb := newCallbacks()
	q.Add(1, true)

	pusher.EXPECT().PushStatus(gomock.Any(), int64(1), true).
		DoAndReturn(func(context.Context, int64, bool) error {
			q.Add(1, false)
			return nil
		})

	r := syncqueue.NewReconciler(q, pusher, zap.NewNop(), cb.options()...)
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	success, queued := q.Desired(1)
	assert.True(t, queued)
	assert.False(t, success)
	assert.Empty(t, cb.synced)
}

func TestReconciler_RetryOne_EntryRequeuedDuringPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mocks.NewMockStatusPusher(ctrl)
	q := syncqueue.NewQueue()
	cb := newCallbacks()
	q.Add(3, true)

	pusher.EXPECT().PushStatus(gomock.Any(), int64(3), true).
		DoAndReturn(func(context.Context, int64, bool) error {
			q.Add(3, false)
			return nil
		})

	r := syncqueue.NewReconciler(q, pusher, zap.NewNop(), cb.options()...)
	require.NoError(t, r.RetryOne(context.Background(), 3))

	success, queued := q.Desired(3)
	assert.True(t, queued)
	assert.False(t, success)
	assert.Empty(t, cb.synced)
}

func TestReconciler_Run_ContextCanceledDuringDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mocks.NewMockStatusPusher(ctrl)
	q := syncqueue.NewQueue()
	q.Add(1, true)
	q.Add(2, true)

	ctx, cancel := context.WithCancel(context.Background())
	pusher.EXPECT().PushStatus(gomock.Any(), int64(1), true).
		DoAndReturn(func(context.Context, int64, bool) error {
			cancel()
			return nil
		})

	r := syncqueue.NewReconciler(q, pusher, zap.NewNop(), syncqueue.WithItemDelay(time.Minute))
	report, err := r.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, 1, q.Len())
}

func TestReconciler_Run_SinglePassAtATime(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mocks.NewMockStatusPusher(ctrl)
	q := syncqueue.NewQueue()
	q.Add(1, true)

	started := make(chan struct{})
	release := make(chan struct{})
	pusher.EXPECT().PushStatus(gomock.Any(), int64(1), true).
		DoAndReturn(func(context.Context, int64, bool) error {
			close(started)
			<-release
			return nil
		})

	r := syncqueue.NewReconciler(q, pusher, zap.NewNop(), syncqueue.WithItemDelay(0))

	done := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background())
		done <- err
	}()

	<-started
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, syncqueue.ErrPassInProgress)

	close(release)
	assert.NoError(t, <-done)
}

func TestReconciler_RetryOne(t *testing.T) {
	tests := []struct {
		name           string
		queued         bool
		pushErr        error
		expectedErr    error
		expectedLen    int
		expectedSynced map[int64]bool
	}{
		{name: "not queued", queued: false, expectedErr: syncqueue.ErrNotQueued, expectedSynced: map[int64]bool{}},
		{name: "success", queued: true, expectedSynced: map[int64]bool{9: false}},
		{name: "failure leaves entry", queued: true, pushErr: errServer, expectedErr: errServer, expectedLen: 1, expectedSynced: map[int64]bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pusher := mocks.NewMockStatusPusher(ctrl)
			q := syncqueue.NewQueue()
			cb := newCallbacks()

			if tt.queued {
				q.Add(9, false)
				q.Fail(9)
				pusher.EXPECT().PushStatus(gomock.Any(), int64(9), false).Return(tt.pushErr)
			}

			r := syncqueue.NewReconciler(q, pusher, zap.NewNop(), cb.options()...)
			err := r.RetryOne(context.Background(), 9)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedLen, q.Len())
			assert.Equal(t, tt.expectedSynced, cb.synced)
			if tt.pushErr != nil {
				assert.Equal(t, 1, q.Attempts(9))
			}
		})
	}
}
