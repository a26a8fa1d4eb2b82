package syncqueue_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/syncqueue"
)

func TestQueue_AddResetsAttempts(t *testing.T) {
	q := syncqueue.NewQueue()

	q.Add(7, true)
	assert.Equal(t, 1, q.Fail(7))
	assert.Equal(t, 2, q.Fail(7))

	q.Add(7, false)
	success, queued := q.Desired(7)
	assert.True(t, queued)
	assert.False(t, success)
	assert.Equal(t, 0, q.Attempts(7))
}

func TestQueue_FailUnknownID(t *testing.T) {
	q := syncqueue.NewQueue()

	assert.Equal(t, 0, q.Fail(1))
	assert.Equal(t, 0, q.Len())
}

func TestQueue_EntriesSortedCopy(t *testing.T) {
	q := syncqueue.NewQueue()
	q.Add(30, true)
	q.Add(10, false)
	q.Add(20, true)
	q.Fail(20)

	entries := q.Entries()
	assert.Equal(t, []models.SyncQueueEntry{
		{ID: 10, Success: false, Attempts: 0},
		{ID: 20, Success: true, Attempts: 1},
		{ID: 30, Success: true, Attempts: 0},
	}, entries)

	entries[0].Attempts = 99
	assert.Equal(t, 0, q.Attempts(10))
}

func TestQueue_RemoveAndClear(t *testing.T) {
	q := syncqueue.NewQueue()
	q.Add(1, true)
	q.Add(2, true)

	q.Remove(1)
	_, queued := q.Desired(1)
	assert.False(t, queued)
	assert.Equal(t, 1, q.Len())

	assert.Equal(t, 1, q.Clear())
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Entries())
}

func TestQueue_ConcurrentAccess(t *testing.T) {
	q := syncqueue.NewQueue()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			q.Add(id, id%2 == 0)
			q.Fail(id)
			_ = q.Entries()
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 50, q.Len())
	for _, e := range q.Entries() {
		assert.Equal(t, 1, e.Attempts)
	}
}
