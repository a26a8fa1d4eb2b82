// Package syncqueue reconciles message statuses the remote server has not acknowledged yet.
//
// The queue lives in memory only. Entries map a message id to the status the server still has
// to record (true for sent, false for failed) together with the number of failed attempts.
package syncqueue

import (
	"sort"
	"sync"

	"github.com/popeskul/smstask/internal/models"
)

type Queue struct {
	mu       sync.RWMutex
	desired  map[int64]bool
	attempts map[int64]int
}

func NewQueue() *Queue {
	return &Queue{
		desired:  make(map[int64]bool),
		attempts: make(map[int64]int),
	}
}

// Add queues a status for id and resets its attempt count.
func (q *Queue) Add(id int64, success bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.desired[id] = success
	q.attempts[id] = 0
}

func (q *Queue) Remove(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.desired, id)
	delete(q.attempts, id)
}

// removeIf drops id only while it still carries the given status.
func (q *Queue) removeIf(id int64, success bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if d, ok := q.desired[id]; !ok || d != success {
		return false
	}
	delete(q.desired, id)
	delete(q.attempts, id)
	return true
}

func (q *Queue) Desired(id int64) (success bool, queued bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	success, queued = q.desired[id]
	return success, queued
}

func (q *Queue) Attempts(id int64) int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.attempts[id]
}

// Fail records a failed attempt and returns the new count. Unknown ids return 0.
func (q *Queue) Fail(id int64) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.desired[id]; !ok {
		return 0
	}
	q.attempts[id]++
	return q.attempts[id]
}

func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.desired)
}

// Entries returns a copy of the queue sorted by id.
func (q *Queue) Entries() []models.SyncQueueEntry {
	q.mu.RLock()
	entries := make([]models.SyncQueueEntry, 0, len(q.desired))
	for id, success := range q.desired {
		entries = append(entries, models.SyncQueueEntry{ID: id, Success: success, Attempts: q.attempts[id]})
	}
	q.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Clear drops every entry and returns how many there were.
func (q *Queue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.desired)
	q.desired = make(map[int64]bool)
	q.attempts = make(map[int64]int)
	return n
}
