// Package controller owns the gateway state and drives fetching, sending and status reconciliation.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/dispatch"
	"github.com/popeskul/smstask/internal/models"
	"github.com/popeskul/smstask/internal/scheduler"
	"github.com/popeskul/smstask/internal/smsapi"
	"github.com/popeskul/smstask/internal/syncqueue"
)

type Controller struct {
	api     smsapi.Client
	sender  Sender
	prefs   SimPreferences
	network NetworkChecker
	cfg     config.GatewayConfig
	logger  *zap.Logger

	queue      *syncqueue.Queue
	reconciler *syncqueue.Reconciler

	mu    sync.RWMutex
	state state

	sendAllRunning atomic.Bool

	runCtx    context.Context
	cancelRun context.CancelFunc
	wg        sync.WaitGroup

	networkScheduler *scheduler.Scheduler
	syncScheduler    *scheduler.Scheduler
}

func New(
	cfg config.GatewayConfig,
	api smsapi.Client,
	sender Sender,
	prefs SimPreferences,
	network NetworkChecker,
	logger *zap.Logger,
) *Controller {
	runCtx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		api:       api,
		sender:    sender,
		prefs:     prefs,
		network:   network,
		cfg:       cfg,
		logger:    logger,
		queue:     syncqueue.NewQueue(),
		runCtx:    runCtx,
		cancelRun: cancel,
		state: state{
			selectedSimSlot:   dispatch.DefaultSlot,
			availableSimSlots: []int{},
			networkAvailable:  true,
		},
	}

	c.reconciler = syncqueue.NewReconciler(c.queue, syncqueue.PusherFunc(c.pushStatus), logger,
		syncqueue.WithMaxRetries(cfg.MaxSyncRetries),
		syncqueue.WithItemDelay(cfg.SyncItemDelay()),
		syncqueue.WithOnSynced(c.applySynced),
		syncqueue.WithOnAbandoned(c.applyAbandoned),
	)

	c.networkScheduler = scheduler.NewScheduler(logger, cfg.NetworkInterval(), c.networkTask,
		scheduler.WithName("network-check"))
	c.syncScheduler = scheduler.NewScheduler(logger, cfg.SyncInterval(), c.syncTask,
		scheduler.WithName("sync-queue"),
		scheduler.WithDelayedStart(),
		scheduler.WithTaskTimeout(10*time.Minute))

	sender.SetResultHandler(c.handleResult)
	return c
}

// Start launches the network and sync-queue checkers.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.networkScheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start network checker: %w", err)
	}
	if err := c.syncScheduler.Start(ctx); err != nil {
		_ = c.networkScheduler.Stop()
		return fmt.Errorf("failed to start sync checker: %w", err)
	}
	return nil
}

// Stop halts the background work and waits for delayed reloads and send-all to return.
func (c *Controller) Stop() {
	for _, s := range []*scheduler.Scheduler{c.networkScheduler, c.syncScheduler} {
		if s.IsRunning() {
			if err := s.Stop(); err != nil {
				c.logger.Warn("Failed to stop scheduler", zap.Error(err))
			}
		}
	}
	c.cancelRun()
	c.wg.Wait()
}

// IsRunning reports whether the background checkers are active.
func (c *Controller) IsRunning() bool {
	return c.networkScheduler.IsRunning() && c.syncScheduler.IsRunning()
}

func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.snapshot(c.queue.Entries())
}

func (c *Controller) update(fn func(s *state)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
	c.state.version++
}

// LoadPending replaces the pending list with the server's current one. Local flags of
// messages that are still being sent or still owe a status update are carried over.
func (c *Controller) LoadPending(ctx context.Context) error {
	c.update(func(s *state) {
		s.loading = true
		s.errorMessage = ""
	})

	resp, err := c.api.GetPending(ctx, c.cfg.FetchLimit)
	if err != nil {
		c.logger.Error("Failed to load pending messages", zap.Error(err))
		c.update(func(s *state) {
			s.loading = false
			s.errorMessage = fmt.Sprintf("load pending messages: %v", err)
		})
		return fmt.Errorf("failed to load pending messages: %w", err)
	}

	c.update(func(s *state) {
		s.pending = c.mergeFresh(toPending(resp), s.pending)
		s.loading = false
		s.lastSync = time.Now()
	})
	c.logger.Debug("Pending messages loaded", zap.Int("count", len(resp)))
	return nil
}

func (c *Controller) LoadFailed(ctx context.Context) error {
	c.update(func(s *state) {
		s.loading = true
		s.errorMessage = ""
	})

	resp, err := c.api.GetFailed(ctx, c.cfg.FetchLimit)
	if err != nil {
		c.logger.Error("Failed to load failed messages", zap.Error(err))
		c.update(func(s *state) {
			s.loading = false
			s.errorMessage = fmt.Sprintf("load failed messages: %v", err)
		})
		return fmt.Errorf("failed to load failed messages: %w", err)
	}

	c.update(func(s *state) {
		s.failed = c.mergeFresh(toPending(resp), s.failed)
		s.loading = false
	})
	return nil
}

// LoadRecent refreshes the recent messages. Its errors never reach the error message.
func (c *Controller) LoadRecent(ctx context.Context) error {
	resp, err := c.api.GetRecent(ctx, c.cfg.RecentLimit)
	if err != nil {
		c.logger.Debug("Failed to load recent messages", zap.Error(err))
		return fmt.Errorf("failed to load recent messages: %w", err)
	}

	recent := make([]models.RecentMessage, 0, len(resp))
	for _, r := range resp {
		recent = append(recent, r.ToRecentMessage())
	}
	c.update(func(s *state) { s.recent = recent })
	return nil
}

func (c *Controller) RefreshAll(ctx context.Context) error {
	err := c.LoadPending(ctx)
	_ = c.LoadRecent(ctx)
	return err
}

func toPending(resp []models.SmsPendingResponse) []models.PendingMessage {
	out := make([]models.PendingMessage, 0, len(resp))
	for _, r := range resp {
		out = append(out, r.ToPendingMessage())
	}
	return out
}

func (c *Controller) mergeFresh(fresh, previous []models.PendingMessage) []models.PendingMessage {
	sending := make(map[int64]bool, len(previous))
	for _, p := range previous {
		if p.IsSending {
			sending[p.ID] = true
		}
	}

	for i := range fresh {
		fresh[i].IsSending = sending[fresh[i].ID]
		if desired, queued := c.queue.Desired(fresh[i].ID); queued {
			fresh[i].IsSending = false
			fresh[i].PendingSync = true
			fresh[i].SyncStatus = syncStatusText(desired)
		}
	}
	return fresh
}

// FindPending returns the pending message with the given id.
func (c *Controller) FindPending(id int64) (models.PendingMessage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := findMessage(c.state.pending, id); i >= 0 {
		return c.state.pending[i], nil
	}
	if i := findMessage(c.state.failed, id); i >= 0 {
		return c.state.failed[i], nil
	}
	return models.PendingMessage{}, ErrMessageNotFound
}

func (c *Controller) setSending(id int64, sending bool) {
	c.update(func(s *state) {
		for _, list := range [][]models.PendingMessage{s.pending, s.failed} {
			if i := findMessage(list, id); i >= 0 {
				list[i].IsSending = sending
			}
		}
	})
}

// SendMessageHybrid hands msg to the radio with the selected SIM slot. The outcome arrives
// later through MarkMessageStatus.
func (c *Controller) SendMessageHybrid(ctx context.Context, msg models.PendingMessage) error {
	c.setSending(msg.ID, true)

	slot := c.SelectedSimSlot()
	err := c.sender.SendHybrid(ctx, msg.ID, msg.Recipient, msg.Message, slot)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dispatch.ErrAlreadyInFlight):
		c.logger.Info("Message already being sent", zap.Int64("smsID", msg.ID))
		return err
	default:
		c.logger.Error("Failed to launch send", zap.Int64("smsID", msg.ID), zap.Error(err))
		c.update(func(s *state) { s.errorMessage = fmt.Sprintf("send message %d: %v", msg.ID, err) })
		c.setSending(msg.ID, false)
		return err
	}
}

// SendMessageByID sends a message of the pending or failed list.
func (c *Controller) SendMessageByID(ctx context.Context, id int64) error {
	msg, err := c.FindPending(id)
	if err != nil {
		return err
	}
	return c.SendMessageHybrid(ctx, msg)
}

// SendAllPendingHybrid sends every pending message with SendSpacing between two sends,
// then reloads the pending list after RefreshDelay. It returns how many sends were launched.
// Messages already sending or waiting for a status sync are skipped.
func (c *Controller) SendAllPendingHybrid(ctx context.Context) (int, error) {
	if !c.sendAllRunning.CompareAndSwap(false, true) {
		return 0, ErrSendAllInProgress
	}
	defer c.sendAllRunning.Store(false)

	c.mu.RLock()
	batch := append([]models.PendingMessage{}, c.state.pending...)
	c.mu.RUnlock()

	c.logger.Info("Sending all pending messages", zap.Int("count", len(batch)))

	launched := 0
	for _, msg := range batch {
		if msg.IsSending || msg.PendingSync {
			continue
		}
		if launched > 0 {
			if err := sleep(ctx, c.cfg.SendSpacing()); err != nil {
				return launched, err
			}
		}
		if err := c.SendMessageHybrid(ctx, msg); err == nil {
			launched++
		}
	}

	if err := sleep(ctx, c.cfg.RefreshDelay()); err != nil {
		return launched, err
	}
	if err := c.LoadPending(ctx); err != nil {
		return launched, err
	}
	return launched, nil
}

// StartSendAll runs SendAllPendingHybrid in the background until it completes or Stop is called.
func (c *Controller) StartSendAll() error {
	if c.sendAllRunning.Load() {
		return ErrSendAllInProgress
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		n, err := c.SendAllPendingHybrid(c.runCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Warn("Send-all finished with error", zap.Int("launched", n), zap.Error(err))
			return
		}
		c.logger.Info("Send-all finished", zap.Int("launched", n))
	}()
	return nil
}

func (c *Controller) IsSendAllRunning() bool {
	return c.sendAllRunning.Load()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Controller) handleResult(id int64, success bool) {
	c.MarkMessageStatus(c.runCtx, id, success)
}

func (c *Controller) pushStatus(ctx context.Context, id int64, success bool) error {
	var (
		resp *models.APIResponse
		err  error
	)
	if success {
		resp, err = c.api.MarkSent(ctx, id)
	} else {
		resp, err = c.api.MarkFailed(ctx, id)
	}
	if err != nil {
		return err
	}
	if resp != nil && !resp.OK {
		c.logger.Warn("Server acknowledged status without applying it",
			zap.Int64("smsID", id),
			zap.Int("affected", resp.Affected))
	}
	return nil
}

// MarkMessageStatus reports a send outcome to the server. When the server cannot be reached
// the status goes to the sync queue.
func (c *Controller) MarkMessageStatus(ctx context.Context, id int64, success bool) {
	log := c.logger.With(zap.Int64("smsID", id), zap.Bool("success", success))

	if err := c.pushStatus(ctx, id, success); err != nil {
		log.Warn("Status update failed, queued for sync", zap.Error(err))
		c.queue.Add(id, success)
		c.update(func(s *state) {
			for _, list := range [][]models.PendingMessage{s.pending, s.failed} {
				if i := findMessage(list, id); i >= 0 {
					list[i].IsSending = false
					list[i].PendingSync = true
					list[i].SyncStatus = syncStatusText(success)
				}
			}
		})
		return
	}

	log.Info("Status recorded on server")
	c.queue.Remove(id)
	c.applySynced(id, success)
}

// applySynced merges a status the server accepted. Queue removal belongs to the caller.
func (c *Controller) applySynced(id int64, success bool) {
	c.update(func(s *state) {
		if success {
			s.pending, _ = removeMessage(s.pending, id)
			s.failed, _ = removeMessage(s.failed, id)
			return
		}
		for _, list := range [][]models.PendingMessage{s.pending, s.failed} {
			if i := findMessage(list, id); i >= 0 {
				list[i].IsSending = false
				list[i].PendingSync = false
				list[i].SyncStatus = ""
				list[i].SyncFailed = true
			}
		}
	})

	if success {
		c.reloadAfter(c.cfg.ReloadDelay())
	}
}

// applyAbandoned shows a message whose status could not be synced as failed.
func (c *Controller) applyAbandoned(id int64, _ bool) {
	c.update(func(s *state) {
		for _, list := range [][]models.PendingMessage{s.pending, s.failed} {
			if i := findMessage(list, id); i >= 0 {
				list[i].IsSending = false
				list[i].PendingSync = false
				list[i].SyncStatus = ""
				list[i].SyncFailed = true
			}
		}
	})
}

func (c *Controller) reloadAfter(d time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := sleep(c.runCtx, d); err != nil {
			return
		}
		if err := c.LoadPending(c.runCtx); err != nil {
			c.logger.Debug("Reload after sync failed", zap.Error(err))
		}
	}()
}

// RetryFailedSyncs runs one reconciliation pass over the sync queue.
func (c *Controller) RetryFailedSyncs(ctx context.Context) (syncqueue.RunReport, error) {
	report, err := c.reconciler.Run(ctx)
	c.update(func(*state) {})
	return report, err
}

// RetrySpecificSync makes one attempt for a queued message.
func (c *Controller) RetrySpecificSync(ctx context.Context, id int64) error {
	return c.reconciler.RetryOne(ctx, id)
}

// ClearSyncQueue forgets every queued status and returns how many were dropped.
func (c *Controller) ClearSyncQueue() int {
	n := c.queue.Clear()
	c.update(func(s *state) {
		for _, list := range [][]models.PendingMessage{s.pending, s.failed} {
			for i := range list {
				list[i].PendingSync = false
				list[i].SyncStatus = ""
			}
		}
	})
	c.logger.Info("Sync queue cleared", zap.Int("dropped", n))
	return n
}

func (c *Controller) MaxSyncRetries() int {
	return c.reconciler.MaxRetries()
}

func (c *Controller) SyncQueueStatus() []models.SyncQueueEntry {
	return c.queue.Entries()
}

// RemoveSentMessage drops a message from the pending list. It reports false when it was already gone.
func (c *Controller) RemoveSentMessage(id int64) bool {
	var removed bool
	c.update(func(s *state) {
		s.pending, removed = removeMessage(s.pending, id)
	})
	if !removed {
		c.logger.Warn("Message to remove not found", zap.Int64("smsID", id))
	}
	return removed
}

// SwipeDeleteMessage tells the server the message was dismissed and drops it locally.
func (c *Controller) SwipeDeleteMessage(ctx context.Context, id int64) error {
	if _, err := c.api.MarkSwiped(ctx, id); err != nil {
		c.logger.Error("Failed to mark message swiped", zap.Int64("smsID", id), zap.Error(err))
		return fmt.Errorf("failed to delete message %d: %w", id, err)
	}
	c.RemoveSentMessage(id)
	return nil
}

// MarkDelivered forwards a delivery report to the server.
func (c *Controller) MarkDelivered(ctx context.Context, id int64) error {
	if _, err := c.api.MarkDelivered(ctx, id); err != nil {
		return fmt.Errorf("failed to mark message %d delivered: %w", id, err)
	}
	c.logger.Info("Delivery recorded", zap.Int64("smsID", id))
	return nil
}

// DetectAvailableSims refreshes the SIM list and selects a slot: the saved one when it is
// still active, else the first detected subscription, else the first available slot.
func (c *Controller) DetectAvailableSims(ctx context.Context) error {
	saved, err := c.prefs.SelectedSimSlot(ctx)
	if err != nil {
		c.logger.Warn("Failed to read saved SIM slot", zap.Error(err))
		saved = dispatch.DefaultSlot
	}

	slots := c.sender.AvailableSimSlots(ctx)
	infos := c.sender.SimInfoList(ctx)

	selected := dispatch.DefaultSlot
	switch {
	case containsSlot(slots, saved):
		selected = saved
	case len(infos) > 0:
		selected = infos[0].SlotIndex
	case len(slots) > 0:
		selected = slots[0]
	}

	c.update(func(s *state) {
		s.availableSimSlots = slots
		s.simInfoList = infos
		s.selectedSimSlot = selected
	})
	c.sender.SelectSimSlot(selected)

	c.logger.Info("SIM detection complete",
		zap.Ints("slots", slots),
		zap.Int("sims", len(infos)),
		zap.Int("selected", selected))
	return nil
}

func containsSlot(slots []int, slot int) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SelectSimSlot chooses the slot for future sends. Only the default slot or a detected one is accepted.
func (c *Controller) SelectSimSlot(ctx context.Context, slot int) error {
	c.mu.RLock()
	available := containsSlot(c.state.availableSimSlots, slot)
	c.mu.RUnlock()

	if slot != dispatch.DefaultSlot && !available {
		return fmt.Errorf("%w: %d", ErrSlotUnavailable, slot)
	}

	c.update(func(s *state) { s.selectedSimSlot = slot })
	c.sender.SelectSimSlot(slot)

	if err := c.prefs.SaveSelectedSimSlot(ctx, slot); err != nil {
		c.logger.Warn("Failed to save SIM slot", zap.Int("slot", slot), zap.Error(err))
	}
	return nil
}

func (c *Controller) SelectedSimSlot() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.selectedSimSlot
}

func (c *Controller) SelectedSimShortName() string {
	slot := c.SelectedSimSlot()
	if slot == dispatch.DefaultSlot {
		return "SIM"
	}
	return fmt.Sprintf("SIM %d", slot+1)
}

// CheckNetworkStatus probes the server and records the result.
func (c *Controller) CheckNetworkStatus(ctx context.Context) bool {
	ok := c.network.IsAvailable(ctx)

	c.mu.RLock()
	changed := c.state.networkAvailable != ok
	c.mu.RUnlock()

	if changed {
		c.update(func(s *state) { s.networkAvailable = ok })
		c.logger.Info("Network status changed", zap.Bool("available", ok))
	}
	return ok
}

func (c *Controller) IsNetworkAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.networkAvailable
}

func (c *Controller) ToggleAutoSend(enabled bool) {
	c.update(func(s *state) { s.autoSendEnabled = enabled })
}

func (c *Controller) networkTask(ctx context.Context) error {
	c.CheckNetworkStatus(ctx)
	return nil
}

func (c *Controller) syncTask(ctx context.Context) error {
	if c.queue.Len() == 0 || !c.IsNetworkAvailable() {
		return nil
	}

	_, err := c.RetryFailedSyncs(ctx)
	if errors.Is(err, syncqueue.ErrPassInProgress) {
		return nil
	}
	return err
}
