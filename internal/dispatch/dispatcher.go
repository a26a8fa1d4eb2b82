package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/models"
)

// DefaultSlot selects the system default subscription.
const DefaultSlot = -1

type Dispatcher struct {
	transport   Transport
	sims        SimProvider
	inflight    InFlightTracker
	logger      *zap.Logger
	countryCode string
	defaultSlot int

	mu           sync.RWMutex
	selectedSlot int
	onResult     ResultHandler

	wg sync.WaitGroup
}

func NewDispatcher(cfg *config.ModemConfig, transport Transport, sims SimProvider, inflight InFlightTracker, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		transport:    transport,
		sims:         sims,
		inflight:     inflight,
		logger:       logger,
		countryCode:  cfg.CountryCode,
		defaultSlot:  cfg.DefaultSlot,
		selectedSlot: DefaultSlot,
	}
}

// SetResultHandler registers the receiver of completion reports.
func (d *Dispatcher) SetResultHandler(h ResultHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onResult = h
}

func (d *Dispatcher) SelectSimSlot(slot int) {
	d.mu.Lock()
	d.selectedSlot = slot
	d.mu.Unlock()
	d.logger.Debug("SIM slot selected", zap.Int("slot", slot))
}

func (d *Dispatcher) SelectedSimSlot() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.selectedSlot
}

// AvailableSimSlots returns the active slots, or slot 0 when nothing can be detected.
func (d *Dispatcher) AvailableSimSlots(ctx context.Context) []int {
	subs, err := d.sims.Subscriptions(ctx)
	if err != nil {
		d.logger.Error("SIM detection failed", zap.Error(err))
	}

	seen := make(map[int]bool, len(subs))
	slots := make([]int, 0, len(subs))
	for _, s := range subs {
		if s.SlotIndex >= 0 && !seen[s.SlotIndex] {
			seen[s.SlotIndex] = true
			slots = append(slots, s.SlotIndex)
		}
	}

	if len(slots) == 0 {
		return []int{0}
	}
	return slots
}

// SimInfoList returns the active subscriptions; detection errors yield an empty list.
func (d *Dispatcher) SimInfoList(ctx context.Context) []models.SimInfo {
	subs, err := d.sims.Subscriptions(ctx)
	if err != nil {
		d.logger.Error("Failed to read SIM information", zap.Error(err))
		return []models.SimInfo{}
	}
	return subs
}

func (d *Dispatcher) resolveSubscription(slot int) (models.SimInfo, error) {
	if slot >= 0 {
		if sim, ok := d.sims.Subscription(slot); ok {
			return sim, nil
		}
		d.logger.Warn("SIM slot invalid, using default", zap.Int("slot", slot))
	}

	if sim, ok := d.sims.Subscription(d.defaultSlot); ok {
		return sim, nil
	}
	return models.SimInfo{}, ErrNoSubscription
}

// SendHybrid dispatches one SMS and reports the outcome once through the result handler.
// Errors returned here happened before the radio was involved; they are reported as a failed
// send as well, except ErrAlreadyInFlight which leaves the earlier send in charge.
func (d *Dispatcher) SendHybrid(ctx context.Context, id int64, phone, text string, slot int) error {
	to := FormatPhoneNumber(phone, d.countryCode)
	log := d.logger.With(
		zap.Int64("smsID", id),
		zap.String("to", MaskPhoneNumber(to)),
		zap.Int("slot", slot))

	if !validNumber(to) {
		log.Error("Invalid phone number", zap.String("raw", MaskPhoneNumber(phone)))
		d.report(id, false)
		return fmt.Errorf("%w: %q", ErrInvalidNumber, MaskPhoneNumber(phone))
	}

	sim, err := d.resolveSubscription(slot)
	if err != nil {
		log.Error("No subscription to send with", zap.Error(err))
		d.report(id, false)
		return err
	}

	// Outlive the caller's request; the send is owned by the dispatcher from here on.
	sendCtx := context.WithoutCancel(ctx)

	acquired, err := d.inflight.Acquire(sendCtx, id)
	if err != nil {
		log.Warn("In-flight marker unavailable, sending anyway", zap.Error(err))
		acquired = true
	}
	if !acquired {
		log.Info("Message already in flight, skipping")
		return ErrAlreadyInFlight
	}

	parts := DivideMessage(text)
	reference := uuid.New().String()
	log.Info("Dispatching SMS",
		zap.Int("parts", len(parts)),
		zap.String("encoding", string(DetectEncoding(text))),
		zap.Int("subscriptionID", sim.SubscriptionID),
		zap.String("reference", reference))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		code, err := d.transport.SendMultipart(sendCtx, sim, to, parts, reference)
		success := err == nil && code == ResultOK

		switch {
		case err != nil:
			log.Error("SMS send failed", zap.Error(err))
		case !success:
			log.Error("SMS rejected by radio", zap.String("result", string(code)), zap.String("reason", code.Reason()))
		default:
			log.Info("SMS sent", zap.Int("subscriptionSlot", sim.SlotIndex))
		}

		if err := d.inflight.RecordOutcome(sendCtx, id, success); err != nil {
			log.Warn("Failed to record dispatch outcome", zap.Error(err))
		}
		if !success {
			if err := d.inflight.Release(sendCtx, id); err != nil {
				log.Warn("Failed to release in-flight marker", zap.Error(err))
			}
		}

		d.deliver(id, success)
	}()

	return nil
}

func (d *Dispatcher) report(id int64, success bool) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(id, success)
	}()
}

func (d *Dispatcher) deliver(id int64, success bool) {
	d.mu.RLock()
	h := d.onResult
	d.mu.RUnlock()

	if h == nil {
		d.logger.Warn("No result handler registered", zap.Int64("smsID", id), zap.Bool("success", success))
		return
	}
	h(id, success)
}

// Wait blocks until every started send has reported.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
