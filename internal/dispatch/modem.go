package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/breaker"
	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/models"
)

const modemAuthHeader = "x-modem-auth-key"

type modemEndpoint struct {
	sim            models.SimInfo
	url            string
	circuitBreaker *breaker.CircuitBreaker
}

// HTTPModem drives one HTTP SMS modem per SIM slot. It is both the Transport and the SimProvider.
type HTTPModem struct {
	endpoints  map[int]*modemEndpoint
	authKey    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPModem(cfg *config.ModemConfig, logger *zap.Logger) *HTTPModem {
	m := &HTTPModem{
		endpoints: make(map[int]*modemEndpoint, len(cfg.Slots)),
		authKey:   cfg.AuthKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger: logger,
	}

	for _, s := range cfg.Slots {
		name := s.DisplayName
		if name == "" {
			name = fmt.Sprintf("SIM %d", s.Slot+1)
		}
		carrier := s.CarrierName
		if carrier == "" {
			carrier = fmt.Sprintf("Carrier %d", s.Slot+1)
		}
		number := s.Number
		if number == "" {
			number = "unknown number"
		}

		m.endpoints[s.Slot] = &modemEndpoint{
			sim: models.SimInfo{
				SlotIndex:      s.Slot,
				SubscriptionID: s.SubscriptionID,
				DisplayName:    name,
				CarrierName:    carrier,
				Number:         number,
			},
			url:            strings.TrimRight(s.URL, "/"),
			circuitBreaker: breaker.NewCircuitBreaker("modem-slot-"+strconv.Itoa(s.Slot), &cfg.CircuitBreaker, logger),
		}
	}

	return m
}

// Subscription returns the configured subscription of a slot, active or not.
func (m *HTTPModem) Subscription(slot int) (models.SimInfo, bool) {
	ep, ok := m.endpoints[slot]
	if !ok {
		return models.SimInfo{}, false
	}
	return ep.sim, true
}

// Subscriptions probes every modem and returns the active ones sorted by slot.
func (m *HTTPModem) Subscriptions(ctx context.Context) ([]models.SimInfo, error) {
	var active []models.SimInfo
	var lastErr error

	for _, ep := range m.endpoints {
		status, err := m.status(ctx, ep)
		if err != nil {
			lastErr = err
			m.logger.Warn("Failed to read modem status",
				zap.Int("slot", ep.sim.SlotIndex),
				zap.Error(err))
			continue
		}
		if status.Active {
			sim := ep.sim
			if status.Carrier != "" {
				sim.CarrierName = status.Carrier
			}
			active = append(active, sim)
		}
	}

	if len(active) == 0 && lastErr != nil {
		return nil, fmt.Errorf("failed to detect SIM subscriptions: %w", lastErr)
	}

	sort.Slice(active, func(i, j int) bool { return active[i].SlotIndex < active[j].SlotIndex })
	return active, nil
}

func (m *HTTPModem) status(ctx context.Context, ep *modemEndpoint) (*models.ModemStatusResponse, error) {
	var out models.ModemStatusResponse

	err := ep.circuitBreaker.Execute(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.url+"/status", nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set(modemAuthHeader, m.authKey)

		resp, err := m.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				m.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("failed to decode status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMultipart posts all parts in one request; the modem concatenates them.
func (m *HTTPModem) SendMultipart(ctx context.Context, sim models.SimInfo, to string, parts []string, reference string) (ResultCode, error) {
	ep, ok := m.endpoints[sim.SlotIndex]
	if !ok {
		return ResultGenericFailure, fmt.Errorf("%w: %d", ErrUnknownSlot, sim.SlotIndex)
	}

	code := ResultUnknown
	err := ep.circuitBreaker.Execute(ctx, func() error {
		reqBody := models.ModemSendRequest{
			To:             to,
			Parts:          parts,
			SubscriptionID: sim.SubscriptionID,
			Reference:      reference,
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.url+"/messages", bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(modemAuthHeader, m.authKey)

		resp, err := m.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				m.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		var modemResp models.ModemSendResponse
		if err := json.NewDecoder(resp.Body).Decode(&modemResp); err != nil {
			// An accepted request without a readable body still reached the radio queue.
			code = ResultOK
			return nil
		}

		code = ParseResultCode(modemResp.Status)
		m.logger.Debug("Modem accepted message",
			zap.Int("slot", sim.SlotIndex),
			zap.String("reference", reference),
			zap.String("modemMessageID", modemResp.MessageID),
			zap.String("result", string(code)))
		return nil
	})
	if err != nil {
		return ResultGenericFailure, err
	}

	return code, nil
}
