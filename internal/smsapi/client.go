package smsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/breaker"
	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/models"
)

type httpClient struct {
	mu             sync.RWMutex
	baseURL        *url.URL
	authToken      string
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *breaker.CircuitBreaker
}

func NewClient(cfg *config.RemoteConfig, logger *zap.Logger) (Client, error) {
	base, err := ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	return &httpClient{
		baseURL:   base,
		authToken: cfg.AuthToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: breaker.NewCircuitBreaker("remote-sms-api", &cfg.CircuitBreaker, logger),
	}, nil
}

// ParseBaseURL validates an absolute http(s) URL and makes sure it ends with a slash
// so relative endpoints resolve under it.
func ParseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidBaseURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidBaseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

func (c *httpClient) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL.String()
}

// SetBaseURL points the client at another server; in-flight calls finish against the old one.
func (c *httpClient) SetBaseURL(raw string) error {
	u, err := ParseBaseURL(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.baseURL = u
	c.mu.Unlock()

	c.logger.Info("Remote API base URL updated", zap.String("baseURL", u.String()))
	return nil
}

func (c *httpClient) BreakerStatus() (breaker.State, uint32, uint32) {
	requests, failures := c.circuitBreaker.GetCounts()
	return c.circuitBreaker.GetState(), requests, failures
}

func (c *httpClient) GetPending(ctx context.Context, limit int) ([]models.SmsPendingResponse, error) {
	var out []models.SmsPendingResponse
	if err := c.do(ctx, http.MethodGet, "sms/pending", limitQuery(limit, DefaultListLimit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) GetFailed(ctx context.Context, limit int) ([]models.SmsPendingResponse, error) {
	var out []models.SmsPendingResponse
	if err := c.do(ctx, http.MethodGet, "sms/failed", limitQuery(limit, DefaultListLimit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) GetRecent(ctx context.Context, limit int) ([]models.RecentMessageResponse, error) {
	var out []models.RecentMessageResponse
	if err := c.do(ctx, http.MethodGet, "sms/recent", limitQuery(limit, DefaultRecentLimit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) MarkSent(ctx context.Context, id int64) (*models.APIResponse, error) {
	return c.mark(ctx, id, "mark-sent")
}

func (c *httpClient) MarkFailed(ctx context.Context, id int64) (*models.APIResponse, error) {
	return c.mark(ctx, id, "mark-failed")
}

func (c *httpClient) MarkDelivered(ctx context.Context, id int64) (*models.APIResponse, error) {
	return c.mark(ctx, id, "mark-delivered")
}

func (c *httpClient) MarkSwiped(ctx context.Context, id int64) (*models.APIResponse, error) {
	return c.mark(ctx, id, "mark-swiped")
}

func (c *httpClient) GetStats(ctx context.Context, period string) (*models.StatsResponse, error) {
	var out models.StatsResponse
	if err := c.do(ctx, http.MethodGet, "stats", url.Values{"period": {period}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) GetAllStats(ctx context.Context) (*models.AllStatsResponse, error) {
	var out models.AllStatsResponse
	if err := c.do(ctx, http.MethodGet, "stats/all", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// mark posts a status change. Any 2xx is an acknowledgement; an empty body counts as applied.
func (c *httpClient) mark(ctx context.Context, id int64, action string) (*models.APIResponse, error) {
	out := models.APIResponse{OK: true}
	endpoint := "sms/" + strconv.FormatInt(id, 10) + "/" + action
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func limitQuery(limit, def int) url.Values {
	if limit <= 0 {
		limit = def
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

// do performs one call through the circuit breaker and decodes a JSON body into out.
func (c *httpClient) do(ctx context.Context, method, endpoint string, query url.Values, out interface{}) error {
	c.mu.RLock()
	target := c.baseURL.ResolveReference(&url.URL{Path: endpoint})
	c.mu.RUnlock()
	if query != nil {
		target.RawQuery = query.Encode()
	}

	return c.circuitBreaker.Execute(ctx, func() error {
		start := time.Now()

		var body io.Reader
		if method == http.MethodPost {
			body = bytes.NewBufferString("{}")
		}

		req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.authToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.authToken)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		c.logger.Debug("Remote API call",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)))

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &StatusError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode}
		}

		if resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			if errors.Is(err, io.EOF) && method == http.MethodPost {
				return nil
			}
			return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
		}

		return nil
	})
}
