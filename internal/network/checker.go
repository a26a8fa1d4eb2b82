// Package network answers whether the remote SMS server can be reached.
package network

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// BaseURLSource returns the current base URL of the remote server.
type BaseURLSource func() string

type Checker struct {
	baseURL     BaseURLSource
	dialTimeout time.Duration
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewChecker(baseURL BaseURLSource, dialTimeout time.Duration, logger *zap.Logger) *Checker {
	return &Checker{
		baseURL:     baseURL,
		dialTimeout: dialTimeout,
		httpClient:  &http.Client{Timeout: dialTimeout},
		logger:      logger,
	}
}

// IsAvailable reports whether a TCP connection to the server host can be opened.
func (c *Checker) IsAvailable(ctx context.Context) bool {
	addr, err := hostPort(c.baseURL())
	if err != nil {
		c.logger.Warn("Cannot check network, invalid base URL", zap.Error(err))
		return false
	}

	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		c.logger.Debug("Remote server unreachable", zap.String("addr", addr), zap.Error(err))
		return false
	}
	_ = conn.Close()
	return true
}

// HasInternetAccess reports whether the server answers HTTP requests without a server error.
func (c *Checker) HasInternetAccess(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL(), nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("HEAD request failed", zap.Error(err))
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

func hostPort(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("no host in %q", raw)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
