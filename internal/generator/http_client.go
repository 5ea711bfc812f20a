package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ClientConfig tunes the HTTP client and its circuit breaker.
type ClientConfig struct {
	URL              string
	Timeout          time.Duration
	MaxRequests      uint32
	Interval         time.Duration
	BreakerTimeout   time.Duration
	FailureThreshold uint32
}

// DefaultClientConfig returns sensible defaults for the assistant
// client.
func DefaultClientConfig(url string) ClientConfig {
	return ClientConfig{
		URL:              url,
		Timeout:          15 * time.Second,
		MaxRequests:      1,
		Interval:         60 * time.Second,
		BreakerTimeout:   30 * time.Second,
		FailureThreshold: 3,
	}
}

// HTTPClient calls the remote assistant. Repeated failures open a
// circuit breaker so a down assistant does not slow every search.
type HTTPClient struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]string]
	logger  *slog.Logger
}

// NewHTTPClient creates the assistant client.
func NewHTTPClient(config ClientConfig, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        "generator",
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &HTTPClient{
		url:     config.URL,
		client:  &http.Client{Timeout: config.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]string](settings),
		logger:  logger,
	}
}

// ExpandQuery asks the assistant for search keywords.
func (c *HTTPClient) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	keywords, err := c.breaker.Execute(func() ([]string, error) {
		return c.expand(ctx, query)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, ErrUnavailable
	}
	return keywords, err
}

func (c *HTTPClient) expand(ctx context.Context, query string) ([]string, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("generator returned status %d", resp.StatusCode)
	}

	var expansion Expansion
	if err := json.NewDecoder(resp.Body).Decode(&expansion); err != nil {
		return nil, fmt.Errorf("failed to decode generator response: %w", err)
	}
	return expansion.Keywords, nil
}

var _ Expander = (*HTTPClient)(nil)
