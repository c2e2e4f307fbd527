package ordersource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/packhouse/backend/internal/domain/fulfillment"
	"go.uber.org/zap"
)

const (
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 50 * 1024 * 1024 // 50MB max response

	defaultTimeout = 60 * time.Second
)

// Config holds the connection settings for the order-management system.
type Config struct {
	// BaseURL of the order-management API, e.g. "https://oms.example.com".
	BaseURL string
	// Token is sent as a bearer credential on every request.
	Token string
	// TimeoutSeconds bounds one fetch round trip. Zero uses the default.
	TimeoutSeconds int
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("order source base URL is required")
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("order source base URL is invalid: %w", err)
	}
	return nil
}

// Client fetches open order lines from the order-management system over
// HTTP. It is the only component that talks to that system; everything
// downstream works from the snapshot it returns.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new order source client with the given configuration
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	timeout := defaultTimeout
	if config.TimeoutSeconds > 0 {
		timeout = time.Duration(config.TimeoutSeconds) * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// linesResponse is the wire envelope of the open-lines endpoint.
type linesResponse struct {
	Lines []fulfillment.RawLineRecord `json:"lines"`
}

// FetchRecords returns the current open order lines as one snapshot.
func (c *Client) FetchRecords(ctx context.Context) ([]fulfillment.RawLineRecord, error) {
	endpoint := c.config.BaseURL + "/api/open-lines"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build order source request: %w", err)
	}
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch order lines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch order lines: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read order lines response: %w", err)
	}

	var payload linesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode order lines response: %w", err)
	}

	c.logger.Info("fetched order lines",
		zap.Int("count", len(payload.Lines)),
		zap.Duration("duration", time.Since(start)))
	return payload.Lines, nil
}

// Ensure Client implements RecordSource
var _ fulfillment.RecordSource = (*Client)(nil)
