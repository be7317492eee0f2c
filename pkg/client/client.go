// Package client provides the core Fingrid Open Data HTTP client with
// pagination, rate-limit pacing, and error classification.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fingrid-tools/opendata-client/pkg/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Fingrid client operations.
var (
	fingridRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fingrid_requests_total",
		Help: "Total Fingrid API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	fingridRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fingrid_request_duration_seconds",
		Help:    "Fingrid API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"endpoint"})

	fingridErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fingrid_errors_total",
		Help: "Total Fingrid API errors by class",
	}, []string{"class"})
)

// RawRecord is one time-series record as decoded from a page of the /data
// response. Field types are deliberately loose: the API mixes numbers and
// strings, and records may lack fields entirely. Normalization happens in
// pkg/series.
type RawRecord struct {
	DatasetID any `json:"datasetId"`
	StartTime any `json:"startTime"`
	EndTime   any `json:"endTime"`
	Value     any `json:"value"`
}

type pageInfo struct {
	Page     int `json:"page"`
	LastPage int `json:"lastPage"`
}

type dataResponse struct {
	Data       json.RawMessage `json:"data"`
	Pagination *pageInfo       `json:"pagination"`
}

// Config holds the client configuration. The credential and base URL are
// injected here at construction time; the client never reads the environment.
type Config struct {
	// BaseURL is the API root, e.g. "https://data.fingrid.fi/api".
	BaseURL string

	// APIKey is the x-api-key credential. May be empty; presence is checked
	// per fetch call, before any network activity.
	APIKey string

	// PageSize is the number of records requested per page.
	PageSize int

	// RequestDelay is the blocking wait between paginated requests,
	// chosen to stay under the API's 10 requests/minute quota.
	RequestDelay time.Duration

	// DataTimeout bounds each /data request.
	DataTimeout time.Duration

	// MetadataTimeout bounds each /datasets/{id} request.
	MetadataTimeout time.Duration
}

// DefaultBaseURL is the production Fingrid Open Data API root.
const DefaultBaseURL = "https://data.fingrid.fi/api"

// DefaultConfig returns a configuration matching the published API limits.
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		APIKey:          apiKey,
		PageSize:        10000,
		RequestDelay:    6500 * time.Millisecond,
		DataTimeout:     30 * time.Second,
		MetadataTimeout: 15 * time.Second,
	}
}

// Client is the Fingrid Open Data API client. One request is in flight at a
// time; paginated fetches are strictly sequential.
type Client struct {
	httpClient *http.Client
	metaClient *http.Client
	pacer      *ratelimit.Pacer
	config     Config
	logger     zerolog.Logger
}

// New creates a new Fingrid client. Zero-valued tuning fields fall back to
// DefaultConfig values; only the base URL is mandatory.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	defaults := DefaultConfig(cfg.APIKey)
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaults.PageSize
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = defaults.RequestDelay
	}
	if cfg.DataTimeout <= 0 {
		cfg.DataTimeout = defaults.DataTimeout
	}
	if cfg.MetadataTimeout <= 0 {
		cfg.MetadataTimeout = defaults.MetadataTimeout
	}

	logger := log.With().Str("component", "fingrid-client").Logger()

	return &Client{
		httpClient: &http.Client{Timeout: cfg.DataTimeout},
		metaClient: &http.Client{Timeout: cfg.MetadataTimeout},
		pacer:      ratelimit.NewPacer(cfg.RequestDelay, logger),
		config:     cfg,
		logger:     logger,
	}, nil
}

// Config returns the effective client configuration.
func (c *Client) Config() Config {
	return c.config
}

// FetchTimeseries fetches all pages of time-series data for the given dataset
// IDs and time range (ISO 8601, e.g. "2024-01-01T00:00").
//
// The loop aborts on the first classified failure and discards any pages
// already accumulated; there is no partial-success return. Callers are
// responsible for supplying startTime <= endTime; inverted ranges are passed
// through to the API unvalidated.
func (c *Client) FetchTimeseries(ctx context.Context, datasetIDs []string, startTime, endTime string) ([]RawRecord, error) {
	if c.config.APIKey == "" {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassCredential)).Inc()
		return nil, newMissingCredentialError()
	}

	var records []RawRecord
	page := 1

	for {
		// Blocking wait keeps successive requests under the request quota.
		// The first wait of a fresh pacer returns immediately.
		if err := c.pacer.Wait(ctx); err != nil {
			fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
			return nil, newNetworkError("request cancelled while pacing", err)
		}

		pageResp, err := c.fetchPage(ctx, datasetIDs, startTime, endTime, page)
		if err != nil {
			return nil, err
		}

		var pageRecords []RawRecord
		if err := json.Unmarshal(pageResp.Data, &pageRecords); err != nil {
			fingridErrorsTotal.WithLabelValues(string(ErrorClassResponse)).Inc()
			return nil, newResponseError("API 'data' field is not a list", 0, err)
		}
		records = append(records, pageRecords...)

		lastPage := 1
		if pageResp.Pagination != nil && pageResp.Pagination.LastPage > 0 {
			lastPage = pageResp.Pagination.LastPage
		}

		c.logger.Debug().
			Int("page", page).
			Int("last_page", lastPage).
			Int("records", len(pageRecords)).
			Msg("Page fetched")

		if page >= lastPage {
			break
		}
		page++
	}

	c.logger.Info().
		Strs("datasets", datasetIDs).
		Int("records", len(records)).
		Msg("Timeseries fetch complete")

	return records, nil
}

// fetchPage issues a single /data request and classifies its outcome.
func (c *Client) fetchPage(ctx context.Context, datasetIDs []string, startTime, endTime string, page int) (*dataResponse, error) {
	u := BuildDataURL(c.config.BaseURL, datasetIDs, startTime, endTime, c.config.PageSize, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, newNetworkError("create request", err)
	}
	req.Header.Set("x-api-key", c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	fingridRequestDuration.WithLabelValues("/data").Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Error().Err(err).Int("page", page).Msg("HTTP request failed")
		fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		fingridRequestsTotal.WithLabelValues("/data", "network_error").Inc()
		return nil, newNetworkError(
			"request failed; check your connection and that "+c.config.BaseURL+" is reachable", err)
	}
	defer resp.Body.Close()

	fingridRequestsTotal.WithLabelValues("/data", fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn().Int("page", page).Msg("Rate limit hit")
		fingridErrorsTotal.WithLabelValues(string(ErrorClassRateLimit)).Inc()
		return nil, newRateLimitError()
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("page", page).
			Int("status", resp.StatusCode).
			Msg("Unexpected API status")
		fingridErrorsTotal.WithLabelValues(string(ErrorClassResponse)).Inc()
		return nil, newResponseError(
			fmt.Sprintf("API returned status %d", resp.StatusCode), resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, newNetworkError("read response body", err)
	}

	var decoded dataResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassResponse)).Inc()
		return nil, newResponseError("invalid API response (not JSON)", 0, err)
	}
	if len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassResponse)).Inc()
		return nil, newResponseError("API response missing 'data' field", 0, nil)
	}

	return &decoded, nil
}

// SetHTTPClient sets a custom HTTP client for both data and metadata
// requests (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
	c.metaClient = client
}
