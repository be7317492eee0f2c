package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DatasetMetadata describes a single dataset as returned by /datasets/{id}.
type DatasetMetadata struct {
	ID            int    `json:"id"`
	NameEn        string `json:"nameEn"`
	NameFi        string `json:"nameFi"`
	DescriptionEn string `json:"descriptionEn"`
	UnitEn        string `json:"unitEn"`
	Format        string `json:"format"`
}

// Name returns the English name when present, otherwise the Finnish one.
func (m *DatasetMetadata) Name() string {
	if m.NameEn != "" {
		return m.NameEn
	}
	return m.NameFi
}

// FetchDatasetMetadata fetches metadata for one dataset via
// GET /datasets/{id}. Metadata lookups use the shorter metadata timeout but
// share the fetch loop's error classification.
func (c *Client) FetchDatasetMetadata(ctx context.Context, datasetID string) (*DatasetMetadata, error) {
	if c.config.APIKey == "" {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassCredential)).Inc()
		return nil, newMissingCredentialError()
	}

	if err := c.pacer.Wait(ctx); err != nil {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, newNetworkError("request cancelled while pacing", err)
	}

	u := strings.TrimSuffix(c.config.BaseURL, "/") + "/datasets/" + datasetID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, newNetworkError("create request", err)
	}
	req.Header.Set("x-api-key", c.config.APIKey)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.metaClient.Do(req)
	fingridRequestDuration.WithLabelValues("/datasets").Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Error().Err(err).Str("dataset", datasetID).Msg("Metadata request failed")
		fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		fingridRequestsTotal.WithLabelValues("/datasets", "network_error").Inc()
		return nil, newNetworkError(
			"request failed; check your connection and that "+c.config.BaseURL+" is reachable", err)
	}
	defer resp.Body.Close()

	fingridRequestsTotal.WithLabelValues("/datasets", fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusTooManyRequests {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassRateLimit)).Inc()
		return nil, newRateLimitError()
	}
	if resp.StatusCode != http.StatusOK {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassResponse)).Inc()
		return nil, newResponseError(
			fmt.Sprintf("API returned status %d for dataset %s", resp.StatusCode, datasetID),
			resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, newNetworkError("read response body", err)
	}

	var meta DatasetMetadata
	if err := json.Unmarshal(body, &meta); err != nil {
		fingridErrorsTotal.WithLabelValues(string(ErrorClassResponse)).Inc()
		return nil, newResponseError("invalid API response (not JSON)", 0, err)
	}

	return &meta, nil
}
