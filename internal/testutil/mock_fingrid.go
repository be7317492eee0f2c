// Package testutil provides testing utilities for the Fingrid client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockFingrid is a configurable mock Fingrid Open Data server for testing.
type MockFingrid struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount int
	PageNumbers  []int // page query parameter of each /data request, in order
	LastAPIKey   string
}

// NewMockFingrid creates a new mock server.
func NewMockFingrid() *MockFingrid {
	mock := &MockFingrid{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastAPIKey = r.Header.Get("x-api-key")
		if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
			mock.PageNumbers = append(mock.PageNumbers, page)
		}
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data": []}`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockFingrid) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockFingrid) Close() {
	m.server.Close()
}

// Reset clears all tracking state.
func (m *MockFingrid) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.PageNumbers = nil
	m.LastAPIKey = ""
}

// SetHandler sets a custom handler for a specific path.
func (m *MockFingrid) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a fixed response for a path.
func (m *MockFingrid) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if resp.Headers["Content-Type"] == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPagedData serves /data from the given per-page record arrays (JSON array
// strings). Page N of the request serves pages[N-1]; lastPage is len(pages).
func (m *MockFingrid) SetPagedData(pages []string) {
	m.SetHandler("/data", func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 || page > len(pages) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, `{"error": "bad page"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, DataPageBody(pages[page-1], page, len(pages)))
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockFingrid) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetPageNumbers returns the page numbers requested so far, in order.
func (m *MockFingrid) GetPageNumbers() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pages := make([]int, len(m.PageNumbers))
	copy(pages, m.PageNumbers)
	return pages
}

// GetLastAPIKey returns the x-api-key header of the most recent request.
func (m *MockFingrid) GetLastAPIKey() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastAPIKey
}

// DataPageBody builds a /data response body with pagination metadata.
// records is a JSON array string, e.g. `[{"value": 1}]`.
func DataPageBody(records string, page, lastPage int) string {
	return fmt.Sprintf(`{"data": %s, "pagination": {"page": %d, "lastPage": %d}}`,
		records, page, lastPage)
}

// DataBody builds a /data response body without pagination metadata.
func DataBody(records string) string {
	return fmt.Sprintf(`{"data": %s}`, records)
}

// Record builds one raw record JSON object for test payloads.
func Record(datasetID, startTime, endTime string, value any) string {
	var b strings.Builder
	b.WriteString("{")
	fields := []string{}
	if datasetID != "" {
		fields = append(fields, fmt.Sprintf(`"datasetId": %s`, datasetID))
	}
	if startTime != "" {
		fields = append(fields, fmt.Sprintf(`"startTime": %q`, startTime))
	}
	if endTime != "" {
		fields = append(fields, fmt.Sprintf(`"endTime": %q`, endTime))
	}
	switch v := value.(type) {
	case nil:
	case string:
		fields = append(fields, fmt.Sprintf(`"value": %q`, v))
	default:
		fields = append(fields, fmt.Sprintf(`"value": %v`, v))
	}
	b.WriteString(strings.Join(fields, ", "))
	b.WriteString("}")
	return b.String()
}

// NewRateLimitResponse creates a 429 Too Many Requests response.
func NewRateLimitResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"error": "Rate limit exceeded"}`,
	}
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "Internal server error"}`,
	}
}

// NewNotJSONResponse creates a 200 response whose body is not JSON.
func NewNotJSONResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       "<html>not json</html>",
		Headers:    map[string]string{"Content-Type": "text/html"},
	}
}
