package client

import "testing"

func TestBuildDataURL(t *testing.T) {
	tests := []struct {
		name       string
		baseURL    string
		datasetIDs []string
		startTime  string
		endTime    string
		pageSize   int
		page       int
		expected   string
	}{
		{
			name:       "single dataset",
			baseURL:    "https://data.fingrid.fi/api",
			datasetIDs: []string{"193"},
			startTime:  "2024-01-01T00:00",
			endTime:    "2024-01-02T00:00",
			pageSize:   10000,
			page:       2,
			expected:   "https://data.fingrid.fi/api/data?datasets=193&endTime=2024-01-02T00%3A00&page=2&pageSize=10000&startTime=2024-01-01T00%3A00",
		},
		{
			name:       "multiple datasets comma joined",
			baseURL:    "https://data.fingrid.fi/api",
			datasetIDs: []string{"192", "193"},
			startTime:  "2024-01-01T00:00",
			endTime:    "2024-01-02T00:00",
			pageSize:   100,
			page:       1,
			expected:   "https://data.fingrid.fi/api/data?datasets=192%2C193&endTime=2024-01-02T00%3A00&page=1&pageSize=100&startTime=2024-01-01T00%3A00",
		},
		{
			name:       "trailing slash on base URL",
			baseURL:    "http://localhost:8080/",
			datasetIDs: []string{"75"},
			startTime:  "2024-06-01T12:00",
			endTime:    "2024-06-02T12:00",
			pageSize:   10,
			page:       1,
			expected:   "http://localhost:8080/data?datasets=75&endTime=2024-06-02T12%3A00&page=1&pageSize=10&startTime=2024-06-01T12%3A00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildDataURL(tt.baseURL, tt.datasetIDs, tt.startTime, tt.endTime, tt.pageSize, tt.page)
			if result != tt.expected {
				t.Errorf("BuildDataURL() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestBuildDataURL_Deterministic(t *testing.T) {
	first := BuildDataURL("https://data.fingrid.fi/api", []string{"193"},
		"2024-01-01T00:00", "2024-01-02T00:00", 10000, 2)

	for i := 0; i < 10; i++ {
		again := BuildDataURL("https://data.fingrid.fi/api", []string{"193"},
			"2024-01-01T00:00", "2024-01-02T00:00", 10000, 2)
		if again != first {
			t.Fatalf("BuildDataURL() call %d = %q, want %q", i, again, first)
		}
	}
}
