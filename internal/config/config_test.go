package config

import (
	"testing"
	"time"

	"github.com/fingrid-tools/opendata-client/pkg/client"
)

// clearEnv blanks every bound variable so ambient state cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, env := range envs {
			t.Setenv(env, "")
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BaseURL != client.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, client.DefaultBaseURL)
	}
	if cfg.PageSize != 10000 {
		t.Errorf("PageSize = %d, want 10000", cfg.PageSize)
	}
	if cfg.RequestDelay != 6500*time.Millisecond {
		t.Errorf("RequestDelay = %s, want 6.5s", cfg.RequestDelay)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_APIKeyBindings(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{
			name:     "primary variable",
			env:      map[string]string{"FINGRID_API_KEY": "primary"},
			expected: "primary",
		},
		{
			name:     "alternate variable",
			env:      map[string]string{"FINGRID_OPENDATA_API_KEY": "alternate"},
			expected: "alternate",
		},
		{
			name:     "course-style variable",
			env:      map[string]string{"API_KEY": "course"},
			expected: "course",
		},
		{
			name: "primary wins over alternates",
			env: map[string]string{
				"FINGRID_API_KEY": "primary",
				"API_KEY":         "course",
			},
			expected: "primary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.APIKey != tt.expected {
				t.Errorf("APIKey = %q, want %q", cfg.APIKey, tt.expected)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINGRID_BASE_URL", "http://localhost:9999/api")
	t.Setenv("FINGRID_PAGE_SIZE", "500")
	t.Setenv("FINGRID_REQUEST_DELAY", "2s")
	t.Setenv("FINGRID_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:9999/api" {
		t.Errorf("BaseURL = %q, want override", cfg.BaseURL)
	}
	if cfg.PageSize != 500 {
		t.Errorf("PageSize = %d, want 500", cfg.PageSize)
	}
	if cfg.RequestDelay != 2*time.Second {
		t.Errorf("RequestDelay = %s, want 2s", cfg.RequestDelay)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_RejectsBadPageSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINGRID_PAGE_SIZE", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load() with negative page size should fail")
	}
}

func TestClientConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINGRID_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	clientCfg := cfg.ClientConfig()
	if clientCfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", clientCfg.APIKey)
	}
	if clientCfg.BaseURL != client.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", clientCfg.BaseURL)
	}
	if clientCfg.DataTimeout != 30*time.Second {
		t.Errorf("DataTimeout = %s, want 30s", clientCfg.DataTimeout)
	}
	if clientCfg.MetadataTimeout != 15*time.Second {
		t.Errorf("MetadataTimeout = %s, want 15s", clientCfg.MetadataTimeout)
	}
}
