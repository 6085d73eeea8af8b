package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DashboardConfig configures the review dashboard binary
type DashboardConfig struct {
	Environment  string
	Port         string
	BackendURL   string        // base URL of the collector API
	FetchTimeout time.Duration // 0 leaves the timeout to the transport
	Location     *time.Location
}

// LoadDashboard reads the dashboard config from environment variables
func LoadDashboard() (*DashboardConfig, error) {
	tz := getEnv("DASHBOARD_TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_TIMEZONE %q: %w", tz, err)
	}

	cfg := &DashboardConfig{
		Environment:  getEnv("APP_ENV", "development"),
		Port:         getEnv("DASHBOARD_PORT", "3000"),
		BackendURL:   strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8000"), "/"),
		FetchTimeout: getEnvDuration("DASHBOARD_FETCH_TIMEOUT", 30*time.Second),
		Location:     loc,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *DashboardConfig) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid BACKEND_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("BACKEND_URL must be an http(s) URL, got %q", c.BackendURL)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("DASHBOARD_FETCH_TIMEOUT must not be negative")
	}
	return nil
}
