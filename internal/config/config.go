// Package config loads the process-wide configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort                = 3000
	defaultLanguageConcurrency = 8
	defaultRequestTimeout      = 30 * time.Second
)

// Config holds the application configuration. It is read once at startup
// and passed explicitly to the components that need it.
type Config struct {
	// GitHubToken is optional; it only raises the upstream rate limits.
	GitHubToken string
	// APIBaseURL and GraphQLURL override the public GitHub endpoints when set.
	APIBaseURL string
	GraphQLURL string

	Port                int
	LanguageConcurrency int
	RequestTimeout      time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		GitHubToken:         os.Getenv("GITHUB_TOKEN"),
		APIBaseURL:          os.Getenv("GITHUB_API_URL"),
		GraphQLURL:          os.Getenv("GITHUB_GRAPHQL_URL"),
		Port:                defaultPort,
		LanguageConcurrency: defaultLanguageConcurrency,
		RequestTimeout:      defaultRequestTimeout,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("LANGUAGE_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid LANGUAGE_CONCURRENCY %q: must be a positive integer", v)
		}
		cfg.LanguageConcurrency = n
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: must be positive", v)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
