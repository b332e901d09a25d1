package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port             string `yaml:"port"`
	FrontendURL      string `yaml:"frontend_url"`
	AnthropicAPIKey  string `yaml:"anthropic_api_key"`
	SerperAPIKey     string `yaml:"serper_api_key"`
	BuddyModel       string `yaml:"buddy_model"`
	ResearchModel    string `yaml:"research_model"`
	UseMockMode      bool   `yaml:"use_mock_mode"`
	ScrapeListingURL string `yaml:"scrape_listing_url"`
	ScrapeProxyURL   string `yaml:"scrape_proxy_url"`
	ScrapeTimeoutSec int    `yaml:"scrape_timeout_secs"`
	FetchTimeoutSec  int    `yaml:"fetch_timeout_secs"`
	CacheTTLHours    int    `yaml:"cache_ttl_hours"`
	RefreshTime      string `yaml:"refresh_time"`
	Timezone         string `yaml:"timezone"`
	MaxSources       int    `yaml:"max_sources"`
	MaxTokens        int    `yaml:"max_tokens"`
	LogLevel         string `yaml:"log_level"`
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		Port:             "3001",
		FrontendURL:      "http://localhost:5173",
		BuddyModel:       "claude-3-haiku-20240307",
		ResearchModel:    "claude-3-sonnet-20240229",
		ScrapeTimeoutSec: 15,
		FetchTimeoutSec:  10,
		CacheTTLHours:    24,
		RefreshTime:      "06:00",
		Timezone:         "UTC",
		MaxSources:       5,
		MaxTokens:        2048,
		LogLevel:         "info",
	}
}

// Load reads a YAML config file and returns a validated Config. A missing
// file is not an error: the server runs on defaults plus environment
// overrides, in mock mode if no API key is set. BROOBOT_CONFIG overrides
// the file path.
func Load(path string) (Config, error) {
	if envPath := os.Getenv("BROOBOT_CONFIG"); envPath != "" {
		path = envPath
	}

	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the config. Secrets usually
// arrive this way rather than through the YAML file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.FrontendURL = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := os.Getenv("SERPER_API_KEY"); v != "" {
		cfg.SerperAPIKey = v
	}
	if v := os.Getenv("USE_MOCK_MODE"); v != "" {
		cfg.UseMockMode = v == "true" || v == "1"
	}
}

// Validate checks that values are well-formed. API keys are optional: an
// empty key switches the corresponding feature to mock mode.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	if err := ValidateTime(c.RefreshTime); err != nil {
		return err
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	if c.CacheTTLHours <= 0 {
		return fmt.Errorf("cache_ttl_hours must be positive, got %d", c.CacheTTLHours)
	}
	if c.MaxSources <= 0 {
		return fmt.Errorf("max_sources must be positive, got %d", c.MaxSources)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}

	return nil
}

// MockOnly reports whether completion features should run purely on canned
// responses.
func (c *Config) MockOnly() bool {
	return c.UseMockMode || c.AnthropicAPIKey == ""
}

// ValidateTime checks that a time string is in valid HH:MM 24-hour format.
func ValidateTime(t string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("invalid time format %q: must be HH:MM", t)
	}

	if t[0] < '0' || t[0] > '9' || t[1] < '0' || t[1] > '9' ||
		t[3] < '0' || t[3] > '9' || t[4] < '0' || t[4] > '9' {
		return fmt.Errorf("invalid time format %q: must be HH:MM", t)
	}

	hour := (int(t[0]-'0') * 10) + int(t[1]-'0')
	minute := (int(t[3]-'0') * 10) + int(t[4]-'0')

	if hour > 23 {
		return fmt.Errorf("invalid time %q: hour must be 0-23", t)
	}
	if minute > 59 {
		return fmt.Errorf("invalid time %q: minute must be 0-59", t)
	}

	return nil
}
