package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application. Delay ranges are part
// of the scraping policy, not incidental sleeps: shrinking them raises the
// chance of upstream blocking.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	OutputDir    string `mapstructure:"OUTPUT_DIR"`
	SearchBase   string `mapstructure:"SEARCH_BASE_URL"`
	EngineDomain string `mapstructure:"SEARCH_ENGINE_DOMAIN"`

	FetchTimeoutSec int `mapstructure:"FETCH_TIMEOUT"`
	MaxPages        int `mapstructure:"MAX_PAGES"`
	HardPageCap     int `mapstructure:"HARD_PAGE_CAP"`
	MaxEmptyPages   int `mapstructure:"MAX_EMPTY_PAGES"`
	URLsPerPage     int `mapstructure:"URLS_PER_PAGE"`

	VisitDelayMinMS    int `mapstructure:"VISIT_DELAY_MIN_MS"`
	VisitDelayMaxMS    int `mapstructure:"VISIT_DELAY_MAX_MS"`
	PageDelayMinMS     int `mapstructure:"PAGE_DELAY_MIN_MS"`
	PageDelayMaxMS     int `mapstructure:"PAGE_DELAY_MAX_MS"`
	StatusBackoffMinMS int `mapstructure:"STATUS_BACKOFF_MIN_MS"`
	StatusBackoffMaxMS int `mapstructure:"STATUS_BACKOFF_MAX_MS"`
	ErrorBackoffMinMS  int `mapstructure:"ERROR_BACKOFF_MIN_MS"`
	ErrorBackoffMaxMS  int `mapstructure:"ERROR_BACKOFF_MAX_MS"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present.
	// This allows configuration purely through environment variables.
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("SEARCH_BASE_URL", "https://www.google.com/search")
	viper.SetDefault("SEARCH_ENGINE_DOMAIN", "google.com")

	viper.SetDefault("FETCH_TIMEOUT", 15) // seconds
	viper.SetDefault("MAX_PAGES", 0)      // 0 = unlimited, subject to HARD_PAGE_CAP
	viper.SetDefault("HARD_PAGE_CAP", 50)
	viper.SetDefault("MAX_EMPTY_PAGES", 2)
	viper.SetDefault("URLS_PER_PAGE", 10) // 5 is the interactive-mode budget

	viper.SetDefault("VISIT_DELAY_MIN_MS", 500)
	viper.SetDefault("VISIT_DELAY_MAX_MS", 2000)
	viper.SetDefault("PAGE_DELAY_MIN_MS", 2000)
	viper.SetDefault("PAGE_DELAY_MAX_MS", 7000)
	viper.SetDefault("STATUS_BACKOFF_MIN_MS", 5000)
	viper.SetDefault("STATUS_BACKOFF_MAX_MS", 10000)
	viper.SetDefault("ERROR_BACKOFF_MIN_MS", 10000)
	viper.SetDefault("ERROR_BACKOFF_MAX_MS", 15000)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a Config populated with the same defaults Load uses,
// without touching the environment. Tests zero out the delay fields.
func Default() *Config {
	return &Config{
		ServerPort:         "8080",
		OutputDir:          "output",
		SearchBase:         "https://www.google.com/search",
		EngineDomain:       "google.com",
		FetchTimeoutSec:    15,
		MaxPages:           0,
		HardPageCap:        50,
		MaxEmptyPages:      2,
		URLsPerPage:        10,
		VisitDelayMinMS:    500,
		VisitDelayMaxMS:    2000,
		PageDelayMinMS:     2000,
		PageDelayMaxMS:     7000,
		StatusBackoffMinMS: 5000,
		StatusBackoffMaxMS: 10000,
		ErrorBackoffMinMS:  10000,
		ErrorBackoffMaxMS:  15000,
	}
}

// FetchTimeout returns the per-request timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

// VisitDelay returns the delay range between page-URL visits.
func (c *Config) VisitDelay() (time.Duration, time.Duration) {
	return msRange(c.VisitDelayMinMS, c.VisitDelayMaxMS)
}

// PageDelay returns the delay range between result pages of one query.
func (c *Config) PageDelay() (time.Duration, time.Duration) {
	return msRange(c.PageDelayMinMS, c.PageDelayMaxMS)
}

// StatusBackoff returns the backoff range after a non-200 response.
func (c *Config) StatusBackoff() (time.Duration, time.Duration) {
	return msRange(c.StatusBackoffMinMS, c.StatusBackoffMaxMS)
}

// ErrorBackoff returns the backoff range after a transport error.
func (c *Config) ErrorBackoff() (time.Duration, time.Duration) {
	return msRange(c.ErrorBackoffMinMS, c.ErrorBackoffMaxMS)
}

func msRange(min, max int) (time.Duration, time.Duration) {
	return time.Duration(min) * time.Millisecond, time.Duration(max) * time.Millisecond
}
