package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the application settings. Some flags here are referenced
// in code but not consistently respected; see the field comments.
type AppConfig struct {
	Environment string

	// Paging policy knobs.
	DefaultPageSize int
	MaxPageSize     int

	// EnableSoftDelete feeds the repository's hard-delete flag, but the
	// memory store deletes physically either way. Known gap.
	EnableSoftDelete bool

	// StrictValidation is read in a few places and acted on in none.
	StrictValidation bool

	EnforceHTTPS bool

	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Environment:      "development",
		DefaultPageSize:  20,
		MaxPageSize:      100,
		EnableSoftDelete: true,
		StrictValidation: false,
		EnforceHTTPS:     false,
		RateLimitEnabled: true,
		RateLimitConfigs: map[string]RateLimitConfig{
			"POST /users": {
				Requests: 5,
				Window:   time.Minute,
			},
			"POST /tasks": {
				Requests: 20,
				Window:   time.Minute,
			},
			"GET /tasks": {
				Requests: 100,
				Window:   time.Minute,
			},
			"default": {
				Requests: 60,
				Window:   time.Minute,
			},
		},
	}
}

// Load builds the config from defaults plus TASKAPP_-prefixed environment
// variables (TASKAPP_ENVIRONMENT, TASKAPP_ENFORCE_HTTPS, ...). Environment
// variables win over defaults.
func Load() (*AppConfig, error) {
	v := viper.New()

	defaults := GetDefaultConfig()

	v.SetDefault("environment", defaults.Environment)
	v.SetDefault("default_page_size", defaults.DefaultPageSize)
	v.SetDefault("max_page_size", defaults.MaxPageSize)
	v.SetDefault("enable_soft_delete", defaults.EnableSoftDelete)
	v.SetDefault("strict_validation", defaults.StrictValidation)
	v.SetDefault("enforce_https", defaults.EnforceHTTPS)
	v.SetDefault("rate_limit_enabled", defaults.RateLimitEnabled)

	v.SetEnvPrefix("TASKAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &AppConfig{
		Environment:      v.GetString("environment"),
		DefaultPageSize:  v.GetInt("default_page_size"),
		MaxPageSize:      v.GetInt("max_page_size"),
		EnableSoftDelete: v.GetBool("enable_soft_delete"),
		StrictValidation: v.GetBool("strict_validation"),
		EnforceHTTPS:     v.GetBool("enforce_https"),
		RateLimitEnabled: v.GetBool("rate_limit_enabled"),
		RateLimitConfigs: defaults.RateLimitConfigs,
	}

	return cfg, nil
}

// EffectivePageSize resolves a requested page size. nil falls back to the
// default and anything above the maximum is clamped. Zero and negative
// values pass through unchanged.
func (c *AppConfig) EffectivePageSize(requested *int) int {
	if requested == nil {
		return c.DefaultPageSize
	}

	if *requested > c.MaxPageSize {
		return c.MaxPageSize
	}

	return *requested
}
