package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskapp/pkg/config"
)

func intPtr(v int) *int {
	return &v
}

func TestEffectivePageSize(t *testing.T) {
	cfg := config.GetDefaultConfig()

	cases := []struct {
		name      string
		requested *int
		want      int
	}{
		{"nil falls back to default", nil, 20},
		{"above max clamps", intPtr(150), 100},
		{"at max passes", intPtr(100), 100},
		{"in range passes", intPtr(5), 5},
		{"zero passes through", intPtr(0), 0},
		{"negative passes through", intPtr(-3), -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cfg.EffectivePageSize(tc.requested))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, 20, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.True(t, cfg.EnableSoftDelete)
	assert.False(t, cfg.StrictValidation)
	assert.NotEmpty(t, cfg.RateLimitConfigs["default"].Requests)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TASKAPP_ENVIRONMENT", "production")
	t.Setenv("TASKAPP_ENFORCE_HTTPS", "true")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.EnforceHTTPS)
}
