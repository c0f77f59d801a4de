package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv clears every key Load reads, then applies overrides.
func setEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
	keys := []string{
		"GO_ENV", "PORT", "API_BASE_URL", "API_SIGNING_KEY", "API_TOKEN_TTL", "REQUEST_TIMEOUT",
		"TIMEZONE", "WEEK_START", "ALLOWED_ORIGINS", "XRAY_ENABLED", "STRIPE_PUBLISHABLE_KEY",
		"MAIL_PROVIDER", "MAIL_FROM", "MAIL_FROM_NAME", "BOOKING_NOTIFY_EMAIL", "SES_REGION",
		"SES_ACCESS_KEY_ID", "SES_SECRET_ACCESS_KEY", "SES_INSECURE_SKIP_VERIFY", "LOG_LEVEL",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
	// production skips the .env lookup in the package directory.
	t.Setenv("GO_ENV", "production")
	for k, v := range overrides {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.APITokenTTL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Equal(t, "noop", cfg.MailProvider)
	assert.False(t, cfg.XRayEnabled)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":            "9090",
		"API_TOKEN_TTL":   "90s",
		"TIMEZONE":        "UTC",
		"WEEK_START":      "monday",
		"ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"XRAY_ENABLED":    "true",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.APITokenTTL)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, time.Monday, cfg.WeekStart)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.XRayEnabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "REQUEST_TIMEOUT", "soon"},
		{"negative duration", "API_TOKEN_TTL", "-1m"},
		{"bool", "XRAY_ENABLED", "maybe"},
		{"timezone", "TIMEZONE", "Mars/Olympus"},
		{"week start", "WEEK_START", "someday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, map[string]string{tt.key: tt.val})

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"Monday", time.Monday, false},
		{" sat ", time.Saturday, false},
		{"SUNDAY", time.Sunday, false},
		{"someday", time.Sunday, true},
		{"", time.Sunday, true},
	}
	for _, tt := range tests {
		got, err := parseWeekday(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
