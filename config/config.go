package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	// Tutor API
	APIBaseURL     string
	APISigningKey  string
	APITokenTTL    time.Duration
	RequestTimeout time.Duration

	// Schedule display
	Location  *time.Location
	WeekStart time.Weekday

	AllowedOrigins       []string
	XRayEnabled          bool
	StripePublishableKey string

	// Mail
	MailProvider       string
	MailFrom           string
	MailFromName       string
	BookingNotifyEmail string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	SESInsecureSkipTLS bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:          env,
		Port:                 getEnv("PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		APIBaseURL:           getEnv("API_BASE_URL", "http://localhost:3000"),
		APISigningKey:        os.Getenv("API_SIGNING_KEY"),
		AllowedOrigins:       splitList(os.Getenv("ALLOWED_ORIGINS")),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		MailProvider:         getEnv("MAIL_PROVIDER", "noop"),
		MailFrom:             os.Getenv("MAIL_FROM"),
		MailFromName:         getEnv("MAIL_FROM_NAME", "Tutor Portal"),
		BookingNotifyEmail:   os.Getenv("BOOKING_NOTIFY_EMAIL"),
		SESRegion:            os.Getenv("SES_REGION"),
		SESAccessKeyID:       os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey:   os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	var err error
	if cfg.APITokenTTL, err = getDuration("API_TOKEN_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.XRayEnabled, err = getBool("XRAY_ENABLED"); err != nil {
		return nil, err
	}
	if cfg.SESInsecureSkipTLS, err = getBool("SES_INSECURE_SKIP_VERIFY"); err != nil {
		return nil, err
	}

	cfg.Location = time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if cfg.Location, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("TIMEZONE: %w", err)
		}
	}
	cfg.WeekStart = time.Sunday
	if ws := os.Getenv("WEEK_START"); ws != "" {
		if cfg.WeekStart, err = parseWeekday(ws); err != nil {
			return nil, fmt.Errorf("WEEK_START: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}

func getBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// parseWeekday reads a weekday name such as "sunday" or "Mon".
func parseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) == 3 && s == name[:3]) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// splitList reads a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
