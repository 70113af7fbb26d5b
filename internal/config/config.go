package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"paydate-engine/internal/paydate"
)

// AppConfig holds all configuration for the service.
type AppConfig struct {
	Port                string
	LogLevel            string
	Environment         string
	HolidayCalendarFile string
	MaxAdjustmentShifts int
	StrictPaySpan       bool
}

// Load reads configuration from environment variables and a .env file, if one
// is present. Variables already set in the environment win over the file.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.HolidayCalendarFile = os.Getenv("HOLIDAY_CALENDAR_FILE")

	cfg.MaxAdjustmentShifts = paydate.DefaultMaxShifts
	if s := os.Getenv("MAX_ADJUSTMENT_SHIFTS"); s != "" {
		cfg.MaxAdjustmentShifts, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_ADJUSTMENT_SHIFTS: %w", err)
		}
		if cfg.MaxAdjustmentShifts <= 0 {
			return nil, fmt.Errorf("invalid MAX_ADJUSTMENT_SHIFTS: must be positive, got %d", cfg.MaxAdjustmentShifts)
		}
	}

	if s := os.Getenv("STRICT_PAY_SPAN"); s != "" {
		cfg.StrictPaySpan, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid STRICT_PAY_SPAN: %w", err)
		}
	}

	return cfg, nil
}

// Calculator builds the due date calculator described by the configuration.
func (c *AppConfig) Calculator() paydate.Calculator {
	return paydate.Calculator{
		MaxShifts: c.MaxAdjustmentShifts,
		Strict:    c.StrictPaySpan,
	}
}
