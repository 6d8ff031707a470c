package config

import (
	"os"
	"strconv"

	"catstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Output OutputConfig
	Chart  ChartConfig
}

// OutputConfig holds artifact output settings
type OutputConfig struct {
	Dir      string
	WritePDF bool
}

// ChartConfig holds chart geometry settings
type ChartConfig struct {
	WidthInches  float64
	HeightInches float64
	DPI          int
}

// Default returns the built-in configuration: current directory output,
// 9x5 inch chart at 300 DPI, no PDF.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Dir: "."},
		Chart:  ChartConfig{WidthInches: 9, HeightInches: 5, DPI: 300},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Output: OutputConfig{
			Dir:      getEnv("CATSTAT_OUTPUT_DIR", "."),
			WritePDF: getEnvBool("CATSTAT_WRITE_PDF", false),
		},
		Chart: ChartConfig{
			WidthInches:  getEnvFloat("CATSTAT_CHART_WIDTH_IN", 9),
			HeightInches: getEnvFloat("CATSTAT_CHART_HEIGHT_IN", 5),
			DPI:          getEnvInt("CATSTAT_CHART_DPI", 300),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Output.Dir == "" {
		return errors.ConfigInvalid("output directory must not be empty")
	}
	if cfg.Chart.WidthInches <= 0 || cfg.Chart.HeightInches <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	if cfg.Chart.DPI <= 0 {
		return errors.ConfigInvalid("chart DPI must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
