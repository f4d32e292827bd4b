package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	WordsFile     string
	LogLevel      string
	AdvanceDelay  time.Duration
	MinVocabulary int
	MaxOptions    int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		WordsFile: getEnv("WORDS_FILE", "words.json"),
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
	}

	var err error
	if cfg.AdvanceDelay, err = time.ParseDuration(getEnv("ADVANCE_DELAY", "1s")); err != nil {
		return nil, fmt.Errorf("ADVANCE_DELAY is invalid: %w", err)
	}
	if cfg.MinVocabulary, err = strconv.Atoi(getEnv("MIN_VOCABULARY", "2")); err != nil {
		return nil, fmt.Errorf("MIN_VOCABULARY is invalid: %w", err)
	}
	if cfg.MaxOptions, err = strconv.Atoi(getEnv("MAX_OPTIONS", "6")); err != nil {
		return nil, fmt.Errorf("MAX_OPTIONS is invalid: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.WordsFile == "" {
		return fmt.Errorf("WORDS_FILE is required")
	}
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("ADVANCE_DELAY must not be negative")
	}
	if c.MinVocabulary < 1 {
		return fmt.Errorf("MIN_VOCABULARY must be at least 1")
	}
	if c.MaxOptions < 2 {
		return fmt.Errorf("MAX_OPTIONS must be at least 2")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
