package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var configKeys = []string{"WORDS_FILE", "LOG_LEVEL", "ADVANCE_DELAY", "MIN_VOCABULARY", "MAX_OPTIONS"}

// clearEnv unsets all config keys and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()

	original := make(map[string]string)
	for _, key := range configKeys {
		if value, ok := os.LookupEnv(key); ok {
			original[key] = value
		}
		os.Unsetenv(key)
	}

	t.Cleanup(func() {
		for _, key := range configKeys {
			if value, ok := original[key]; ok {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "words.json", cfg.WordsFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.AdvanceDelay)
	assert.Equal(t, 2, cfg.MinVocabulary)
	assert.Equal(t, 6, cfg.MaxOptions)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)

	os.Setenv("WORDS_FILE", "/tmp/vocab.json")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("ADVANCE_DELAY", "250ms")
	os.Setenv("MIN_VOCABULARY", "4")
	os.Setenv("MAX_OPTIONS", "4")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/vocab.json", cfg.WordsFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.AdvanceDelay)
	assert.Equal(t, 4, cfg.MinVocabulary)
	assert.Equal(t, 4, cfg.MaxOptions)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{name: "bad delay", key: "ADVANCE_DELAY", value: "soon", expected: "ADVANCE_DELAY"},
		{name: "negative delay", key: "ADVANCE_DELAY", value: "-1s", expected: "ADVANCE_DELAY"},
		{name: "bad min vocabulary", key: "MIN_VOCABULARY", value: "two", expected: "MIN_VOCABULARY"},
		{name: "zero min vocabulary", key: "MIN_VOCABULARY", value: "0", expected: "MIN_VOCABULARY"},
		{name: "bad max options", key: "MAX_OPTIONS", value: "many", expected: "MAX_OPTIONS"},
		{name: "max options too small", key: "MAX_OPTIONS", value: "1", expected: "MAX_OPTIONS"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose", expected: "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			os.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestConfig_Validate_EmptyWordsFile(t *testing.T) {
	cfg := &Config{
		LogLevel:      "warn",
		MinVocabulary: 2,
		MaxOptions:    6,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "WORDS_FILE")
}
