package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxAttempts     int
	RetryDelay      time.Duration
	MaxOutputTokens int32
}

type StorageConfig struct {
	MaxFileSize int64
}

type LogConfig struct {
	JSON       bool
	Debug      bool
	MaxPreview int
}

var defaults = map[string]any{
	"PORT":                     "3000",
	"ENV":                      "development",
	"READ_TIMEOUT":             "30s",
	"WRITE_TIMEOUT":            "150s",
	"GEMINI_API_KEY":           "",
	"GEMINI_MODEL":             "gemini-2.5-flash",
	"GEMINI_TIMEOUT":           "60s",
	"GEMINI_MAX_ATTEMPTS":      1,
	"GEMINI_RETRY_DELAY":       "2s",
	"GEMINI_MAX_OUTPUT_TOKENS": 1024,
	"MAX_FILE_SIZE":            10485760,
	"LOG_JSON":                 false,
	"LOG_DEBUG":                false,
	"LOG_MAX_PREVIEW":          200,
}

// Load reads .env (if present) and the process environment once. The returned
// value is meant to live for the whole process and is never mutated.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Env:          v.GetString("ENV"),
			ReadTimeout:  v.GetDuration("READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("WRITE_TIMEOUT"),
		},
		Gemini: GeminiConfig{
			APIKey:          strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			Model:           strings.TrimSpace(v.GetString("GEMINI_MODEL")),
			Timeout:         v.GetDuration("GEMINI_TIMEOUT"),
			MaxAttempts:     v.GetInt("GEMINI_MAX_ATTEMPTS"),
			RetryDelay:      v.GetDuration("GEMINI_RETRY_DELAY"),
			MaxOutputTokens: v.GetInt32("GEMINI_MAX_OUTPUT_TOKENS"),
		},
		Storage: StorageConfig{
			MaxFileSize: v.GetInt64("MAX_FILE_SIZE"),
		},
		Log: LogConfig{
			JSON:       v.GetBool("LOG_JSON"),
			Debug:      v.GetBool("LOG_DEBUG"),
			MaxPreview: v.GetInt("LOG_MAX_PREVIEW"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Gemini.APIKey == "" {
		errs = append(errs, errors.New("GEMINI_API_KEY is required"))
	}
	if c.Gemini.Model == "" {
		errs = append(errs, errors.New("GEMINI_MODEL must not be empty"))
	}
	if c.Gemini.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("GEMINI_TIMEOUT must be positive, got %s", c.Gemini.Timeout))
	}
	if c.Gemini.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("GEMINI_MAX_ATTEMPTS must be at least 1, got %d", c.Gemini.MaxAttempts))
	}
	if c.Gemini.RetryDelay < 0 {
		errs = append(errs, fmt.Errorf("GEMINI_RETRY_DELAY must not be negative, got %s", c.Gemini.RetryDelay))
	}
	if c.Gemini.MaxOutputTokens <= 0 {
		errs = append(errs, fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS must be positive, got %d", c.Gemini.MaxOutputTokens))
	}
	if c.Storage.MaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Storage.MaxFileSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
