// Package config loads user profiles: the default currency, language, and
// transport settings applied when the CLI builds an explorer.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Profile holds the user-facing defaults for market queries.
type Profile struct {
	Currency       string `mapstructure:"currency" validate:"required"`
	Language       string `mapstructure:"language" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	MaxRetries     int    `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// Timeout returns the HTTP timeout the profile asks for, or zero when unset.
func (p *Profile) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// DefaultProfile is used when no profile file is given.
func DefaultProfile() *Profile {
	return &Profile{
		Currency:       "USD",
		Language:       "english",
		TimeoutSeconds: 30,
	}
}

// LoadProfile reads and validates a profile file. Viper infers the format
// from the extension, so YAML, TOML, and JSON profiles all work.
func LoadProfile(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("currency", "USD")
	v.SetDefault("language", "english")
	v.SetDefault("timeout_seconds", 30)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := validator.New().Struct(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}
