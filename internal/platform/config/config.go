package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lueurxax/inkguard/internal/core/domain"
	apperrors "github.com/lueurxax/inkguard/internal/core/errors"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`

	MaxCharacters    int    `env:"MAX_CHARACTERS" envDefault:"5000"`
	MinCharacters    int    `env:"MIN_CHARACTERS" envDefault:"10"`
	MaxHashtags      int    `env:"MAX_HASHTAGS" envDefault:"2"`
	MaxHashtagLength int    `env:"MAX_HASHTAG_LENGTH" envDefault:"20"`
	LexiconPath      string `env:"LEXICON_PATH"`

	RateLimitRPS        float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst      int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	RequestBodyMaxBytes int64         `env:"REQUEST_BODY_MAX_BYTES" envDefault:"65536"`
	CORSAllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	TrustProxy          bool          `env:"TRUST_PROXY" envDefault:"false"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	applyAliases(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the limits are positive and consistent.
func (c *Config) Validate() error {
	switch {
	case c.MaxCharacters <= 0:
		return fmt.Errorf("%w: MAX_CHARACTERS must be positive, got %d", apperrors.ErrInvalidLimits, c.MaxCharacters)
	case c.MinCharacters < 0:
		return fmt.Errorf("%w: MIN_CHARACTERS must not be negative, got %d", apperrors.ErrInvalidLimits, c.MinCharacters)
	case c.MinCharacters > c.MaxCharacters:
		return fmt.Errorf("%w: MIN_CHARACTERS (%d) exceeds MAX_CHARACTERS (%d)",
			apperrors.ErrInvalidLimits, c.MinCharacters, c.MaxCharacters)
	case c.MaxHashtags <= 0:
		return fmt.Errorf("%w: MAX_HASHTAGS must be positive, got %d", apperrors.ErrInvalidLimits, c.MaxHashtags)
	case c.MaxHashtagLength <= 0:
		return fmt.Errorf("%w: MAX_HASHTAG_LENGTH must be positive, got %d", apperrors.ErrInvalidLimits, c.MaxHashtagLength)
	case c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0:
		return fmt.Errorf("%w: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive", apperrors.ErrInvalidLimits)
	case c.RequestBodyMaxBytes <= 0:
		return fmt.Errorf("%w: REQUEST_BODY_MAX_BYTES must be positive", apperrors.ErrInvalidLimits)
	}

	return nil
}

// Limits returns the content limits exposed to the editors.
func (c *Config) Limits() domain.Limits {
	return domain.Limits{
		MaxCharacters:    c.MaxCharacters,
		MinCharacters:    c.MinCharacters,
		MaxHashtags:      c.MaxHashtags,
		MaxHashtagLength: c.MaxHashtagLength,
	}
}

// applyAliases honours PORT, as set by most container platforms, when
// HTTP_PORT is absent.
func applyAliases(cfg *Config) {
	if !hasEnv("HTTP_PORT") {
		setIntFromEnv("PORT", &cfg.HTTPPort)
	}
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func setIntFromEnv(key string, target *int) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return
	}

	*target = parsed
}
