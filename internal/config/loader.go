package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/validate"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SKYQUIZ_CONFIG is set
//  3. env (prefix SKYQUIZ_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SKYQUIZ_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SKYQUIZ_ADDR, SKYQUIZ_ROUND_LENGTH, ...
	// Map env keys like SKYQUIZ_ROUND_LENGTH -> round_length (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SKYQUIZ_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "skyquiz_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints plus the cross-field round length bounds.
func (c *Config) Validate() error {
	v := validate.Struct(c)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, v.Errors.One())
	}
	if c.RoundLengthMin > c.RoundLengthMax {
		return fmt.Errorf("%w: round_length_min exceeds round_length_max", ErrInvalidConfig)
	}
	if c.RoundLength < c.RoundLengthMin || c.RoundLength > c.RoundLengthMax {
		return fmt.Errorf("%w: round_length outside [round_length_min, round_length_max]", ErrInvalidConfig)
	}
	return nil
}
