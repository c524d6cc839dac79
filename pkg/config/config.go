package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/goliatone/go-config/cfgx"
)

// Config captures module-level configuration knobs: default locales, the
// loader's remote endpoint, and inline translation templates.
type Config struct {
	Locale        string                    `mapstructure:"locale" json:"locale"`
	DefaultLocale string                    `mapstructure:"default_locale" json:"default_locale"`
	Timezone      string                    `mapstructure:"timezone" json:"timezone"`
	Translations  map[string]map[string]any `mapstructure:"translations" json:"translations"`
	Loader        LoaderConfig              `mapstructure:"loader" json:"loader"`
}

// LoaderConfig wires the remote template store. An empty URL disables remote
// loading and the engine serves catalog-only lookups.
type LoaderConfig struct {
	URL       string      `mapstructure:"url" json:"url"`
	KeyPrefix string      `mapstructure:"key_prefix" json:"key_prefix"`
	Cache     CacheConfig `mapstructure:"cache" json:"cache"`
}

// CacheConfig bounds the loader's in-process template cache.
type CacheConfig struct {
	MaxEntries int           `mapstructure:"max_entries" json:"max_entries"`
	MaxAge     time.Duration `mapstructure:"max_age" json:"max_age"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Locale:        "en",
		DefaultLocale: "en",
		Loader: LoaderConfig{
			Cache: CacheConfig{
				MaxEntries: 500,
				MaxAge:     time.Hour,
			},
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if c.DefaultLocale == "" {
		return errors.New("default_locale is required")
	}
	if c.Loader.Cache.MaxEntries < 0 {
		return fmt.Errorf("loader.cache.max_entries must be >= 0")
	}
	if c.Loader.Cache.MaxAge < 0 {
		return fmt.Errorf("loader.cache.max_age must be >= 0")
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone: %w", err)
		}
	}
	return nil
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// While cfgx.Build still returns zero values, we fallback to a lightweight
// decoder to keep smoke tests meaningful.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (duration hooks, preprocessors, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = defaults.DefaultLocale
	}
	if c.Loader.Cache.MaxEntries == 0 {
		c.Loader.Cache.MaxEntries = defaults.Loader.Cache.MaxEntries
	}
	if c.Loader.Cache.MaxAge == 0 {
		c.Loader.Cache.MaxAge = defaults.Loader.Cache.MaxAge
	}
	return c
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
