// Package config loads CLI configuration from file and THEMES_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/opencode-ai/themes/internal/export"
)

// EnvPrefix is the prefix for environment overrides, e.g. THEMES_LOG_LEVEL.
const EnvPrefix = "THEMES"

// Config is the resolved CLI configuration.
type Config struct {
	Theme ThemeConfig `mapstructure:"theme"`
	Build BuildConfig `mapstructure:"build"`
	Log   LogConfig   `mapstructure:"log"`
}

// ThemeConfig selects themes and where user themes live.
type ThemeConfig struct {
	// Default is the theme family or name used when none is given. A family
	// such as "solarized" resolves to its dark or light member.
	Default     string   `mapstructure:"default"`
	SearchPaths []string `mapstructure:"search_paths"`
}

// BuildConfig holds defaults for `themes build`.
type BuildConfig struct {
	Format string `mapstructure:"format"`
	Out    string `mapstructure:"out"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{Default: "solarized"},
		Build: BuildConfig{Format: string(export.FormatJSON), Out: "dist/themes"},
		Log:   LogConfig{Level: "warn", Format: "console"},
	}
}

// DefaultConfigPath returns ~/.config/themes/config.yaml, or "" without a home dir.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "themes", "config.yaml")
}

// Load reads configuration. An explicit path must exist; the default path is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes and checks enumerated values.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	var errs []error
	if _, err := export.ParseFormat(c.Build.Format); err != nil {
		errs = append(errs, fmt.Errorf("build.format: %w", err))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme.default", cfg.Theme.Default)
	v.SetDefault("theme.search_paths", cfg.Theme.SearchPaths)
	v.SetDefault("build.format", cfg.Build.Format)
	v.SetDefault("build.out", cfg.Build.Out)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}
