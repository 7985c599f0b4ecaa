// Package config resolves runtime settings from flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/mathpath/internal/learningpath"
)

// EnvPrefix is prepended to every environment variable, e.g.
// MATHPATH_LOG_LEVEL or MATHPATH_PATH_ADVANCEMENT_THRESHOLD.
const EnvPrefix = "MATHPATH"

// Config is the resolved runtime configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default location.
	DBPath string
	// ContentPath is an optional curriculum content file replacing the
	// bundled catalog.
	ContentPath string
	LogLevel    string
	LogFormat   string
	Path        learningpath.Config
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Path:      learningpath.DefaultConfig(),
	}
}

// New returns a viper instance reading MATHPATH_* variables and, when
// present, a mathpath.{yaml,toml,json} file from the working directory or
// the user config directory.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("mathpath")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/mathpath")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}
	return v
}

// settings mirrors the nested sections decoded with mapstructure.
type settings struct {
	Path learningpath.Config `mapstructure:"path"`
}

// Load reads the configuration from v, falling back to DefaultConfig for
// unset keys, and validates the result.
func Load(v *viper.Viper) (Config, error) {
	def := DefaultConfig()
	v.SetDefault("db", def.DBPath)
	v.SetDefault("content", def.ContentPath)
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-format", def.LogFormat)

	// Defaults register every path key so environment overrides are seen
	// when the section is decoded.
	p := def.Path
	for k, val := range map[string]any{
		"advancement_threshold": p.AdvancementThreshold,
		"strength_threshold":    p.StrengthThreshold,
		"weakness_threshold":    p.WeaknessThreshold,
		"recency_weight":        p.RecencyWeight,
		"excellence_threshold":  p.ExcellenceThreshold,
		"success_target":        p.SuccessTarget,
		"lessons_per_week":      p.LessonsPerWeek,
		"max_weak_lessons":      p.MaxWeakLessons,
		"max_recommended":       p.MaxRecommended,
		"max_remedial":          p.MaxRemedial,
	} {
		v.SetDefault("path."+k, val)
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg := Config{
		DBPath:      v.GetString("db"),
		ContentPath: v.GetString("content"),
		LogLevel:    strings.ToLower(v.GetString("log-level")),
		LogFormat:   strings.ToLower(v.GetString("log-format")),
		Path:        s.Path,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks log settings and the learning path policy.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.LogFormat))
	}
	if err := c.Path.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("path: %w", err))
	}
	return errors.Join(errs...)
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
