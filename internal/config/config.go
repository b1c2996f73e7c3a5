// Package config loads eigenkit settings from defaults, an optional YAML
// file, EIGENKIT_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// EIGENKIT_LOG_LEVEL=debug for log.level.
const EnvPrefix = "EIGENKIT"

// Config represents the complete eigenkit configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Matrix MatrixConfig `mapstructure:"matrix"`
	ODE    ODEConfig    `mapstructure:"ode"`
	Watch  WatchConfig  `mapstructure:"watch"`
}

// LogConfig controls diagnostic logging on stderr
type LogConfig struct {
	// Level is one of debug, info, warn, error (case-insensitive)
	Level string `mapstructure:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
}

// OutputConfig controls how results are printed on stdout
type OutputConfig struct {
	// Format is "text" (default, the classic layout), "yaml" or "json"
	Format string `mapstructure:"format"`
	// Color is "auto", "always" or "never"; only headings are ever styled
	Color string `mapstructure:"color"`
}

// MatrixConfig controls the matrix file reader
type MatrixConfig struct {
	// Delimiter splits row entries; empty means any whitespace
	Delimiter string `mapstructure:"delimiter"`
}

// ODEConfig controls the odesystem program
type ODEConfig struct {
	// ShowDerived appends the basis derived from the eigenpairs and the
	// textbook check to the fixed walkthrough
	ShowDerived bool `mapstructure:"show_derived"`
}

// WatchConfig controls matrix2eigens --watch
type WatchConfig struct {
	// Debounce collapses bursts of file events into one recomputation
	Debounce time.Duration `mapstructure:"debounce"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Matrix: MatrixConfig{
			Delimiter: "",
		},
		ODE: ODEConfig{
			ShowDerived: false,
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.color", defaults.Output.Color)

	v.SetDefault("matrix.delimiter", defaults.Matrix.Delimiter)

	v.SetDefault("ode.show_derived", defaults.ODE.ShowDerived)

	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
}

// New returns a viper instance with defaults, environment binding and the
// config file (if any) already read. cfgFile overrides the search path; a
// missing file on the search path is not an error, a missing explicit file is.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eigenkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eigenkit"
	}
	return filepath.Join(home, ".config", "eigenkit")
}
