// Package config provides configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/safedep/timelineviewer/core/options"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override config keys, with
// dots replaced by underscores: TIMELINEVIEWER_DISPLAY_SCALE.
const EnvPrefix = "TIMELINEVIEWER"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// Config holds all configuration values.
type Config struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Data    DataConfig    `mapstructure:"data" yaml:"data"`
	Table   TableConfig   `mapstructure:"table" yaml:"table"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// DisplayConfig holds chart settings.
type DisplayConfig struct {
	ChartType       string          `mapstructure:"chart_type" yaml:"chart_type"`
	InteractionType string          `mapstructure:"interaction_type" yaml:"interaction_type"`
	Width           int             `mapstructure:"width" yaml:"width"`
	Height          int             `mapstructure:"height" yaml:"height"`
	Margins         options.Margins `mapstructure:"margins" yaml:"margins"`
	StartDate       string          `mapstructure:"start_date" yaml:"start_date"`
	EndDate         string          `mapstructure:"end_date" yaml:"end_date"`
	Scale           string          `mapstructure:"scale" yaml:"scale"`
	Ticks           int             `mapstructure:"ticks" yaml:"ticks"`
	Colors          []string        `mapstructure:"colors" yaml:"colors"`
	NavigationStep  string          `mapstructure:"navigation_step" yaml:"navigation_step"`
}

// DataConfig describes the input records.
type DataConfig struct {
	// DateField names the attribute holding each event's date.
	DateField string `mapstructure:"date_field" yaml:"date_field"`

	// DateFormat is a strftime pattern.
	DateFormat string `mapstructure:"date_format" yaml:"date_format"`

	// CountField names a numeric attribute weighing each event. Empty
	// counts every event once.
	CountField string `mapstructure:"count_field" yaml:"count_field"`
}

// TableConfig holds data table settings. No columns means no table.
type TableConfig struct {
	Size    int      `mapstructure:"size" yaml:"size"`
	Columns []string `mapstructure:"columns" yaml:"columns"`
	GroupBy string   `mapstructure:"group_by" yaml:"group_by"`
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	Colors ColorMode `mapstructure:"colors" yaml:"colors"`
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// HasTable reports whether a data table is configured.
func (c *Config) HasTable() bool {
	return len(c.Table.Columns) > 0
}

// ShouldUseColors returns true if colors should be used based on config and terminal.
func (c *Config) ShouldUseColors() bool {
	switch c.Output.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		fileInfo, err := os.Stdout.Stat()
		if err != nil {
			return false
		}
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
}

// Validate checks the configuration after fields were changed in code.
func (c *Config) Validate() error {
	return validate(c)
}
