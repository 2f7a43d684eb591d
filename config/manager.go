package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manager reads and edits one config file on top of the defaults.
type Manager struct {
	v          *viper.Viper
	configPath string
}

// NewManager creates a new configuration manager.
// It initializes with defaults and reads the config file if it exists.
func NewManager(configPath string) (*Manager, error) {
	m := &Manager{configPath: configPath}
	m.reset()

	if err := m.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return m, nil
}

func (m *Manager) reset() {
	m.v = viper.New()
	setDefaults(m.v)
	m.v.SetConfigType("yaml")
	m.v.SetConfigFile(m.configPath)
}

// Get returns the value for a given key, or nil.
func (m *Manager) Get(key string) any {
	return m.v.Get(key)
}

// Set validates the configuration with key changed and persists it. Unknown
// keys are rejected.
func (m *Manager) Set(key string, value any) error {
	if !m.v.IsSet(key) {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
	}

	previous := m.v.Get(key)
	m.v.Set(key, value)

	cfg, err := m.Config()
	if err != nil {
		m.v.Set(key, previous)
		return err
	}
	return m.write(cfg)
}

// Config decodes and validates the current settings.
func (m *Manager) Config() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteDefaults writes a complete default config file. An existing file is
// kept unless force is set.
func (m *Manager) WriteDefaults(force bool) error {
	if _, err := os.Stat(m.configPath); err == nil && !force {
		return fmt.Errorf("config file %s already exists", m.configPath)
	}
	m.reset()
	return m.write(Default())
}

func (m *Manager) write(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Reset removes the config file, effectively resetting to defaults.
func (m *Manager) Reset() error {
	if err := os.Remove(m.configPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	m.reset()
	return nil
}

// ConfigPath returns the path to the configuration file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// ParseValue parses a command line value: true/false become booleans and
// [a, b] becomes a list.
func ParseValue(value string) any {
	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := strings.TrimSpace(strings.TrimPrefix(strings.TrimSuffix(value, "]"), "["))
		if inner == "" {
			return []string{}
		}
		parts := strings.Split(inner, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	return value
}
