// Package config provides configuration management for the k2fsr CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
)

// Config represents the main configuration structure
type Config struct {
	Version  string                  `json:"version"`
	Defaults DefaultSettings         `json:"defaults"`
	Profiles map[string]FieldProfile `json:"profiles"`
	UI       UIConfig                `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Profile string `json:"profile"` // Default: beta
	Steps   int    `json:"steps"`   // Default: 64
}

// FieldProfile describes one field/register configuration: the defining
// polynomial and the four lane exponents.
type FieldProfile struct {
	Description string              `json:"description,omitempty"`
	Modulus     uint32              `json:"modulus"`
	Exponents   [fsra.LaneCount]int `json:"exponents"`
}

// FieldConfig converts the profile into the core's configuration type.
func (p FieldProfile) FieldConfig() fsra.Config {
	return fsra.Config{Modulus: p.Modulus, Exponents: p.Exponents}
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool `json:"use_color"`
}

// Manager manages configuration loading and saving
type Manager struct {
	config     *Config
	configPath string
}

// NewManager creates a new configuration manager. A missing config file is
// replaced with the built-in defaults without touching disk.
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	m := &Manager{configPath: configPath}
	if err := m.Load(); err != nil {
		m.config = DefaultConfig()
	}

	return m, nil
}

// DefaultConfig returns the default configuration. The four built-in profiles
// are the KCipher-2 feedback fields; beta is the one FSR-A uses.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Profile: "beta",
			Steps:   64,
		},
		Profiles: map[string]FieldProfile{
			"beta": {
				Description: "x^8+x^7+x^6+x+1, FSR-A feedback field",
				Modulus:     0x1C3,
				Exponents:   [fsra.LaneCount]int{71, 12, 3, 24},
			},
			"gamma": {
				Description: "x^8+x^5+x^3+x^2+1",
				Modulus:     0x12D,
				Exponents:   [fsra.LaneCount]int{29, 93, 156, 230},
			},
			"delta": {
				Description: "x^8+x^6+x^3+x^2+1",
				Modulus:     0x14D,
				Exponents:   [fsra.LaneCount]int{248, 199, 16, 34},
			},
			"zeta": {
				Description: "x^8+x^6+x^5+x^2+1",
				Modulus:     0x165,
				Exponents:   [fsra.LaneCount]int{16, 56, 253, 157},
			},
		},
		UI: UIConfig{
			UseColor: true,
		},
	}
}

// Load loads the configuration from disk
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	m.config = config
	return nil
}

// Save saves the configuration to disk
func (m *Manager) Save() error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Path returns the configuration file location
func (m *Manager) Path() string {
	return m.configPath
}

// Profile retrieves a field profile by name and validates it before handing
// it out, so a hand-edited config file fails fast rather than producing a
// malformed table.
func (m *Manager) Profile(name string) (FieldProfile, error) {
	profile, exists := m.config.Profiles[name]
	if !exists {
		return FieldProfile{}, fmt.Errorf("profile '%s' not found", name)
	}

	if err := profile.FieldConfig().Validate(); err != nil {
		return FieldProfile{}, fmt.Errorf("profile '%s' is invalid: %w", name, err)
	}

	return profile, nil
}

// ProfileNames returns all profile names in sorted order
func (m *Manager) ProfileNames() []string {
	names := make([]string, 0, len(m.config.Profiles))
	for name := range m.config.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("K2FSR_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "k2fsr", "config.json"), nil
	}

	// Default to ~/.config/k2fsr/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "k2fsr", "config.json"), nil
}
