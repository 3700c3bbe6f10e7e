package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"organizer-cli/internal/config"
)

// Settings are tool-level knobs for the surrounding CLI: how the core
// resolver searches for configuration. The core receives them as explicit
// options and never reads the environment itself.
type Settings struct {
	ConfigFile      string   `mapstructure:"config_file"`
	BoundaryMarkers []string `mapstructure:"boundary_markers"`
	StopAtBoundary  bool     `mapstructure:"stop_at_boundary"`
	MaxDepth        int      `mapstructure:"max_depth"`
}

// SettingsManager loads tool settings with viper precedence
// (env > config file > defaults).
type SettingsManager struct {
	v *viper.Viper
}

// NewSettingsManager creates a settings manager with defaults applied.
func NewSettingsManager() *SettingsManager {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ORGANIZER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := config.DefaultOptions()
	v.SetDefault("config_file", defaults.ConfigFile)
	v.SetDefault("boundary_markers", defaults.BoundaryMarkers)
	v.SetDefault("stop_at_boundary", defaults.StopAtBoundary)
	v.SetDefault("max_depth", defaults.MaxDepth)

	return &SettingsManager{v: v}
}

// Load reads settings from the given path, falling back to
// ~/.config/organizer/config.yaml and to defaults when no file exists.
func (m *SettingsManager) Load(path string) (*Settings, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, ".config", "organizer", "config.yaml")
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			m.v.SetConfigFile(path)
			if err := m.v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	var settings Settings
	if err := m.v.Unmarshal(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ResolverOptions converts settings into the core resolver's options.
func (s *Settings) ResolverOptions() config.Options {
	return config.Options{
		ConfigFile:      s.ConfigFile,
		BoundaryMarkers: s.BoundaryMarkers,
		StopAtBoundary:  s.StopAtBoundary,
		MaxDepth:        s.MaxDepth,
	}
}
