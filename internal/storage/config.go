package storage

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config"
	ConfigFileType = "yaml"

	// ConfigDir is system-level on purpose. Reading per-user config
	// would let a restricted user repoint the menu directory.
	ConfigDir = "/etc/menush"

	// DefaultMenuDir holds the per-identity menu files.
	DefaultMenuDir = "/etc/menush/menus"
)

var config *Config

// Config holds the application configuration.
type Config struct {
	Menu MenuConfig `mapstructure:"menu"`
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
}

// MenuConfig holds menu resolution settings.
type MenuConfig struct {
	Dir string `mapstructure:"dir"`
}

// UIConfig holds front-end settings.
type UIConfig struct {
	// TUI enables the full-screen menu instead of the numbered prompt.
	TUI bool `mapstructure:"tui"`
}

// LogConfig holds audit sink settings.
type LogConfig struct {
	// Syslog routes the audit trail to the system log (auth facility).
	// When false records go to stderr.
	Syslog bool `mapstructure:"syslog"`
}

// InitConfig initializes the configuration from the system config file,
// tolerating its absence.
func InitConfig() (*Config, error) {
	return initConfigFrom(ConfigDir)
}

func initConfigFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(dir)

	v.SetDefault("menu.dir", DefaultMenuDir)
	v.SetDefault("ui.tui", false)
	v.SetDefault("log.syslog", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config not found, run with defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config = &cfg
	return config, nil
}

// GetConfig returns the loaded config, falling back to defaults when
// InitConfig has not run.
func GetConfig() *Config {
	if config == nil {
		return &Config{
			Menu: MenuConfig{Dir: DefaultMenuDir},
			Log:  LogConfig{Syslog: true},
		}
	}
	return config
}
