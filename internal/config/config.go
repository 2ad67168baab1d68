package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Timing  TimingConfig  `mapstructure:"timing"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

// TimingConfig holds the simulated delays.
type TimingConfig struct {
	LoginDelay  time.Duration `mapstructure:"login_delay"`
	SearchDelay time.Duration `mapstructure:"search_delay"`
}

// SessionConfig holds startup session behaviour.
type SessionConfig struct {
	AutoGuest bool `mapstructure:"auto_guest"`
}

// LogConfig holds the file logger settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

const (
	DefaultLoginDelay  = 900 * time.Millisecond
	DefaultSearchDelay = 1800 * time.Millisecond
)

// Load reads configuration from file and env. Env var overrides use prefix CHESSCHAIN_.
// path overrides CHESSCHAIN_CONFIG when non-empty.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("CHESSCHAIN_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "chesschain"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CHESSCHAIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Timing.LoginDelay < 0 || c.Timing.SearchDelay < 0 {
		return Config{}, fmt.Errorf("timing: delays must not be negative")
	}
	return c, nil
}

// Default returns the built-in configuration without consulting files or env.
func Default() Config {
	return Config{
		Timing:  TimingConfig{LoginDelay: DefaultLoginDelay, SearchDelay: DefaultSearchDelay},
		Session: SessionConfig{AutoGuest: false},
		Log:     LogConfig{Path: defaultLogPath(), Level: "info"},
		UI:      UIConfig{AltScreen: true},
	}
}

// DefaultPath is where Save writes when no explicit path is given.
func DefaultPath() string {
	if p := os.Getenv("CHESSCHAIN_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "chesschain", "config.toml")
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("timing.login_delay", cfg.Timing.LoginDelay.String())
	v.Set("timing.search_delay", cfg.Timing.SearchDelay.String())
	v.Set("session.auto_guest", cfg.Session.AutoGuest)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("timing.login_delay", d.Timing.LoginDelay)
	v.SetDefault("timing.search_delay", d.Timing.SearchDelay)
	v.SetDefault("session.auto_guest", d.Session.AutoGuest)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
}

func defaultLogPath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "chesschain", "chesschain.log")
}
