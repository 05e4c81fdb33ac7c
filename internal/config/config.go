package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/jasktodo/internal/tasks"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui" yaml:"ui"`
	Theme ThemeConfig `mapstructure:"theme" yaml:"theme"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title         string `mapstructure:"title" yaml:"title"`
	Placeholder   string `mapstructure:"placeholder" yaml:"placeholder"`
	CharLimit     int    `mapstructure:"char_limit" yaml:"char_limit"`
	DefaultFilter string `mapstructure:"default_filter" yaml:"default_filter"`
}

// ThemeConfig holds colours as hex strings or ANSI numbers.
type ThemeConfig struct {
	Accent string `mapstructure:"accent" yaml:"accent"`
	Muted  string `mapstructure:"muted" yaml:"muted"`
	Danger string `mapstructure:"danger" yaml:"danger"`
}

// LogConfig controls the debug log. An empty path disables logging.
type LogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Filter returns the parsed default filter mode.
func (c Config) Filter() tasks.Mode {
	m, err := tasks.ParseMode(c.UI.DefaultFilter)
	if err != nil {
		return tasks.ModeAll
	}
	return m
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.title", "To-Do List")
	v.SetDefault("ui.placeholder", "Enter a new task")
	v.SetDefault("ui.char_limit", 256)
	v.SetDefault("ui.default_filter", string(tasks.ModeAll))
	v.SetDefault("theme.accent", "#007BFF")
	v.SetDefault("theme.muted", "#DDDDDD")
	v.SetDefault("theme.danger", "#FF4D4D")
	v.SetDefault("log.path", "")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Path returns the config file location. JASKTODO_CONFIG wins over the
// per-user default.
func Path() string {
	if p := os.Getenv("JASKTODO_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configHome(), "jasktodo", "config.toml")
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// Load reads configuration from file and env. Env var overrides use prefix
// JASKTODO_. A missing config file is not an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("JASKTODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := tasks.ParseMode(c.UI.DefaultFilter); err != nil {
		return Config{}, fmt.Errorf("ui.default_filter: %w", err)
	}
	if c.UI.CharLimit < 0 {
		return Config{}, fmt.Errorf("ui.char_limit must not be negative, got %d", c.UI.CharLimit)
	}
	return c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// Save writes cfg as TOML to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.placeholder", cfg.UI.Placeholder)
	v.Set("ui.char_limit", cfg.UI.CharLimit)
	v.Set("ui.default_filter", cfg.UI.DefaultFilter)
	v.Set("theme.accent", cfg.Theme.Accent)
	v.Set("theme.muted", cfg.Theme.Muted)
	v.Set("theme.danger", cfg.Theme.Danger)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
