package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Content ContentConfig
	UI      UIConfig
	Log     LogConfig
	Journal JournalConfig
	// Keys overrides key bindings by action name, e.g. submit = ["ctrl+s", "f5"].
	Keys map[string][]string
}

// ContentConfig points at the content service.
type ContentConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SectionThreshold int `mapstructure:"section_threshold"`
	MobileBreakpoint int `mapstructure:"mobile_breakpoint"`
	ScrollStep       int `mapstructure:"scroll_step"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	Path  string
}

// JournalConfig holds the sqlite journal location. An empty path disables it.
type JournalConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix AURENOX_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("AURENOX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "aurenox"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AURENOX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present; an explicit path must exist
	if err := v.ReadInConfig(); err != nil && cfgPath != "" {
		return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Content.BaseURL = strings.TrimRight(strings.TrimSpace(c.Content.BaseURL), "/")
	return c, nil
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("content.base_url", "http://localhost:1337")
	v.SetDefault("content.timeout", "10s")
	v.SetDefault("ui.section_threshold", 3)
	v.SetDefault("ui.mobile_breakpoint", 80)
	v.SetDefault("ui.scroll_step", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "aurenox", "aurenox.log"))
	v.SetDefault("journal.path", filepath.Join(home, ".local", "share", "aurenox", "journal.db"))
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Content.BaseURL == "" {
		return errors.New("content.base_url is required")
	}
	u, err := url.Parse(c.Content.BaseURL)
	if err != nil {
		return fmt.Errorf("content.base_url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("content.base_url must be absolute, got %q", c.Content.BaseURL)
	}
	if c.Content.Timeout <= 0 {
		return fmt.Errorf("content.timeout must be positive, got %s", c.Content.Timeout)
	}
	if c.UI.SectionThreshold < 0 {
		return fmt.Errorf("ui.section_threshold must not be negative, got %d", c.UI.SectionThreshold)
	}
	return nil
}
