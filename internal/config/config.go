// Package config handles the XDG configuration directory and layered settings.
package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// EnvPrefix prefixes environment variables (LTASK_BACKEND, LTASK_DEBUG).
	EnvPrefix = "LTASK"

	// SettingsFile is the optional settings file name inside the config dir,
	// without extension.
	SettingsFile = "config"

	// DefaultBackend is used when no backend is configured.
	DefaultBackend = "file"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path. Task data lives here too.
	Dir string

	// Backend names the key-value store: "file" or "sqlite".
	Backend string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/ltask or $HOME/.config/ltask.
//
// Settings are layered: defaults, then <dir>/config.yaml, then LTASK_*
// environment variables. Flags are applied by the caller afterwards.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetDefault("backend", DefaultBackend)
	v.SetDefault("debug", false)

	v.SetConfigName(SettingsFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Dir:     dir,
		Backend: strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		Debug:   v.GetBool("debug"),
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path of the optional settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile+".yaml")
}

// Logger returns a text logger writing to w. Debug records are emitted only
// when Debug is set.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
