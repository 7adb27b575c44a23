// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the user configuration. Values are
// resolved by viper in order: defaults, config file, AFFINE_* environment
// variables, then command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Language string       `mapstructure:"language" yaml:"language"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Key      KeyConfig    `mapstructure:"key" yaml:"key"`
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
}

// KeyConfig holds the default key shown in the workbench and used by the
// CLI when -a/-b are omitted.
type KeyConfig struct {
	A int `mapstructure:"a" yaml:"a"`
	B int `mapstructure:"b" yaml:"b"`
	// StrictB rejects b outside [0, 26). When false b is reduced mod 26.
	StrictB bool `mapstructure:"strict_b" yaml:"strict_b"`
}

type ServerConfig struct {
	Addr         string   `mapstructure:"addr" yaml:"addr"`
	AllowOrigins []string `mapstructure:"allow_origins" yaml:"allow_origins"`
}

// Defaults returns the built-in defaults keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":             "en",
		"log_level":            "info",
		"key.a":                5,
		"key.b":                8,
		"key.strict_b":         true,
		"server.addr":          ":8080",
		"server.allow_origins": []string{"http://localhost:3000"},
	}
}

// ConfigPath returns the full path for the configuration file.
func ConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Affine")
		default:
			configDir = "/etc/affine"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "affine")
	}

	return filepath.Join(configDir, "affine.yaml"), nil
}

// LoadConfig resolves T from defaults, the first affine.yaml found (or
// explicitPath when non-nil), the environment and cmd's flags. A missing
// config file is not an error; the returned string is the file used, if
// any.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("affine")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := ConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := ConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, "", err
		}
	}

	v.SetEnvPrefix("affine")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", err
	}

	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile persists c to the user (or system) config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := ConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo persists c as YAML at path.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
