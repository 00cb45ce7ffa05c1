// ./internal/config/config.go

// Package config loads runtime settings from .jyotish.yaml, JYOTISH_* env
// vars and command-line flags.
package config

/*
Package config provides viper-backed runtime configuration.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code.
*/

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/dasha"
)

// EnvPrefix is prepended to every environment override, e.g.
// JYOTISH_AYANAMSA_MODE.
const EnvPrefix = "JYOTISH"

// FileName is the config file name searched for without extension.
const FileName = ".jyotish"

// EphemerisConfig locates the DE binary file.
type EphemerisConfig struct {
	Path string `mapstructure:"path"`
}

// AyanamsaConfig selects the mode and the precise source.
type AyanamsaConfig struct {
	Mode      string        `mapstructure:"mode"`
	Standard  string        `mapstructure:"standard"`
	Fallback  bool          `mapstructure:"fallback"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RemoteURL string        `mapstructure:"remote_url"`
	CachePath string        `mapstructure:"cache_path"`
}

// DashaConfig holds timeline options.
type DashaConfig struct {
	HorizonYears float64 `mapstructure:"horizon_years"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Listen         string        `mapstructure:"listen"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	Metrics        bool          `mapstructure:"metrics"`
}

// Config holds all runtime configuration.
type Config struct {
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Ayanamsa  AyanamsaConfig  `mapstructure:"ayanamsa"`
	Dasha     DashaConfig     `mapstructure:"dasha"`
	Server    ServerConfig    `mapstructure:"server"`
	LogLevel  string          `mapstructure:"log_level"`
	LogFormat string          `mapstructure:"log_format"`
}

// Setup points viper at cfgFile, or searches the working directory and the
// home directory for .jyotish.yaml. A missing file is not an error.
func Setup(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(FileName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	bindEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func bindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("ephemeris.path", "")
	viper.SetDefault("ayanamsa.mode", "precise")
	viper.SetDefault("ayanamsa.standard", string(ayanamsa.Lahiri))
	viper.SetDefault("ayanamsa.fallback", true)
	viper.SetDefault("ayanamsa.timeout", ayanamsa.DefaultTimeout)
	viper.SetDefault("ayanamsa.remote_url", "")
	viper.SetDefault("ayanamsa.cache_path", "")
	viper.SetDefault("dasha.horizon_years", dasha.DefaultHorizon)
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("server.allowed_origins", []string{"*"})
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("server.metrics", true)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	bindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if _, ok := ayanamsa.ParseMode(c.Ayanamsa.Mode); !ok {
		return fmt.Errorf("ayanamsa.mode: unknown mode %q", c.Ayanamsa.Mode)
	}
	if c.Ayanamsa.Timeout <= 0 {
		return fmt.Errorf("ayanamsa.timeout: must be positive, got %s", c.Ayanamsa.Timeout)
	}
	if c.Dasha.HorizonYears <= 0 || c.Dasha.HorizonYears > dasha.MaxHorizon {
		return fmt.Errorf("dasha.horizon_years: must be in (0, %v], got %v", dasha.MaxHorizon, c.Dasha.HorizonYears)
	}
	return nil
}

// Mode returns the parsed ayanamsa mode.
func (c Config) Mode() ayanamsa.Mode {
	m, _ := ayanamsa.ParseMode(c.Ayanamsa.Mode)
	return m
}

// Standard returns the configured sidereal standard.
func (c Config) Standard() ayanamsa.Standard {
	return ayanamsa.Standard(strings.ToLower(c.Ayanamsa.Standard))
}
