// Package config resolves gostddev's settings from flags, environment
// variables and an optional config file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/mwiater/gostddev/internal/sample"
)

// EnvPrefix prefixes every environment variable gostddev reads,
// e.g. GOSTDDEV_LOCALE.
const EnvPrefix = "GOSTDDEV"

// Keys shared by viper, the cobra flags and the environment.
const (
	KeyConfig  = "config"
	KeyLocale  = "locale"
	KeyTUI     = "tui"
	KeyDebug   = "debug"
	KeyLogFile = "log-file"
)

// Config holds the settings for one session.
type Config struct {
	// Locale selects the prompt and result text ("en" or "zh").
	Locale string `mapstructure:"locale"`
	// TUI runs the session in the full-screen terminal UI instead of plain prompts.
	TUI bool `mapstructure:"tui"`
	// Debug enables debug logging to LogFile.
	Debug bool `mapstructure:"debug"`
	// LogFile is where debug logs are written.
	LogFile string `mapstructure:"log-file"`
}

// SetDefaults registers default values and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLocale, sample.DefaultLocale)
	v.SetDefault(KeyTUI, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, "debug.log")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file named by the "config" key, if any, and returns
// the validated settings.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "could not read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can drive a session.
func (c Config) Validate() error {
	if _, ok := sample.LookupMessages(c.Locale); !ok {
		return errors.Errorf("unsupported locale %q", c.Locale)
	}
	if c.Debug && c.LogFile == "" {
		return errors.New("debug logging requires a log file")
	}
	return nil
}
