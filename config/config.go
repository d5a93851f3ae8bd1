// Package config loads assimp-export settings.
//
// Precedence: defaults, then the YAML file, then environment variables
// (ASSIMP_EXPORT_LOG_ENABLED, ASSIMP_EXPORT_LOG_LEVEL,
// ASSIMP_EXPORT_LOG_DEVELOPMENT, ASSIMP_EXPORT_VERIFY).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const DefaultEnvPrefix = "ASSIMP_EXPORT"

type Config struct {
	Log LogConfig `yaml:"log"`
	// Verify inspects the written OBJ after every conversion.
	Verify bool `yaml:"verify"`
}

type LogConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Enabled: false,
			Level:   "info",
		},
		Verify: false,
	}
}

func (c *Config) Validate() error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errors.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

type Loader struct {
	configPath string
	envPrefix  string
	lookupEnv  func(string) (string, bool)
}

func NewLoader() *Loader {
	return &Loader{
		envPrefix: DefaultEnvPrefix,
		lookupEnv: os.LookupEnv,
	}
}

func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// WithLookupEnv replaces os.LookupEnv.
func (l *Loader) WithLookupEnv(fn func(string) (string, bool)) *Loader {
	l.lookupEnv = fn
	return l
}

func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, errors.Wrap(err, "load config file")
		}
	}
	if err := l.loadFromEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "load config from env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// A named file that does not exist is an error, unlike an unset path.
func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse %s", l.configPath)
	}
	return nil
}

func (l *Loader) loadFromEnv(cfg *Config) error {
	if err := l.envBool("LOG_ENABLED", &cfg.Log.Enabled); err != nil {
		return err
	}
	if v, ok := l.env("LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if err := l.envBool("LOG_DEVELOPMENT", &cfg.Log.Development); err != nil {
		return err
	}
	return l.envBool("VERIFY", &cfg.Verify)
}

func (l *Loader) env(key string) (string, bool) {
	name := key
	if l.envPrefix != "" {
		name = l.envPrefix + "_" + key
	}
	v, ok := l.lookupEnv(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (l *Loader) envBool(key string, dst *bool) error {
	v, ok := l.env(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.Wrapf(err, "%s_%s", l.envPrefix, key)
	}
	*dst = b
	return nil
}
