package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/abasp/errors"
)

// NewViper returns a Viper instance with defaults, environment binding and,
// when present, a configuration file. An empty path falls back to
// DefaultFileName in the working directory, which may be absent.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path == "" {
		if _, err := os.Stat(DefaultFileName); err != nil {
			return v, nil
		}
		path = DefaultFileName
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return v, nil
}

// Load resolves and validates the configuration. See NewViper for path.
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithViper loads configuration using a provided Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path on top of the
// defaults, without environment overrides.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", path)
	}
	return &cfg, nil
}
