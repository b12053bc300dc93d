package config

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL  string                   `mapstructure:"base_url"`
	Defaults QueryDefaults            `mapstructure:"defaults"`
	Profiles map[string]ProfileConfig `mapstructure:"profiles"`
	v        *viper.Viper
}

// QueryDefaults are the query parameters attached to every request unless
// overridden per call. From and To accept placeholder expressions, e.g.
// "{{ time.now | minus(20y) }}".
type QueryDefaults struct {
	Limit  int    `mapstructure:"limit"`
	Offset int    `mapstructure:"offset"`
	Sort   string `mapstructure:"sort"`
	From   string `mapstructure:"from"`
	To     string `mapstructure:"to"`
}

type ProfileConfig struct {
	Extras map[string]any `mapstructure:",remain"`
}

func newConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.v = v
	return &cfg, nil
}

func newViperWithDefaults() *viper.Viper {
	v := viper.New()
	v.SetDefault("defaults.limit", 25)
	v.SetDefault("defaults.offset", 0)
	v.SetDefault("defaults.sort", "updateDate+desc")
	v.SetDefault("defaults.from", "{{ time.now | minus(20y) }}")
	v.SetDefault("defaults.to", "{{ time.now }}")
	return v
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	cfg, err := newConfigFromViper(newViperWithDefaults())
	if err != nil {
		// The built-in defaults always unmarshal.
		panic(fmt.Errorf("unmarshaling built-in defaults: %w", err))
	}
	return cfg
}

func NewConfigFromPath(path string) (*Config, error) {
	v := newViperWithDefaults()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return newConfigFromViper(v)
}

func NewConfigFromReader(reader io.Reader) (*Config, error) {
	v := newViperWithDefaults()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("reading config from reader: %w", err)
	}

	return newConfigFromViper(v)
}

// WithProfile returns a copy of the config with the named profile's settings
// merged over the top-level ones. The receiver is left untouched.
func (c *Config) WithProfile(profile string) (*Config, error) {
	newV := viper.New()

	if err := newV.MergeConfigMap(c.v.AllSettings()); err != nil {
		return nil, fmt.Errorf("merging config map from global config instance: %w", err)
	}

	profileConfig, ok := c.Profiles[profile]
	if !ok {
		return nil, fmt.Errorf("profile '%s' not found in config", profile)
	}
	if err := newV.MergeConfigMap(profileConfig.Extras); err != nil {
		return nil, fmt.Errorf("merging profile config map: %w", err)
	}

	var cfg Config
	if err := newV.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config with profile: %w", err)
	}

	cfg.v = newV
	return &cfg, nil
}

type starterDefaults struct {
	Limit  int    `yaml:"limit"`
	Offset int    `yaml:"offset"`
	Sort   string `yaml:"sort"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

type starterConfig struct {
	BaseURL  string                    `yaml:"base_url"`
	Defaults starterDefaults           `yaml:"defaults"`
	Profiles map[string]map[string]any `yaml:"profiles"`
}

// WriteStarter writes a commented-out-free starter config file reflecting the
// built-in defaults, for `config init`.
func WriteStarter(path string) error {
	starter := starterConfig{
		BaseURL: "https://api.congress.gov/v3",
		Defaults: starterDefaults{
			Limit:  25,
			Offset: 0,
			Sort:   "updateDate+desc",
			From:   "{{ time.now | minus(20y) }}",
			To:     "{{ time.now }}",
		},
		Profiles: map[string]map[string]any{
			"recent": {
				"defaults": map[string]any{
					"from":  "{{ time.now | minus(30d) }}",
					"limit": 250,
				},
			},
		},
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("marshaling starter config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing starter config: %w", err)
	}

	return nil
}
