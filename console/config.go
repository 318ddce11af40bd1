package console

import (
	"os"

	"github.com/aarrwnh/arraylist/arraylist"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLimit   = 10
	DefaultAddress = "127.0.0.1:50001"
)

type Config struct {
	// Capacity is the initial capacity of the console's list.
	Capacity int `yaml:"capacity"`
	// Limit caps how many items a listing prints.
	Limit int    `yaml:"limit"`
	File  string `yaml:"file"`
	Title bool   `yaml:"title"`

	Websocket WebsocketConfig `yaml:"websocket"`
}

type WebsocketConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Cert    string `yaml:"cert"`
	Key     string `yaml:"key"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity: arraylist.DefaultCapacity,
		Limit:    DefaultLimit,
		Title:    true,
		Websocket: WebsocketConfig{
			Address: DefaultAddress,
		},
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return errors.Wrapf(arraylist.ErrInvalidArgument, "illegal capacity: %d", c.Capacity)
	}
	if c.Limit <= 0 {
		return errors.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.Websocket.Enabled && c.Websocket.Address == "" {
		return errors.New("websocket address is required")
	}
	if (c.Websocket.Cert == "") != (c.Websocket.Key == "") {
		return errors.New("websocket cert and key must be set together")
	}
	return nil
}
