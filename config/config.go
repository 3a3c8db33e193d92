// Package config holds the host-side runtime configuration: which output
// driver to use, where the model file lives, and playback defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Port string `yaml:"port"` // e.g. /dev/spidev0.0; empty picks the first
}

type Sim struct {
	Addr string `yaml:"addr"` // e.g. :8089
}

// Duration decodes YAML strings like "90s" or "5m".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

type Playback struct {
	Mode      string   `yaml:"mode"` // "hold" | "advance" | "random"
	Interval  Duration `yaml:"interval"`
	StartWith string   `yaml:"start_with,omitempty"`
}

type Config struct {
	Driver     string `yaml:"driver"` // "native" | "spi" | "sim"
	ModelPath  string `yaml:"model"`
	Brightness uint8  `yaml:"brightness"`
	FPS        int    `yaml:"fps"`
	LogLevel   string `yaml:"log_level,omitempty"`

	SPI      SPI      `yaml:"spi,omitempty"`
	Sim      Sim      `yaml:"sim,omitempty"`
	Playback Playback `yaml:"playback,omitempty"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Driver:     "native",
		Brightness: 200,
		FPS:        60,
		LogLevel:   "info",
		Sim:        Sim{Addr: ":8089"},
		Playback:   Playback{Mode: "hold", Interval: Duration(5 * time.Minute)},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) validate() error {
	switch c.Driver {
	case "native", "spi", "sim":
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
	switch c.Playback.Mode {
	case "", "hold", "advance", "random":
	default:
		return fmt.Errorf("unknown playback mode %q", c.Playback.Mode)
	}
	if c.FPS <= 0 || c.FPS > 1000 {
		return fmt.Errorf("fps %d out of range", c.FPS)
	}
	return nil
}
