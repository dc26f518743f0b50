package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTarget    = 256
	DefaultSpeed     = 0.5
	DefaultTheme     = "lab"
	DefaultBarHeight = 12
)

// DefaultData is the sequence shown when nothing else is given.
var DefaultData = []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}

type Config struct {
	Data      []int   `yaml:"data" validate:"required,min=1"`
	Target    int     `yaml:"target"`
	Speed     float64 `yaml:"speed" validate:"gte=0.1,lte=2"`
	Theme     string  `yaml:"theme" validate:"oneof=lab cyberpunk retro minimal ocean"`
	BarHeight int     `yaml:"bar_height" validate:"gte=3,lte=40"`
}

var validate = validator.New()

func DefaultConfig() *Config {
	return &Config{
		Data:      append([]int(nil), DefaultData...),
		Target:    DefaultTarget,
		Speed:     DefaultSpeed,
		Theme:     DefaultTheme,
		BarHeight: DefaultBarHeight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks field ranges: a non-empty sequence, a speed between 0.1
// and 2 seconds, a known theme and a usable bar height.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// FrameDelay is the pause between two replayed snapshots.
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.Speed * float64(time.Second))
}
