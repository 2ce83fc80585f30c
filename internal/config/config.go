package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultAlgorithm = "insertion"
	DefaultSpeed     = 1.0
	DefaultTheme     = "classic"
	DefaultHoldFinal = 1.0
	DefaultPreset    = "random"

	ModeRandom = "random"
	ModeCustom = "custom"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Algorithm string      `yaml:"algorithm"`
	Speed     float64     `yaml:"speed"`
	Theme     string      `yaml:"theme"`
	HoldFinal float64     `yaml:"hold_final"`
	Input     InputConfig `yaml:"input"`
}

type InputConfig struct {
	Mode   string `yaml:"mode"`
	Values string `yaml:"values"`
	Preset string `yaml:"preset"`
	Length int    `yaml:"length"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
	Seed   int64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     DefaultSpeed,
		Theme:     DefaultTheme,
		HoldFinal: DefaultHoldFinal,
		Input: InputConfig{
			Mode:   ModeRandom,
			Preset: DefaultPreset,
			Length: input.DefaultLength,
			Min:    input.DefaultMin,
			Max:    input.DefaultMax,
		},
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

func (c *Config) Validate() error {
	if _, err := sorting.ParseKind(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	if c.Speed < 0 || c.Speed > playback.MaxSpeed {
		return fmt.Errorf("%w: speed %.2f outside [0, %.0f]", ErrInvalid, c.Speed, playback.MaxSpeed)
	}
	if c.HoldFinal < 0 {
		return fmt.Errorf("%w: hold_final must not be negative", ErrInvalid)
	}
	switch c.Input.Mode {
	case ModeRandom:
		if _, ok := input.Presets[c.Input.Preset]; !ok {
			return fmt.Errorf("%w: %w: %s", ErrInvalid, input.ErrUnknownPreset, c.Input.Preset)
		}
		if c.Input.Length < 0 {
			return fmt.Errorf("%w: length must not be negative", ErrInvalid)
		}
		if c.Input.Min > c.Input.Max {
			return fmt.Errorf("%w: min %d above max %d", ErrInvalid, c.Input.Min, c.Input.Max)
		}
	case ModeCustom:
	default:
		return fmt.Errorf("%w: input mode %q", ErrInvalid, c.Input.Mode)
	}
	return nil
}

func (c *Config) Kind() (sorting.Kind, error) {
	return sorting.ParseKind(c.Algorithm)
}

func (c *Config) Hold() time.Duration {
	return time.Duration(c.HoldFinal * float64(time.Second))
}

// Rand returns the generator for random input. A zero seed means a fresh
// time-based seed.
func (c *Config) Rand() *rand.Rand {
	seed := c.Input.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Data resolves the configured input sequence. Custom values that fail to
// parse resolve to an empty sequence.
func (c *Config) Data(rng *rand.Rand) ([]int, error) {
	if c.Input.Mode == ModeCustom {
		return input.Parse(c.Input.Values), nil
	}
	return input.Preset(c.Input.Preset, rng, c.Input.Length, c.Input.Min, c.Input.Max)
}
