package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	DefaultScene              = "solar"
	DefaultFPS                = 30
	DefaultScale              = 0.2
	DefaultSpawnMass          = 5.0
	DefaultSpawnVelocityScale = 0.05
	DefaultHistory            = 240
)

type Config struct {
	Scene              string        `yaml:"scene"`
	Interval           time.Duration `yaml:"interval"`
	TimeScale          float64       `yaml:"time_scale"`
	Gravity            float64       `yaml:"gravity"`
	MergeRatio         float64       `yaml:"merge_ratio"`
	ConserveMomentum   bool          `yaml:"conserve_momentum"`
	FPS                int           `yaml:"fps"`
	InitialScale       float64       `yaml:"initial_scale"`
	SpawnMass          float64       `yaml:"spawn_mass"`
	SpawnVelocityScale float64       `yaml:"spawn_velocity_scale"`
	History            int           `yaml:"history"`
	Seed               int64         `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:              DefaultScene,
		Interval:           sim.DefaultInterval,
		TimeScale:          1,
		Gravity:            physics.DefaultG,
		MergeRatio:         physics.DefaultMergeRatio,
		FPS:                DefaultFPS,
		InitialScale:       DefaultScale,
		SpawnMass:          DefaultSpawnMass,
		SpawnVelocityScale: DefaultSpawnVelocityScale,
		History:            DefaultHistory,
	}
}

// Load reads a yaml file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v: %w", c.Interval, dynamo.ErrInvalidConfig)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d: %w", c.FPS, dynamo.ErrInvalidConfig)
	}
	if !(c.InitialScale > 0) {
		return fmt.Errorf("initial_scale must be positive, got %v: %w", c.InitialScale, dynamo.ErrInvalidConfig)
	}
	if !(c.SpawnMass > 0) {
		return fmt.Errorf("spawn_mass must be positive, got %v: %w", c.SpawnMass, dynamo.ErrInvalidConfig)
	}
	if c.History < 2 {
		return fmt.Errorf("history must be at least 2, got %d: %w", c.History, dynamo.ErrInvalidConfig)
	}
	return c.Integrator().Validate()
}

func (c *Config) Integrator() *physics.Integrator {
	return &physics.Integrator{
		G:                c.Gravity,
		MergeRatio:       c.MergeRatio,
		ConserveMomentum: c.ConserveMomentum,
	}
}

// ClockConfig clamps the time scale the same way the clock does.
func (c *Config) ClockConfig() sim.Config {
	return sim.Config{
		Interval:  c.Interval,
		TimeScale: sim.ClampTimeScale(c.TimeScale),
	}
}
