// Package config handles stairgen configuration loading and management.
package config

import (
	"github.com/blueloot/Stairs/internal/stair"
	"github.com/blueloot/Stairs/pkg/stairs"
)

// Config holds all stairgen settings.
type Config struct {
	Stair   stairs.Config `yaml:"stair"`
	Host    HostConfig    `yaml:"host"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// HostConfig holds what the scene applies to generated units.
type HostConfig struct {
	Material  string `yaml:"material"`
	StepLayer uint32 `yaml:"step_layer"`
	StepMask  uint32 `yaml:"step_mask"`
	RampLayer uint32 `yaml:"ramp_layer"`
	RampMask  uint32 `yaml:"ramp_mask"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Format string `yaml:"format"` // yaml, json or obj
	Path   string `yaml:"path"`   // empty writes to stdout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Stair: stairs.DefaultConfig(),
		Host: HostConfig{
			Material:  "",
			StepLayer: 1,
			StepMask:  1,
			RampLayer: 1,
			RampMask:  1,
		},
		Output: OutputConfig{
			Format: "yaml",
			Path:   "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// StairSettings returns the settings a stair node is built from.
func (c *Config) StairSettings() stair.Settings {
	return stair.Settings{
		Geometry:      c.Stair,
		Material:      c.Host.Material,
		StepCollision: stair.Collision{Layer: c.Host.StepLayer, Mask: c.Host.StepMask},
		RampCollision: stair.Collision{Layer: c.Host.RampLayer, Mask: c.Host.RampMask},
	}
}
