// Package stair keeps a generated staircase in sync with its settings.
//
// A Stair owns a set of settings and the host handles built from them.
// Each edit is diffed against the current settings and applied with the
// cheapest pass that is still correct: geometry edits that keep the unit
// count move existing units in place, material and collision edits are
// pushed straight to the host, and anything that changes how many units
// exist tears everything down and rebuilds.
package stair

import "github.com/blueloot/Stairs/pkg/stairs"

// Collision holds a physics layer and mask pair.
type Collision struct {
	Layer uint32 `yaml:"layer" json:"layer"`
	Mask  uint32 `yaml:"mask" json:"mask"`
}

// Settings is everything a Stair is built from.
type Settings struct {
	Geometry      stairs.Config `yaml:"geometry" json:"geometry"`
	Material      string        `yaml:"material" json:"material"`
	StepCollision Collision     `yaml:"step_collision" json:"step_collision"`
	RampCollision Collision     `yaml:"ramp_collision" json:"ramp_collision"`
}

// DefaultSettings returns the default geometry on collision layer 1.
func DefaultSettings() Settings {
	return Settings{
		Geometry:      stairs.DefaultConfig(),
		StepCollision: Collision{Layer: 1, Mask: 1},
		RampCollision: Collision{Layer: 1, Mask: 1},
	}
}
