// Package stairs generates parametric staircase geometry.
//
// Generate turns a handful of numbers (overall height, width, length and a
// step count, plus floating/spiral/ramp switches) into an ordered list of
// box transforms, one per step, and optionally one sloped collision quad per
// step. The package is pure: it keeps no state between calls and performs
// no I/O, so identical configs always produce identical results.
package stairs

import (
	"errors"
	"fmt"

	"github.com/blueloot/Stairs/pkg/math"
)

// Editor input ranges. Dimensions and step counts are clamped from below
// only; the soft maxima bound the editor slider but larger values are valid.
const (
	MinDimension     float32 = 0.01
	SoftMaxDimension float32 = 50
	MinSteps                 = 1
	SoftMaxSteps             = 50
)

var (
	ErrInvalidConfig = errors.New("invalid stair config")
	ErrNonFinite     = errors.New("value is not finite")
	ErrNonPositive   = errors.New("value must be positive")
	ErrStepCount     = errors.New("step count must be at least 1")
)

// Config holds the parameters of a single generation pass.
type Config struct {
	Height float32 `yaml:"height" json:"height"`
	Width  float32 `yaml:"width" json:"width"`
	Length float32 `yaml:"length" json:"length"`
	Steps  int     `yaml:"steps" json:"steps"`

	// Floating builds disjoint boxes instead of a filled silhouette.
	Floating bool `yaml:"floating" json:"floating"`
	// Spiral winds the steps around a vertical axis. Only used when Floating.
	Spiral       bool    `yaml:"spiral" json:"spiral"`
	SpiralAmount float32 `yaml:"spiral_amount" json:"spiral_amount"`

	// UseRamp adds a sloped collision quad per step. Ignored when Spiral.
	UseRamp bool `yaml:"use_ramp" json:"use_ramp"`
}

// DefaultConfig returns a small solid staircase.
func DefaultConfig() Config {
	return Config{
		Height:       2,
		Width:        2,
		Length:       4,
		Steps:        8,
		Floating:     false,
		Spiral:       false,
		SpiralAmount: 1,
		UseRamp:      false,
	}
}

// StepHeight returns the rise of a single step.
func (c Config) StepHeight() float32 {
	return c.Height / float32(c.Steps)
}

// StepDepth returns the run of a single step.
func (c Config) StepDepth() float32 {
	return c.Length / float32(c.Steps)
}

// RampsEnabled reports whether Generate emits ramp descriptors.
func (c Config) RampsEnabled() bool {
	return c.UseRamp && !c.Spiral
}

// Validate checks that c can be generated. The returned error wraps
// ErrInvalidConfig and the specific cause.
func (c Config) Validate() error {
	dims := []struct {
		name  string
		value float32
	}{
		{"height", c.Height},
		{"width", c.Width},
		{"length", c.Length},
	}
	for _, d := range dims {
		if !math.IsFinite(d.value) {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, d.name, ErrNonFinite)
		}
		if d.value <= 0 {
			return fmt.Errorf("%w: %s %v: %w", ErrInvalidConfig, d.name, d.value, ErrNonPositive)
		}
	}

	if c.Steps < MinSteps {
		return fmt.Errorf("%w: %d: %w", ErrInvalidConfig, c.Steps, ErrStepCount)
	}

	if !math.IsFinite(c.SpiralAmount) {
		return fmt.Errorf("%w: spiral_amount: %w", ErrInvalidConfig, ErrNonFinite)
	}
	if c.Spiral && c.SpiralAmount <= 0 {
		return fmt.Errorf("%w: spiral_amount %v: %w", ErrInvalidConfig, c.SpiralAmount, ErrNonPositive)
	}

	return nil
}

// Clamp applies the editor's lower bounds. Infinite values are left for
// Validate to reject; NaN becomes the minimum.
func (c Config) Clamp() Config {
	c.Height = ClampDimension(c.Height)
	c.Width = ClampDimension(c.Width)
	c.Length = ClampDimension(c.Length)
	c.SpiralAmount = ClampDimension(c.SpiralAmount)
	c.Steps = ClampSteps(c.Steps)
	return c
}

// ClampDimension raises v to MinDimension. NaN becomes MinDimension.
func ClampDimension(v float32) float32 {
	if v != v || v < MinDimension {
		return MinDimension
	}
	return v
}

// ClampSteps raises n to MinSteps.
func ClampSteps(n int) int {
	if n < MinSteps {
		return MinSteps
	}
	return n
}
