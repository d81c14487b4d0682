package stairs

import (
	stdmath "math"

	"github.com/blueloot/Stairs/pkg/math"
)

// Transform places one box relative to the stair origin.
// Rotation holds Euler angles in radians; only Y is ever non-zero.
type Transform struct {
	Position math.Vec3 `yaml:"position" json:"position"`
	Rotation math.Vec3 `yaml:"rotation" json:"rotation"`
	Scale    math.Vec3 `yaml:"scale" json:"scale"`
}

// Matrix returns the model matrix of the transform.
func (t Transform) Matrix() math.Mat4 {
	return math.TRS(t.Position, t.Rotation, t.Scale)
}

// Ramp is a sloped collision quad sitting behind a step.
// Vertices are local to Position and always form a convex quad in the
// order bottom-left, top-left, bottom-right, top-right.
type Ramp struct {
	Position math.Vec3    `yaml:"position" json:"position"`
	Vertices [4]math.Vec3 `yaml:"vertices" json:"vertices"`
}

// Transform returns the ramp body's placement with unit scale.
func (r Ramp) Transform() Transform {
	return Transform{Position: r.Position, Scale: math.One}
}

// Result is the output of one generation pass, ordered by step index.
type Result struct {
	Steps []Transform `yaml:"steps" json:"steps"`
	Ramps []Ramp      `yaml:"ramps" json:"ramps"`
}

// Generate computes step and ramp descriptors for cfg.
//
// Index 0 is nearest the stair origin. Three layouts exist: solid (each box
// reaches down to the floor so the profile is filled), floating (equal
// boxes with gaps beneath) and spiral (floating boxes wound around the Y
// axis). Ramps always use floating spacing, whatever the layout.
func Generate(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	stepH := cfg.StepHeight()
	stepD := cfg.StepDepth()

	res := Result{Steps: make([]Transform, 0, cfg.Steps)}

	// Spiral height accumulates in index order rather than being derived
	// from i, so rounding follows the same path on every pass.
	var spiralHeight float32

	for i := 0; i < cfg.Steps; i++ {
		fi := float32(i)
		var t Transform

		switch {
		case !cfg.Floating:
			t.Scale = math.Vec3{X: cfg.Width, Y: stepH * (fi + 1), Z: stepD}
			t.Position = math.Vec3{Y: stepH*0.5 + stepH*0.5*fi, Z: stepD*0.5 + stepD*fi}
		case cfg.Spiral:
			// (i-1) keeps the rotational offset existing stairs were built with.
			angle := float32(i-1) * cfg.SpiralAmount * stdmath.Pi / float32(cfg.Steps)
			t.Position = math.Vec3{
				X: float32(stdmath.Cos(float64(angle))) * cfg.SpiralAmount,
				Y: stepH*0.5 + spiralHeight,
				Z: float32(stdmath.Sin(float64(angle))) * cfg.SpiralAmount,
			}
			spiralHeight += stepH
			t.Rotation = math.Vec3{Y: -angle}
			t.Scale = math.Vec3{X: cfg.Width, Y: stepH, Z: stepD * (cfg.SpiralAmount + cfg.SpiralAmount*0.5)}
		default:
			t.Scale = math.Vec3{X: cfg.Width, Y: stepH, Z: stepD}
			t.Position = floatingPosition(stepH, stepD, fi)
		}

		res.Steps = append(res.Steps, t)
	}

	if cfg.RampsEnabled() {
		res.Ramps = make([]Ramp, 0, cfg.Steps)
		shape := rampVertices(cfg.Width, stepH, stepD)
		for i := 0; i < cfg.Steps; i++ {
			res.Ramps = append(res.Ramps, Ramp{
				Position: floatingPosition(stepH, stepD, float32(i)),
				Vertices: shape,
			})
		}
	}

	return res, nil
}

// RampVertices returns the ramp quad for the given config, the shape
// shared by every ramp of a pass.
func RampVertices(cfg Config) [4]math.Vec3 {
	return rampVertices(cfg.Width, cfg.StepHeight(), cfg.StepDepth())
}

func floatingPosition(stepH, stepD, i float32) math.Vec3 {
	return math.Vec3{Y: stepH*0.5 + stepH*i, Z: stepD*0.5 + stepD*i}
}

func rampVertices(width, stepH, stepD float32) [4]math.Vec3 {
	top := stepH * 0.5
	btm := -stepH * 0.5
	left := -width * 0.5
	right := width * 0.5
	back := -stepD * 0.5

	return [4]math.Vec3{
		{X: left, Y: btm, Z: back - stepD},
		{X: left, Y: top, Z: back},
		{X: right, Y: btm, Z: back - stepD},
		{X: right, Y: top, Z: back},
	}
}
