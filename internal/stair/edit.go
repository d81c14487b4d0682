package stair

import "github.com/blueloot/Stairs/pkg/stairs"

// The setters mirror the inspector: numeric input is clamped to the
// editor range before it is applied.

func (s *Stair) edit(fn func(*Settings)) error {
	next := s.settings
	fn(&next)
	return s.Apply(next)
}

// SetHeight changes the total rise.
func (s *Stair) SetHeight(v float32) error {
	return s.edit(func(n *Settings) { n.Geometry.Height = stairs.ClampDimension(v) })
}

// SetWidth changes the tread width.
func (s *Stair) SetWidth(v float32) error {
	return s.edit(func(n *Settings) { n.Geometry.Width = stairs.ClampDimension(v) })
}

// SetLength changes the total run.
func (s *Stair) SetLength(v float32) error {
	return s.edit(func(n *Settings) { n.Geometry.Length = stairs.ClampDimension(v) })
}

// SetSteps changes the step count. This always rebuilds.
func (s *Stair) SetSteps(n int) error {
	return s.edit(func(next *Settings) { next.Geometry.Steps = stairs.ClampSteps(n) })
}

// SetFloating switches between solid and floating steps.
func (s *Stair) SetFloating(v bool) error {
	return s.edit(func(n *Settings) { n.Geometry.Floating = v })
}

// SetSpiral switches the spiral layout.
func (s *Stair) SetSpiral(v bool) error {
	return s.edit(func(n *Settings) { n.Geometry.Spiral = v })
}

// SetSpiralAmount changes the spiral radius.
func (s *Stair) SetSpiralAmount(v float32) error {
	return s.edit(func(n *Settings) { n.Geometry.SpiralAmount = stairs.ClampDimension(v) })
}

// SetUseRamp toggles the ramp colliders.
func (s *Stair) SetUseRamp(v bool) error {
	return s.edit(func(n *Settings) { n.Geometry.UseRamp = v })
}

// SetMaterial changes the material of every step.
func (s *Stair) SetMaterial(material string) error {
	return s.edit(func(n *Settings) { n.Material = material })
}

// SetStepCollision changes the collision bits of every step.
func (s *Stair) SetStepCollision(c Collision) error {
	return s.edit(func(n *Settings) { n.StepCollision = c })
}

// SetRampCollision changes the collision bits of every ramp.
func (s *Stair) SetRampCollision(c Collision) error {
	return s.edit(func(n *Settings) { n.RampCollision = c })
}
