package stair

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/blueloot/Stairs/internal/logger"
	"github.com/blueloot/Stairs/internal/scene"
	"github.com/blueloot/Stairs/pkg/stairs"
)

// ErrClosed is returned when editing a Stair after Close.
var ErrClosed = errors.New("stair is closed")

// Stair is a staircase placed in a host scene.
// It is not safe for concurrent use.
type Stair struct {
	host     scene.Host
	settings Settings
	result   stairs.Result

	steps []scene.Handle
	ramps []scene.Handle

	listeners []func(Change)
	// pending holds changes from failed edits, reported by the next
	// successful Apply.
	pending []Change

	// dirty is set when a host call failed part way through a pass; the
	// next Apply rebuilds from scratch whatever it classifies.
	dirty  bool
	closed bool
}

// New validates settings and builds the stair's units on host.
func New(host scene.Host, settings Settings) (*Stair, error) {
	if err := settings.Geometry.Validate(); err != nil {
		return nil, err
	}

	s := &Stair{host: host, settings: settings}
	if err := s.rebuild(); err != nil {
		// Nobody else holds the handles of a half-built stair.
		if terr := s.teardown(); terr != nil {
			err = errors.Join(err, terr)
		}
		return nil, err
	}
	return s, nil
}

// Settings returns the current settings.
func (s *Stair) Settings() Settings {
	return s.settings
}

// Result returns the descriptors the units were last placed from.
func (s *Stair) Result() stairs.Result {
	return s.result
}

// StepHandles returns the step unit handles in step order.
func (s *Stair) StepHandles() []scene.Handle {
	return append([]scene.Handle(nil), s.steps...)
}

// RampHandles returns the ramp unit handles in step order.
func (s *Stair) RampHandles() []scene.Handle {
	return append([]scene.Handle(nil), s.ramps...)
}

// OnChange registers fn to be called once per changed field after every
// successful edit. An edit whose host pass fails is still committed to
// Settings; its changes are reported when a later Apply succeeds.
func (s *Stair) OnChange(fn func(Change)) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Apply moves the stair to next. Invalid settings are rejected and leave
// the stair untouched.
func (s *Stair) Apply(next Settings) error {
	if s.closed {
		return ErrClosed
	}
	if err := next.Geometry.Validate(); err != nil {
		return err
	}

	changes := Diff(s.settings, next)
	if len(changes) == 0 && !s.dirty {
		return nil
	}

	kind := Classify(s.settings, next)
	if s.dirty {
		kind = StructuralRebuild
	}

	s.settings = next

	var err error
	if kind.Has(StructuralRebuild) {
		err = s.rebuild()
	} else {
		err = s.update(kind)
	}
	if err != nil {
		s.dirty = true
		s.pending = append(s.pending, changes...)
		return err
	}

	logger.Named("stair").Debug("settings applied",
		zap.Stringer("pass", kind),
		zap.Int("changes", len(changes)),
	)

	changes = append(s.pending, changes...)
	s.pending = nil
	for _, c := range changes {
		for _, fn := range s.listeners {
			fn(c)
		}
	}
	return nil
}

// Close destroys every unit. The stair cannot be edited afterwards.
func (s *Stair) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.teardown()
}

// rebuild destroys all units and creates them again from the settings.
func (s *Stair) rebuild() error {
	if err := s.teardown(); err != nil {
		return err
	}

	res, err := stairs.Generate(s.settings.Geometry)
	if err != nil {
		return err
	}
	s.result = res

	for i, t := range res.Steps {
		h, err := s.host.CreateStep(t)
		if err != nil {
			return fmt.Errorf("creating step %d: %w", i, err)
		}
		s.steps = append(s.steps, h)
		if err := s.applyStepLook(h); err != nil {
			return fmt.Errorf("configuring step %d: %w", i, err)
		}
	}

	for i, r := range res.Ramps {
		h, err := s.host.CreateRamp(r)
		if err != nil {
			return fmt.Errorf("creating ramp %d: %w", i, err)
		}
		s.ramps = append(s.ramps, h)
		c := s.settings.RampCollision
		if err := s.host.SetCollisionLayerMask(h, c.Layer, c.Mask); err != nil {
			return fmt.Errorf("configuring ramp %d: %w", i, err)
		}
	}

	s.dirty = false
	logger.Named("stair").Debug("rebuilt",
		zap.Int("steps", len(s.steps)),
		zap.Int("ramps", len(s.ramps)),
	)
	return nil
}

func (s *Stair) applyStepLook(h scene.Handle) error {
	if s.settings.Material != "" {
		if err := s.host.SetMaterial(h, s.settings.Material); err != nil {
			return err
		}
	}
	c := s.settings.StepCollision
	return s.host.SetCollisionLayerMask(h, c.Layer, c.Mask)
}

// update runs the in-place passes named by kind over the existing units.
func (s *Stair) update(kind ChangeKind) error {
	if kind.Has(TransformOnly) {
		res, err := stairs.Generate(s.settings.Geometry)
		if err != nil {
			return err
		}
		if len(res.Steps) != len(s.steps) || len(res.Ramps) != len(s.ramps) {
			return fmt.Errorf("unit count changed without rebuild: %d/%d steps, %d/%d ramps",
				len(res.Steps), len(s.steps), len(res.Ramps), len(s.ramps))
		}
		s.result = res

		for i, t := range res.Steps {
			if err := s.host.UpdateTransform(s.steps[i], t); err != nil {
				return fmt.Errorf("moving step %d: %w", i, err)
			}
		}
		for i, r := range res.Ramps {
			if err := s.host.UpdateTransform(s.ramps[i], r.Transform()); err != nil {
				return fmt.Errorf("moving ramp %d: %w", i, err)
			}
			if err := s.host.UpdateConvexShape(s.ramps[i], r.Vertices); err != nil {
				return fmt.Errorf("reshaping ramp %d: %w", i, err)
			}
		}
	}

	if kind.Has(MaterialOnly) {
		for i, h := range s.steps {
			if err := s.host.SetMaterial(h, s.settings.Material); err != nil {
				return fmt.Errorf("material on step %d: %w", i, err)
			}
		}
	}

	if kind.Has(CollisionMaskOnly) {
		sc, rc := s.settings.StepCollision, s.settings.RampCollision
		for i, h := range s.steps {
			if err := s.host.SetCollisionLayerMask(h, sc.Layer, sc.Mask); err != nil {
				return fmt.Errorf("collision on step %d: %w", i, err)
			}
		}
		for i, h := range s.ramps {
			if err := s.host.SetCollisionLayerMask(h, rc.Layer, rc.Mask); err != nil {
				return fmt.Errorf("collision on ramp %d: %w", i, err)
			}
		}
	}

	return nil
}

// teardown destroys every unit, continuing past failures.
func (s *Stair) teardown() error {
	var errs []error
	for _, h := range s.steps {
		if err := s.host.Destroy(h); err != nil {
			errs = append(errs, err)
		}
	}
	for _, h := range s.ramps {
		if err := s.host.Destroy(h); err != nil {
			errs = append(errs, err)
		}
	}
	s.steps = s.steps[:0]
	s.ramps = s.ramps[:0]
	s.result = stairs.Result{}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("destroying units: %w", err)
	}
	return nil
}
