package scene

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/blueloot/Stairs/internal/logger"
	"github.com/blueloot/Stairs/pkg/math"
	"github.com/blueloot/Stairs/pkg/stairs"
)

// UnitKind tells step units from ramp units.
type UnitKind uint8

const (
	KindStep UnitKind = iota
	KindRamp
)

func (k UnitKind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindRamp:
		return "ramp"
	default:
		return fmt.Sprintf("UnitKind(%d)", uint8(k))
	}
}

// Unit is the state a MemoryHost keeps per handle.
type Unit struct {
	Handle    Handle
	Kind      UnitKind
	Transform stairs.Transform
	Vertices  [4]math.Vec3 // ramp units only
	Material  string
	Layer     uint32
	Mask      uint32
}

// MemoryHost is a Host that keeps units in a map. It backs the CLI and
// tests, and doubles as a record of how many objects a stair churned.
type MemoryHost struct {
	units     map[Handle]*Unit
	next      Handle
	created   int
	destroyed int
	updated   int
}

// NewMemoryHost creates an empty host.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		units: make(map[Handle]*Unit),
	}
}

func (m *MemoryHost) add(u *Unit) Handle {
	m.next++
	u.Handle = m.next
	u.Layer, u.Mask = 1, 1
	m.units[u.Handle] = u
	m.created++
	logger.Named("scene").Debug("unit created",
		zap.Uint64("handle", uint64(u.Handle)),
		zap.Stringer("kind", u.Kind),
	)
	return u.Handle
}

func (m *MemoryHost) get(h Handle) (*Unit, error) {
	u, ok := m.units[h]
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h, ErrUnknownHandle)
	}
	return u, nil
}

// CreateStep adds a box unit.
func (m *MemoryHost) CreateStep(t stairs.Transform) (Handle, error) {
	return m.add(&Unit{Kind: KindStep, Transform: t}), nil
}

// CreateRamp adds a convex ramp unit.
func (m *MemoryHost) CreateRamp(r stairs.Ramp) (Handle, error) {
	return m.add(&Unit{Kind: KindRamp, Transform: r.Transform(), Vertices: r.Vertices}), nil
}

// UpdateTransform moves a unit in place.
func (m *MemoryHost) UpdateTransform(h Handle, t stairs.Transform) error {
	u, err := m.get(h)
	if err != nil {
		return err
	}
	u.Transform = t
	m.updated++
	return nil
}

// UpdateConvexShape replaces a ramp unit's points.
func (m *MemoryHost) UpdateConvexShape(h Handle, vertices [4]math.Vec3) error {
	u, err := m.get(h)
	if err != nil {
		return err
	}
	if u.Kind != KindRamp {
		return fmt.Errorf("handle %d is a %s unit, not a ramp", h, u.Kind)
	}
	u.Vertices = vertices
	return nil
}

// SetMaterial assigns a material name.
func (m *MemoryHost) SetMaterial(h Handle, material string) error {
	u, err := m.get(h)
	if err != nil {
		return err
	}
	u.Material = material
	return nil
}

// SetCollisionLayerMask assigns collision bits.
func (m *MemoryHost) SetCollisionLayerMask(h Handle, layer, mask uint32) error {
	u, err := m.get(h)
	if err != nil {
		return err
	}
	u.Layer = layer
	u.Mask = mask
	return nil
}

// Destroy removes a unit.
func (m *MemoryHost) Destroy(h Handle) error {
	if _, err := m.get(h); err != nil {
		return err
	}
	delete(m.units, h)
	m.destroyed++
	logger.Named("scene").Debug("unit destroyed", zap.Uint64("handle", uint64(h)))
	return nil
}

// Unit returns a copy of the unit behind h.
func (m *MemoryHost) Unit(h Handle) (Unit, bool) {
	u, ok := m.units[h]
	if !ok {
		return Unit{}, false
	}
	return *u, true
}

// Units returns copies of all live units in handle order.
func (m *MemoryHost) Units() []Unit {
	result := make([]Unit, 0, len(m.units))
	for _, u := range m.units {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Handle < result[j].Handle
	})
	return result
}

// Len returns the number of live units.
func (m *MemoryHost) Len() int {
	return len(m.units)
}

// Stats reports lifetime counters: units created, destroyed, and
// transform updates applied in place.
func (m *MemoryHost) Stats() (created, destroyed, updated int) {
	return m.created, m.destroyed, m.updated
}
