// Package scene defines what a stair needs from the scene it lives in:
// a way to create, move, reshape and destroy collidable units.
package scene

import (
	"errors"

	"github.com/blueloot/Stairs/pkg/math"
	"github.com/blueloot/Stairs/pkg/stairs"
)

// Handle identifies a unit owned by a Host. Zero is never a valid handle.
type Handle uint64

// ErrUnknownHandle is returned for handles a host did not create or has
// already destroyed.
var ErrUnknownHandle = errors.New("unknown unit handle")

// Host creates and mutates the scene objects backing a stair.
//
// Step units are a renderable box plus a matching box collider; ramp units
// are a collision-only convex shape. A stair never owns the objects, only
// the handles.
type Host interface {
	CreateStep(t stairs.Transform) (Handle, error)
	CreateRamp(r stairs.Ramp) (Handle, error)
	UpdateTransform(h Handle, t stairs.Transform) error
	UpdateConvexShape(h Handle, vertices [4]math.Vec3) error
	SetMaterial(h Handle, material string) error
	SetCollisionLayerMask(h Handle, layer, mask uint32) error
	Destroy(h Handle) error
}
