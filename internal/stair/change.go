package stair

import (
	"fmt"
	"strings"
)

// Field names one editable setting.
type Field uint8

const (
	FieldHeight Field = iota
	FieldWidth
	FieldLength
	FieldSteps
	FieldFloating
	FieldSpiral
	FieldSpiralAmount
	FieldUseRamp
	FieldMaterial
	FieldStepCollision
	FieldRampCollision
)

var fieldNames = [...]string{
	FieldHeight:        "height",
	FieldWidth:         "width",
	FieldLength:        "length",
	FieldSteps:         "steps",
	FieldFloating:      "floating",
	FieldSpiral:        "spiral",
	FieldSpiralAmount:  "spiral_amount",
	FieldUseRamp:       "use_ramp",
	FieldMaterial:      "material",
	FieldStepCollision: "step_collision",
	FieldRampCollision: "ramp_collision",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// Change records one edited field with its old and new values.
type Change struct {
	Field Field
	Old   any
	New   any
}

// ChangeKind is a set of update passes needed to apply an edit.
type ChangeKind uint8

const (
	NoChange      ChangeKind = 0
	TransformOnly ChangeKind = 1 << iota
	MaterialOnly
	CollisionMaskOnly
	StructuralRebuild
)

// Has reports whether k includes pass.
func (k ChangeKind) Has(pass ChangeKind) bool {
	return k&pass != 0
}

func (k ChangeKind) String() string {
	if k == NoChange {
		return "none"
	}
	var parts []string
	if k.Has(TransformOnly) {
		parts = append(parts, "transform")
	}
	if k.Has(MaterialOnly) {
		parts = append(parts, "material")
	}
	if k.Has(CollisionMaskOnly) {
		parts = append(parts, "collision")
	}
	if k.Has(StructuralRebuild) {
		parts = append(parts, "rebuild")
	}
	return strings.Join(parts, "+")
}

// Diff lists the fields that differ between old and next, in Field order.
func Diff(old, next Settings) []Change {
	var changes []Change
	add := func(f Field, o, n any) {
		if o != n {
			changes = append(changes, Change{Field: f, Old: o, New: n})
		}
	}

	og, ng := old.Geometry, next.Geometry
	add(FieldHeight, og.Height, ng.Height)
	add(FieldWidth, og.Width, ng.Width)
	add(FieldLength, og.Length, ng.Length)
	add(FieldSteps, og.Steps, ng.Steps)
	add(FieldFloating, og.Floating, ng.Floating)
	add(FieldSpiral, og.Spiral, ng.Spiral)
	add(FieldSpiralAmount, og.SpiralAmount, ng.SpiralAmount)
	add(FieldUseRamp, og.UseRamp, ng.UseRamp)
	add(FieldMaterial, old.Material, next.Material)
	add(FieldStepCollision, old.StepCollision, next.StepCollision)
	add(FieldRampCollision, old.RampCollision, next.RampCollision)

	return changes
}

// Classify decides which passes turn old into next. A rebuild is needed
// exactly when the number of step or ramp units changes; every other
// geometry edit is a transform pass over the existing units.
func Classify(old, next Settings) ChangeKind {
	var kind ChangeKind

	og, ng := old.Geometry, next.Geometry
	if og.Steps != ng.Steps || og.RampsEnabled() != ng.RampsEnabled() {
		return StructuralRebuild
	}
	if og != ng {
		kind |= TransformOnly
	}
	if old.Material != next.Material {
		kind |= MaterialOnly
	}
	if old.StepCollision != next.StepCollision || old.RampCollision != next.RampCollision {
		kind |= CollisionMaskOnly
	}
	return kind
}
