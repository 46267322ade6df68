package model

import "github.com/arklight/entity3d/pkg/math"

// Transform holds an entity's position, rotation and non-uniform scale,
// each independently mutable. The rotation quaternion is kept unit-length
// by the caller; no accessor normalizes or validates. Every mutation path
// goes through these three fields, which is what makes the snapshot-based
// change detection in dirtyCache exhaustive.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// NewTransform returns a transform at the origin with identity rotation
// and unit scale.
func NewTransform() *Transform {
	return &Transform{
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// X returns the position x component.
func (t *Transform) X() float32 { return t.Position.X }

// Y returns the position y component.
func (t *Transform) Y() float32 { return t.Position.Y }

// Z returns the position z component.
func (t *Transform) Z() float32 { return t.Position.Z }

// SetX sets the position x component.
func (t *Transform) SetX(v float32) { t.Position.X = v }

// SetY sets the position y component.
func (t *Transform) SetY(v float32) { t.Position.Y = v }

// SetZ sets the position z component.
func (t *Transform) SetZ(v float32) { t.Position.Z = v }

// ScaleX returns the scale x component.
func (t *Transform) ScaleX() float32 { return t.Scale.X }

// ScaleY returns the scale y component.
func (t *Transform) ScaleY() float32 { return t.Scale.Y }

// ScaleZ returns the scale z component.
func (t *Transform) ScaleZ() float32 { return t.Scale.Z }

// SetScaleX sets the scale x component.
func (t *Transform) SetScaleX(v float32) { t.Scale.X = v }

// SetScaleY sets the scale y component.
func (t *Transform) SetScaleY(v float32) { t.Scale.Y = v }

// SetScaleZ sets the scale z component.
func (t *Transform) SetScaleZ(v float32) { t.Scale.Z = v }

// RotateX applies an axis-local rotation around X to the current
// quaternion and returns the transform for chaining.
func (t *Transform) RotateX(radians float32) *Transform {
	t.Rotation = t.Rotation.Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, radians))
	return t
}

// RotateY applies an axis-local rotation around Y to the current
// quaternion and returns the transform for chaining.
func (t *Transform) RotateY(radians float32) *Transform {
	t.Rotation = t.Rotation.Mul(math.QuatFromAxisAngle(math.Vec3{Y: 1}, radians))
	return t
}

// RotateZ applies an axis-local rotation around Z to the current
// quaternion and returns the transform for chaining.
func (t *Transform) RotateZ(radians float32) *Transform {
	t.Rotation = t.Rotation.Mul(math.QuatFromAxisAngle(math.Vec3{Z: 1}, radians))
	return t
}
