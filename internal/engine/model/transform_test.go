package model

import (
	gomath "math"
	"testing"

	"github.com/arklight/entity3d/pkg/math"
)

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()

	if tr.Position != (math.Vec3{}) {
		t.Errorf("position = %v, want origin", tr.Position)
	}
	if tr.Rotation != math.QuatIdentity() {
		t.Errorf("rotation = %v, want identity", tr.Rotation)
	}
	if tr.Scale != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale = %v, want (1, 1, 1)", tr.Scale)
	}
}

func TestAxisAccessors(t *testing.T) {
	tr := NewTransform()

	tr.SetX(1)
	tr.SetY(2)
	tr.SetZ(3)
	if tr.X() != 1 || tr.Y() != 2 || tr.Z() != 3 {
		t.Errorf("position accessors = (%v, %v, %v), want (1, 2, 3)", tr.X(), tr.Y(), tr.Z())
	}

	tr.SetScaleX(4)
	tr.SetScaleY(5)
	tr.SetScaleZ(6)
	if tr.ScaleX() != 4 || tr.ScaleY() != 5 || tr.ScaleZ() != 6 {
		t.Errorf("scale accessors = (%v, %v, %v), want (4, 5, 6)", tr.ScaleX(), tr.ScaleY(), tr.ScaleZ())
	}

	// Accessors proxy straight into the vectors
	if tr.Position != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("position = %v, want (1, 2, 3)", tr.Position)
	}
	if tr.Scale != (math.Vec3{X: 4, Y: 5, Z: 6}) {
		t.Errorf("scale = %v, want (4, 5, 6)", tr.Scale)
	}
}

func TestRotateAxisEquivalence(t *testing.T) {
	angle := float32(gomath.Pi / 3)

	tests := []struct {
		name   string
		rotate func(*Transform) *Transform
		axis   math.Vec3
	}{
		{"x", func(tr *Transform) *Transform { return tr.RotateX(angle) }, math.Vec3{X: 1}},
		{"y", func(tr *Transform) *Transform { return tr.RotateY(angle) }, math.Vec3{Y: 1}},
		{"z", func(tr *Transform) *Transform { return tr.RotateZ(angle) }, math.Vec3{Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			if got := tt.rotate(tr); got != tr {
				t.Error("rotate should return the transform for chaining")
			}

			want := math.QuatFromAxisAngle(tt.axis, angle)
			q := tr.Rotation
			if abs32(q.X-want.X) > 0.0001 || abs32(q.Y-want.Y) > 0.0001 ||
				abs32(q.Z-want.Z) > 0.0001 || abs32(q.W-want.W) > 0.0001 {
				t.Errorf("rotation = %+v, want %+v", q, want)
			}
		})
	}
}

func TestRotateAccumulates(t *testing.T) {
	tr := NewTransform()
	tr.RotateY(float32(gomath.Pi / 4)).RotateY(float32(gomath.Pi / 4))

	want := math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(gomath.Pi/2))
	q := tr.Rotation
	if abs32(q.Y-want.Y) > 0.0001 || abs32(q.W-want.W) > 0.0001 {
		t.Errorf("two 45 degree rotations = %+v, want 90 degree rotation %+v", q, want)
	}
}
