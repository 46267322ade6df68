package model

import (
	"go.uber.org/zap"

	"github.com/arklight/entity3d/internal/engine/display"
	"github.com/arklight/entity3d/internal/logger"
	"github.com/arklight/entity3d/pkg/math"
)

// Model owns one entity's geometry and spatial state: a fixed-capacity
// vertex buffer, a transform, the dirty cache gating matrix recomputation,
// and the cached world/normal matrix pair. A Model is single-threaded by
// contract; all operations run synchronously on the owning frame loop and
// carry no internal locking.
type Model struct {
	buf       *VertexBuffer
	transform *Transform
	dirty     *dirtyCache

	transformMat math.Mat4
	normalMat    math.Mat4

	// compatNormal derives the normal matrix from the scaled world matrix,
	// reproducing the reference numerics where scale ends up applied to
	// normals twice. When false the normal matrix comes from the rotation
	// alone, the corrected derivation.
	compatNormal bool

	// tints is the ingestion-order color/alpha side channel. Tints are
	// accepted by AddVertices for higher-level consumers but never packed
	// into the vertex buffer.
	tints []Tint

	animator Animator
	caps     *display.Caps

	destroyed bool
}

// Tint is the per-vertex color/alpha pair carried outside the packed
// buffer, indexed by emission order.
type Tint struct {
	Color uint32
	Alpha float32
}

// Option configures a Model at construction.
type Option func(*Model)

// WithAnimator attaches an animation driver advanced on every PreTick.
func WithAnimator(a Animator) Option {
	return func(m *Model) { m.animator = a }
}

// WithCompatNormalMatrix selects between the reference-compatible normal
// matrix (derived from the scaled world matrix) and the corrected
// scale-free derivation.
func WithCompatNormalMatrix(compat bool) Option {
	return func(m *Model) { m.compatNormal = compat }
}

// WithDefaultTexture binds the named texture from src when the model has
// none yet. A failed lookup leaves the texture unset.
func WithDefaultTexture(src display.Source, name string) Option {
	return func(m *Model) {
		if m.caps.Texture != nil || src == nil {
			return
		}
		if ref, ok := src.Texture(name, 0); ok {
			m.caps.Texture = &ref
		}
	}
}

// New creates a model with a vertex buffer of the given fixed capacity.
func New(maxVertices int, opts ...Option) *Model {
	m := &Model{
		buf:          NewVertexBuffer(maxVertices),
		transform:    NewTransform(),
		dirty:        &dirtyCache{},
		transformMat: math.Identity(),
		normalMat:    math.Identity(),
		compatNormal: true,
		caps:         display.NewCaps(),
	}
	for _, opt := range opts {
		opt(m)
	}
	logger.Debug("model created", zap.Int("maxVertices", maxVertices))
	return m
}

// PreTick advances the frame: animation first, then one authoritative
// dirty check, then matrix recomputation if anything changed. It is the
// only caller of the fused check-and-commit path, so it must run exactly
// once per frame; the owning scene holds that contract. On a destroyed
// model PreTick warns and does nothing.
func (m *Model) PreTick(time, delta float32) {
	if m.destroyed {
		logger.Warn("PreTick on destroyed model")
		return
	}
	if m.animator != nil {
		m.animator.Advance(time, delta)
	}
	if m.dirty.CheckAndUpdate(m.transform, m.buf.Len()) {
		m.recompute()
	}
}

// recompute rebuilds the world matrix as translation and rotation composed
// first, with scale concatenated as a second multiply, then derives the
// normal matrix as the inverse-transpose of the 3x3 linear part.
func (m *Model) recompute() {
	t := m.transform
	world := math.Translate(t.Position.X, t.Position.Y, t.Position.Z).Mul(t.Rotation.ToMat4())
	world = world.Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
	m.transformMat = world

	if m.compatNormal {
		// Translation never affects normals; clear it before inverting so
		// the result is the inverse-transpose of rotation*scale.
		linear := world
		linear[12], linear[13], linear[14] = 0, 0, 0
		m.normalMat = linear.Inverse().Transpose()
	} else {
		// A pure rotation is its own inverse-transpose.
		m.normalMat = t.Rotation.ToMat4()
	}
}

// TransformMatrix returns the world transform rebuilt by the last dirty
// PreTick.
func (m *Model) TransformMatrix() math.Mat4 {
	return m.transformMat
}

// NormalMatrix returns the normal matrix rebuilt by the last dirty
// PreTick.
func (m *Model) NormalMatrix() math.Mat4 {
	return m.normalMat
}

// Transform returns the mutable transform state, or nil after Destroy.
func (m *Model) Transform() *Transform {
	if m.destroyed {
		return nil
	}
	return m.transform
}

// RotateX rotates the model around its local X axis and returns the model
// for chaining. No-op after Destroy.
func (m *Model) RotateX(radians float32) *Model {
	if !m.destroyed {
		m.transform.RotateX(radians)
	}
	return m
}

// RotateY rotates the model around its local Y axis and returns the model
// for chaining. No-op after Destroy.
func (m *Model) RotateY(radians float32) *Model {
	if !m.destroyed {
		m.transform.RotateY(radians)
	}
	return m
}

// RotateZ rotates the model around its local Z axis and returns the model
// for chaining. No-op after Destroy.
func (m *Model) RotateZ(radians float32) *Model {
	if !m.destroyed {
		m.transform.RotateZ(radians)
	}
	return m
}

// Vertex decodes the vertex at index i from the packed buffer.
func (m *Model) Vertex(i int) (Vertex, error) {
	if m.destroyed {
		return Vertex{}, ErrDestroyed
	}
	return m.buf.Vertex(i)
}

// Face decodes the triangle at face index i.
func (m *Model) Face(i int) (Face, error) {
	if m.destroyed {
		return Face{}, ErrDestroyed
	}
	return m.buf.Face(i)
}

// FaceCount returns the number of complete triangles. A trailing partial
// triangle is a caller error; it is floored out of the count and logged
// once at debug level rather than failing introspection.
func (m *Model) FaceCount() (int, error) {
	if m.destroyed {
		return 0, ErrDestroyed
	}
	if m.buf.Len()%3 != 0 {
		logger.Debug("partial trailing triangle ignored", zap.Int("vertices", m.buf.Len()))
	}
	return m.buf.Len() / 3, nil
}

// VertexCount returns the number of vertices written so far.
func (m *Model) VertexCount() (int, error) {
	if m.destroyed {
		return 0, ErrDestroyed
	}
	return m.buf.Len(), nil
}

// Buffer exposes the packed vertex buffer for external upload. The byte
// layout documented on VertexStride is the interop contract.
func (m *Model) Buffer() *VertexBuffer {
	if m.destroyed {
		return nil
	}
	return m.buf
}

// Tints returns the ingestion-order color/alpha side channel.
func (m *Model) Tints() []Tint {
	if m.destroyed {
		return nil
	}
	return m.tints
}

// Caps returns the display capabilities attached to this model, or nil
// after Destroy.
func (m *Model) Caps() *display.Caps {
	if m.destroyed {
		return nil
	}
	return m.caps
}

// Destroy releases the buffer and transform state. Every later operation
// fails with ErrDestroyed (or is an explicit no-op where the signature
// carries no error).
func (m *Model) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.buf = nil
	m.transform = nil
	m.dirty = nil
	m.tints = nil
	m.animator = nil
	m.caps = nil
	logger.Debug("model destroyed")
}
