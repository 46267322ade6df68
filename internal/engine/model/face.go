package model

import (
	"fmt"

	"github.com/arklight/entity3d/pkg/math"
)

// Face is a triangle over three consecutive buffer vertices. Faces are a
// computed view, never stored: face i covers vertices 3i, 3i+1, 3i+2.
type Face struct {
	V1, V2, V3 Vertex

	// CounterClockwise is the XY-plane winding of the triangle: the sign
	// of the 2D cross product of the edges (V2-V1) and (V3-V1), with a
	// zero cross (degenerate triangle) counted as counter-clockwise.
	CounterClockwise bool
}

// Face decodes the triangle at face index i.
func (b *VertexBuffer) Face(i int) (Face, error) {
	if i < 0 {
		return Face{}, fmt.Errorf("%w: face %d", ErrOutOfRange, i)
	}
	v1, err := b.Vertex(3 * i)
	if err != nil {
		return Face{}, fmt.Errorf("face %d: %w", i, err)
	}
	v2, err := b.Vertex(3*i + 1)
	if err != nil {
		return Face{}, fmt.Errorf("face %d: %w", i, err)
	}
	v3, err := b.Vertex(3*i + 2)
	if err != nil {
		return Face{}, fmt.Errorf("face %d: %w", i, err)
	}
	return Face{
		V1:               v1,
		V2:               v2,
		V3:               v3,
		CounterClockwise: windingCCW(v1, v2, v3),
	}, nil
}

// FaceCount returns the number of complete triangles in the buffer. A
// vertex count that is not a multiple of 3 violates the ingestion
// invariant and is reported as an error rather than floored silently.
func (b *VertexBuffer) FaceCount() (int, error) {
	if b.count%3 != 0 {
		return 0, fmt.Errorf("%w: vertex count %d is not a multiple of 3", ErrShapeMismatch, b.count)
	}
	return b.count / 3, nil
}

// windingCCW projects the triangle edges onto the XY plane and takes the
// sign of their cross product.
func windingCCW(v1, v2, v3 Vertex) bool {
	p1 := math.Vec2{X: v1.Position[0], Y: v1.Position[1]}
	p2 := math.Vec2{X: v2.Position[0], Y: v2.Position[1]}
	p3 := math.Vec2{X: v3.Position[0], Y: v3.Position[1]}
	return p2.Sub(p1).Cross(p3.Sub(p1)) >= 0
}
