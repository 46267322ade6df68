// Package model manages a single renderable entity's vertex data and
// spatial transform: a packed interleaved vertex buffer, flat-array
// ingestion, and a change-detected world/normal matrix pair.
package model

import "fmt"

// Interleaved attribute layout per vertex, in storage order:
// x, y, z, nx, ny, nz, u, v. Eight float32 values, 32 bytes. External
// renderers consume the buffer assuming exactly this interleaving, so
// reordering or widening the layout is a breaking change.
const (
	VertexStride   = 8
	VertexByteSize = VertexStride * 4
)

// Vertex is the decoded view of one buffer record. Alpha is accepted at
// ingestion for pass-through but never packed into the buffer, so decoded
// vertices always carry Alpha == 1.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	Alpha    float32
}

// VertexBuffer is a fixed-capacity append-only store of interleaved
// per-vertex attributes. Capacity is set once at construction; there is
// no grow path. Not safe for concurrent use.
type VertexBuffer struct {
	data  []float32
	count int
	max   int
}

// NewVertexBuffer allocates storage for maxVertices records up front.
func NewVertexBuffer(maxVertices int) *VertexBuffer {
	if maxVertices < 0 {
		maxVertices = 0
	}
	return &VertexBuffer{
		data: make([]float32, maxVertices*VertexStride),
		max:  maxVertices,
	}
}

// Append writes one vertex record at the current write position and
// advances it. Appending past capacity fails with ErrCapacityExceeded
// and leaves the buffer unchanged.
func (b *VertexBuffer) Append(x, y, z, nx, ny, nz, u, v float32) error {
	if b.count >= b.max {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, b.max)
	}
	off := b.count * VertexStride
	b.data[off+0] = x
	b.data[off+1] = y
	b.data[off+2] = z
	b.data[off+3] = nx
	b.data[off+4] = ny
	b.data[off+5] = nz
	b.data[off+6] = u
	b.data[off+7] = v
	b.count++
	return nil
}

// Vertex decodes the record at index i. Fails with ErrOutOfRange when i
// is outside [0, Len()).
func (b *VertexBuffer) Vertex(i int) (Vertex, error) {
	if i < 0 || i >= b.count {
		return Vertex{}, fmt.Errorf("%w: vertex %d of %d", ErrOutOfRange, i, b.count)
	}
	off := i * VertexStride
	return Vertex{
		Position: [3]float32{b.data[off+0], b.data[off+1], b.data[off+2]},
		Normal:   [3]float32{b.data[off+3], b.data[off+4], b.data[off+5]},
		TexCoord: [2]float32{b.data[off+6], b.data[off+7]},
		Alpha:    1,
	}, nil
}

// Len returns the number of vertices written since construction or the
// last Reset.
func (b *VertexBuffer) Len() int {
	return b.count
}

// Cap returns the fixed vertex capacity.
func (b *VertexBuffer) Cap() int {
	return b.max
}

// Reset rewinds the write position without clearing storage. Reading an
// index that was valid before the Reset but not rewritten since is a
// caller error and is rejected by Vertex like any other out-of-range read.
func (b *VertexBuffer) Reset() {
	b.count = 0
}

// Floats returns the packed attribute slice covering the written region.
// The slice aliases internal storage and follows the fixed interleaving
// documented on VertexStride; it is what an external uploader hands to
// the GPU.
func (b *VertexBuffer) Floats() []float32 {
	return b.data[:b.count*VertexStride]
}
