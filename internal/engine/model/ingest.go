package model

import "fmt"

// vertexOptions carries the optional ingestion inputs of AddVertices.
type vertexOptions struct {
	indices []int
	colors  []uint32
	alphas  []float32
}

// VertexOption supplies optional index/color/alpha data to AddVertices.
type VertexOption func(*vertexOptions)

// WithIndices makes AddVertices emit vertices in the given index order,
// each index selecting one position/UV pair from the flat input arrays.
func WithIndices(indices []int) VertexOption {
	return func(o *vertexOptions) { o.indices = indices }
}

// WithColors attaches vertex colors: a single value applies to every
// emitted vertex, multiple values are matched one per vertex in emission
// order. Colors are pass-through state, never packed into the buffer.
func WithColors(colors ...uint32) VertexOption {
	return func(o *vertexOptions) { o.colors = colors }
}

// WithAlphas attaches vertex alphas with the same single-or-per-vertex
// semantics as WithColors.
func WithAlphas(alphas ...float32) VertexOption {
	return func(o *vertexOptions) { o.alphas = alphas }
}

// AddVertex appends one fully specified vertex to the packed buffer.
func (m *Model) AddVertex(x, y, z, u, v, nx, ny, nz float32) error {
	if m.destroyed {
		return ErrDestroyed
	}
	return m.buf.Append(x, y, z, nx, ny, nz, u, v)
}

// AddVertices ingests flat 2D coordinate and UV arrays, three consecutive
// emitted vertices forming one triangle. Positions and UVs are parallel
// flat arrays of x,y (and u,v) pairs and must be the same length. With
// WithIndices the pairs are emitted in index order; without, they are
// walked pairwise in array order. Z is always 0 for this entry point and
// the normal faces +Z.
//
// All inputs are validated before the first append: a failed call leaves
// the vertex count and tint channel untouched. A vertex total that is not
// a multiple of 3 is accepted but the trailing partial triangle never
// becomes a Face.
func (m *Model) AddVertices(positions2D, uvs []float32, opts ...VertexOption) error {
	if m.destroyed {
		return ErrDestroyed
	}

	var o vertexOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(positions2D) != len(uvs) {
		return fmt.Errorf("%w: %d position values vs %d uv values", ErrShapeMismatch, len(positions2D), len(uvs))
	}

	emit := len(positions2D) / 2
	if len(o.indices) > 0 {
		emit = len(o.indices)
		for _, idx := range o.indices {
			if idx < 0 || 2*idx+1 >= len(positions2D) {
				return fmt.Errorf("%w: index %d over %d position pairs", ErrOutOfRange, idx, len(positions2D)/2)
			}
		}
	}

	// Per-vertex sequences must cover every emitted vertex; a single
	// value fans out to all of them.
	if len(o.colors) > 1 && len(o.colors) < emit {
		return fmt.Errorf("%w: %d colors for %d vertices", ErrShapeMismatch, len(o.colors), emit)
	}
	if len(o.alphas) > 1 && len(o.alphas) < emit {
		return fmt.Errorf("%w: %d alphas for %d vertices", ErrShapeMismatch, len(o.alphas), emit)
	}

	if m.buf.Len()+emit > m.buf.Cap() {
		return fmt.Errorf("%w: %d + %d vertices over capacity %d", ErrCapacityExceeded, m.buf.Len(), emit, m.buf.Cap())
	}

	appendPair := func(pair, emitted int) {
		x := positions2D[2*pair]
		y := positions2D[2*pair+1]
		u := uvs[2*pair]
		v := uvs[2*pair+1]
		// Pre-checked above; Append cannot fail here.
		_ = m.buf.Append(x, y, 0, 0, 0, 1, u, v)
		m.tints = append(m.tints, Tint{
			Color: pickColor(o.colors, emitted),
			Alpha: pickAlpha(o.alphas, emitted),
		})
	}

	if len(o.indices) > 0 {
		for n, idx := range o.indices {
			appendPair(idx, n)
		}
	} else {
		for n := 0; n < emit; n++ {
			appendPair(n, n)
		}
	}
	return nil
}

// pickColor resolves a single-or-per-vertex color sequence by emission
// order, defaulting to white.
func pickColor(colors []uint32, i int) uint32 {
	switch {
	case len(colors) == 0:
		return 0xFFFFFF
	case len(colors) == 1:
		return colors[0]
	default:
		return colors[i]
	}
}

// pickAlpha resolves a single-or-per-vertex alpha sequence by emission
// order, defaulting to opaque.
func pickAlpha(alphas []float32, i int) float32 {
	switch {
	case len(alphas) == 0:
		return 1
	case len(alphas) == 1:
		return alphas[0]
	default:
		return alphas[i]
	}
}
