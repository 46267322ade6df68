package model

// dirtyCache detects transform and geometry mutations by diffing against
// an 11-slot snapshot of the last committed observation: position (3),
// rotation (4), scale (3) and vertex count (1).
//
// The API is two-phase so callers cannot desynchronize the cache by
// probing it more than once per frame: IsDirty is a pure comparison and
// Commit advances the snapshot. CheckAndUpdate fuses both for the single
// authoritative per-tick call site in Model.PreTick.
//
// A fresh cache starts with a zeroed snapshot, which differs from any
// default transform (unit scale, identity rotation), so the first check
// after construction always reports dirty and forces the initial matrix
// build.
type dirtyCache struct {
	snap [11]float32
}

// IsDirty reports whether the transform or vertex count differs from the
// committed snapshot. It never modifies the cache.
func (c *dirtyCache) IsDirty(t *Transform, vertexCount int) bool {
	return c.snap != observe(t, vertexCount)
}

// Commit records the current transform and vertex count as the new
// snapshot.
func (c *dirtyCache) Commit(t *Transform, vertexCount int) {
	c.snap = observe(t, vertexCount)
}

// CheckAndUpdate compares and commits in one pass. Two consecutive calls
// with no intervening mutation always report clean on the second call.
func (c *dirtyCache) CheckAndUpdate(t *Transform, vertexCount int) bool {
	cur := observe(t, vertexCount)
	dirty := c.snap != cur
	c.snap = cur
	return dirty
}

func observe(t *Transform, vertexCount int) [11]float32 {
	return [11]float32{
		t.Position.X, t.Position.Y, t.Position.Z,
		t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W,
		t.Scale.X, t.Scale.Y, t.Scale.Z,
		float32(vertexCount),
	}
}
