package model

import "testing"

func TestDirtyFreshCacheReportsDirty(t *testing.T) {
	c := &dirtyCache{}
	tr := NewTransform()

	// The zeroed snapshot differs from any default transform
	if !c.CheckAndUpdate(tr, 0) {
		t.Error("first check on a fresh cache should report dirty")
	}
	if c.CheckAndUpdate(tr, 0) {
		t.Error("second consecutive check should report clean")
	}
}

func TestDirtyEachMutationDetectedOnce(t *testing.T) {
	c := &dirtyCache{}
	tr := NewTransform()
	c.Commit(tr, 0)

	mutations := []struct {
		name   string
		mutate func()
	}{
		{"position x", func() { tr.SetX(1) }},
		{"position y", func() { tr.SetY(-2) }},
		{"position z", func() { tr.SetZ(3.5) }},
		{"rotation", func() { tr.RotateY(0.3) }},
		{"scale x", func() { tr.SetScaleX(2) }},
		{"scale y", func() { tr.SetScaleY(0.5) }},
		{"scale z", func() { tr.SetScaleZ(4) }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			tt.mutate()
			if !c.CheckAndUpdate(tr, 0) {
				t.Error("check after mutation should report dirty")
			}
			if c.CheckAndUpdate(tr, 0) {
				t.Error("consecutive check without mutation should report clean")
			}
		})
	}
}

func TestDirtyVertexCountChange(t *testing.T) {
	c := &dirtyCache{}
	tr := NewTransform()
	c.Commit(tr, 0)

	if !c.CheckAndUpdate(tr, 3) {
		t.Error("vertex count change should report dirty")
	}
	if c.CheckAndUpdate(tr, 3) {
		t.Error("stable vertex count should report clean")
	}
}

func TestDirtyIsDirtyIsPure(t *testing.T) {
	c := &dirtyCache{}
	tr := NewTransform()
	c.Commit(tr, 0)

	tr.SetX(9)

	// IsDirty never advances the snapshot; repeated probes keep agreeing
	for i := 0; i < 3; i++ {
		if !c.IsDirty(tr, 0) {
			t.Fatalf("IsDirty probe %d should report dirty", i)
		}
	}

	// Only Commit clears it
	c.Commit(tr, 0)
	if c.IsDirty(tr, 0) {
		t.Error("IsDirty after Commit should report clean")
	}
}

func TestDirtyRevertedMutationStaysClean(t *testing.T) {
	c := &dirtyCache{}
	tr := NewTransform()
	c.Commit(tr, 0)

	// Mutate and revert between checks: the snapshot diff sees no change
	tr.SetX(5)
	tr.SetX(0)
	if c.CheckAndUpdate(tr, 0) {
		t.Error("mutation reverted before the check should report clean")
	}
}
