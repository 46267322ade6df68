package scene

import (
	"os"
	"testing"

	"github.com/arklight/entity3d/internal/engine/model"
	"github.com/arklight/entity3d/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.InitWithFileConfig("error", logger.FileConfig{}, false)
	os.Exit(m.Run())
}

func TestSceneTick(t *testing.T) {
	s := New(nil)
	m := model.New(8)
	m.Transform().SetX(3)
	s.Add(m)

	s.Tick(0, 0)

	if got := m.TransformMatrix()[12]; got != 3 {
		t.Errorf("translation x after tick = %v, want 3", got)
	}
}

func TestSceneAddRemove(t *testing.T) {
	s := New(nil)
	m1 := model.New(4)
	m2 := model.New(4)

	s.Add(m1)
	s.Add(m2)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	s.Remove(m1)
	if s.Len() != 1 {
		t.Errorf("Len after Remove = %d, want 1", s.Len())
	}

	// Removing an unregistered model is a no-op
	s.Remove(m1)
	if s.Len() != 1 {
		t.Errorf("Len after duplicate Remove = %d, want 1", s.Len())
	}
}

func TestAtlasLookup(t *testing.T) {
	a := NewAtlas(map[string]int{"atlas/grass": 4})

	ref, ok := a.Texture("atlas/grass", 2)
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if ref.Name != "atlas/grass" || ref.Frame != 2 {
		t.Errorf("ref = %+v, want atlas/grass frame 2", ref)
	}

	if _, ok := a.Texture("atlas/grass", 4); ok {
		t.Error("frame past count should fail")
	}
	if _, ok := a.Texture("atlas/missing", 0); ok {
		t.Error("unknown name should fail")
	}
}

func TestSceneDefaultTextureBootstrap(t *testing.T) {
	atlas := NewAtlas(map[string]int{"atlas/default": 1})
	s := New(atlas)

	m := model.New(4, model.WithDefaultTexture(s.Atlas(), "atlas/default"))
	ref := m.Caps().Texture
	if ref == nil || ref.Name != "atlas/default" {
		t.Errorf("texture ref = %v, want atlas/default", ref)
	}
}
