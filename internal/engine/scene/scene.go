// Package scene owns the per-frame tick loop over registered models and
// the texture atlas lookup the geometry core bootstraps against. It is
// the single place allowed to call Model.PreTick, which keeps the
// once-per-frame dirty-check contract in one pair of hands.
package scene

import (
	"go.uber.org/zap"

	"github.com/arklight/entity3d/internal/engine/display"
	"github.com/arklight/entity3d/internal/engine/model"
	"github.com/arklight/entity3d/internal/logger"
)

// Scene is a registry of models advanced together each frame. Like the
// models it owns, a Scene is single-threaded by contract.
type Scene struct {
	models []*model.Model
	atlas  *Atlas
}

// New creates an empty scene backed by the given atlas. A nil atlas is
// valid; models then start with no default texture.
func New(atlas *Atlas) *Scene {
	return &Scene{atlas: atlas}
}

// Atlas returns the scene's texture lookup for model construction.
func (s *Scene) Atlas() display.Source {
	if s.atlas == nil {
		return nil
	}
	return s.atlas
}

// Add registers a model for per-frame ticking.
func (s *Scene) Add(m *model.Model) {
	s.models = append(s.models, m)
	logger.Debug("model added to scene", zap.Int("models", len(s.models)))
}

// Remove unregisters a model. Removing a model not in the scene is a
// no-op.
func (s *Scene) Remove(m *model.Model) {
	for i, have := range s.models {
		if have == m {
			s.models = append(s.models[:i], s.models[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered models.
func (s *Scene) Len() int {
	return len(s.models)
}

// Tick advances every registered model exactly once for this frame.
// Callers drive it once per logical frame; issuing extra ticks mid-frame
// would swallow change detection until the next true mutation.
func (s *Scene) Tick(time, delta float32) {
	for _, m := range s.models {
		m.PreTick(time, delta)
	}
}

// Atlas maps texture names to frame-addressed refs. It is the bundled
// display.Source implementation; real deployments wire a GPU-backed
// atlas in its place.
type Atlas struct {
	frames map[string]int
}

// NewAtlas creates an atlas over the given name -> frame count table.
func NewAtlas(frames map[string]int) *Atlas {
	return &Atlas{frames: frames}
}

// Texture resolves a name and frame to a ref. Lookup fails for unknown
// names and frames outside the registered count.
func (a *Atlas) Texture(name string, frame int) (display.TextureRef, bool) {
	count, ok := a.frames[name]
	if !ok || frame < 0 || frame >= count {
		return display.TextureRef{}, false
	}
	return display.TextureRef{Name: name, Frame: frame}, true
}
