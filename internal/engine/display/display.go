// Package display provides the display-object capabilities a renderer
// reads off an entity: opacity, visibility, 2D size and texture binding.
// Capabilities are independent components attached to an entity by
// reference, not inherited behavior; the geometry core never touches them
// beyond the default-texture bootstrap at construction.
package display

// TextureRef identifies a texture and frame inside an external atlas.
// Resolution to GPU handles happens outside this module.
type TextureRef struct {
	Name  string
	Frame int
}

// Source resolves texture names to refs. The owning scene implements it;
// the geometry core consumes it only to default an unset texture.
type Source interface {
	Texture(name string, frame int) (TextureRef, bool)
}

// Opacity is a renderer-facing alpha multiplier in [0, 1].
type Opacity struct {
	Value float32
}

// Visibility toggles render submission for the entity.
type Visibility struct {
	Visible bool
}

// Size is the entity's logical 2D extent, used by layout and picking.
type Size struct {
	Width, Height float32
}

// Caps aggregates the capability components attached to one entity.
type Caps struct {
	Opacity    *Opacity
	Visibility *Visibility
	Size       *Size
	Texture    *TextureRef
}

// NewCaps returns fully opaque, visible, zero-sized capabilities with no
// texture bound.
func NewCaps() *Caps {
	return &Caps{
		Opacity:    &Opacity{Value: 1},
		Visibility: &Visibility{Visible: true},
		Size:       &Size{},
	}
}
