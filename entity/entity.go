// Package entity provides the positioned, drawable base shared by the skier, obstacles and the rhino.
package entity

import (
	"github.com/lixenwraith/ski-rush/sprite"
	"github.com/lixenwraith/ski-rush/vmath"
)

// Canvas is the rendering capability entities draw onto
type Canvas interface {
	DrawSprite(name sprite.Name, x, y float64)
}

// Drawable is implemented by every entity variant
type Drawable interface {
	Bounds() (vmath.Rect, bool)
	Draw(c Canvas)
}

// Entity is a sprite placed at a world position
type Entity struct {
	Pos    vmath.Position
	Sprite sprite.Name

	sizes sprite.SizeSource
}

// New creates an entity centered at x, y
func New(x, y float64, name sprite.Name, sizes sprite.SizeSource) Entity {
	return Entity{
		Pos:    vmath.Position{X: x, Y: y},
		Sprite: name,
		sizes:  sizes,
	}
}

// Position returns the current world coordinates
func (e *Entity) Position() vmath.Position {
	return e.Pos
}

// Size returns the current sprite size; ok is false when no size source is set or the sprite is unknown
func (e *Entity) Size() (w, h float64, ok bool) {
	if e.sizes == nil {
		return 0, 0, false
	}
	return e.sizes.Size(e.Sprite)
}

// Bounds returns the full sprite rectangle centered on the position
func (e *Entity) Bounds() (vmath.Rect, bool) {
	w, h, ok := e.Size()
	if !ok {
		return vmath.Rect{}, false
	}
	return vmath.CenteredRect(e.Pos, w, h), true
}

// Draw renders the current sprite at the entity position
func (e *Entity) Draw(c Canvas) {
	if c == nil {
		return
	}
	c.DrawSprite(e.Sprite, e.Pos.X, e.Pos.Y)
}
