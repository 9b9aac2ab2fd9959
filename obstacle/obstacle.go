// Package obstacle owns the things on the slope the skier can run into and the field that places
// and recycles them as the view scrolls.
package obstacle

import (
	"github.com/lixenwraith/ski-rush/entity"
	"github.com/lixenwraith/ski-rush/sprite"
)

// Kinds lists every obstacle sprite the field places
var Kinds = []sprite.Name{
	sprite.Tree,
	sprite.TreeCluster,
	sprite.Rock1,
	sprite.Rock2,
	sprite.JumpRamp,
}

// Obstacle is a stationary entity with a stable identity
type Obstacle struct {
	entity.Entity
	id uint64
}

// New creates an obstacle of the given kind centered at x, y
func New(id uint64, kind sprite.Name, x, y float64, sizes sprite.SizeSource) *Obstacle {
	return &Obstacle{
		Entity: entity.New(x, y, kind, sizes),
		id:     id,
	}
}

// ID returns the stable obstacle identity
func (o *Obstacle) ID() uint64 {
	return o.id
}

// Kind returns the kind tag, which is also the sprite drawn
func (o *Obstacle) Kind() sprite.Name {
	return o.Sprite
}
