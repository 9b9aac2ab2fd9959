package skier

import (
	"github.com/lixenwraith/ski-rush/obstacle"
	"github.com/lixenwraith/ski-rush/sprite"
)

// uniformSizes resolves every sprite to the same size
type uniformSizes struct {
	w, h float64
}

func (u uniformSizes) Size(sprite.Name) (float64, float64, bool) {
	return u.w, u.h, true
}

// noSizes resolves nothing
type noSizes struct{}

func (noSizes) Size(sprite.Name) (float64, float64, bool) {
	return 0, 0, false
}

// obstacleList is a fixed obstacle source
type obstacleList []*obstacle.Obstacle

func (l obstacleList) List() []*obstacle.Obstacle {
	return l
}

// recordingCanvas captures draw calls
type recordingCanvas struct {
	drawn []sprite.Name
}

func (r *recordingCanvas) DrawSprite(name sprite.Name, x, y float64) {
	r.drawn = append(r.drawn, name)
}

var testSizes = uniformSizes{w: 12, h: 12}

func newTestSkier(obstacles ...*obstacle.Obstacle) *Skier {
	return New(0, 0, testSizes, obstacleList(obstacles))
}

func obstacleAt(id uint64, x, y float64, kind sprite.Name) *obstacle.Obstacle {
	return obstacle.New(id, kind, x, y, testSizes)
}
