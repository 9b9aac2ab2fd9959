package skier

import (
	"github.com/lixenwraith/ski-rush/obstacle"
	"github.com/lixenwraith/ski-rush/vmath"
	"github.com/samber/lo"
)

// intersects is the overlap test used by CheckIfHitObstacle
var intersects = vmath.Intersects

// Bounds returns the skier hit-box
// The bottom edge sits a quarter height above center so a crash shows the skier inside the
// obstacle rather than perched on top of it
func (s *Skier) Bounds() (vmath.Rect, bool) {
	w, h, ok := s.body.Size()
	if !ok {
		return vmath.Rect{}, false
	}

	p := s.body.Pos
	return vmath.Rect{
		Left:   p.X - w/2,
		Top:    p.Y - h/2,
		Right:  p.X + w/2,
		Bottom: p.Y - h/4,
	}, true
}

// CheckIfHitObstacle crashes the skier on the first overlapping obstacle in scan order
// Jumpable obstacles are skipped while airborne, and staying on the same obstacle does not
// crash again
func (s *Skier) CheckIfHitObstacle() {
	bounds, ok := s.Bounds()
	if !ok || s.obstacles == nil {
		return
	}

	hit, found := lo.Find(s.obstacles.List(), func(o *obstacle.Obstacle) bool {
		ob, ok := o.Bounds()
		if !ok {
			return false
		}
		if s.CanJump(o) {
			return false
		}
		return intersects(bounds, ob)
	})
	if !found {
		return
	}

	if s.hasLastHit && s.lastHitID == hit.ID() {
		return
	}
	s.lastHitID, s.hasLastHit = hit.ID(), true
	s.Crash()
}
