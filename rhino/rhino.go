// Package rhino implements the chaser that hunts the skier down the slope.
package rhino

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/entity"
	"github.com/lixenwraith/ski-rush/sprite"
	"github.com/lixenwraith/ski-rush/vmath"
)

// State is the rhino behavior phase
type State int

const (
	StateHunting State = iota
	StateEating
	StateCelebrating
)

func (s State) String() string {
	switch s {
	case StateHunting:
		return "hunting"
	case StateEating:
		return "eating"
	case StateCelebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// Prey is what the rhino chases
type Prey interface {
	Position() vmath.Position
	Bounds() (vmath.Rect, bool)
	IsDead() bool
	Die()
}

var (
	runFrames       = []sprite.Name{sprite.RhinoRun1, sprite.RhinoRun2}
	eatFrames       = []sprite.Name{sprite.RhinoEat1, sprite.RhinoEat2, sprite.RhinoEat3, sprite.RhinoEat4}
	celebrateFrames = []sprite.Name{sprite.RhinoCelebrate1, sprite.RhinoCelebrate2}
)

// Rhino chases the prey at its speed and eats it on contact
type Rhino struct {
	body  entity.Entity
	state State
	speed float64

	frame     int
	lastFrame time.Time
}

// New creates a hunting rhino at x, y
func New(x, y float64, sizes sprite.SizeSource) *Rhino {
	return &Rhino{
		body:  entity.New(x, y, sprite.Rhino, sizes),
		state: StateHunting,
		speed: constants.StartingSpeed,
	}
}

// Position returns the current world coordinates
func (r *Rhino) Position() vmath.Position { return r.body.Position() }

// Bounds returns the rhino hit-box
func (r *Rhino) Bounds() (vmath.Rect, bool) { return r.body.Bounds() }

// Sprite returns the sprite currently displayed
func (r *Rhino) Sprite() sprite.Name { return r.body.Sprite }

// State returns the behavior phase
func (r *Rhino) State() State { return r.state }

// Speed returns the chase speed
func (r *Rhino) Speed() float64 { return r.speed }

// SetSpeed sets the chase speed, floored at 0
func (r *Rhino) SetSpeed(v float64) {
	if v < 0 {
		v = 0
	}
	r.speed = v
}

// Draw renders the rhino
func (r *Rhino) Draw(c entity.Canvas) {
	r.body.Draw(c)
}

// Update advances one tick; now paces the animations
func (r *Rhino) Update(now time.Time, prey Prey) {
	switch r.state {
	case StateHunting:
		r.hunt(now, prey)
	case StateEating:
		if r.advanceFrame(now, len(eatFrames)) && r.frame == 0 {
			r.enter(StateCelebrating, now)
			return
		}
		r.body.Sprite = eatFrames[r.frame]
	case StateCelebrating:
		r.advanceFrame(now, len(celebrateFrames))
		r.body.Sprite = celebrateFrames[r.frame]
	}
}

func (r *Rhino) hunt(now time.Time, prey Prey) {
	if prey == nil {
		return
	}
	if prey.IsDead() {
		r.enter(StateCelebrating, now)
		return
	}

	target := prey.Position()
	pos := mgl64.Vec2{r.body.Pos.X, r.body.Pos.Y}
	delta := mgl64.Vec2{target.X, target.Y}.Sub(pos)

	if dist := delta.Len(); dist > 0 {
		step := delta.Normalize().Mul(min(r.speed, dist))
		pos = pos.Add(step)
		r.body.Pos = vmath.Position{X: pos.X(), Y: pos.Y()}
	}

	r.advanceFrame(now, len(runFrames))
	r.body.Sprite = runFrames[r.frame]

	mine, ok := r.body.Bounds()
	if !ok {
		return
	}
	theirs, ok := prey.Bounds()
	if !ok {
		return
	}
	if vmath.Intersects(mine, theirs) {
		prey.Die()
		r.body.Pos = target
		r.enter(StateEating, now)
	}
}

func (r *Rhino) enter(s State, now time.Time) {
	r.state = s
	r.frame = 0
	r.lastFrame = now

	switch s {
	case StateEating:
		r.body.Sprite = eatFrames[0]
	case StateCelebrating:
		r.body.Sprite = celebrateFrames[0]
	}
}

// advanceFrame steps the frame index once per animation interval, wrapping at count
// Returns true when the frame changed
func (r *Rhino) advanceFrame(now time.Time, count int) bool {
	if r.lastFrame.IsZero() {
		r.lastFrame = now
		return false
	}
	if now.Sub(r.lastFrame) < constants.AnimationFrameInterval {
		return false
	}
	r.frame = (r.frame + 1) % count
	r.lastFrame = now
	return true
}
