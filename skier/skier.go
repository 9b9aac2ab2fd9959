// Package skier implements the player-controlled skier: directional movement, the jump
// sub-state machine, obstacle collision and the skiing/crashed/dead lifecycle.
//
// A Skier is driven by a single writer: one Update per game tick plus HandleInput calls from the
// same loop. Nothing here blocks, logs or returns errors; operations that make no sense in the
// current state are silent no-ops.
package skier

import (
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/entity"
	"github.com/lixenwraith/ski-rush/obstacle"
	"github.com/lixenwraith/ski-rush/sprite"
	"github.com/lixenwraith/ski-rush/vmath"
)

// Input key names accepted by HandleInput
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
	KeyUp    = "ArrowUp"
	KeyDown  = "ArrowDown"
	KeyJump  = " "
)

// ObstacleSource supplies the obstacles to test each tick, in scan order
type ObstacleSource interface {
	List() []*obstacle.Obstacle
}

// Skier is the player entity
type Skier struct {
	body      entity.Entity
	obstacles ObstacleSource

	state  State
	facing Direction // never Jump; the jump record overrides it while airborne
	jump   *jumpRecord
	speed  float64
	score  int
	lives  int

	// Last obstacle that crashed the skier, cleared on recovery
	lastHitID  uint64
	hasLastHit bool
}

// New creates a skier at x, y facing down at starting speed
func New(x, y float64, sizes sprite.SizeSource, obstacles ObstacleSource) *Skier {
	return &Skier{
		body:      entity.New(x, y, sprite.SkierDown, sizes),
		obstacles: obstacles,
		state:     StateSkiing,
		facing:    Down,
		speed:     constants.StartingSpeed,
		lives:     constants.StartingLives,
	}
}

// Position returns the current world coordinates
func (s *Skier) Position() vmath.Position { return s.body.Position() }

// Sprite returns the sprite currently displayed
func (s *Skier) Sprite() sprite.Name { return s.body.Sprite }

// State returns the lifecycle state
func (s *Skier) State() State { return s.state }

// Speed returns the current speed
func (s *Skier) Speed() float64 { return s.speed }

// Score returns the accumulated score
func (s *Skier) Score() int { return s.score }

// Lives returns the remaining lives
func (s *Skier) Lives() int { return s.lives }

// Direction returns the facing, or Jump while airborne
func (s *Skier) Direction() Direction {
	if s.jump != nil {
		return Jump
	}
	return s.facing
}

// LastCollidedObstacle returns the id of the obstacle that caused the current crash
func (s *Skier) LastCollidedObstacle() (uint64, bool) {
	return s.lastHitID, s.hasLastHit
}

func (s *Skier) IsSkiing() bool  { return s.state == StateSkiing }
func (s *Skier) IsCrashed() bool { return s.state == StateCrashed }
func (s *Skier) IsDead() bool    { return s.state == StateDead }

// SetSpeed lets the difficulty driver overwrite the speed between ticks
// Ignored unless skiing, so a crashed or dead skier stays at rest
func (s *Skier) SetSpeed(v float64) {
	if !s.IsSkiing() {
		return
	}
	if v < 0 {
		v = 0
	}
	s.speed = v
}

// AddScore awards externally earned points; non-positive amounts are ignored
func (s *Skier) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
}

// Update advances one tick: move, then test for collisions. Only a skiing skier moves.
func (s *Skier) Update() {
	if !s.IsSkiing() {
		return
	}
	s.Move()
	s.CheckIfHitObstacle()
}

// Draw renders the skier unless dead
func (s *Skier) Draw(c entity.Canvas) {
	if s.IsDead() {
		return
	}
	s.body.Draw(c)
}

// HandleInput dispatches a key and reports whether it was consumed
func (s *Skier) HandleInput(key string) bool {
	if s.IsDead() {
		return false
	}

	switch key {
	case KeyLeft:
		s.TurnLeft()
	case KeyRight:
		s.TurnRight()
	case KeyUp:
		s.TurnUp()
	case KeyDown:
		s.TurnDown()
	case KeyJump:
		s.JumpStart()
	default:
		return false
	}
	return true
}

// Crash costs a life and stops the skier; the last life ends in death
func (s *Skier) Crash() {
	if s.IsDead() {
		return
	}

	if !s.IsCrashed() && s.lives > 0 {
		s.lives--
	}

	if s.lives == 0 {
		s.Die()
		return
	}

	// A crash lands the skier; a pending jump cannot resume after recovery
	s.jump = nil
	s.state = StateCrashed
	s.speed = 0
	s.body.Sprite = sprite.SkierCrash
}

// RecoverFromCrash gets a crashed skier moving again in the given ground direction
func (s *Skier) RecoverFromCrash(d Direction) {
	if !s.IsCrashed() {
		return
	}

	s.state = StateSkiing
	s.speed = constants.StartingSpeed
	s.setDirection(d)
	s.lastHitID, s.hasLastHit = 0, false
}

// Die stops the skier for good
func (s *Skier) Die() {
	s.jump = nil
	s.state = StateDead
	s.speed = 0
}

// setDirection changes the ground facing and refreshes the sprite
func (s *Skier) setDirection(d Direction) {
	if d < Left || d > Right {
		return
	}
	s.facing = d
	s.refreshSprite()
}

// refreshSprite shows the jump frame while airborne, else the facing sprite
func (s *Skier) refreshSprite() {
	if s.jump != nil {
		name := s.JumpAsset()
		// JumpAsset may have landed the skier and already shown the facing sprite
		if s.jump != nil {
			s.body.Sprite = name
		}
		return
	}
	s.body.Sprite = directionSprite(s.facing)
}
