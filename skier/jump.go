package skier

import (
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/obstacle"
	"github.com/lixenwraith/ski-rush/sprite"
	"github.com/samber/lo"
)

// jumpableKinds can be passed over while airborne
var jumpableKinds = []sprite.Name{sprite.Rock1, sprite.Rock2, sprite.JumpRamp}

// jumpRecord exists only while airborne; its presence is what makes Direction report Jump
type jumpRecord struct {
	initial    Direction
	hasInitial bool
	timer      int // ticks since the last frame advance
	frame      int // index into sprite.JumpFrames
}

// JumpState is a read-only snapshot of the jump sub-state
type JumpState struct {
	Jumping          bool
	InitialDirection Direction
	HasInitial       bool
	AnimationTimer   int
	FrameIndex       int
}

// JumpState returns the current jump snapshot; zero when on the ground
func (s *Skier) JumpState() JumpState {
	if s.jump == nil {
		return JumpState{}
	}
	return JumpState{
		Jumping:          true,
		InitialDirection: s.jump.initial,
		HasInitial:       s.jump.hasInitial,
		AnimationTimer:   s.jump.timer,
		FrameIndex:       s.jump.frame,
	}
}

// IsJumping reports whether a jump is in progress
func (s *Skier) IsJumping() bool {
	return s.jump != nil
}

// JumpStart takes off, remembering the ground facing to land in
// Jumping again mid-air restarts the animation with the same landing facing
func (s *Skier) JumpStart() {
	if !s.IsSkiing() {
		return
	}

	s.jump = &jumpRecord{initial: s.facing, hasInitial: true}
	s.refreshSprite()
}

// JumpEnd lands the skier in the facing it had before taking off
func (s *Skier) JumpEnd() {
	if s.IsCrashed() || s.jump == nil {
		return
	}

	landing := s.facing
	if s.jump.hasInitial {
		landing = s.jump.initial
	}
	s.jump = nil
	s.setDirection(landing)
}

// JumpAsset returns the sprite for the current jump frame
// Requesting the final frame is what lands the skier
func (s *Skier) JumpAsset() sprite.Name {
	if s.jump == nil {
		return sprite.JumpFrames[0]
	}

	last := len(sprite.JumpFrames) - 1
	frame := min(s.jump.frame, last)
	name := sprite.JumpFrames[frame]
	if frame == last {
		s.JumpEnd()
	}
	return name
}

// jumpSkier is the airborne per-tick update, run by Move in place of ground stepping
// Animation pace follows speed: a frame advances once the timer exceeds the current speed
func (s *Skier) jumpSkier() {
	j := s.jump
	if j == nil {
		return
	}

	s.body.Pos.Y += s.speed
	if j.hasInitial {
		switch j.initial {
		case LeftDown:
			s.body.Pos.X -= s.speed
		case RightDown:
			s.body.Pos.X += s.speed
		}
	}

	s.score += constants.JumpScoreBonus

	j.timer++
	if float64(j.timer) <= s.speed {
		return
	}

	if j.frame < len(sprite.JumpFrames)-1 {
		j.frame++
	}
	j.timer = 0
}

// CanJump reports whether the obstacle is passed over during the current jump
func (s *Skier) CanJump(o *obstacle.Obstacle) bool {
	return s.IsJumping() && lo.Contains(jumpableKinds, o.Kind())
}

// IsJumpRamp reports whether the obstacle is a jump ramp
func (s *Skier) IsJumpRamp(o *obstacle.Obstacle) bool {
	return o.Kind() == sprite.JumpRamp
}
