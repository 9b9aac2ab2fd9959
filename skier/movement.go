package skier

import "github.com/lixenwraith/ski-rush/constants"

// Move advances the position for one tick according to the current direction
func (s *Skier) Move() {
	switch s.Direction() {
	case LeftDown:
		s.moveLeftDown()
	case Down:
		s.moveDown()
	case RightDown:
		s.moveRightDown()
	case Jump:
		s.jumpSkier()
	case Left, Right:
		// Fully horizontal facing does not move per tick; turning again steps sideways
	}

	s.refreshSprite()
}

// TurnLeft steps the facing one notch left, or steps sideways when already facing left
// A crashed skier recovers facing left first
func (s *Skier) TurnLeft() {
	if s.IsDead() {
		return
	}
	if s.IsCrashed() {
		s.RecoverFromCrash(Left)
	}
	if s.IsJumping() {
		return
	}

	if s.facing == Left {
		s.moveLeft()
		return
	}
	s.setDirection(s.facing - 1)
}

// TurnRight steps the facing one notch right, or steps sideways when already facing right
// A crashed skier recovers facing right first
func (s *Skier) TurnRight() {
	if s.IsDead() {
		return
	}
	if s.IsCrashed() {
		s.RecoverFromCrash(Right)
	}
	if s.IsJumping() {
		return
	}

	if s.facing == Right {
		s.moveRight()
		return
	}
	s.setDirection(s.facing + 1)
}

// TurnUp nudges a sideways-facing skier uphill
func (s *Skier) TurnUp() {
	if !s.IsSkiing() || s.IsJumping() {
		return
	}

	if s.facing == Left || s.facing == Right {
		s.moveUp()
	}
}

// TurnDown points the skier straight downhill
// Crashed skiers must turn sideways to escape; airborne skiers keep their jump
func (s *Skier) TurnDown() {
	if !s.IsSkiing() || s.IsJumping() {
		return
	}
	s.setDirection(Down)
}

// Sideways and uphill steps are discrete and use the starting speed regardless of current speed

func (s *Skier) moveLeft() {
	s.body.Pos = s.body.Pos.Add(-constants.StartingSpeed, 0)
}

func (s *Skier) moveRight() {
	s.body.Pos = s.body.Pos.Add(constants.StartingSpeed, 0)
}

func (s *Skier) moveUp() {
	s.body.Pos = s.body.Pos.Add(0, -constants.StartingSpeed)
}

func (s *Skier) moveDown() {
	s.body.Pos = s.body.Pos.Add(0, s.speed)
}

// Diagonal steps split speed across both axes so angled travel matches straight travel

func (s *Skier) moveLeftDown() {
	step := s.speed / constants.DiagonalSpeedReducer
	s.body.Pos = s.body.Pos.Add(-step, step)
}

func (s *Skier) moveRightDown() {
	step := s.speed / constants.DiagonalSpeedReducer
	s.body.Pos = s.body.Pos.Add(step, step)
}
