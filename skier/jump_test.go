package skier

import (
	"testing"

	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/sprite"
)

func TestJumpStart(t *testing.T) {
	s := newTestSkier()
	s.TurnDown()

	s.JumpStart()

	js := s.JumpState()
	if !js.Jumping || !s.IsJumping() {
		t.Fatal("Expected skier to be jumping")
	}
	if js.FrameIndex != 0 || js.AnimationTimer != 0 {
		t.Errorf("Expected zeroed animation, got frame %d timer %d", js.FrameIndex, js.AnimationTimer)
	}
	if !js.HasInitial || js.InitialDirection != Down {
		t.Errorf("Expected initial direction down, got %s", js.InitialDirection)
	}
	if s.Direction() != Jump {
		t.Errorf("Expected direction jump, got %s", s.Direction())
	}
	if s.Sprite() != sprite.SkierJump1 {
		t.Errorf("Expected first jump frame, got %s", s.Sprite())
	}
}

func TestJumpEnd(t *testing.T) {
	s := newTestSkier()
	s.TurnLeft()
	s.JumpStart()

	s.JumpEnd()

	js := s.JumpState()
	if js.Jumping || s.IsJumping() {
		t.Error("Expected jump to be over")
	}
	if js.FrameIndex != 0 || js.AnimationTimer != 0 {
		t.Errorf("Expected zeroed animation, got frame %d timer %d", js.FrameIndex, js.AnimationTimer)
	}
	if s.Direction() != LeftDown {
		t.Errorf("Expected landing facing left-down, got %s", s.Direction())
	}
	if s.Sprite() != sprite.SkierLeftDown {
		t.Errorf("Expected sprite %s, got %s", sprite.SkierLeftDown, s.Sprite())
	}
}

func TestJumpEndWithoutInitialFallsBackToFacing(t *testing.T) {
	s := newTestSkier()
	s.TurnRight()
	s.jump = &jumpRecord{}

	s.JumpEnd()

	if s.Direction() != RightDown {
		t.Errorf("Expected fallback to current facing, got %s", s.Direction())
	}
}

func TestJumpStartWhileCrashed(t *testing.T) {
	s := newTestSkier()
	s.Crash()

	s.JumpStart()

	if s.IsJumping() {
		t.Error("Expected crashed skier not to jump")
	}
	if s.Direction() == Jump {
		t.Error("Expected direction not to be jump")
	}
}

func TestTurnsIgnoredWhileJumping(t *testing.T) {
	tests := []struct {
		name string
		turn func(s *Skier)
	}{
		{"Left", (*Skier).TurnLeft},
		{"Right", (*Skier).TurnRight},
		{"Up", (*Skier).TurnUp},
		{"Down", (*Skier).TurnDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSkier()
			s.TurnLeft()
			s.TurnLeft()
			s.JumpStart()
			before := s.Position()

			tt.turn(s)

			if s.Direction() != Jump {
				t.Errorf("Expected direction jump, got %s", s.Direction())
			}
			if s.Position() != before {
				t.Errorf("Expected position %+v, got %+v", before, s.Position())
			}
			if got := s.JumpState().InitialDirection; got != Left {
				t.Errorf("Expected landing facing left, got %s", got)
			}
		})
	}
}

func TestJumpAnimationPacing(t *testing.T) {
	s := newTestSkier()
	s.JumpStart()
	speed := int(s.Speed())

	for i := 1; i <= speed; i++ {
		s.jumpSkier()
		js := s.JumpState()
		if js.FrameIndex != 0 {
			t.Fatalf("Tick %d: expected frame 0, got %d", i, js.FrameIndex)
		}
		if js.AnimationTimer != i {
			t.Fatalf("Tick %d: expected timer %d, got %d", i, i, js.AnimationTimer)
		}
	}

	s.jumpSkier()

	js := s.JumpState()
	if js.FrameIndex != 1 {
		t.Errorf("Expected frame 1 after %d ticks, got %d", speed+1, js.FrameIndex)
	}
	if js.AnimationTimer != 0 {
		t.Errorf("Expected timer reset, got %d", js.AnimationTimer)
	}
}

func TestJumpTickFromLeftDown(t *testing.T) {
	s := newTestSkier()
	s.SetSpeed(10)
	s.TurnLeft()
	s.JumpStart()
	before := s.Position()

	s.jumpSkier()

	p := s.Position()
	if p.Y-before.Y != 10 {
		t.Errorf("Expected y +10, got %v", p.Y-before.Y)
	}
	if p.X-before.X != -10 {
		t.Errorf("Expected x -10, got %v", p.X-before.X)
	}
	if s.Score() != constants.JumpScoreBonus {
		t.Errorf("Expected score %d, got %d", constants.JumpScoreBonus, s.Score())
	}
	if s.JumpState().AnimationTimer != 1 {
		t.Errorf("Expected timer 1, got %d", s.JumpState().AnimationTimer)
	}
}

func TestJumpTickDrift(t *testing.T) {
	tests := []struct {
		name  string
		turns func(s *Skier)
		dx    float64
	}{
		{"Down", func(s *Skier) {}, 0},
		{"Right down", func(s *Skier) { s.TurnRight() }, constants.StartingSpeed},
		{"Left", func(s *Skier) { s.TurnLeft(); s.TurnLeft() }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSkier()
			tt.turns(s)
			s.JumpStart()
			before := s.Position()

			s.jumpSkier()

			if got := s.Position().X - before.X; got != tt.dx {
				t.Errorf("Expected dx %v, got %v", tt.dx, got)
			}
			if got := s.Position().Y - before.Y; got != constants.StartingSpeed {
				t.Errorf("Expected dy %v, got %v", constants.StartingSpeed, got)
			}
		})
	}
}

func TestJumpLandsOnFinalFrame(t *testing.T) {
	s := newTestSkier()
	s.TurnRight()
	s.JumpStart()

	ticksPerFrame := int(s.Speed()) + 1
	lastFrame := len(sprite.JumpFrames) - 1

	// Every frame before the last is shown in turn
	for frame := 0; frame < lastFrame; frame++ {
		if got := s.JumpState().FrameIndex; got != frame {
			t.Fatalf("Expected frame %d, got %d", frame, got)
		}
		if s.Sprite() != sprite.JumpFrames[frame] {
			t.Fatalf("Expected sprite %s, got %s", sprite.JumpFrames[frame], s.Sprite())
		}
		for i := 0; i < ticksPerFrame; i++ {
			s.Move()
		}
	}

	// Reaching the final frame lands the skier when Move refreshes the sprite
	if s.IsJumping() {
		t.Fatal("Expected the jump to end on the final frame")
	}
	if s.Direction() != RightDown {
		t.Errorf("Expected landing facing right-down, got %s", s.Direction())
	}
	if s.Sprite() != sprite.SkierRightDown {
		t.Errorf("Expected sprite %s, got %s", sprite.SkierRightDown, s.Sprite())
	}
	wantScore := lastFrame * ticksPerFrame * constants.JumpScoreBonus
	if s.Score() != wantScore {
		t.Errorf("Expected score %d, got %d", wantScore, s.Score())
	}
}

func TestJumpAssetEndsJumpOnlyOnFinalFrame(t *testing.T) {
	s := newTestSkier()
	s.JumpStart()

	s.jump.frame = 2
	if got := s.JumpAsset(); got != sprite.SkierJump3 {
		t.Errorf("Expected %s, got %s", sprite.SkierJump3, got)
	}
	if !s.IsJumping() {
		t.Error("Expected jump to continue before the final frame")
	}

	s.jump.frame = len(sprite.JumpFrames) - 1
	if got := s.JumpAsset(); got != sprite.SkierJump5 {
		t.Errorf("Expected %s, got %s", sprite.SkierJump5, got)
	}
	if s.IsJumping() {
		t.Error("Expected final frame request to end the jump")
	}
}

func TestCanJump(t *testing.T) {
	tests := []struct {
		kind    sprite.Name
		jumping bool
		want    bool
	}{
		{sprite.Rock1, true, true},
		{sprite.Rock2, true, true},
		{sprite.JumpRamp, true, true},
		{sprite.Tree, true, false},
		{sprite.TreeCluster, true, false},
		{sprite.Rock1, false, false},
		{sprite.JumpRamp, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := newTestSkier()
			if tt.jumping {
				s.JumpStart()
			}
			if got := s.CanJump(obstacleAt(1, 0, 0, tt.kind)); got != tt.want {
				t.Errorf("Expected CanJump=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsJumpRamp(t *testing.T) {
	s := newTestSkier()

	if !s.IsJumpRamp(obstacleAt(1, 0, 0, sprite.JumpRamp)) {
		t.Error("Expected jump ramp to be recognized")
	}
	if s.IsJumpRamp(obstacleAt(2, 0, 0, sprite.Rock1)) {
		t.Error("Expected rock not to be a jump ramp")
	}
}
