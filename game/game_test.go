package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/ski-rush/config"
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/render"
	"github.com/lixenwraith/ski-rush/rhino"
	"github.com/lixenwraith/ski-rush/sprite"
)

const (
	testWidth  = 640.0
	testHeight = 384.0
)

type recordingSounds struct {
	crashes, jumps, deaths, levelUps int
}

func (r *recordingSounds) PlayCrash()   { r.crashes++ }
func (r *recordingSounds) PlayJump()    { r.jumps++ }
func (r *recordingSounds) PlayDeath()   { r.deaths++ }
func (r *recordingSounds) PlayLevelUp() { r.levelUps++ }

type recordingCanvas struct {
	offsetX, offsetY float64
	sprites          []sprite.Name
	status           render.Status
	banner           string
}

func (c *recordingCanvas) DrawSprite(name sprite.Name, x, y float64) {
	c.sprites = append(c.sprites, name)
}
func (c *recordingCanvas) SetDrawOffset(x, y float64) { c.offsetX, c.offsetY = x, y }
func (c *recordingCanvas) DrawHUD(st render.Status)   { c.status = st }
func (c *recordingCanvas) DrawBanner(text string)     { c.banner = text }

func newTestGame(t *testing.T) (*Game, *recordingSounds) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = "test-slope"
	sounds := &recordingSounds{}
	return New(cfg, sprite.DefaultCatalog(), sounds, testWidth, testHeight), sounds
}

// TestNewGame verifies the opening state of a session
func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t)

	if g.State() != StatePlaying {
		t.Errorf("Expected playing, got %s", g.State())
	}
	if g.Level() != 1 {
		t.Errorf("Expected level 1, got %d", g.Level())
	}
	if g.Field().Len() == 0 {
		t.Error("Expected initial obstacles")
	}

	w := g.Window()
	if w.Left != -testWidth/2 || w.Top != -testHeight/2 {
		t.Errorf("Expected window centered on skier, got %+v", w)
	}
	if p := g.Rhino().Position(); p.X != constants.RhinoStartX || p.Y != constants.RhinoStartY {
		t.Errorf("Expected rhino at start, got %+v", p)
	}
}

func TestTickMovesSkierAndWindow(t *testing.T) {
	g, _ := newTestGame(t)
	now := time.Now()

	g.Tick(now)
	before := g.Skier().Position()
	if before.Y != constants.StartingSpeed {
		t.Fatalf("Expected skier at y %v, got %v", constants.StartingSpeed, before.Y)
	}

	g.Tick(now.Add(constants.GameUpdateInterval))
	if got := g.Window().Top; got != before.Y-testHeight/2 {
		t.Errorf("Expected window top %v, got %v", before.Y-testHeight/2, got)
	}
}

func TestPauseToggle(t *testing.T) {
	g, _ := newTestGame(t)

	if handled, quit := g.HandleKey("p"); !handled || quit {
		t.Fatalf("Expected pause handled without quit, got %v %v", handled, quit)
	}
	if g.State() != StatePaused {
		t.Fatalf("Expected paused, got %s", g.State())
	}

	g.Tick(time.Now())
	if g.Skier().Position().Y != 0 {
		t.Error("Expected no movement while paused")
	}

	if handled, _ := g.HandleKey("ArrowLeft"); handled {
		t.Error("Expected skier input ignored while paused")
	}
	if g.Skier().Direction().String() != "down" {
		t.Errorf("Expected facing unchanged, got %s", g.Skier().Direction())
	}

	g.HandleKey("p")
	if g.State() != StatePlaying {
		t.Errorf("Expected playing after resume, got %s", g.State())
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key         string
		wantHandled bool
		wantQuit    bool
	}{
		{"q", true, true},
		{"Esc", true, true},
		{"Ctrl+C", true, true},
		{"ArrowLeft", true, false},
		{"h", true, false},
		{"r", true, false},
		{"z", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			g, _ := newTestGame(t)
			handled, quit := g.HandleKey(tt.key)
			if handled != tt.wantHandled || quit != tt.wantQuit {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wantHandled, tt.wantQuit, handled, quit)
			}
		})
	}
}

func TestJumpKeyPlaysSound(t *testing.T) {
	g, sounds := newTestGame(t)

	if handled, _ := g.HandleKey(" "); !handled {
		t.Fatal("Expected jump key handled")
	}
	if !g.Skier().IsJumping() {
		t.Error("Expected skier jumping")
	}
	if sounds.jumps != 1 {
		t.Errorf("Expected 1 jump sound, got %d", sounds.jumps)
	}

	// A mid-air press restarts the animation without another take-off sound
	if handled, _ := g.HandleKey(" "); !handled {
		t.Fatal("Expected mid-air jump key handled")
	}
	if sounds.jumps != 1 {
		t.Errorf("Expected jump sound only on take-off, got %d", sounds.jumps)
	}
}

func TestRhinoAnimatesAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t)

	// Facing fully left the skier stands still and waits for the rhino
	g.HandleKey("ArrowLeft")
	g.HandleKey("ArrowLeft")

	now := time.Now()
	for i := 0; i < 1000 && g.State() != StateGameOver; i++ {
		now = now.Add(constants.GameUpdateInterval)
		g.Tick(now)
	}
	if g.State() != StateGameOver {
		t.Fatalf("Expected the rhino to catch the skier, rhino at %+v", g.Rhino().Position())
	}
	if g.Rhino().State() != rhino.StateEating {
		t.Fatalf("Expected rhino eating at game over, got %s", g.Rhino().State())
	}

	seen := make(map[sprite.Name]bool)
	for i := 0; i < 40; i++ {
		now = now.Add(constants.GameUpdateInterval)
		g.Tick(now)
		seen[g.Rhino().Sprite()] = true
	}

	for _, want := range []sprite.Name{
		sprite.RhinoEat2, sprite.RhinoEat3, sprite.RhinoEat4,
		sprite.RhinoCelebrate1, sprite.RhinoCelebrate2,
	} {
		if !seen[want] {
			t.Errorf("Expected frame %s after game over, saw %v", want, seen)
		}
	}
	if g.Rhino().State() != rhino.StateCelebrating {
		t.Errorf("Expected rhino celebrating, got %s", g.Rhino().State())
	}
}

func TestPausedRhinoHolds(t *testing.T) {
	g, _ := newTestGame(t)
	g.TogglePause()
	before := g.Rhino().Position()

	g.Tick(time.Now())

	if g.Rhino().Position() != before {
		t.Errorf("Expected rhino frozen while paused, got %+v", g.Rhino().Position())
	}
}

func TestCrashPlaysSound(t *testing.T) {
	g, sounds := newTestGame(t)
	tree := g.Field().Add(sprite.Tree, 0, 20)

	g.Tick(time.Now())

	if !g.Skier().IsCrashed() {
		t.Fatal("Expected skier crashed into tree")
	}
	if id, ok := g.Skier().LastCollidedObstacle(); !ok || id != tree.ID() {
		t.Errorf("Expected last collided %d, got %d (%v)", tree.ID(), id, ok)
	}
	if sounds.crashes != 1 {
		t.Errorf("Expected 1 crash sound, got %d", sounds.crashes)
	}
	if g.Skier().Lives() != constants.StartingLives-1 {
		t.Errorf("Expected %d lives, got %d", constants.StartingLives-1, g.Skier().Lives())
	}

	// Staying crashed does not replay the sound
	g.Tick(time.Now())
	if sounds.crashes != 1 {
		t.Errorf("Expected crash sound once, got %d", sounds.crashes)
	}
}

func TestRampBonusOncePerRamp(t *testing.T) {
	g, _ := newTestGame(t)
	g.Field().Add(sprite.JumpRamp, 0, 10)

	g.HandleKey(" ")
	g.Tick(time.Now())

	want := constants.JumpScoreBonus + constants.RampBonus
	if got := g.Skier().Score(); got != want {
		t.Fatalf("Expected score %d, got %d", want, got)
	}

	g.Tick(time.Now())
	if got := g.Skier().Score(); got > want+constants.JumpScoreBonus {
		t.Errorf("Expected ramp scored once, got score %d", got)
	}
}

func TestLevelFromScore(t *testing.T) {
	g, sounds := newTestGame(t)

	g.Skier().AddScore(250)
	g.Tick(time.Now())

	if g.Level() != 3 {
		t.Errorf("Expected level 3, got %d", g.Level())
	}
	if sounds.levelUps != 1 {
		t.Errorf("Expected 1 level-up sound, got %d", sounds.levelUps)
	}

	wantSpeed := constants.StartingSpeed + 2*constants.SpeedPerLevel
	if g.Skier().Speed() != wantSpeed {
		t.Errorf("Expected skier speed %v, got %v", wantSpeed, g.Skier().Speed())
	}
	if g.Rhino().Speed() != wantSpeed {
		t.Errorf("Expected rhino speed %v, got %v", wantSpeed, g.Rhino().Speed())
	}

	g.Tick(time.Now())
	if sounds.levelUps != 1 {
		t.Errorf("Expected no repeated level-up sound, got %d", sounds.levelUps)
	}
}

func TestLevelStaysAtOneWithoutScore(t *testing.T) {
	g, sounds := newTestGame(t)

	for i := 0; i < 3; i++ {
		g.Tick(time.Now())
	}

	if g.Level() != 1 {
		t.Errorf("Expected level 1, got %d", g.Level())
	}
	if sounds.levelUps != 0 {
		t.Errorf("Expected no level-up sound, got %d", sounds.levelUps)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, sounds := newTestGame(t)
	first := g.Skier()

	// Restart is ignored while playing
	g.HandleKey("r")
	if g.Skier() != first {
		t.Fatal("Expected restart ignored while playing")
	}

	first.Die()
	g.Tick(time.Now())

	if g.State() != StateGameOver {
		t.Fatalf("Expected game over, got %s", g.State())
	}
	if sounds.deaths != 1 {
		t.Errorf("Expected 1 death sound, got %d", sounds.deaths)
	}
	if g.Rhino().State() != rhino.StateCelebrating {
		t.Errorf("Expected rhino celebrating, got %s", g.Rhino().State())
	}

	// Pause cannot leave game over
	g.HandleKey("p")
	if g.State() != StateGameOver {
		t.Errorf("Expected game over to persist, got %s", g.State())
	}

	g.Tick(time.Now())
	if sounds.deaths != 1 {
		t.Errorf("Expected death sound once, got %d", sounds.deaths)
	}

	g.HandleKey("r")
	if g.State() != StatePlaying {
		t.Errorf("Expected playing after restart, got %s", g.State())
	}
	if g.Skier() == first {
		t.Error("Expected a fresh skier")
	}
	if g.Skier().Lives() != constants.StartingLives || g.Level() != 1 {
		t.Errorf("Expected fresh run, got lives %d level %d", g.Skier().Lives(), g.Level())
	}
	if g.Field().Len() == 0 {
		t.Error("Expected obstacles placed on restart")
	}
}

func TestDraw(t *testing.T) {
	g, _ := newTestGame(t)
	c := &recordingCanvas{}

	g.Draw(c)

	w := g.Window()
	if c.offsetX != w.Left || c.offsetY != w.Top {
		t.Errorf("Expected offset %v,%v, got %v,%v", w.Left, w.Top, c.offsetX, c.offsetY)
	}
	if len(c.sprites) == 0 || c.sprites[0] != sprite.SkierDown {
		t.Fatalf("Expected skier drawn first, got %v", c.sprites)
	}
	if len(c.sprites) > 1+g.Field().Len() {
		t.Errorf("Expected at most %d sprites, got %d", 1+g.Field().Len(), len(c.sprites))
	}
	for _, name := range c.sprites {
		if name == sprite.Rhino {
			t.Error("Expected off-screen rhino culled")
		}
	}
	if c.status.State != "playing" || c.status.Lives != constants.StartingLives || c.status.Level != 1 {
		t.Errorf("Expected opening status, got %+v", c.status)
	}
	if c.banner != "" {
		t.Errorf("Expected no banner while playing, got %q", c.banner)
	}

	g.TogglePause()
	g.Draw(c)
	if c.banner != "PAUSED" {
		t.Errorf("Expected PAUSED banner, got %q", c.banner)
	}
}

func TestSilentGame(t *testing.T) {
	g := New(config.Default(), sprite.DefaultCatalog(), nil, testWidth, testHeight)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Silent game panicked: %v", r)
		}
	}()

	g.HandleKey(" ")
	g.Skier().AddScore(500)
	g.Tick(time.Now())

	if !g.Status().Muted {
		t.Error("Expected muted status without a sound player")
	}
}
