// Package game runs one ski session: it scrolls the view with the skier, feeds the obstacle field,
// drives the rhino, tracks score and level, and maps bound keys to actions.
package game

import (
	"log"
	"time"

	"github.com/lixenwraith/ski-rush/config"
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/entity"
	"github.com/lixenwraith/ski-rush/obstacle"
	"github.com/lixenwraith/ski-rush/render"
	"github.com/lixenwraith/ski-rush/rhino"
	"github.com/lixenwraith/ski-rush/skier"
	"github.com/lixenwraith/ski-rush/sprite"
	"github.com/lixenwraith/ski-rush/vmath"
	"github.com/samber/lo"
)

// State is the session phase
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// SoundPlayer plays the game's sound effects
type SoundPlayer interface {
	PlayCrash()
	PlayJump()
	PlayDeath()
	PlayLevelUp()
}

// Canvas is the drawing surface a frame is rendered onto
type Canvas interface {
	entity.Canvas
	SetDrawOffset(x, y float64)
	DrawHUD(st render.Status)
	DrawBanner(text string)
}

// skierKeys maps movement actions to skier input keys
var skierKeys = map[string]string{
	config.ActionLeft:  skier.KeyLeft,
	config.ActionRight: skier.KeyRight,
	config.ActionUp:    skier.KeyUp,
	config.ActionDown:  skier.KeyDown,
	config.ActionJump:  skier.KeyJump,
}

// Game owns every entity of a session
// Not safe for concurrent use; the main loop owns it
type Game struct {
	seed      string
	levelStep int
	keys      map[string]string
	sizes     sprite.SizeSource
	sounds    SoundPlayer
	muted     bool

	skier *skier.Skier
	field *obstacle.Field
	rhino *rhino.Rhino

	state State
	level int

	viewW, viewH float64
	window       vmath.Rect

	// Ramps already scored on the current run, by obstacle id
	rampsCleared map[uint64]bool
}

// New creates a session sized to a viewport of width x height world units
// A nil sounds player runs silent
func New(cfg *config.Config, sizes sprite.SizeSource, sounds SoundPlayer, width, height float64) *Game {
	g := &Game{
		seed:      cfg.Seed,
		levelStep: max(cfg.LevelStep, 1),
		keys:      cfg.KeyActions(),
		sizes:     sizes,
		sounds:    sounds,
		muted:     sounds == nil,
		viewW:     width,
		viewH:     height,
	}
	g.reset()
	return g
}

// reset builds a fresh run
func (g *Game) reset() {
	g.field = obstacle.NewField(g.seed, g.sizes)
	g.skier = skier.New(0, 0, g.sizes, g.field)
	g.rhino = rhino.New(constants.RhinoStartX, constants.RhinoStartY, g.sizes)
	g.state = StatePlaying
	g.level = 1
	g.rampsCleared = make(map[uint64]bool)

	g.window = g.calculateWindow()
	g.field.PlaceInitial(g.window)
}

// Skier returns the player entity
func (g *Game) Skier() *skier.Skier { return g.skier }

// Rhino returns the chaser
func (g *Game) Rhino() *rhino.Rhino { return g.rhino }

// Field returns the obstacle field
func (g *Game) Field() *obstacle.Field { return g.field }

// State returns the session phase
func (g *Game) State() State { return g.state }

// Level returns the difficulty level
func (g *Game) Level() int { return g.level }

// Window returns the world rectangle currently in view
func (g *Game) Window() vmath.Rect { return g.window }

// Status summarizes the session for the status bar
func (g *Game) Status() render.Status {
	return render.Status{
		State: g.state.String(),
		Score: g.skier.Score(),
		Lives: g.skier.Lives(),
		Level: g.level,
		Muted: g.muted,
	}
}

// Resize changes the viewport size and recenters the window
func (g *Game) Resize(width, height float64) {
	g.viewW, g.viewH = width, height
	g.window = g.calculateWindow()
}

// Tick advances the session by one game update; now paces the rhino animations
// After game over only the rhino keeps animating
func (g *Game) Tick(now time.Time) {
	switch g.state {
	case StatePaused:
		return
	case StateGameOver:
		g.rhino.Update(now, g.skier)
		return
	}

	previous := g.window
	g.window = g.calculateWindow()
	g.field.PlaceNew(g.window, previous, g.level)
	if n := g.field.Recycle(g.window); n > 0 {
		g.pruneRamps()
	}

	wasCrashed := g.skier.IsCrashed()
	g.skier.Update()
	g.rhino.Update(now, g.skier)

	if g.skier.IsCrashed() && !wasCrashed {
		id, _ := g.skier.LastCollidedObstacle()
		log.Printf("Skier crashed into obstacle %d, %d lives left", id, g.skier.Lives())
		g.play(SoundPlayer.PlayCrash)
	}

	g.scoreRamps()
	g.updateLevel()

	if g.skier.IsDead() {
		g.state = StateGameOver
		log.Printf("Game over: score %d, level %d", g.skier.Score(), g.level)
		g.play(SoundPlayer.PlayDeath)
	}
}

// HandleKey dispatches a key name and reports whether it was consumed and whether to quit
func (g *Game) HandleKey(name string) (handled, quit bool) {
	action, ok := g.keys[name]
	if !ok {
		return false, false
	}

	switch action {
	case config.ActionQuit:
		return true, true
	case config.ActionRestart:
		g.Restart()
		return true, false
	case config.ActionPause:
		g.TogglePause()
		return true, false
	}

	if g.state != StatePlaying {
		return false, false
	}

	airborne := g.skier.IsJumping()
	handled = g.skier.HandleInput(skierKeys[action])
	if action == config.ActionJump && !airborne && g.skier.IsJumping() {
		g.play(SoundPlayer.PlayJump)
	}
	return handled, false
}

// Restart begins a new run; only a finished game can be restarted
func (g *Game) Restart() {
	if g.state != StateGameOver {
		return
	}
	g.reset()
	log.Printf("Game restarted")
}

// TogglePause switches between playing and paused; a finished game stays over
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	default:
		return
	}
	log.Printf("Game %s", g.state)
}

// Draw renders the view onto c
func (g *Game) Draw(c Canvas) {
	c.SetDrawOffset(g.window.Left, g.window.Top)

	for _, d := range g.drawables() {
		// Entities without bounds are drawn unculled
		if r, ok := d.Bounds(); ok && !vmath.Intersects(r, g.window) {
			continue
		}
		d.Draw(c)
	}

	c.DrawHUD(g.Status())

	switch g.state {
	case StatePaused:
		c.DrawBanner("PAUSED")
	case StateGameOver:
		c.DrawBanner("GAME OVER - press r to restart")
	}
}

// drawables lists everything on the slope in draw order
func (g *Game) drawables() []entity.Drawable {
	obstacles := g.field.List()
	list := make([]entity.Drawable, 0, 2+len(obstacles))
	list = append(list, g.skier, g.rhino)
	for _, o := range obstacles {
		list = append(list, o)
	}
	return list
}

// calculateWindow centers the view on the skier
func (g *Game) calculateWindow() vmath.Rect {
	p := g.skier.Position()
	left := p.X - g.viewW/2
	top := p.Y - g.viewH/2
	return vmath.NewRect(left, top, left+g.viewW, top+g.viewH)
}

// scoreRamps awards the ramp bonus once for every ramp the airborne skier passes over
func (g *Game) scoreRamps() {
	if !g.skier.IsJumping() {
		return
	}
	bounds, ok := g.skier.Bounds()
	if !ok {
		return
	}

	ramps := lo.Filter(g.field.List(), func(o *obstacle.Obstacle, _ int) bool {
		if !g.skier.IsJumpRamp(o) || g.rampsCleared[o.ID()] {
			return false
		}
		r, ok := o.Bounds()
		return ok && vmath.Intersects(bounds, r)
	})

	for _, o := range ramps {
		g.rampsCleared[o.ID()] = true
		g.skier.AddScore(constants.RampBonus)
	}
}

// pruneRamps forgets recycled ramps
func (g *Game) pruneRamps() {
	for id := range g.rampsCleared {
		if _, ok := g.field.Get(id); !ok {
			delete(g.rampsCleared, id)
		}
	}
}

// updateLevel derives the level from the score and scales both speeds to it
func (g *Game) updateLevel() {
	level := 1 + g.skier.Score()/g.levelStep
	if level > g.level {
		log.Printf("Level %d reached at score %d", level, g.skier.Score())
		g.play(SoundPlayer.PlayLevelUp)
	}
	g.level = level

	speed := constants.StartingSpeed + float64(g.level-1)*constants.SpeedPerLevel
	g.skier.SetSpeed(speed)
	g.rhino.SetSpeed(speed)
}

func (g *Game) play(sound func(SoundPlayer)) {
	if g.sounds == nil {
		return
	}
	sound(g.sounds)
}
