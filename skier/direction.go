package skier

import "github.com/lixenwraith/ski-rush/sprite"

// Direction is the skier facing, ordered left to right so a turn is a single step
type Direction int

const (
	Left Direction = iota
	LeftDown
	Down
	RightDown
	Right
	// Jump is only reported while a jump is active; turning never reaches it
	Jump
)

var directionNames = [...]string{
	Left:      "left",
	LeftDown:  "left-down",
	Down:      "down",
	RightDown: "right-down",
	Right:     "right",
	Jump:      "jump",
}

func (d Direction) String() string {
	if d < Left || d > Jump {
		return "unknown"
	}
	return directionNames[d]
}

// directionSprites maps every ground facing to its sprite; Jump resolves through the jump animation
var directionSprites = [...]sprite.Name{
	Left:      sprite.SkierLeft,
	LeftDown:  sprite.SkierLeftDown,
	Down:      sprite.SkierDown,
	RightDown: sprite.SkierRightDown,
	Right:     sprite.SkierRight,
}

func directionSprite(d Direction) sprite.Name {
	if d < Left || d > Right {
		return sprite.SkierDown
	}
	return directionSprites[d]
}

// State is the skier lifecycle
type State int

const (
	StateSkiing State = iota
	StateCrashed
	StateDead
)

func (s State) String() string {
	switch s {
	case StateSkiing:
		return "skiing"
	case StateCrashed:
		return "crashed"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
