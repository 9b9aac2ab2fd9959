// Package sprite holds the glyph art drawn for every entity and resolves sprite sizes in world
// units for hit-box computation.
package sprite

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ski-rush/constants"
)

// Name identifies a sprite
type Name string

// Skier sprites
const (
	SkierCrash     Name = "skierCrash"
	SkierLeft      Name = "skierLeft"
	SkierLeftDown  Name = "skierLeftDown"
	SkierDown      Name = "skierDown"
	SkierRightDown Name = "skierRightDown"
	SkierRight     Name = "skierRight"
	SkierJump1     Name = "skierJump1"
	SkierJump2     Name = "skierJump2"
	SkierJump3     Name = "skierJump3"
	SkierJump4     Name = "skierJump4"
	SkierJump5     Name = "skierJump5"
)

// Obstacle sprites
const (
	Tree        Name = "tree"
	TreeCluster Name = "treeCluster"
	Rock1       Name = "rock1"
	Rock2       Name = "rock2"
	JumpRamp    Name = "jumpRamp"
)

// Rhino sprites
const (
	Rhino           Name = "rhino"
	RhinoRun1       Name = "rhinoRun1"
	RhinoRun2       Name = "rhinoRun2"
	RhinoEat1       Name = "rhinoEat1"
	RhinoEat2       Name = "rhinoEat2"
	RhinoEat3       Name = "rhinoEat3"
	RhinoEat4       Name = "rhinoEat4"
	RhinoCelebrate1 Name = "rhinoCelebrate1"
	RhinoCelebrate2 Name = "rhinoCelebrate2"
)

// JumpFrames is the jump animation sequence, in playback order
var JumpFrames = [constants.JumpFrameCount]Name{
	SkierJump1, SkierJump2, SkierJump3, SkierJump4, SkierJump5,
}

// SizeSource resolves the world size of a sprite; ok is false when the sprite is unknown
type SizeSource interface {
	Size(name Name) (w, h float64, ok bool)
}

// Sprite is multi-row glyph art; spaces are transparent
type Sprite struct {
	Rows  []string
	Style tcell.Style
}

// Cols returns the widest row in runes
func (s Sprite) Cols() int {
	cols := 0
	for _, row := range s.Rows {
		if n := utf8.RuneCountInString(row); n > cols {
			cols = n
		}
	}
	return cols
}

// Lines returns the number of rows
func (s Sprite) Lines() int {
	return len(s.Rows)
}
