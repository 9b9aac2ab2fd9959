package sprite

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ski-rush/constants"
)

// Catalog maps sprite names to glyph art
type Catalog struct {
	sprites map[Name]Sprite
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{sprites: make(map[Name]Sprite)}
}

// Register adds or replaces a sprite
func (c *Catalog) Register(name Name, s Sprite) {
	c.sprites[name] = s
}

// Get returns the sprite for name
func (c *Catalog) Get(name Name) (Sprite, bool) {
	s, ok := c.sprites[name]
	return s, ok
}

// Size returns the sprite size in world units
func (c *Catalog) Size(name Name) (w, h float64, ok bool) {
	s, ok := c.sprites[name]
	if !ok || s.Cols() == 0 || s.Lines() == 0 {
		return 0, 0, false
	}
	return float64(s.Cols()) * constants.CellWidth, float64(s.Lines()) * constants.CellHeight, true
}

// DefaultCatalog returns the built-in art for every sprite the game draws
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	skier := tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	airborne := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	crash := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	tree := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	rock := tcell.StyleDefault.Foreground(tcell.ColorGray)
	ramp := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	rhino := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	feeding := tcell.StyleDefault.Foreground(tcell.ColorMaroon)

	c.Register(SkierCrash, Sprite{Rows: []string{"*o*", "/x\\"}, Style: crash})
	c.Register(SkierLeft, Sprite{Rows: []string{"o  ", "<=="}, Style: skier})
	c.Register(SkierLeftDown, Sprite{Rows: []string{" o ", "// "}, Style: skier})
	c.Register(SkierDown, Sprite{Rows: []string{" o ", "| |"}, Style: skier})
	c.Register(SkierRightDown, Sprite{Rows: []string{" o ", " \\\\"}, Style: skier})
	c.Register(SkierRight, Sprite{Rows: []string{"  o", "==>"}, Style: skier})

	c.Register(SkierJump1, Sprite{Rows: []string{" o ", "/_\\"}, Style: airborne})
	c.Register(SkierJump2, Sprite{Rows: []string{"\\o/", " ^ "}, Style: airborne})
	c.Register(SkierJump3, Sprite{Rows: []string{"_o_", " - "}, Style: airborne})
	c.Register(SkierJump4, Sprite{Rows: []string{"\\o/", " v "}, Style: airborne})
	c.Register(SkierJump5, Sprite{Rows: []string{" o ", "/ \\"}, Style: airborne})

	c.Register(Tree, Sprite{Rows: []string{" ^ ", "/^\\", " | "}, Style: tree})
	c.Register(TreeCluster, Sprite{Rows: []string{" ^  ^ ", "/^\\/^\\", " |  | "}, Style: tree})
	c.Register(Rock1, Sprite{Rows: []string{"(@)"}, Style: rock})
	c.Register(Rock2, Sprite{Rows: []string{"(@@)"}, Style: rock})
	c.Register(JumpRamp, Sprite{Rows: []string{" ___", "/___"}, Style: ramp})

	c.Register(Rhino, Sprite{Rows: []string{"  __n", "(____)", " |  |"}, Style: rhino})
	c.Register(RhinoRun1, Sprite{Rows: []string{"n__  ", "(____)", "/  \\ "}, Style: rhino})
	c.Register(RhinoRun2, Sprite{Rows: []string{"n__  ", "(____)", " \\  /"}, Style: rhino})
	c.Register(RhinoEat1, Sprite{Rows: []string{"n__ o", "(____)", " |  |"}, Style: feeding})
	c.Register(RhinoEat2, Sprite{Rows: []string{"n__o ", "(____)", " |  |"}, Style: feeding})
	c.Register(RhinoEat3, Sprite{Rows: []string{"N__  ", "(____)", " |  |"}, Style: feeding})
	c.Register(RhinoEat4, Sprite{Rows: []string{"n__  ", "(___~)", " |  |"}, Style: feeding})
	c.Register(RhinoCelebrate1, Sprite{Rows: []string{"\\n__/", "(____)", " |  |"}, Style: rhino})
	c.Register(RhinoCelebrate2, Sprite{Rows: []string{" n__ ", "(____)", "/    \\"}, Style: rhino})

	return c
}
