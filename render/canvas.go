// Package render draws sprites and the status bar onto a tcell screen, mapping world pixels to
// terminal cells.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/sprite"
)

// Canvas is a world-space drawing surface over a tcell screen
// The bottom HUDRows rows are reserved for the status bar
type Canvas struct {
	screen  tcell.Screen
	sprites *sprite.Catalog

	// World coordinates shown at the top-left cell
	offsetX, offsetY float64

	background tcell.Style
}

// NewCanvas creates a canvas drawing sprites from the catalog
func NewCanvas(screen tcell.Screen, sprites *sprite.Catalog) *Canvas {
	return &Canvas{
		screen:     screen,
		sprites:    sprites,
		background: tcell.StyleDefault.Background(RgbSnow),
	}
}

// SetDrawOffset sets the world coordinates of the top-left corner of the screen
func (c *Canvas) SetDrawOffset(x, y float64) {
	c.offsetX = x
	c.offsetY = y
}

// DrawOffset returns the current world offset
func (c *Canvas) DrawOffset() (x, y float64) {
	return c.offsetX, c.offsetY
}

// ViewportSize returns the playfield size in world units
func (c *Canvas) ViewportSize() (w, h float64) {
	cols, rows := c.playfield()
	return float64(cols) * constants.CellWidth, float64(rows) * constants.CellHeight
}

// Clear fills the screen with the snow background
func (c *Canvas) Clear() {
	c.screen.SetStyle(c.background)
	c.screen.Clear()
}

// Show flushes the frame to the terminal
func (c *Canvas) Show() {
	c.screen.Show()
}

// Sync redraws the whole terminal after a resize
func (c *Canvas) Sync() {
	c.screen.Sync()
}

// DrawSprite draws the named sprite centered on world position x, y
// Spaces are transparent and cells outside the playfield are clipped
func (c *Canvas) DrawSprite(name sprite.Name, x, y float64) {
	s, ok := c.sprites.Get(name)
	if !ok {
		return
	}

	col, row := c.toCell(x, y)
	left := col - s.Cols()/2
	top := row - s.Lines()/2

	cols, rows := c.playfield()
	style := s.Style.Background(RgbSnow)

	for dy, line := range s.Rows {
		sy := top + dy
		if sy < 0 || sy >= rows {
			continue
		}
		dx := 0
		for _, r := range line {
			sx := left + dx
			dx++
			if r == ' ' || sx < 0 || sx >= cols {
				continue
			}
			c.screen.SetContent(sx, sy, r, nil, style)
		}
	}
}

// toCell maps world coordinates to the containing cell
func (c *Canvas) toCell(x, y float64) (col, row int) {
	col = int(math.Floor((x - c.offsetX) / constants.CellWidth))
	row = int(math.Floor((y - c.offsetY) / constants.CellHeight))
	return col, row
}

// playfield returns the drawable area in cells, excluding the status bar
func (c *Canvas) playfield() (cols, rows int) {
	w, h := c.screen.Size()
	return w, max(h-constants.HUDRows, 0)
}
