package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Status is the game summary shown in the status bar
type Status struct {
	State string
	Score int
	Lives int
	Level int
	Muted bool
}

// DrawHUD draws the status bar on the bottom row
func (c *Canvas) DrawHUD(st Status) {
	width, height := c.screen.Size()
	if height <= 0 {
		return
	}
	y := height - 1

	defaultStyle := tcell.StyleDefault.Background(RgbStatusBar)

	// Clear status bar
	for x := 0; x < width; x++ {
		c.screen.SetContent(x, y, ' ', nil, defaultStyle)
	}

	x := 0
	stateStyle := defaultStyle.Foreground(tcell.ColorBlack).Background(stateColor(st.State))
	x = c.drawText(x, y, width, " "+strings.ToUpper(st.State)+" ", stateStyle)
	x++

	x = c.drawText(x, y, width, fmt.Sprintf("SCORE %d", st.Score), defaultStyle.Foreground(RgbScore))
	x += 2

	x = c.drawText(x, y, width, "LIVES ", defaultStyle.Foreground(RgbStatusText))
	x = c.drawText(x, y, width, strings.Repeat("♥", max(st.Lives, 0)), defaultStyle.Foreground(RgbLives))
	x += 2

	x = c.drawText(x, y, width, fmt.Sprintf("LEVEL %d", st.Level), defaultStyle.Foreground(RgbLevel))

	if st.Muted {
		x += 2
		c.drawText(x, y, width, "MUTED", defaultStyle.Foreground(RgbStatusText))
	}
}

// DrawBanner draws a centered message across the middle of the playfield
func (c *Canvas) DrawBanner(text string) {
	cols, rows := c.playfield()
	if rows <= 0 || text == "" {
		return
	}

	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)
	padded := " " + text + " "
	x := (cols - len([]rune(padded))) / 2
	c.drawText(max(x, 0), rows/2, cols, padded, style)
}

// drawText writes text from column x, clipped at width, and returns the column after it
func (c *Canvas) drawText(x, y, width int, text string, style tcell.Style) int {
	for _, r := range text {
		if x >= width {
			return x
		}
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
