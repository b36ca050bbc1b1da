package firewall

import (
	"fmt"

	"github.com/vovakirdan/firewall/internal/core"
)

// CellWidth is how many screen columns one grid cell occupies. Terminal
// cells are about twice as tall as wide, so two columns keep the board square.
const CellWidth = 2

// Palette.
const (
	colorBackground = core.ColorDarkGray
	colorPlayer     = core.ColorCyan
	colorThreat     = core.ColorRed
	colorBoss       = core.ColorMagenta
	colorProjectile = core.ColorYellow
	colorShield     = core.ColorGreen
	colorFlash      = core.ColorRed
	colorFrame      = core.ColorGray
	colorText       = core.ColorWhite
)

// glyph is the pair of runes drawn for one grid cell.
type glyph [CellWidth]rune

var (
	glyphEmpty      = glyph{' ', ' '}
	glyphPlayer     = glyph{'/', '\\'}
	glyphThreat     = glyph{'▓', '▓'}
	glyphBoss       = glyph{'█', '█'}
	glyphProjectile = glyph{'|', '|'}
	glyphPowerUp    = glyph{'+', '+'}
)

// BoardRect returns the framed board area on a screen of the given size,
// centered with room for the status line below it.
func (e *Engine) BoardRect(screenW, screenH int) core.Rect {
	w := e.params.Width*CellWidth + 2
	h := e.params.Height + 2
	return core.NewRect(max((screenW-w)/2, 0), max((screenH-h-2)/2, 0), w, h)
}

// Render paints the current state onto dst: the framed board and the status
// line beneath it.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()
	box := e.BoardRect(dst.Width(), dst.Height())

	switch e.machine.Current() {
	case StateTitle:
		e.renderTitle(dst, box)
	case StatePlaying:
		e.renderPlaying(dst, box)
	case StateGameOver:
		e.renderGameOver(dst, box)
	}

	dst.DrawBox(box, colorFrame)
	dst.DrawTextCentered(box.Bottom(), e.StatusText(), colorText)
}

func (e *Engine) renderTitle(dst *core.Screen, box core.Rect) {
	e.fillBoard(dst, box, core.ColorBlack)

	row := min(6, e.params.Height-1)
	x := box.X + 1 + (box.W-2-len(TitleText)*CellWidth)/2
	for i, r := range TitleText {
		dst.SetCell(x+i*CellWidth, box.Y+1+row, core.Cell{Rune: r, Fg: colorPlayer, Bg: core.ColorBlack})
	}
}

func (e *Engine) renderPlaying(dst *core.Screen, box core.Rect) {
	bg := colorBackground
	if e.flash.Pending() {
		bg = colorFlash
	}
	e.fillBoard(dst, box, bg)

	for _, t := range e.store.threats {
		if t.dead {
			continue
		}
		if t.IsBoss {
			e.paint(dst, box, t.X, t.Y, glyphBoss, colorBoss, bg)
		} else {
			e.paint(dst, box, t.X, t.Y, glyphThreat, colorThreat, bg)
		}
	}
	for _, p := range e.store.projectiles {
		if !p.dead {
			e.paint(dst, box, p.X, p.Y, glyphProjectile, colorProjectile, bg)
		}
	}
	for _, p := range e.store.powerUps {
		if !p.dead {
			e.paint(dst, box, p.X, p.Y, glyphPowerUp, colorShield, bg)
		}
	}

	player := colorPlayer
	if e.session.ShieldActive {
		player = colorShield
	}
	e.paint(dst, box, e.session.PlayerX, e.params.PlayerRow(), glyphPlayer, player, bg)
}

func (e *Engine) renderGameOver(dst *core.Screen, box core.Rect) {
	e.fillBoard(dst, box, core.ColorBlack)

	mid := box.Y + box.H/2
	e.centerInBox(dst, box, mid-1, "SYSTEM FAILURE", colorFlash)
	e.centerInBox(dst, box, mid+1, fmt.Sprintf("Score: %d", e.session.Score), colorText)
}

// fillBoard paints every grid cell blank on bg.
func (e *Engine) fillBoard(dst *core.Screen, box core.Rect, bg core.Color) {
	for y := range e.params.Height {
		for x := range e.params.Width {
			e.paint(dst, box, x, y, glyphEmpty, core.ColorDefault, bg)
		}
	}
}

// paint draws g at grid cell (x, y).
func (e *Engine) paint(dst *core.Screen, box core.Rect, x, y int, g glyph, fg, bg core.Color) {
	sx := box.X + 1 + x*CellWidth
	sy := box.Y + 1 + y
	for i, r := range g {
		dst.SetCell(sx+i, sy, core.Cell{Rune: r, Fg: fg, Bg: bg})
	}
}

// centerInBox writes text centered inside the frame, keeping the board's
// background under it.
func (e *Engine) centerInBox(dst *core.Screen, box core.Rect, y int, text string, fg core.Color) {
	runes := []rune(text)
	x := box.X + (box.W-len(runes))/2
	for i, r := range runes {
		c := dst.GetCell(x+i, y)
		c.Rune = r
		c.Fg = fg
		dst.SetCell(x+i, y, c)
	}
}
