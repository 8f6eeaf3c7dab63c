package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/armageddon/obj"
	"github.com/milk9111/armageddon/system"
)

const hudRows = 2

// viewport maps field pixels onto terminal cells.
type viewport struct {
	fieldW, fieldH float64
	cols, rows     int
}

func newViewport(fieldW, fieldH float64, cols, rows int) viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return viewport{fieldW: fieldW, fieldH: fieldH, cols: cols, rows: rows}
}

// cell returns the terminal cell containing field point (x, y) and
// whether it lies on screen.
func (v viewport) cell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 || x >= v.fieldW || y >= v.fieldH {
		return 0, 0, false
	}
	cx := int(x * float64(v.cols) / v.fieldW)
	cy := int(y * float64(v.rows) / v.fieldH)
	return cx, cy, true
}

// cells returns the cell rectangle covered by a w x h sprite at (x, y),
// clipped to the screen. Every on-screen sprite covers at least one cell.
func (v viewport) cells(x, y, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	left, top := max(x, 0), max(y, 0)
	right, bottom := min(x+w, v.fieldW), min(y+h, v.fieldH)
	if left >= right || top >= bottom {
		return 0, 0, 0, 0, false
	}
	x0 = int(left * float64(v.cols) / v.fieldW)
	y0 = int(top * float64(v.rows) / v.fieldH)
	x1 = max(int(right*float64(v.cols)/v.fieldW), x0+1)
	y1 = max(int(bottom*float64(v.rows)/v.fieldH), y0+1)
	return x0, y0, min(x1, v.cols), min(y1, v.rows), true
}

var kindGlyphs = map[obj.Kind]struct {
	r     rune
	color tcell.Color
}{
	obj.KindSatan:     {'S', tcell.ColorRed},
	obj.KindJudas:     {'J', tcell.ColorYellow},
	obj.KindCenturion: {'C', tcell.ColorSilver},
}

func (g *Game) draw() {
	g.screen.Clear()
	w := g.world

	for _, e := range w.Enemies {
		glyph := kindGlyphs[e.Kind]
		g.fill(e.X, e.Y, e.Width(), e.Height(), glyph.r, tcell.StyleDefault.Foreground(glyph.color))
		g.drawShots(e.Shots, '!', tcell.StyleDefault.Foreground(tcell.ColorOrange))
	}
	p := w.Player
	g.fill(p.X, p.Y, p.Width(), p.Height(), 'A', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	g.drawShots(p.Shots, '|', tcell.StyleDefault.Foreground(tcell.ColorLightYellow))

	status := fmt.Sprintf("LEVEL: %d  RESURRECTIONS: %d  HEALTH: %d/%d", w.Level, w.Resurrections, p.Health.Current, p.MaxHealth())
	g.text(0, g.view.rows, status, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	if w.State() == system.StateLost {
		g.text(g.view.cols/2-4, g.view.rows/2, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true))
	} else {
		g.text(0, g.view.rows+1, "move: arrows/wasd  fire: space  quit: q", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	g.screen.Show()
}

func (g *Game) drawShots(shots []*obj.Projectile, r rune, style tcell.Style) {
	for _, s := range shots {
		if cx, cy, ok := g.view.cell(s.X, s.Y); ok {
			g.screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func (g *Game) fill(x, y, w, h float64, r rune, style tcell.Style) {
	x0, y0, x1, y1, ok := g.view.cells(x, y, w, h)
	if !ok {
		return
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			g.screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func (g *Game) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}
