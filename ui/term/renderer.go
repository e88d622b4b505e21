package term

import (
	"fmt"
	"image/color"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui/layout"

	"github.com/gdamore/tcell/v2"
)

const (
	fieldTop = 2
	block    = '█'
)

type Renderer struct {
	screen tcell.Screen
	ui     tcell.Style
	field  tcell.Style
	snake  tcell.Style
	apple  tcell.Style
}

func NewRenderer(screen tcell.Screen, palette config.Palette) *Renderer {
	window := tcell.StyleDefault.Background(rgb(palette.Window))
	return &Renderer{
		screen: screen,
		ui:     window.Foreground(rgb(palette.UI)),
		field:  tcell.StyleDefault.Background(rgb(palette.Background)),
		snake:  tcell.StyleDefault.Background(rgb(palette.Background)).Foreground(rgb(palette.Snake)),
		apple:  tcell.StyleDefault.Background(rgb(palette.Background)).Foreground(rgb(palette.Apple)),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Layout centres the field horizontally below the score line
func (r *Renderer) Layout(grid types.Grid) layout.Terminal {
	screenWidth, _ := r.screen.Size()
	fieldWidth, _ := layout.NewTerminal(grid, 0, 0).Size()
	left := max((screenWidth-fieldWidth)/2, 0)
	return layout.NewTerminal(grid, left, fieldTop)
}

func (r *Renderer) Draw(s *game.Session) {
	r.screen.Clear()

	g := s.Game()
	l := r.Layout(g.Grid())
	left, _ := l.Origin()

	if g.Over() {
		r.drawText(left, fieldTop, "GAME OVER.", r.ui)
		r.drawText(left, fieldTop+1, "Press Enter to try again!", r.ui)
		r.drawText(left, fieldTop+3, fmt.Sprintf("Score: %d   Best: %d", g.Score(), s.Stats().GetHighScore()), r.ui)
		r.screen.Show()
		return
	}

	r.drawText(left, 0, fmt.Sprintf("Score: %d   Best: %d", g.Score(), s.Stats().GetHighScore()), r.ui)
	r.drawField(l)
	r.drawCell(l, g.Apple(), r.apple)
	for _, p := range g.Snake().Body {
		r.drawCell(l, p, r.snake)
	}
	r.screen.Show()
}

func (r *Renderer) drawField(l layout.Terminal) {
	left, top := l.Origin()
	width, height := l.Size()
	right, bottom := left+width-1, top+height-1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, r.ui)
		r.screen.SetContent(x, bottom, '─', nil, r.ui)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, r.ui)
		r.screen.SetContent(right, y, '│', nil, r.ui)
		for x := left + 1; x < right; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.field)
		}
	}
	r.screen.SetContent(left, top, '┌', nil, r.ui)
	r.screen.SetContent(right, top, '┐', nil, r.ui)
	r.screen.SetContent(left, bottom, '└', nil, r.ui)
	r.screen.SetContent(right, bottom, '┘', nil, r.ui)
}

// drawCell skips cells outside the field, such as a head that hit the wall
func (r *Renderer) drawCell(l layout.Terminal, p types.Point, style tcell.Style) {
	if !l.Contains(p) {
		return
	}
	col, row := l.Cell(p)
	for i := 0; i < layout.ColumnsPerCell; i++ {
		r.screen.SetContent(col+i, row, block, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
