package ui

import (
	"fmt"
	"image/color"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	scoreX        = 25
	scoreY        = 25
	scoreFontSize = 24
	bestY         = scoreY + scoreFontSize + 6
	bestFontSize  = 20

	gameOverX        = 100
	gameOverY        = 100
	gameOverFontSize = 36
	gameOverText     = "GAME OVER.\nPress Enter to try again!"
)

type Renderer struct {
	layout  layout.Pixels
	palette config.Palette
}

func NewRenderer(l layout.Pixels, palette config.Palette) *Renderer {
	return &Renderer{
		layout:  l,
		palette: palette,
	}
}

func (r *Renderer) Draw(s *game.Session) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	g := s.Game()
	if g.Over() {
		r.drawGameOver(g, s.Stats().GetHighScore())
		return
	}

	rl.ClearBackground(r.palette.Window)
	r.drawField()
	r.drawScore(g.Score(), s.Stats().GetHighScore())
	r.drawCell(g.Apple(), r.palette.Apple)
	for _, p := range g.Snake().Body {
		r.drawCell(p, r.palette.Snake)
	}
}

func (r *Renderer) drawField() {
	border := r.layout.Border()
	rl.DrawRectangle(border.X, border.Y, border.Width, border.Height, r.palette.UI)
	field := r.layout.Field()
	rl.DrawRectangle(field.X, field.Y, field.Width, field.Height, r.palette.Background)
}

func (r *Renderer) drawScore(score, best int) {
	rl.DrawText(fmt.Sprintf("Score: %d", score), scoreX, scoreY, scoreFontSize, r.palette.UI)
	rl.DrawText(fmt.Sprintf("Best: %d", best), scoreX, bestY, bestFontSize, r.palette.UI)
}

func (r *Renderer) drawCell(p types.Point, col color.RGBA) {
	cell := r.layout.Cell(p)
	rl.DrawRectangle(cell.X, cell.Y, cell.Width, cell.Height, col)
}

func (r *Renderer) drawGameOver(g *game.Game, best int) {
	rl.ClearBackground(r.palette.Background)
	rl.DrawText(gameOverText, gameOverX, gameOverY, gameOverFontSize, r.palette.UI)
	summary := fmt.Sprintf("Score: %d   Best: %d", g.Score(), best)
	rl.DrawText(summary, gameOverX, gameOverY+3*gameOverFontSize, scoreFontSize, r.palette.UI)
}
