package ui

import (
	"time"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Run opens the window and drives the session once per frame until the
// window is closed.
func Run(cfg config.Config, palette config.Palette, session *game.Session) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Geometry.WindowWidth), int32(cfg.Geometry.WindowHeight), cfg.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	renderer := NewRenderer(layout.NewPixels(cfg.Geometry), palette)
	keyboard := Keyboard{}

	for !rl.WindowShouldClose() {
		if err := session.Frame(time.Now(), keyboard); err != nil {
			return err
		}
		renderer.Draw(session)
	}
	return nil
}
