package term

import (
	"fmt"
	"time"

	"snake-classic/config"
	"snake-classic/game"

	"github.com/gdamore/tcell/v2"
)

const frameRate = 60

// Run takes over the terminal and drives the session until Esc or Ctrl-C
func Run(palette config.Palette, session *game.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return run(screen, palette, session)
}

func run(screen tcell.Screen, palette config.Palette, session *game.Session) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	// PollEvent blocks; it returns nil once the screen is finalized
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	keys := NewKeys()
	renderer := NewRenderer(screen, palette)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.Handle(ev)
				if keys.Quit() {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			if err := session.Frame(now, keys); err != nil {
				return err
			}
			keys.Reset()
			renderer.Draw(session)
		}
	}
}
