package term

import (
	"slices"
	"unicode"

	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
)

var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	'd': types.Right,
	's': types.Down,
	'a': types.Left,
}

var arrowDirections = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyRight: types.Right,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
}

// Keys collects terminal key events between frames. Terminals only report
// presses (and auto-repeats), so direction keys are kept in arrival order and
// every one of them is handed to the game.
type Keys struct {
	turns   []types.Direction
	restart bool
	quit    bool
}

func NewKeys() *Keys {
	return &Keys{}
}

func (k *Keys) Handle(ev *tcell.EventKey) {
	k.press(ev.Key(), ev.Rune())
}

func (k *Keys) press(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyEnter:
		k.restart = true
	case tcell.KeyRune:
		if dir, ok := runeDirections[unicode.ToLower(r)]; ok {
			k.turns = append(k.turns, dir)
		}
	default:
		if dir, ok := arrowDirections[key]; ok {
			k.turns = append(k.turns, dir)
		}
	}
}

// Turns returns the directions pressed this frame, oldest first
func (k *Keys) Turns() []types.Direction {
	return k.turns
}

// DirectionHeld reports whether dir was pressed this frame
func (k *Keys) DirectionHeld(dir types.Direction) bool {
	return slices.Contains(k.turns, dir)
}

func (k *Keys) RestartHeld() bool {
	return k.restart
}

func (k *Keys) Quit() bool {
	return k.quit
}

// Reset forgets the presses of the finished frame
func (k *Keys) Reset() {
	k.turns = k.turns[:0]
	k.restart = false
}
