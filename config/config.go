package config

import (
	"fmt"
	"image/color"
	"strings"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
)

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Theme holds the palette as hex strings, "RRGGBB" with an optional leading '#'.
// Unset variables keep the values from Default.
type Theme struct {
	Background string `env:"SNAKE_THEME_BACKGROUND"`
	Window     string `env:"SNAKE_THEME_WINDOW"`
	Snake      string `env:"SNAKE_THEME_SNAKE"`
	Apple      string `env:"SNAKE_THEME_APPLE"`
	UI         string `env:"SNAKE_THEME_UI"`
}

// Palette is a parsed Theme
type Palette struct {
	Background color.RGBA
	Window     color.RGBA
	Snake      color.RGBA
	Apple      color.RGBA
	UI         color.RGBA
}

// Geometry is fixed; it is not read from the environment
type Geometry struct {
	WindowWidth  int
	WindowHeight int
	FieldCells   int
	CellSize     int
	BorderWidth  int
}

type Config struct {
	Title        string
	Geometry     Geometry
	TickRate     int
	Frontend     string `env:"SNAKE_FRONTEND"`
	Debug        bool   `env:"SNAKE_DEBUG"`
	SoundEnabled bool   `env:"SNAKE_SOUND_ENABLED"`
	SoundPath    string `env:"SNAKE_SOUND_PATH"`
	Theme        Theme
}

// Default returns the classic game with the default theme
func Default() Config {
	return Config{
		Title: "Snake",
		Geometry: Geometry{
			WindowWidth:  720,
			WindowHeight: 480,
			FieldCells:   16,
			CellSize:     20,
			BorderWidth:  2,
		},
		TickRate:     game.DefaultSettings().TickRate,
		Frontend:     FrontendWindow,
		SoundEnabled: true,
		Theme: Theme{
			Background: "FCF0C8",
			Window:     "FEECE9",
			Snake:      "911F27",
			Apple:      "630A10",
			UI:         "630A10",
		},
	}
}

// Load applies environment overrides to Default and validates the result
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("invalid tick rate %d", c.TickRate)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Settings returns the game rules derived from the config
func (c Config) Settings() game.Settings {
	return game.Settings{
		Grid:     types.Grid{Width: c.Geometry.FieldCells, Height: c.Geometry.FieldCells},
		TickRate: c.TickRate,
	}
}

func (c Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Theme.Background, &p.Background},
		{"window", c.Theme.Window, &p.Window},
		{"snake", c.Theme.Snake, &p.Snake},
		{"apple", c.Theme.Apple, &p.Apple},
		{"ui", c.Theme.UI, &p.UI},
	}
	for _, f := range fields {
		col, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("invalid %s color: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// ParseHexColor parses "RRGGBB" or "#RRGGBB" into an opaque color
func ParseHexColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex string %q", hex)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex string %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
