package config

import (
	"image/color"
	"strings"
	"testing"
	"time"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "FCF0C8", want: color.RGBA{R: 0xFC, G: 0xF0, B: 0xC8, A: 255}},
		{in: "#911F27", want: color.RGBA{R: 0x91, G: 0x1F, B: 0x27, A: 255}},
		{in: "630a10", want: color.RGBA{R: 0x63, G: 0x0A, B: 0x10, A: 255}},
		{in: "", wantErr: true},
		{in: "#FFF", wantErr: true},
		{in: "FCF0C", wantErr: true},
		{in: "FCF0C8#", wantErr: true},
		{in: "GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid: %v", err)
	}

	settings := cfg.Settings()
	if settings.Grid.Width != 16 || settings.Grid.Height != 16 {
		t.Errorf("Expected 16x16 grid, got %+v", settings.Grid)
	}
	if settings.TickInterval() != 200*time.Millisecond {
		t.Errorf("Expected 200ms tick, got %v", settings.TickInterval())
	}

	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Unexpected palette error: %v", err)
	}
	if p.Snake != (color.RGBA{R: 0x91, G: 0x1F, B: 0x27, A: 255}) {
		t.Errorf("Unexpected snake color %v", p.Snake)
	}
	if p.Window != (color.RGBA{R: 0xFE, G: 0xEC, B: 0xE9, A: 255}) {
		t.Errorf("Unexpected window color %v", p.Window)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendWindow {
		t.Errorf("Expected window frontend, got %q", cfg.Frontend)
	}
	if !cfg.SoundEnabled {
		t.Error("Expected sound enabled by default")
	}
	if cfg.Theme != Default().Theme {
		t.Errorf("Expected default theme, got %+v", cfg.Theme)
	}
	if cfg.Geometry != Default().Geometry {
		t.Errorf("Expected fixed geometry, got %+v", cfg.Geometry)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SNAKE_THEME_SNAKE", "#00FF00")
	t.Setenv("SNAKE_SOUND_ENABLED", "false")
	t.Setenv("SNAKE_SOUND_PATH", "assets/eat.wav")
	t.Setenv("SNAKE_FRONTEND", "terminal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.SoundEnabled {
		t.Error("Expected sound disabled")
	}
	if cfg.SoundPath != "assets/eat.wav" {
		t.Errorf("Expected sound path from env, got %q", cfg.SoundPath)
	}
	if cfg.Frontend != FrontendTerminal {
		t.Errorf("Expected terminal frontend, got %q", cfg.Frontend)
	}

	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Unexpected palette error: %v", err)
	}
	if p.Snake != (color.RGBA{G: 0xFF, A: 255}) {
		t.Errorf("Expected green snake, got %v", p.Snake)
	}

	// Unset theme variables keep the defaults
	want := Default().Theme
	want.Snake = "#00FF00"
	if cfg.Theme != want {
		t.Errorf("Expected theme %+v, got %+v", want, cfg.Theme)
	}
}

func TestLoadRejectsInvalidColor(t *testing.T) {
	t.Setenv("SNAKE_THEME_UI", "zzz")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid color")
	}
	if !strings.Contains(err.Error(), "ui") {
		t.Errorf("Expected error to name the ui color, got %v", err)
	}
}

func TestLoadRejectsUnknownFrontend(t *testing.T) {
	t.Setenv("SNAKE_FRONTEND", "web")

	if _, err := Load(); err == nil {
		t.Error("Expected error for unknown frontend")
	}
}
