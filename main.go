package main

import (
	"flag"
	"log"
	"time"

	"snake-classic/audio"
	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/ui"
	"snake-classic/ui/term"

	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	frontend := flag.String("frontend", cfg.Frontend, "Frontend to run: window or terminal")
	debug := flag.Bool("debug", cfg.Debug, "Write a debug log to "+logDir)
	mute := flag.Bool("mute", !cfg.SoundEnabled, "Disable sound effects")
	flag.Parse()

	cfg.Frontend = *frontend
	cfg.Debug = *debug
	cfg.SoundEnabled = !*mute
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal frontend owns stdout, so logs go to a file or nowhere
	if cfg.Frontend == config.FrontendTerminal || cfg.Debug {
		if logFile := setupLogging(cfg.Debug); logFile != nil {
			defer logFile.Close()
		}
	}

	palette, err := cfg.Palette()
	if err != nil {
		log.Fatalf("Invalid palette: %v", err)
	}

	sound, closeSound := setupSound(cfg)
	defer closeSound()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	session, err := game.NewSession(cfg.Settings(), rng, sound)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = term.Run(palette, session)
	default:
		err = ui.Run(cfg, palette, session)
	}
	if err != nil {
		log.Fatalf("Game stopped: %v", err)
	}

	stats := session.Stats().Stats()
	log.Printf("Session finished: %d games, best %d, average %.1f, played %v",
		stats.GamesPlayed, stats.HighScore, stats.AverageScore, stats.TotalPlay.Round(time.Second))
}

// setupSound loads the eat sound. A configured sound file that cannot be
// loaded is fatal; a missing audio device is not.
func setupSound(cfg config.Config) (game.Sound, func()) {
	if !cfg.SoundEnabled {
		return audio.Mute{}, func() {}
	}

	var clip *audio.Clip
	var err error
	if cfg.SoundPath != "" {
		clip, err = audio.LoadClip(cfg.SoundPath)
	} else {
		clip, err = audio.ToneClip()
	}
	if err != nil {
		log.Fatalf("Failed to load sound: %v", err)
	}

	player := audio.NewPlayer(clip)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed, continuing without sound: %v", err)
		return audio.Mute{}, func() {}
	}
	return player, player.Close
}
