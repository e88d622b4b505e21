package game

import (
	"fmt"
	"log"
	"time"

	"snake-classic/game/manager"

	"golang.org/x/exp/rand"
)

// Session runs consecutive games: it steps the current one and replaces it
// with a fresh game when the player asks for a restart after game over.
type Session struct {
	settings   Settings
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	stats      *manager.StateManager
	sound      Sound
	game       *Game
}

func NewSession(settings Settings, rng *rand.Rand, sound Sound) (*Session, error) {
	s := &Session{
		settings:   settings,
		food:       manager.NewFoodManager(settings.Grid, rng),
		collisions: manager.NewCollisionManager(settings.Grid),
		stats:      manager.NewStateManager(),
		sound:      sound,
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards the current game and starts a new one
func (s *Session) Restart() error {
	g, err := NewGame(s.settings, s.food, s.collisions, s.sound)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	s.game = g
	log.Printf("game %s started", g.ID)
	return nil
}

// Frame is called once per rendered frame
func (s *Session) Frame(now time.Time, in Controls) error {
	if s.game.Over() {
		if in.RestartHeld() {
			return s.Restart()
		}
		return nil
	}

	s.game.Tick(now, in)

	if s.game.Over() {
		s.stats.RecordGame(s.game.Score(), s.game.Duration(now))
		log.Printf("game %s over: %s, score %d, best %d",
			s.game.ID, s.game.Reason(), s.game.Score(), s.stats.GetHighScore())
	}
	return nil
}

func (s *Session) Game() *Game {
	return s.game
}

func (s *Session) Stats() *manager.StateManager {
	return s.stats
}
