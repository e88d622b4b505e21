package manager

import "time"

// Scores kept for the running average
const maxScores = 50

// GameStats is a snapshot of the session's results
type GameStats struct {
	HighScore    int
	GamesPlayed  int
	AverageScore float64
	TotalPlay    time.Duration
}

// StateManager tracks results across restarts for the lifetime of the process.
// Nothing is written to disk.
type StateManager struct {
	highScore    int
	gamesPlayed  int
	scoreHistory []int
	totalPlay    time.Duration
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, maxScores),
	}
}

// RecordGame adds a finished game to the session
func (sm *StateManager) RecordGame(score int, played time.Duration) {
	sm.gamesPlayed++
	sm.totalPlay += played
	sm.UpdateScore(score)

	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

// UpdateScore raises the high score if score beats it
func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// AverageScore averages the kept score history
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, score := range sm.scoreHistory {
		sum += score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

func (sm *StateManager) Stats() GameStats {
	return GameStats{
		HighScore:    sm.highScore,
		GamesPlayed:  sm.gamesPlayed,
		AverageScore: sm.AverageScore(),
		TotalPlay:    sm.totalPlay,
	}
}
