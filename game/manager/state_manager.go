package manager

import (
	"time"

	"github.com/google/uuid"
)

const maxHistory = 200 // Finished runs kept for the session

// RunRecord describes one finished run.
type RunRecord struct {
	ID       string
	Score    int
	Ticks    int
	Duration time.Duration
	Cause    CollisionType
}

// StateManager keeps in-memory statistics for the current session.
type StateManager struct {
	runID       string
	startedAt   time.Duration
	ticks       int
	highScore   int
	gamesPlayed int
	history     []RunRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]RunRecord, 0),
	}
}

// StartRun opens a new run at now and returns its id.
func (sm *StateManager) StartRun(now time.Duration) string {
	sm.runID = uuid.New().String()
	sm.startedAt = now
	sm.ticks = 0
	return sm.runID
}

// Tick counts one simulation step of the current run.
func (sm *StateManager) Tick() {
	sm.ticks++
}

// EndRun closes the current run with its final score.
func (sm *StateManager) EndRun(score int, cause CollisionType, now time.Duration) RunRecord {
	record := RunRecord{
		ID:       sm.runID,
		Score:    score,
		Ticks:    sm.ticks,
		Duration: now - sm.startedAt,
		Cause:    cause,
	}

	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}

	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, record)

	sm.runID = ""
	sm.ticks = 0
	return record
}

func (sm *StateManager) RunID() string {
	return sm.runID
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetHistory returns a copy of the finished runs, oldest first.
func (sm *StateManager) GetHistory() []RunRecord {
	history := make([]RunRecord, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetAverageScore returns the mean score over the kept history.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}

	total := 0
	for _, run := range sm.history {
		total += run.Score
	}
	return float64(total) / float64(len(sm.history))
}
