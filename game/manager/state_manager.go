package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"snake-game/game/types"
)

const StatsFile = "gamestats.json"

// SessionRecord is one finished game
type SessionRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
}

// Duration of the session in seconds
func (r SessionRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

type GameStats struct {
	HighScore int             `json:"highScore"`
	Sessions  []SessionRecord `json:"sessions"`
}

// StateManager keeps the high score and session history across games
type StateManager struct {
	path  string
	stats GameStats
}

// NewStateManager loads stats from dataDir. An empty dataDir keeps stats in memory only.
func NewStateManager(dataDir string) *StateManager {
	sm := &StateManager{
		stats: GameStats{Sessions: make([]SessionRecord, 0)},
	}
	if dataDir == "" {
		return sm
	}
	sm.path = filepath.Join(dataDir, StatsFile)
	if err := sm.Load(); err != nil {
		log.Printf("stats: starting with empty stats: %v", err)
	}
	return sm
}

// Load reads the stats file. A missing file leaves the stats empty.
func (sm *StateManager) Load() error {
	if sm.path == "" {
		return nil
	}
	data, err := os.ReadFile(sm.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", sm.path, err)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("decode %s: %w", sm.path, err)
	}
	if stats.Sessions == nil {
		stats.Sessions = make([]SessionRecord, 0)
	}
	sm.stats = stats
	return nil
}

// Save writes the stats file, creating the data directory when needed
func (sm *StateManager) Save() error {
	if sm.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", sm.path, err)
	}
	return nil
}

// RecordSession appends a finished game and reports whether it set a new high score
func (sm *StateManager) RecordSession(id string, start, end time.Time, score int) bool {
	sm.stats.Sessions = append(sm.stats.Sessions, SessionRecord{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Score:     score,
	})
	if n := len(sm.stats.Sessions); n > types.MaxHistory {
		sm.stats.Sessions = append([]SessionRecord(nil), sm.stats.Sessions[n-types.MaxHistory:]...)
	}

	if score > sm.stats.HighScore {
		sm.stats.HighScore = score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.HighScore
}

func (sm *StateManager) GetHistory() []SessionRecord {
	return sm.stats.Sessions
}

// GetAverageScore returns the mean score over the recorded sessions
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.stats.Sessions) == 0 {
		return 0
	}
	total := 0
	for _, s := range sm.stats.Sessions {
		total += s.Score
	}
	return float64(total) / float64(len(sm.stats.Sessions))
}
