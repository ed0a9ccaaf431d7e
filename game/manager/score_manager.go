package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"snake-arcade/game/types"
)

const DefaultScoresFile = "highscores.json"

var (
	// ErrCorrupt marks a scores file that exists but cannot be decoded.
	ErrCorrupt       = errors.New("high scores file is corrupt")
	ErrEmptyName     = errors.New("empty player name")
	ErrNegativeScore = errors.New("negative score")
)

type HighScore struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Leaderboard is ordered by descending score; equal scores keep insertion
// order.
type Leaderboard []HighScore

// ScoreManager owns the persisted leaderboard. The in-memory list is the
// source of truth; disk failures are reported but never roll it back.
type ScoreManager struct {
	mu       sync.RWMutex
	path     string
	capacity int
	scores   Leaderboard
	now      func() time.Time
}

func NewScoreManager(path string, capacity int) *ScoreManager {
	if path == "" {
		path = DefaultScoresFile
	}
	if capacity <= 0 {
		capacity = types.LeaderboardCapacity
	}
	return &ScoreManager{
		path:     path,
		capacity: capacity,
		scores:   make(Leaderboard, 0),
		now:      time.Now,
	}
}

func (sm *ScoreManager) Path() string {
	return sm.path
}

// Load replaces the in-memory list with the file contents. A missing file
// yields an empty leaderboard and no error. Any other failure also yields an
// empty leaderboard, with an error the caller should only warn about.
func (sm *ScoreManager) Load() (Leaderboard, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.scores = make(Leaderboard, 0)

	data, err := os.ReadFile(sm.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sm.copyLocked(), nil
		}
		return sm.copyLocked(), fmt.Errorf("read high scores: %w", err)
	}

	var loaded Leaderboard
	if err := json.Unmarshal(data, &loaded); err != nil {
		return sm.copyLocked(), fmt.Errorf("%w: %s: %v", ErrCorrupt, sm.path, err)
	}
	for i, hs := range loaded {
		if hs.Score < 0 {
			return sm.copyLocked(), fmt.Errorf("%w: %s: entry %d has negative score", ErrCorrupt, sm.path, i)
		}
	}

	sm.scores = loaded
	sm.normalizeLocked()
	return sm.copyLocked(), nil
}

// Add records a score for name with the current time and persists the
// result. The returned leaderboard reflects the addition even when the
// returned error reports a failed write.
func (sm *ScoreManager) Add(name string, score int) (Leaderboard, error) {
	name, ok := NormalizeName(name)
	if !ok {
		return sm.All(), ErrEmptyName
	}
	if score < 0 {
		return sm.All(), ErrNegativeScore
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.scores = append(sm.scores, HighScore{
		Name:  name,
		Score: score,
		Date:  sm.now().Round(0),
	})
	sm.normalizeLocked()

	err := sm.saveLocked()
	return sm.copyLocked(), err
}

// Top returns at most n leading entries.
func (sm *ScoreManager) Top(n int) Leaderboard {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(sm.scores) {
		n = len(sm.scores)
	}
	out := make(Leaderboard, n)
	copy(out, sm.scores[:n])
	return out
}

func (sm *ScoreManager) All() Leaderboard {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.copyLocked()
}

func (sm *ScoreManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.scores)
}

// Clear empties the leaderboard and persists the empty state.
func (sm *ScoreManager) Clear() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.scores = make(Leaderboard, 0)
	return sm.saveLocked()
}

// Save writes the current leaderboard to disk.
func (sm *ScoreManager) Save() error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.saveLocked()
}

func (sm *ScoreManager) normalizeLocked() {
	sort.SliceStable(sm.scores, func(i, j int) bool {
		return sm.scores[i].Score > sm.scores[j].Score
	})
	if len(sm.scores) > sm.capacity {
		sm.scores = sm.scores[:sm.capacity]
	}
}

func (sm *ScoreManager) copyLocked() Leaderboard {
	out := make(Leaderboard, len(sm.scores))
	copy(out, sm.scores)
	return out
}

// saveLocked writes to a temporary file next to the target and renames it
// into place, so a crash mid-write leaves the previous file intact.
func (sm *ScoreManager) saveLocked() error {
	dir := filepath.Dir(sm.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create scores directory: %w", err)
	}

	data, err := json.MarshalIndent(sm.scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(sm.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp scores file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write high scores: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close high scores: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to chmod high scores: %w", err)
	}
	if err := os.Rename(tmpName, sm.path); err != nil {
		return fmt.Errorf("failed to replace high scores file: %w", err)
	}
	return nil
}

// NormalizeName trims, uppercases and truncates a player name to
// MaxNameRunes. ok is false for blank input, meaning "do not record".
func NormalizeName(text string) (name string, ok bool) {
	name = strings.ToUpper(strings.TrimSpace(text))
	if name == "" {
		return "", false
	}
	if utf8.RuneCountInString(name) > types.MaxNameRunes {
		name = strings.TrimSpace(string([]rune(name)[:types.MaxNameRunes]))
	}
	return name, true
}
