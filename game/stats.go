package game

import (
	"sort"
	"sync"
	"time"

	"snake-arcade/game/types"
)

// maxRoundHistory bounds the per-round records kept for the median; totals
// keep counting past it.
const maxRoundHistory = 200

// RoundRecord describes one finished round of this session.
type RoundRecord struct {
	Round     string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     types.CollisionType
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats aggregates the rounds played since the process started. It
// is not persisted.
type SessionStats struct {
	mu            sync.RWMutex
	rounds        []RoundRecord
	games         int
	totalScore    int
	maxScore      int
	totalDuration time.Duration
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		rounds: make([]RoundRecord, 0),
	}
}

func (s *SessionStats) AddRound(r RoundRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rounds) >= maxRoundHistory {
		s.rounds = s.rounds[1:]
	}
	s.rounds = append(s.rounds, r)
	s.games++
	s.totalScore += r.Score
	s.totalDuration += r.Duration()
	if r.Score > s.maxScore {
		s.maxScore = r.Score
	}
}

func (s *SessionStats) GamesPlayed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games
}

func (s *SessionStats) AverageScore() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.games == 0 {
		return 0
	}
	return float64(s.totalScore) / float64(s.games)
}

// MedianScore is taken over the retained round history.
func (s *SessionStats) MedianScore() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.rounds) == 0 {
		return 0
	}
	scores := make([]int, len(s.rounds))
	for i, r := range s.rounds {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *SessionStats) MaxScore() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxScore
}

func (s *SessionStats) AverageDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.games == 0 {
		return 0
	}
	return s.totalDuration / time.Duration(s.games)
}

// Last returns the most recent round, if any.
func (s *SessionStats) Last() (RoundRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.rounds) == 0 {
		return RoundRecord{}, false
	}
	return s.rounds[len(s.rounds)-1], true
}
