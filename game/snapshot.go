package game

import (
	"time"

	"snake-arcade/game/types"
)

// Snapshot is a read-only view of the engine taken after a tick.
type Snapshot struct {
	Round     string
	Grid      types.Grid
	Snake     []types.Point // head first
	Food      types.Point
	Direction types.Direction
	Score     int
	Interval  time.Duration
	State     types.Lifecycle
	Collision types.CollisionType
}

func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

// Occupies reports whether p is part of the snake.
func (s Snapshot) Occupies(p types.Point) bool {
	for _, c := range s.Snake {
		if c == p {
			return true
		}
	}
	return false
}
