package types

// Lifecycle is the round state of the engine.
type Lifecycle int

const (
	Waiting Lifecycle = iota
	Running
	Paused
	GameOver
)

func (l Lifecycle) String() string {
	switch l {
	case Waiting:
		return "waiting"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	// BoardFull means no free cell was left for food.
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "unknown"
	}
}
