package game

import (
	"log"
	"time"

	"snake-arcade/game/config"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
)

// Game is the tick state machine. It is not safe for concurrent use; a
// single Controller owns it.
type Game struct {
	UUID      string
	Grid      types.Grid
	Steps     int
	StartTime time.Time

	cfg        config.Config
	snake      *entity.Snake
	food       types.Point
	direction  types.Direction
	score      int
	interval   time.Duration
	state      types.Lifecycle
	collision  types.CollisionType
	input      *manager.InputManager
	foodMgr    *manager.FoodManager
	collisions *manager.CollisionManager
}

// TickResult is what one clock firing produced.
type TickResult struct {
	Snapshot Snapshot
	// Advanced is false when the tick was ignored because the game was not
	// running.
	Advanced  bool
	Ate       bool
	Collision types.CollisionType
}

func NewGame(cfg config.Config, foodMgr *manager.FoodManager) *Game {
	grid := cfg.Grid()
	g := &Game{
		Grid:       grid,
		cfg:        cfg,
		input:      manager.NewInputManager(types.Right, cfg.InputGate()),
		foodMgr:    foodMgr,
		collisions: manager.NewCollisionManager(grid),
	}
	g.Reset()
	return g
}

// Reset puts the board in its starting layout and enters Waiting.
func (g *Game) Reset() {
	g.UUID = uuid.New().String()
	g.Steps = 0
	g.StartTime = time.Time{}
	g.score = 0
	g.interval = g.cfg.InitialInterval()
	g.direction = types.Right
	g.collision = types.NoCollision
	g.snake = entity.NewSnake(g.Grid.Center(), g.direction, g.cfg.StartLength)
	g.input.Reset(g.direction, g.snake.Len() > 1)
	g.food = g.placeFood()
	g.state = types.Waiting
}

// Start begins a round from Waiting at time now.
func (g *Game) Start(now time.Time) bool {
	if g.state != types.Waiting {
		return false
	}
	g.state = types.Running
	g.StartTime = now
	log.Printf("round %s started", g.UUID)
	return true
}

// TogglePause flips between Running and Paused.
func (g *Game) TogglePause() bool {
	switch g.state {
	case types.Running:
		g.state = types.Paused
	case types.Paused:
		g.state = types.Running
	default:
		return false
	}
	return true
}

// Steer forwards a direction request to the input arbiter. Requests are
// only taken while waiting or running.
func (g *Game) Steer(d types.Direction, now time.Time) bool {
	if g.state != types.Waiting && g.state != types.Running {
		return false
	}
	return g.input.Submit(d, now)
}

// Tick advances the snake one cell. Outside Running it is a no-op.
func (g *Game) Tick() TickResult {
	if g.state != types.Running {
		return TickResult{Snapshot: g.Snapshot()}
	}
	g.Steps++

	g.direction = g.input.Consume()
	newHead := g.snake.GetHead().Add(g.direction.ToPoint())

	if c := g.collisions.CheckCollision(newHead, g.snake); c != types.NoCollision {
		g.end(c)
		return TickResult{Snapshot: g.Snapshot(), Advanced: true, Collision: c}
	}

	g.snake.Move(newHead)

	res := TickResult{Advanced: true}
	if g.collisions.IsFoodCollision(newHead, g.food) {
		res.Ate = true
		g.score += g.cfg.FoodReward
		food, ok := g.foodMgr.Place(g.snake.Body)
		if ok {
			g.food = food
		}
		if g.score%g.cfg.SpeedUpEvery == 0 {
			g.speedUp()
		}
		if !ok {
			g.end(types.BoardFull)
			res.Collision = types.BoardFull
		}
	} else {
		g.snake.RemoveTail()
	}
	g.input.SetMomentum(g.snake.Len() > 1)

	res.Snapshot = g.Snapshot()
	return res
}

func (g *Game) speedUp() {
	next := g.interval - g.cfg.SpeedStep()
	if next < g.cfg.MinInterval() {
		next = g.cfg.MinInterval()
	}
	g.interval = next
}

func (g *Game) end(c types.CollisionType) {
	g.state = types.GameOver
	g.collision = c
	log.Printf("round %s over: %s collision, score %d after %d steps", g.UUID, c, g.score, g.Steps)
}

// placeFood is only used on reset, where the grid always has room.
func (g *Game) placeFood() types.Point {
	food, ok := g.foodMgr.Place(g.snake.Body)
	if !ok {
		return g.snake.GetHead()
	}
	return food
}

func (g *Game) State() types.Lifecycle {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Interval() time.Duration {
	return g.interval
}

// Snapshot copies the render-visible state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Round:     g.UUID,
		Grid:      g.Grid,
		Snake:     g.snake.Cells(),
		Food:      g.food,
		Direction: g.direction,
		Score:     g.score,
		Interval:  g.interval,
		State:     g.state,
		Collision: g.collision,
	}
}
