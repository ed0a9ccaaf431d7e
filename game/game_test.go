package game

import (
	"testing"
	"time"

	"snake-arcade/game/config"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return NewGame(cfg, manager.NewFoodManager(cfg.Grid(), 1))
}

// place puts the snake and food where a test wants them, heading dir.
func (g *Game) place(body []types.Point, dir types.Direction, food types.Point) {
	g.snake = &entity.Snake{Body: body}
	g.direction = dir
	g.input.Reset(dir, len(body) > 1)
	g.food = food
}

func pts(xy ...int) []types.Point {
	out := make([]types.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func assertBody(t *testing.T, got, want []types.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body = %v, want %v", got, want)
		}
	}
}

func TestResetLayout(t *testing.T) {
	g := newTestGame(t, config.Default())
	s := g.Snapshot()

	assertBody(t, s.Snake, pts(10, 10, 9, 10, 8, 10))
	if s.State != types.Waiting || s.Direction != types.Right {
		t.Fatalf("state %v direction %v", s.State, s.Direction)
	}
	if s.Score != 0 || s.Interval != 100*time.Millisecond {
		t.Fatalf("score %d interval %v", s.Score, s.Interval)
	}
	if s.Occupies(s.Food) || !s.Grid.Contains(s.Food) {
		t.Fatalf("bad food %v", s.Food)
	}
	if s.Round == "" {
		t.Fatalf("round id not set")
	}
}

func TestResetIssuesNewRound(t *testing.T) {
	g := newTestGame(t, config.Default())
	first := g.UUID
	g.Reset()
	if g.UUID == first {
		t.Fatalf("round id reused after reset")
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	g := newTestGame(t, config.Default())
	before := g.Snapshot()

	if res := g.Tick(); res.Advanced {
		t.Fatalf("tick advanced while waiting")
	}
	g.Start(time.Now())
	g.TogglePause()
	if res := g.Tick(); res.Advanced {
		t.Fatalf("tick advanced while paused")
	}
	assertBody(t, g.Snapshot().Snake, before.Snake)
}

func TestLifecycleTransitions(t *testing.T) {
	g := newTestGame(t, config.Default())
	if g.TogglePause() {
		t.Fatalf("pause allowed while waiting")
	}
	if !g.Start(time.Now()) || g.State() != types.Running {
		t.Fatalf("start failed")
	}
	if g.Start(time.Now()) {
		t.Fatalf("start allowed twice")
	}
	if !g.TogglePause() || g.State() != types.Paused {
		t.Fatalf("pause failed")
	}
	if !g.TogglePause() || g.State() != types.Running {
		t.Fatalf("resume failed")
	}
}

func TestTickMovesOneCell(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.place(pts(10, 10, 9, 10, 8, 10), types.Right, types.Point{X: 0, Y: 0})
	g.Start(time.Now())

	res := g.Tick()
	if !res.Advanced || res.Ate || res.Collision != types.NoCollision {
		t.Fatalf("unexpected result %+v", res)
	}
	assertBody(t, res.Snapshot.Snake, pts(11, 10, 10, 10, 9, 10))
	if res.Snapshot.Food != (types.Point{X: 0, Y: 0}) || res.Snapshot.Score != 0 {
		t.Fatalf("food %v score %d changed", res.Snapshot.Food, res.Snapshot.Score)
	}
}

func TestWallCollisionEndsRound(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.place(pts(19, 10, 18, 10, 17, 10), types.Right, types.Point{X: 0, Y: 0})
	g.Start(time.Now())

	res := g.Tick()
	if res.Collision != types.WallCollision || res.Snapshot.State != types.GameOver {
		t.Fatalf("collision %v state %v", res.Collision, res.Snapshot.State)
	}
	// The board is left as it was for the final render.
	assertBody(t, res.Snapshot.Snake, pts(19, 10, 18, 10, 17, 10))
	if next := g.Tick(); next.Advanced {
		t.Fatalf("tick advanced after game over")
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	g := newTestGame(t, config.Default())
	// Heading left along the top of a hook; turning down runs into the body.
	g.place(pts(5, 5, 6, 5, 6, 6, 5, 6, 4, 6), types.Left, types.Point{X: 0, Y: 0})
	g.Start(time.Now())
	g.Steer(types.Down, time.Now())

	res := g.Tick()
	if res.Collision != types.SelfCollision || g.State() != types.GameOver {
		t.Fatalf("collision %v state %v", res.Collision, g.State())
	}
}

func TestMovingIntoTailIsFatal(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.place(pts(5, 5, 6, 5, 6, 6, 5, 6), types.Left, types.Point{X: 0, Y: 0})
	g.Start(time.Now())
	g.Steer(types.Down, time.Now())

	if res := g.Tick(); res.Collision != types.SelfCollision {
		t.Fatalf("collision %v, want self", res.Collision)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.place(pts(10, 10, 9, 10, 8, 10), types.Right, types.Point{X: 11, Y: 10})
	g.Start(time.Now())

	res := g.Tick()
	if !res.Ate || res.Snapshot.Score != 10 {
		t.Fatalf("ate %v score %d", res.Ate, res.Snapshot.Score)
	}
	assertBody(t, res.Snapshot.Snake, pts(11, 10, 10, 10, 9, 10, 8, 10))
	if res.Snapshot.Occupies(res.Snapshot.Food) {
		t.Fatalf("new food %v on the snake", res.Snapshot.Food)
	}
	if res.Snapshot.Interval != 100*time.Millisecond {
		t.Fatalf("interval changed at score 10: %v", res.Snapshot.Interval)
	}
}

func TestSpeedStepsAtThreshold(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.place(pts(10, 10, 9, 10, 8, 10), types.Right, types.Point{X: 11, Y: 10})
	g.score = 10
	g.Start(time.Now())

	res := g.Tick()
	if res.Snapshot.Score != 20 || res.Snapshot.Interval != 97*time.Millisecond {
		t.Fatalf("score %d interval %v, want 20 and 97ms", res.Snapshot.Score, res.Snapshot.Interval)
	}
}

func TestSpeedIsFloored(t *testing.T) {
	cfg := config.Default()
	cfg.MinSpeedMs = 98
	g := newTestGame(t, cfg)
	g.Start(time.Now())

	for i := 0; i < 3; i++ {
		head := g.snake.GetHead()
		g.food = head.Add(types.Right.ToPoint())
		g.score = 10 + 20*i
		g.Tick()
		if g.Interval() < cfg.MinInterval() {
			t.Fatalf("interval %v below floor", g.Interval())
		}
	}
	if g.Interval() != 98*time.Millisecond {
		t.Fatalf("interval %v, want 98ms", g.Interval())
	}
}

func TestReversalNeverApplied(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.place(pts(10, 10, 9, 10, 8, 10), types.Right, types.Point{X: 0, Y: 0})
	g.Start(time.Now())
	g.Steer(types.Left, time.Now())

	res := g.Tick()
	if res.Snapshot.Direction != types.Right || res.Snapshot.Head() != (types.Point{X: 11, Y: 10}) {
		t.Fatalf("reversal applied: %v head %v", res.Snapshot.Direction, res.Snapshot.Head())
	}
}

func TestSteerIgnoredWhilePaused(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.Start(time.Now())
	g.TogglePause()
	if g.Steer(types.Up, time.Now()) {
		t.Fatalf("steer accepted while paused")
	}
}

func TestSteerBeforeStartAppliesOnFirstTick(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.food = types.Point{X: 0, Y: 0}
	if !g.Steer(types.Up, time.Now()) {
		t.Fatalf("steer rejected while waiting")
	}
	g.Start(time.Now())
	if res := g.Tick(); res.Snapshot.Head() != (types.Point{X: 10, Y: 9}) {
		t.Fatalf("head %v, want (10,9)", res.Snapshot.Head())
	}
}

func TestBoardFullEndsRound(t *testing.T) {
	cfg := config.Default()
	cfg.GridWidth, cfg.GridHeight, cfg.StartLength = 3, 1, 2
	g := newTestGame(t, cfg)
	if g.food != (types.Point{X: 2, Y: 0}) {
		t.Fatalf("food %v, want the only free cell (2,0)", g.food)
	}
	g.Start(time.Now())

	res := g.Tick()
	if !res.Ate || res.Collision != types.BoardFull || g.State() != types.GameOver {
		t.Fatalf("result %+v state %v", res, g.State())
	}
}

// TestInvariantsUnderRandomPlay drives many rounds with random steering and
// checks the board invariants after every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	cfg := config.Default()
	cfg.GridWidth, cfg.GridHeight = 8, 8
	g := newTestGame(t, cfg)
	rng := rand.New(rand.NewSource(99))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	g.Start(time.Now())
	eaten, lastScore, lastInterval := 0, 0, g.Interval()
	for i := 0; i < 5000; i++ {
		now = now.Add(50 * time.Millisecond)
		g.Steer(types.Direction(rng.Intn(4)), now)
		before := g.direction
		res := g.Tick()
		s := res.Snapshot

		if s.State == types.GameOver {
			g.Reset()
			g.Start(time.Now())
			eaten, lastScore, lastInterval = 0, 0, g.Interval()
			continue
		}
		if s.Direction == before.Opposite() {
			t.Fatalf("tick %d reversed %v into %v", i, before, s.Direction)
		}
		if res.Ate {
			eaten++
		}
		if len(s.Snake) != cfg.StartLength+eaten {
			t.Fatalf("tick %d: len %d, want %d", i, len(s.Snake), cfg.StartLength+eaten)
		}
		seen := make(map[types.Point]bool, len(s.Snake))
		for _, p := range s.Snake {
			if seen[p] {
				t.Fatalf("tick %d: duplicate cell %v", i, p)
			}
			seen[p] = true
		}
		if seen[s.Food] {
			t.Fatalf("tick %d: food %v on the snake", i, s.Food)
		}
		if s.Score < lastScore || s.Interval > lastInterval || s.Interval < cfg.MinInterval() {
			t.Fatalf("tick %d: score %d->%d interval %v->%v", i, lastScore, s.Score, lastInterval, s.Interval)
		}
		lastScore, lastInterval = s.Score, s.Interval
	}
}
