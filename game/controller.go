package game

import (
	"log"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Cues receives gameplay events that deserve feedback outside the board,
// such as sound.
type Cues interface {
	Eat()
	Die()
}

// Controller owns a Game and bridges it to a polled clock, boundary
// intents and the leaderboard. All methods must be called from one
// goroutine.
type Controller struct {
	game    *Game
	scores  *manager.ScoreManager
	cues    Cues
	display int
	stats   *SessionStats

	lastTick     time.Time
	awaitingName bool
	finalScore   int
	lastName     string
	lastWarning  string
}

func NewController(g *Game, scores *manager.ScoreManager, cues Cues, display int) *Controller {
	if display <= 0 {
		display = types.LeaderboardDisplay
	}
	return &Controller{
		game:    g,
		scores:  scores,
		cues:    cues,
		display: display,
		stats:   NewSessionStats(),
	}
}

// Handle applies one intent at time now.
func (c *Controller) Handle(in Intent, now time.Time) {
	switch in.Kind {
	case IntentSteer:
		c.game.Steer(in.Direction, now)
	case IntentStart:
		if c.game.State() == types.Waiting {
			if c.game.Start(now) {
				c.lastTick = now
			}
			return
		}
		c.togglePause(now)
	case IntentTogglePause:
		c.togglePause(now)
	case IntentRestart:
		switch c.game.State() {
		case types.GameOver:
			c.finishRound()
		case types.Running, types.Paused:
			log.Printf("round %s abandoned at score %d", c.game.UUID, c.game.Score())
			c.game.Reset()
		}
	case IntentSubmitName:
		c.submitName(in.Text)
	case IntentClearScores:
		if err := c.scores.Clear(); err != nil {
			c.Warn(err)
			return
		}
		log.Printf("high scores cleared")
	}
}

func (c *Controller) togglePause(now time.Time) {
	if c.game.TogglePause() && c.game.State() == types.Running {
		// The clock restarts from the resume, not from the last tick.
		c.lastTick = now
	}
}

// Advance fires at most one tick if the current interval has elapsed since
// the previous one. The interval is re-read every call, so a speed change
// applies from the next reschedule.
func (c *Controller) Advance(now time.Time) (TickResult, bool) {
	if c.game.State() != types.Running {
		return TickResult{}, false
	}
	if now.Sub(c.lastTick) < c.game.Interval() {
		return TickResult{}, false
	}
	c.lastTick = now

	res := c.game.Tick()
	if res.Ate && c.cues != nil {
		c.cues.Eat()
	}
	if res.Snapshot.State == types.GameOver {
		c.awaitingName = true
		c.finalScore = res.Snapshot.Score
		c.stats.AddRound(RoundRecord{
			Round:     res.Snapshot.Round,
			StartTime: c.game.StartTime,
			EndTime:   now,
			Score:     res.Snapshot.Score,
			Cause:     res.Snapshot.Collision,
		})
		if c.cues != nil {
			c.cues.Die()
		}
	}
	return res, true
}

// submitName records the final score under text. Blank text declines.
// The board is reset either way.
func (c *Controller) submitName(text string) {
	if !c.awaitingName {
		return
	}
	if name, ok := manager.NormalizeName(text); ok {
		c.lastName = name
		if _, err := c.scores.Add(name, c.finalScore); err != nil {
			c.Warn(err)
		}
	}
	c.finishRound()
}

func (c *Controller) finishRound() {
	c.awaitingName = false
	c.game.Reset()
}

// Warn logs a recoverable problem and keeps it for display.
func (c *Controller) Warn(err error) {
	if err == nil {
		return
	}
	log.Printf("warning: %v", err)
	c.lastWarning = err.Error()
}

func (c *Controller) Snapshot() Snapshot {
	return c.game.Snapshot()
}

// Scores is the leaderboard view shown beside the board.
func (c *Controller) Scores() manager.Leaderboard {
	return c.scores.Top(c.display)
}

func (c *Controller) AllScores() manager.Leaderboard {
	return c.scores.All()
}

// Stats covers the rounds finished since the controller was created.
func (c *Controller) Stats() *SessionStats {
	return c.stats
}

func (c *Controller) AwaitingName() bool {
	return c.awaitingName
}

func (c *Controller) FinalScore() int {
	return c.finalScore
}

// LastName pre-fills the name prompt.
func (c *Controller) LastName() string {
	return c.lastName
}

func (c *Controller) LastWarning() string {
	return c.lastWarning
}
