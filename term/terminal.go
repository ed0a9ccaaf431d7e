// Package term runs the game in a terminal using tcell.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type mode int

const (
	modePlay mode = iota
	modeName
	modeConfirmClear
	modeScoreList
)

// Terminal translates tcell events into controller intents and paints
// controller snapshots. It never changes game state itself.
type Terminal struct {
	screen tcell.Screen
	ctrl   *game.Controller
	mode   mode
	name   []rune
	now    func() time.Time
}

func New(screen tcell.Screen, ctrl *game.Controller) *Terminal {
	return &Terminal{
		screen: screen,
		ctrl:   ctrl,
		now:    time.Now,
	}
}

// Run pumps events and frames until the player quits. The screen must
// already be initialized; Run does not finalize it.
func (t *Terminal) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	t.Draw()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.handle(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			t.Draw()

		case <-ticker.C:
			t.step(t.now())
		}
	}
}

func (t *Terminal) step(now time.Time) {
	t.ctrl.Advance(now)
	t.syncMode()
	t.Draw()
}

// syncMode opens the name prompt once the controller asks for a name.
func (t *Terminal) syncMode() {
	if t.ctrl.AwaitingName() && t.mode != modeName {
		t.mode = modeName
		t.name = []rune(t.ctrl.LastName())
	}
}

// handle processes one key. It returns false when the player quits.
func (t *Terminal) handle(key tcell.Key, r rune) bool {
	now := t.now()
	t.syncMode()

	switch t.mode {
	case modeName:
		t.handleNameKey(key, r, now)
		return true

	case modeConfirmClear:
		if key == tcell.KeyRune && (r == 'y' || r == 'Y') {
			t.ctrl.Handle(game.Control(game.IntentClearScores), now)
		}
		t.mode = modePlay
		return true

	case modeScoreList:
		t.mode = modePlay
		return true
	}

	if isQuit(key, r) {
		return false
	}
	if key == tcell.KeyRune {
		switch r {
		case 'h', 'H':
			t.mode = modeScoreList
			return true
		case 'c', 'C':
			t.mode = modeConfirmClear
			return true
		}
	}
	if in, ok := keyIntent(key, r); ok {
		t.ctrl.Handle(in, now)
	}
	return true
}

func (t *Terminal) handleNameKey(key tcell.Key, r rune, now time.Time) {
	switch key {
	case tcell.KeyEnter:
		t.ctrl.Handle(game.SubmitName(string(t.name)), now)
		t.mode = modePlay
	case tcell.KeyEscape:
		t.ctrl.Handle(game.SubmitName(""), now)
		t.mode = modePlay
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(t.name) > 0 {
			t.name = t.name[:len(t.name)-1]
		}
	case tcell.KeyRune:
		if len(t.name) < types.MaxNameRunes {
			t.name = append(t.name, r)
		}
	}
}

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 150))
	styleHead    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 230, 0))
	styleBody    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 240, 100))
	styleFood    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 80, 0))
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Board cells are two columns wide so the grid looks square.
const (
	boardX = 1
	boardY = 1
)

func cellOrigin(p types.Point) (int, int) {
	return boardX + 1 + p.X*2, boardY + 1 + p.Y
}

// Draw paints the current controller state.
func (t *Terminal) Draw() {
	t.screen.Clear()
	snap := t.ctrl.Snapshot()

	if t.mode == modeScoreList {
		t.drawScoreList()
		t.screen.Show()
		return
	}

	t.drawBorder(snap.Grid)
	for i, p := range snap.Snake {
		x, y := cellOrigin(p)
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		t.screen.SetContent(x, y, '█', nil, style)
		t.screen.SetContent(x+1, y, '█', nil, style)
	}
	fx, fy := cellOrigin(snap.Food)
	t.screen.SetContent(fx, fy, '(', nil, styleFood)
	t.screen.SetContent(fx+1, fy, ')', nil, styleFood)

	t.drawPanel(snap)
	t.drawOverlay(snap)

	if w := t.ctrl.LastWarning(); w != "" {
		t.drawText(boardX, boardY+snap.Grid.Height+6, styleWarning, "! "+w)
	}
	t.screen.Show()
}

func (t *Terminal) drawBorder(g types.Grid) {
	right := boardX + 1 + g.Width*2
	bottom := boardY + 1 + g.Height
	for x := boardX; x <= right; x++ {
		t.screen.SetContent(x, boardY, '-', nil, styleBorder)
		t.screen.SetContent(x, bottom, '-', nil, styleBorder)
	}
	for y := boardY; y <= bottom; y++ {
		t.screen.SetContent(boardX, y, '|', nil, styleBorder)
		t.screen.SetContent(right, y, '|', nil, styleBorder)
	}
}

func (t *Terminal) drawPanel(snap game.Snapshot) {
	x := boardX + snap.Grid.Width*2 + 4
	y := boardY
	t.drawText(x, y, styleBanner, fmt.Sprintf("Score: %d", snap.Score))
	t.drawText(x, y+1, styleDefault, fmt.Sprintf("Speed: %dms", snap.Interval.Milliseconds()))
	t.drawText(x, y+3, styleBanner, "Top Scores:")
	for i, line := range topLines(t.ctrl.Scores()) {
		t.drawText(x, y+5+i, styleDefault, line)
	}
	help := []string{
		"arrows/WASD  steer",
		"space        start/pause",
		"r            restart",
		"h            all scores",
		"c            clear scores",
		"q            quit",
	}
	for i, line := range help {
		t.drawText(x, y+12+i, styleBorder, line)
	}

	stats := t.ctrl.Stats()
	if stats.GamesPlayed() > 0 {
		t.drawText(x, y+19, styleDefault, fmt.Sprintf("Games: %d  Best: %d  Avg: %.0f",
			stats.GamesPlayed(), stats.MaxScore(), stats.AverageScore()))
	}
}

// drawOverlay writes the status lines under the board.
func (t *Terminal) drawOverlay(snap game.Snapshot) {
	x := boardX
	y := boardY + snap.Grid.Height + 3

	switch {
	case t.mode == modeName:
		t.drawText(x, y, styleBanner, fmt.Sprintf("Game Over! Your score: %d", t.ctrl.FinalScore()))
		t.drawText(x, y+1, styleDefault, fmt.Sprintf("Name (max %d): %s_", types.MaxNameRunes, string(t.name)))
		t.drawText(x, y+2, styleBorder, "enter: save  esc: skip")
	case t.mode == modeConfirmClear:
		t.drawText(x, y, styleWarning, "Clear all high scores? (y/n)")
	case snap.State == types.Waiting:
		t.drawText(x, y, styleBanner, "Press SPACE to Start")
	case snap.State == types.Paused:
		t.drawText(x, y, styleBanner, "Paused")
	}
}

func (t *Terminal) drawScoreList() {
	t.drawText(1, 0, styleBanner, "High Scores (any key to close)")
	for i, line := range listLines(t.ctrl.AllScores()) {
		t.drawText(1, 2+i, styleDefault, line)
	}
}

func (t *Terminal) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
