package ui

import (
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type mode int

const (
	modePlay mode = iota
	modeName
	modeConfirmClear
	modeScoreList
)

// Input polls raylib's keyboard once per frame and forwards intents.
type Input struct {
	ctrl *game.Controller
	mode mode
	name []rune
}

func NewInput(ctrl *game.Controller) *Input {
	return &Input{ctrl: ctrl}
}

var steerKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
}

// Poll handles this frame's keys. It returns false when the player quits.
func (in *Input) Poll(now time.Time) bool {
	in.sync()

	switch in.mode {
	case modeName:
		in.pollName(now)
		return true
	case modeConfirmClear:
		if rl.IsKeyPressed(rl.KeyY) {
			in.ctrl.Handle(game.Control(game.IntentClearScores), now)
			in.mode = modePlay
		} else if rl.GetKeyPressed() != 0 {
			in.mode = modePlay
		}
		return true
	case modeScoreList:
		if rl.GetKeyPressed() != 0 {
			in.mode = modePlay
		}
		return true
	}

	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeyH) {
		in.mode = modeScoreList
		return true
	}
	if rl.IsKeyPressed(rl.KeyC) {
		in.mode = modeConfirmClear
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		in.ctrl.Handle(game.Control(game.IntentStart), now)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		in.ctrl.Handle(game.Control(game.IntentTogglePause), now)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		in.ctrl.Handle(game.Control(game.IntentRestart), now)
	}
	for _, sk := range steerKeys {
		for _, k := range sk.keys {
			if rl.IsKeyPressed(k) {
				in.ctrl.Handle(game.Steer(sk.dir), now)
			}
		}
	}
	return true
}

func (in *Input) pollName(now time.Time) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && len(in.name) < types.MaxNameRunes {
			in.name = append(in.name, rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(in.name) > 0 {
		in.name = in.name[:len(in.name)-1]
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		in.ctrl.Handle(game.SubmitName(string(in.name)), now)
		in.mode = modePlay
	} else if rl.IsKeyPressed(rl.KeyEscape) {
		in.ctrl.Handle(game.SubmitName(""), now)
		in.mode = modePlay
	}
}

// sync opens the name prompt once the controller asks for a name.
func (in *Input) sync() {
	if in.ctrl.AwaitingName() && in.mode != modeName {
		in.mode = modeName
		in.name = []rune(in.ctrl.LastName())
	}
}
