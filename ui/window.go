// Package ui runs the game in a raylib window.
package ui

import (
	"time"

	"snake-arcade/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives the controller from the frame loop until
// the window closes or the player quits.
func Run(ctrl *game.Controller) {
	r := NewRenderer(ctrl.Snapshot().Grid)
	w, h := r.Size()

	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	// Escape belongs to the name prompt, not to closing the window.
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	in := NewInput(ctrl)
	for !rl.WindowShouldClose() {
		now := time.Now()
		if !in.Poll(now) {
			break
		}
		ctrl.Advance(now)
		in.sync()
		r.Draw(ctrl, in)
	}
}
