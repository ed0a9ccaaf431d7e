package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10  // Padding around game area
	headerHeight  = 40  // Room for the score line above the board
	panelWidth    = 200 // Leaderboard panel right of the board
	fontSize      = 20
	smallFont     = 16
)

var (
	colorBackground = rl.NewColor(30, 30, 45, 255)
	colorBoard      = rl.NewColor(20, 20, 30, 255)
	colorGridLine   = rl.NewColor(60, 60, 80, 255)
	colorBorder     = rl.NewColor(100, 100, 150, 255)
	colorHead       = rl.NewColor(0, 230, 0, 255)
	colorBody       = rl.NewColor(100, 240, 100, 255)
	colorFood       = rl.NewColor(255, 80, 0, 255)
	colorShine      = rl.NewColor(255, 255, 255, 200)
	colorWarning    = rl.NewColor(255, 200, 0, 255)
)

type Renderer struct {
	cellSize     int32
	offsetX      int32
	offsetY      int32
	gridWidth    int32
	gridHeight   int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{
		cellSize:   types.CellSize,
		offsetX:    borderPadding,
		offsetY:    headerHeight,
		gridWidth:  int32(grid.Width),
		gridHeight: int32(grid.Height),
	}
	r.screenWidth = r.offsetX + r.gridWidth*r.cellSize + panelWidth
	r.screenHeight = r.offsetY + r.gridHeight*r.cellSize + 3*borderPadding + fontSize
	return r
}

func (r *Renderer) Size() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

func (r *Renderer) Draw(ctrl *game.Controller, in *Input) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(colorBackground)

	if in.mode == modeScoreList {
		r.drawScoreList(ctrl)
		return
	}

	snap := ctrl.Snapshot()
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), borderPadding, borderPadding, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("%dms", snap.Interval.Milliseconds()), r.offsetX+r.gridWidth*r.cellSize-60, borderPadding+4, smallFont, rl.Gray)
	if stats := ctrl.Stats(); stats.GamesPlayed() > 0 {
		rl.DrawText(fmt.Sprintf("Games %d  Best %d", stats.GamesPlayed(), stats.MaxScore()), 140, borderPadding+4, smallFont, rl.Gray)
	}

	r.drawBoard()
	r.drawSnake(snap)
	r.drawFood(snap.Food)
	r.drawPanel(ctrl)
	r.drawOverlay(ctrl, in, snap)

	if w := ctrl.LastWarning(); w != "" {
		rl.DrawText(w, borderPadding, r.screenHeight-fontSize-borderPadding, smallFont, colorWarning)
	}
}

func (r *Renderer) drawBoard() {
	w := r.gridWidth * r.cellSize
	h := r.gridHeight * r.cellSize
	rl.DrawRectangle(r.offsetX, r.offsetY, w, h, colorBoard)
	for x := int32(0); x <= w; x += r.cellSize {
		rl.DrawLine(r.offsetX+x, r.offsetY, r.offsetX+x, r.offsetY+h, colorGridLine)
	}
	for y := int32(0); y <= h; y += r.cellSize {
		rl.DrawLine(r.offsetX, r.offsetY+y, r.offsetX+w, r.offsetY+y, colorGridLine)
	}
	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, w+2, h+2, colorBorder)
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	const gap = 1
	size := r.cellSize - gap
	for i, p := range snap.Snake {
		x := r.offsetX + int32(p.X)*r.cellSize
		y := r.offsetY + int32(p.Y)*r.cellSize
		if i > 0 {
			rl.DrawRectangle(x, y, size, size, colorBody)
			continue
		}
		rl.DrawRectangle(x, y, size, size, colorHead)
		r.drawEyes(x, y, size, snap.Direction)
	}
}

// drawEyes places two eyes on the leading edge of the head.
func (r *Renderer) drawEyes(x, y, size int32, dir types.Direction) {
	const eye = 4
	var e1x, e1y, e2x, e2y int32
	switch dir {
	case types.Right, types.Left:
		ex := x + size - eye*2
		if dir == types.Left {
			ex = x + eye
		}
		e1x, e2x = ex, ex
		e1y, e2y = y+size/3, y+size*2/3
	default:
		ey := y + size - eye*2
		if dir == types.Up {
			ey = y + eye
		}
		e1y, e2y = ey, ey
		e1x, e2x = x+size/3, x+size*2/3
	}
	rl.DrawCircle(e1x, e1y, eye/2, rl.Black)
	rl.DrawCircle(e2x, e2y, eye/2, rl.Black)
}

func (r *Renderer) drawFood(p types.Point) {
	half := r.cellSize / 2
	cx := r.offsetX + int32(p.X)*r.cellSize + half
	cy := r.offsetY + int32(p.Y)*r.cellSize + half
	rl.DrawCircle(cx, cy, float32(half-2), colorFood)
	rl.DrawCircle(cx-half/3, cy-half/3, float32(half)/4, colorShine)
}

func (r *Renderer) drawPanel(ctrl *game.Controller) {
	x := r.offsetX + r.gridWidth*r.cellSize + borderPadding*2
	y := r.offsetY
	rl.DrawText("Top Scores:", x, y, fontSize, rl.White)
	for i, hs := range ctrl.Scores() {
		line := fmt.Sprintf("%d. %-5s %5d", i+1, hs.Name, hs.Score)
		rl.DrawText(line, x, y+30+int32(i)*40, smallFont, rl.White)
		rl.DrawText(hs.Date.Local().Format("01-02 15:04"), x+16, y+48+int32(i)*40, 12, rl.Gray)
	}

	help := []string{"arrows/WASD: steer", "space: start/pause", "R: restart", "H: all scores", "C: clear scores"}
	for i, line := range help {
		rl.DrawText(line, x, r.offsetY+r.gridHeight*r.cellSize-int32(len(help)-i)*18, 14, colorBorder)
	}
}

func (r *Renderer) drawOverlay(ctrl *game.Controller, in *Input, snap game.Snapshot) {
	w := r.gridWidth * r.cellSize
	h := r.gridHeight * r.cellSize
	cy := r.offsetY + h/2

	switch {
	case in.mode == modeName:
		rl.DrawRectangle(r.offsetX, cy-60, w, 120, rl.Fade(rl.Black, 0.8))
		r.centered(fmt.Sprintf("Game Over! Your score: %d", ctrl.FinalScore()), cy-45, fontSize, rl.White)
		r.centered(fmt.Sprintf("Enter your name (max %d chars):", types.MaxNameRunes), cy-15, smallFont, rl.White)
		r.centered(string(in.name)+"_", cy+10, fontSize, colorHead)
		r.centered("Enter: OK   Esc: Cancel", cy+38, 14, rl.Gray)
	case in.mode == modeConfirmClear:
		rl.DrawRectangle(r.offsetX, cy-30, w, 60, rl.Fade(rl.Black, 0.8))
		r.centered("Clear all high scores? (Y/N)", cy-10, fontSize, colorWarning)
	case snap.State == types.Waiting:
		r.centered("Press SPACE to Start", cy-10, fontSize, rl.White)
	case snap.State == types.Paused:
		r.centered("Paused", cy-10, fontSize, rl.White)
	}
}

func (r *Renderer) drawScoreList(ctrl *game.Controller) {
	x := int32(borderPadding * 2)
	rl.DrawText("High Scores (any key to close)", x, borderPadding, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("%-4s %-5s %6s  %s", "Rank", "Name", "Score", "Date"), x, 40, smallFont, rl.Gray)
	for i, hs := range ctrl.AllScores() {
		line := fmt.Sprintf("%-4d %-5s %6d  %s", i+1, hs.Name, hs.Score, hs.Date.Local().Format("2006-01-02 15:04"))
		rl.DrawText(line, x, 62+int32(i)*18, smallFont, rl.White)
	}
}

func (r *Renderer) centered(text string, y, size int32, c rl.Color) {
	w := r.gridWidth * r.cellSize
	tw := rl.MeasureText(text, size)
	rl.DrawText(text, r.offsetX+(w-tw)/2, y, size, c)
}
