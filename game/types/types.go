package types

import "fmt"

// Point is a cell on the grid. X is the column, Y the row; Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Cells is the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounded toward the bottom-right.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	DefaultGridWidth  = 20
	DefaultGridHeight = 20
	CellSize          = 20 // Pixels per cell in the window renderer

	StartLength  = 3
	FoodReward   = 10
	MaxNameRunes = 5

	LeaderboardCapacity = 30
	LeaderboardDisplay  = 5
)
