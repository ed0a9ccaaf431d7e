package manager

import (
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// maxPlacementAttempts bounds rejection sampling before falling back to a
// scan of the free cells.
const maxPlacementAttempts = 64

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager builds a placer for grid. A zero seed is replaced by the
// caller with a time based one; the manager itself never reads the clock.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (fm *FoodManager) Grid() types.Grid {
	return fm.grid
}

// Place returns a cell sampled uniformly from the grid cells not in
// occupied. The second result is false only when every cell is occupied.
func (fm *FoodManager) Place(occupied []types.Point) (types.Point, bool) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if fm.grid.Contains(p) {
			taken[p] = struct{}{}
		}
	}
	if len(taken) >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < maxPlacementAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if _, ok := taken[food]; !ok {
			return food, true
		}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(taken))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free[fm.rng.Intn(len(free))], true
}
