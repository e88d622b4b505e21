package manager

import (
	"errors"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no free cell is left for food
var ErrBoardFull = errors.New("no free cell left on the board")

// Random draws before falling back to a scan of the free cells
const spawnAttemptsPerCell = 4

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Spawn picks a uniformly random cell not contained in occupied
func (fm *FoodManager) Spawn(occupied []types.Point) (types.Point, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for i := 0; i < fm.grid.Cells()*spawnAttemptsPerCell; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if _, ok := taken[food]; !ok {
			return food, nil
		}
	}

	free := fm.freeCells(taken)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(taken map[types.Point]struct{}) []types.Point {
	// taken may hold cells outside the grid
	free := make([]types.Point, 0, max(fm.grid.Cells()-len(taken), 0))
	for x := 0; x < fm.grid.Width; x++ {
		for y := 0; y < fm.grid.Height; y++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
