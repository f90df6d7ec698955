package manager

import (
	"snake-game/game/types"
)

// Rand is the subset of a seedable generator the managers draw from
type Rand interface {
	Intn(n int) int
}

// FreeCells returns every cell of the grid not present in occupied.
// Enumeration is column-major (x outer, y inner), so the result is deterministic for a fixed occupancy set.
func FreeCells(grid types.Grid, occupied []types.Point) []types.Point {
	total := grid.Cells()
	if total == 0 {
		return nil
	}

	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, total)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

// PickFreeCell draws one free cell uniformly. ok is false on a full grid.
func PickFreeCell(rng Rand, grid types.Grid, occupied []types.Point) (types.Point, bool) {
	free := FreeCells(grid, occupied)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
