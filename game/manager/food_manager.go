package manager

import (
	"snake-game/game/types"
)

type FoodManager struct {
	grid types.Grid
	rng  Rand
	food types.Point
}

func NewFoodManager(grid types.Grid, rng Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Spawn moves the food to a random free cell. On a full grid the food stays where it is.
func (fm *FoodManager) Spawn(occupied []types.Point) bool {
	pos, ok := PickFreeCell(fm.rng, fm.grid, occupied)
	if !ok {
		return false
	}
	fm.food = pos
	return true
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}
