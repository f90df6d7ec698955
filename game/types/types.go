package types

import "time"

// Point is a grid cell coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	if g.Width <= 0 || g.Height <= 0 {
		return 0
	}
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Directions
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Game constants
const (
	CellSize            = 20
	StartLength         = 3
	FoodPoints          = 10
	BaseMoveInterval    = 150 * time.Millisecond
	SpawnInterval       = 10 * time.Second // Cooldown before a new pickup may appear
	EffectDuration      = 5 * time.Second  // Lifetime of a collected effect
	EffectDisplayWindow = 5 * time.Second  // Normalisation window for effect bars
	MaxHistory          = 200              // Session records kept in stats
)
