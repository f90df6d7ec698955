package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckSnake reports the fatal collision of the snake's current head, if any
func (cm *CollisionManager) CheckSnake(snake *entity.Snake) CollisionType {
	if cm.IsWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if snake.HitsSelf() {
		return SelfCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position is outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// Wrap folds a position back onto the grid from the opposite edge
func (cm *CollisionManager) Wrap(pos types.Point) types.Point {
	return types.Point{
		X: wrap(pos.X, cm.grid.Width),
		Y: wrap(pos.Y, cm.grid.Height),
	}
}

func wrap(v, n int) int {
	if n <= 0 {
		return v
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsPickupCollision checks if a position overlaps an active pickup
func (cm *CollisionManager) IsPickupCollision(pos types.Point, pickup types.Pickup) bool {
	return pickup.Active && pos == pickup.Position
}
