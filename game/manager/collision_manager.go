package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // Food had nowhere left to go
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
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

// CheckCollision reports the fatal collision of the snake's current head, if
// any. Walls are checked before the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if cm.isSelfCollision(snake) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks whether pos sits exactly one cell past an edge. It
// compares against -1 and the grid size instead of using Grid.Contains: the
// head moves one cell per tick, so these are the only reachable outside cells.
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	if pos.X == cm.grid.Width || pos.X == -1 {
		return true
	}
	return pos.Y == cm.grid.Height || pos.Y == -1
}

// isSelfCollision checks the head against every other segment.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	return types.ContainsPoint(snake.Tail(), snake.GetHead())
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food.IsEatenBy(pos)
}
