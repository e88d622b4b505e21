package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check reports how the snake's head collided after its last advance
func (cm *CollisionManager) Check(s *entity.Snake) types.CollisionType {
	if cm.isSelfCollision(s) {
		return types.SelfCollision
	}
	if cm.isWallCollision(s.Head(), s.Direction) {
		return types.WallCollision
	}
	return types.NoCollision
}

// isSelfCollision checks the head against every other body cell
func (cm *CollisionManager) isSelfCollision(s *entity.Snake) bool {
	head := s.Head()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// isWallCollision only tests the edge the snake is moving toward. The head
// moves one cell per tick from inside the grid, so that is the only edge it
// can cross.
func (cm *CollisionManager) isWallCollision(head types.Point, dir types.Direction) bool {
	switch dir {
	case types.Up:
		return head.Y == cm.grid.Height
	case types.Right:
		return head.X == cm.grid.Width
	case types.Down:
		return head.Y < 0
	case types.Left:
		return head.X < 0
	}
	return false
}
