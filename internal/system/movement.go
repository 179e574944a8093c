// internal/system/movement.go
package system

import "bullet-bunny/internal/entity"

// MovementSystem advances every entity by one tick.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// UpdatePlayer moves the player; direction is -1, 0 or 1.
func (s *MovementSystem) UpdatePlayer(deltaTime, direction float64) {
	s.world.Player.Advance(deltaTime, direction, s.world.FieldWidth)
}

// UpdateEnemies moves every enemy down the field.
func (s *MovementSystem) UpdateEnemies(deltaTime float64) {
	for _, e := range s.world.Enemies {
		e.Advance(deltaTime)
	}
}

// Direction folds the left/right key states into -1, 0 or 1.
func Direction(left, right bool) float64 {
	var dir float64
	if left {
		dir--
	}
	if right {
		dir++
	}
	return dir
}
