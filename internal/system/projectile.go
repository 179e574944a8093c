// internal/system/projectile.go
package system

import (
	"bullet-bunny/internal/component"
	"bullet-bunny/internal/entity"
	"bullet-bunny/internal/event"
)

// ProjectileSystem spawns bullets and moves them, pruning any that leave
// the top of the field.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Fire spawns one bullet from the player.
func (s *ProjectileSystem) Fire() {
	b := s.world.SpawnBullet()
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: b.ID})
}

// Update advances every bullet and removes the ones that exited, before
// collisions are checked for this tick.
func (s *ProjectileSystem) Update(deltaTime float64) {
	kept := s.world.Bullets[:0]
	for _, b := range s.world.Bullets {
		b.Advance(deltaTime)
		if b.Exited() {
			continue
		}
		kept = append(kept, b)
	}
	clearTail(s.world.Bullets, len(kept))
	s.world.Bullets = kept
}

// clearTail nils out the dropped pointers so they can be collected.
func clearTail(bullets []*component.Bullet, from int) {
	for i := from; i < len(bullets); i++ {
		bullets[i] = nil
	}
}
