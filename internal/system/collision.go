// internal/system/collision.go
package system

import (
	"bullet-bunny/internal/component"
	"bullet-bunny/internal/entity"
	"bullet-bunny/internal/event"
)

// CollisionSystem resolves enemy/player, enemy/danger-zone and
// enemy/bullet contacts and keeps the score.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Update scans a snapshot of the enemies and bullets taken at the start of
// the call. Enemies are visited in order; each one consumes at most one
// bullet, the first live one in order that overlaps it. Removals are
// applied after the scan.
func (s *CollisionSystem) Update() {
	enemies := s.world.Enemies
	bullets := s.world.Bullets
	if len(enemies) == 0 {
		return
	}

	session := s.world.Session
	playerBox := s.world.Player.Box()
	wasOver := session.GameOver

	deadEnemies := make([]bool, len(enemies))
	spentBullets := make([]bool, len(bullets))
	hits := 0

	for i, enemy := range enemies {
		box := enemy.Box()
		if box.Bottom() >= s.world.FieldHeight || component.Intersects(box, playerBox) {
			session.GameOver = true
		}

		for j, bullet := range bullets {
			if spentBullets[j] {
				continue
			}
			if component.Intersects(bullet.Box(), box) {
				spentBullets[j] = true
				deadEnemies[i] = true
				hits++
				break
			}
		}
	}

	if hits > 0 {
		s.world.Enemies = compactEnemies(enemies, deadEnemies)
		s.world.Bullets = compactBullets(bullets, spentBullets)
		for i, dead := range deadEnemies {
			if !dead {
				continue
			}
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemies[i].ID})
			if session.AddPoint() {
				s.eventDispatcher.Dispatch(event.Event{Type: event.HighScoreBeaten, Data: session.HighScore})
			}
		}
	}

	if session.GameOver && !wasOver {
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: session.Score})
	}
}

func compactEnemies(enemies []*component.Enemy, dead []bool) []*component.Enemy {
	kept := make([]*component.Enemy, 0, len(enemies))
	for i, e := range enemies {
		if !dead[i] {
			kept = append(kept, e)
		}
	}
	return kept
}

func compactBullets(bullets []*component.Bullet, spent []bool) []*component.Bullet {
	kept := make([]*component.Bullet, 0, len(bullets))
	for i, b := range bullets {
		if !spent[i] {
			kept = append(kept, b)
		}
	}
	return kept
}
