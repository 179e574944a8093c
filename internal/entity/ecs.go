// internal/entity/ecs.go
package entity

import (
	"bullet-bunny/internal/component"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/types"
)

// World owns every live entity and the session counters. Systems receive it
// by pointer; nothing about a running game lives in package globals.
type World struct {
	NextID      types.EntityID
	FieldWidth  float64
	FieldHeight float64
	Player      *component.Player
	Enemies     []*component.Enemy
	Bullets     []*component.Bullet
	Session     *component.Session
}

// NewWorld creates a world with the player standing near the bottom centre.
// playerFrames is the number of frames in the player's sprite sheet.
func NewWorld(fieldWidth, fieldHeight float64, playerFrames int) *World {
	w := &World{
		NextID:      1,
		FieldWidth:  fieldWidth,
		FieldHeight: fieldHeight,
		Enemies:     make([]*component.Enemy, 0, 16),
		Bullets:     make([]*component.Bullet, 0, 32),
		Session:     &component.Session{Wave: 1},
	}
	w.Player = &component.Player{
		ID: w.NewEntity(),
		Position: component.Position{
			X: fieldWidth/2 - config.PlayerWidth/2,
			Y: fieldHeight - config.PlayerOffsetY,
		},
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Speed:  config.PlayerSpeed,
		Anim:   component.NewAnimation(playerFrames, config.PlayerFrameDuration),
	}
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// ClearEnemies drops every active enemy.
func (w *World) ClearEnemies() {
	w.Enemies = w.Enemies[:0]
}

// ClearProjectiles drops every bullet in flight.
func (w *World) ClearProjectiles() {
	w.Bullets = w.Bullets[:0]
}

// SpawnBullet fires one bullet from the player's muzzle.
func (w *World) SpawnBullet() *component.Bullet {
	x, y := w.Player.Muzzle(config.BulletWidth)
	b := component.NewBullet(w.NewEntity(), x, y, config.BulletWidth, config.BulletHeight, config.BulletSpeed)
	w.Bullets = append(w.Bullets, b)
	return b
}
