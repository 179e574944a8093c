// internal/component/projectile.go
package component

import "bullet-bunny/internal/types"

// Bullet is a player shot travelling straight up.
type Bullet struct {
	ID       types.EntityID
	Position Position
	Velocity Velocity
	Width    float64
	Height   float64
}

// NewBullet creates a bullet at (x, y) moving upward at speed.
func NewBullet(id types.EntityID, x, y, width, height, speed float64) *Bullet {
	return &Bullet{
		ID:       id,
		Position: Position{X: x, Y: y},
		Velocity: Velocity{DY: -speed},
		Width:    width,
		Height:   height,
	}
}

func (b *Bullet) Advance(deltaTime float64) {
	b.Position.X += b.Velocity.DX * deltaTime
	b.Position.Y += b.Velocity.DY * deltaTime
}

// Box returns the bullet's bounding box.
func (b *Bullet) Box() Box {
	return Box{X: b.Position.X, Y: b.Position.Y, W: b.Width, H: b.Height}
}

// Exited reports whether the bullet has passed above the top of the field.
func (b *Bullet) Exited() bool {
	return b.Position.Y < 0
}
