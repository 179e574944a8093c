// internal/component/player.go
package component

import (
	"bullet-bunny/internal/types"
	"bullet-bunny/internal/utils"
)

// Player is the bunny at the bottom of the field. It only moves along X.
type Player struct {
	ID       types.EntityID
	Position Position
	Velocity Velocity
	Width    float64
	Height   float64
	Speed    float64 // units per second
	Anim     Animation
}

// Advance moves the player by direction*Speed*deltaTime and keeps it inside
// [0, fieldWidth-Width]. direction is -1 (left), 0 or 1 (right).
func (p *Player) Advance(deltaTime, direction, fieldWidth float64) {
	p.Velocity.DX = direction * p.Speed
	p.Position.X += p.Velocity.DX * deltaTime
	p.Position.X = utils.Clamp(p.Position.X, 0, fieldWidth-p.Width)
	p.Anim.Advance(deltaTime)
}

// Box returns the player's bounding box.
func (p *Player) Box() Box {
	return Box{X: p.Position.X, Y: p.Position.Y, W: p.Width, H: p.Height}
}

// Muzzle returns where a new bullet of the given width starts: centred on
// the player's top edge.
func (p *Player) Muzzle(bulletWidth float64) (float64, float64) {
	return p.Position.X + p.Width/2 - bulletWidth/2, p.Position.Y
}
