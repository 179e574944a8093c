package component

import "bullet-bunny/internal/types"

// Enemy descends straight down at a speed fixed when its wave is generated.
type Enemy struct {
	ID       types.EntityID
	Position Position
	Velocity Velocity
	Width    float64
	Height   float64
	Anim     Animation
}

// Advance moves the enemy along its velocity and steps its animation.
func (e *Enemy) Advance(deltaTime float64) {
	e.Position.X += e.Velocity.DX * deltaTime
	e.Position.Y += e.Velocity.DY * deltaTime
	e.Anim.Advance(deltaTime)
}

// Box returns the enemy's bounding box.
func (e *Enemy) Box() Box {
	return Box{X: e.Position.X, Y: e.Position.Y, W: e.Width, H: e.Height}
}

// Speed is the enemy's downward speed.
func (e *Enemy) Speed() float64 {
	return e.Velocity.DY
}
