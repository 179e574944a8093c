// internal/component/movement.go
package component

// Position is the top-left corner of an entity in field coordinates.
type Position struct {
	X, Y float64
}

// Velocity in field units per second. Positive DY points down the screen.
type Velocity struct {
	DX, DY float64
}

// Box is an axis-aligned bounding box.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Contains reports whether the point lies inside the box.
// The right and bottom edges are exclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Intersects reports whether two boxes overlap with a non-zero area.
// Boxes that only touch along an edge do not intersect.
func Intersects(a, b Box) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}
