package component

// Animation cycles through sprite-sheet frames on a fixed cadence,
// independently of movement.
type Animation struct {
	Frame         int
	FrameCount    int
	FrameDuration float64
	Timer         float64
}

// NewAnimation creates an animation starting at frame 0.
func NewAnimation(frameCount int, frameDuration float64) Animation {
	return Animation{FrameCount: frameCount, FrameDuration: frameDuration}
}

// Advance accumulates elapsed time and steps to the next frame once the
// frame duration is reached. The timer restarts from zero on each step.
func (a *Animation) Advance(deltaTime float64) {
	a.Timer += deltaTime
	if a.Timer < a.FrameDuration {
		return
	}
	if a.FrameCount > 0 {
		a.Frame = (a.Frame + 1) % a.FrameCount
	}
	a.Timer = 0
}
