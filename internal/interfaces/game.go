package interfaces

// Action is a logical input the game reacts to, independent of the device.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionFire
	ActionPause
	ActionCancel
	ActionConfirm
)

// Input is sampled once per tick by the state machine.
type Input interface {
	// Update samples the device for the current tick.
	Update()
	// JustPressed reports a discrete press that happened this tick.
	JustPressed(a Action) bool
	// Held reports whether a continuous action is active this tick.
	Held(a Action) bool
	// Clicked returns the pointer click of this tick in field coordinates.
	Clicked() (x, y float64, ok bool)
	// CloseRequested reports that the user asked to quit the process.
	CloseRequested() bool
}

// ScoreStore persists the high score between runs.
type ScoreStore interface {
	Load() int
	Save(score int) error
}
