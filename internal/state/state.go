// internal/state/state.go
package state

import (
	"log"

	"bullet-bunny/internal/app"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/event"
	"bullet-bunny/internal/interfaces"
)

// State is one screen of the game.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(r interfaces.Renderer)
	Exit()
}

// StateMachine owns the current screen plus everything the screens share:
// the game, the input device and the high-score store.
type StateMachine struct {
	current       State
	game          *app.Game
	input         interfaces.Input
	store         interfaces.ScoreStore
	pauseCooldown float64
	done          bool
}

// NewStateMachine loads the stored high score into game and starts on the
// main menu.
func NewStateMachine(game *app.Game, input interfaces.Input, store interfaces.ScoreStore) *StateMachine {
	sm := &StateMachine{
		game:  game,
		input: input,
		store: store,
	}
	game.Session().HighScore = store.Load()
	sm.SetState(NewMenuState(sm))
	return sm
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Game returns the game driven by the machine.
func (sm *StateMachine) Game() *app.Game {
	return sm.game
}

// Update runs one tick. deltaTime is clamped to [0, MaxDeltaTime] so a
// stalled host cannot push entities through each other in one step.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.done {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	sm.input.Update()
	if sm.input.CloseRequested() {
		sm.Quit()
		return
	}
	if sm.pauseCooldown > 0 {
		sm.pauseCooldown -= deltaTime
	}
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw renders the current state.
func (sm *StateMachine) Draw(r interfaces.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}

// Quit persists the high score and marks the machine finished.
func (sm *StateMachine) Quit() {
	if sm.done {
		return
	}
	sm.saveHighScore()
	sm.done = true
}

// Done reports whether the player quit.
func (sm *StateMachine) Done() bool {
	return sm.done
}

// tryTogglePause reports whether a pause toggle may happen now and, if so,
// starts the cooldown.
func (sm *StateMachine) tryTogglePause(paused bool) bool {
	if sm.pauseCooldown > 0 {
		return false
	}
	sm.pauseCooldown = config.PauseCooldown
	sm.game.EventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: paused})
	return true
}

func (sm *StateMachine) saveHighScore() {
	if err := sm.store.Save(sm.game.Session().HighScore); err != nil {
		log.Printf("could not save high score: %v", err)
	}
}
