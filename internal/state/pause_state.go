// internal/state/pause_state.go
package state

import (
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes play. No simulation ticks run while it is active.
type PauseState struct {
	sm            *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.sm.input.JustPressed(interfaces.ActionPause) && s.sm.tryTogglePause(false) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(r interfaces.Renderer) {
	w := s.sm.game.World.FieldWidth
	h := s.sm.game.World.FieldHeight
	r.Clear(config.BackgroundColor)
	ui.DrawCentered(r, w, "PAUSED", h/3, interfaces.TextLarge, config.TextColor)
	ui.DrawCentered(r, w, "Press ESC to Resume", h/2, interfaces.TextMedium, config.TextColor)
}

func (s *PauseState) Exit() {}
