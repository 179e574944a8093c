package state

import (
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/internal/ui"
)

// InstructionsState lists the controls. Cancel is the only way out.
type InstructionsState struct {
	sm *StateMachine
}

func NewInstructionsState(sm *StateMachine) *InstructionsState {
	return &InstructionsState{sm: sm}
}

func (s *InstructionsState) Enter() {}

func (s *InstructionsState) Update(deltaTime float64) {
	if s.sm.input.JustPressed(interfaces.ActionCancel) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *InstructionsState) Draw(r interfaces.Renderer) {
	w := s.sm.game.World.FieldWidth
	h := s.sm.game.World.FieldHeight
	r.Clear(config.BackgroundColor)
	ui.DrawCentered(r, w, "Instructions", 100, interfaces.TextLarge, config.TextColor)
	for i, line := range config.Instructions {
		ui.DrawCentered(r, w, line, float64(200+i*50), interfaces.TextSmall, config.TextColor)
	}
	ui.DrawCentered(r, w, "Press ESC to Return", h-100, interfaces.TextMedium, config.StartColor)
}

func (s *InstructionsState) Exit() {}
