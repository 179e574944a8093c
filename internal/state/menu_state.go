// internal/state/menu_state.go
package state

import (
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/internal/ui"
)

// MenuState is the title screen with START GAME, INSTRUCTIONS and QUIT.
type MenuState struct {
	sm      *StateMachine
	buttons []ui.MenuButton
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm:      sm,
		buttons: ui.MenuLayout(sm.game.World.FieldWidth),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	x, y, ok := m.sm.input.Clicked()
	if !ok {
		return
	}
	id, hit := ui.HitTest(m.buttons, x, y)
	if !hit {
		return
	}
	switch id {
	case ui.ButtonStart:
		m.sm.game.Reset()
		m.sm.SetState(NewGameState(m.sm))
	case ui.ButtonInstructions:
		m.sm.SetState(NewInstructionsState(m.sm))
	case ui.ButtonQuit:
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(r interfaces.Renderer) {
	r.Clear(config.BackgroundColor)
	ui.DrawCentered(r, m.sm.game.World.FieldWidth, "BULLET BUNNY", config.MenuTitleY, interfaces.TextLarge, config.TextColor)
	for _, b := range m.buttons {
		b.Draw(r)
	}
}

func (m *MenuState) Exit() {}
