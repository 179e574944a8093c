package state

import (
	"log"

	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/internal/ui"
)

// GameOverState shows the end screen until the player acknowledges it.
type GameOverState struct {
	sm *StateMachine
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	return &GameOverState{sm: sm}
}

// Enter persists the high score.
func (s *GameOverState) Enter() {
	session := s.sm.game.Session()
	log.Printf("game over: score %d, wave %d, high score %d", session.Score, session.Wave, session.HighScore)
	s.sm.saveHighScore()
}

func (s *GameOverState) Update(deltaTime float64) {
	_, _, clicked := s.sm.input.Clicked()
	if clicked || s.sm.input.JustPressed(interfaces.ActionConfirm) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(r interfaces.Renderer) {
	w := s.sm.game.World.FieldWidth
	r.Clear(config.BackgroundColor)
	ui.DrawCentered(r, w, "GAME OVER", 300, interfaces.TextLarge, config.GameOverColor)
	ui.DrawCentered(r, w, "CLICK TO RESTART", 400, interfaces.TextMedium, config.TextColor)
}

func (s *GameOverState) Exit() {}
