// internal/state/game_state.go
package state

import (
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/internal/system"
	"bullet-bunny/internal/ui"
)

// GameState is active play. The session must already be reset when it is
// first entered; re-entering from pause resumes where play stopped.
type GameState struct {
	sm *StateMachine
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{sm: sm}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	in := g.sm.input
	if in.JustPressed(interfaces.ActionPause) && g.sm.tryTogglePause(true) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	game := g.sm.game
	if in.JustPressed(interfaces.ActionFire) {
		game.Fire()
	}
	dir := system.Direction(in.Held(interfaces.ActionLeft), in.Held(interfaces.ActionRight))
	game.Step(deltaTime, dir)

	if game.Session().GameOver {
		g.sm.SetState(NewGameOverState(g.sm))
	}
}

func (g *GameState) Draw(r interfaces.Renderer) {
	world := g.sm.game.World
	r.Clear(config.BackgroundColor)

	p := world.Player
	r.DrawSprite(interfaces.SpritePlayer, p.Anim.Frame, p.Box())
	for _, b := range world.Bullets {
		r.FillRect(b.Box(), config.BulletColor)
	}
	for _, e := range world.Enemies {
		r.DrawSprite(interfaces.SpriteEnemy, e.Anim.Frame, e.Box())
	}

	ui.DrawHUD(r, world.Session)
}

func (g *GameState) Exit() {}
