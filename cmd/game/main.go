// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"bullet-bunny/internal/app"
	"bullet-bunny/internal/assets"
	"bullet-bunny/internal/audio"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/internal/platform/window"
	"bullet-bunny/internal/score"
	"bullet-bunny/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	renderer       *window.Renderer
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Begin(screen)
	a.stateMachine.Draw(a.renderer)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newSoundSink(settings config.Settings) interfaces.SoundSink {
	if settings.Mute {
		return audio.NopSink{}
	}
	return window.NewSoundPlayer(audio.NewBank(beep.SampleRate(config.SampleRate), settings.Volume))
}

func main() {
	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		log.Printf("using default settings: %v", err)
	}

	player := window.LoadSheet(settings.PlayerSheetPath, config.PlayerFrameSize, config.PlayerFrameSize, config.DefaultPlayerFrames, config.PlayerColor)
	enemy := window.LoadSheet(settings.EnemySheetPath, config.EnemyFrameW, config.EnemyFrameH, config.DefaultEnemyFrames, config.EnemyColor)
	fonts, err := assets.LoadFonts(settings.FontPath)
	if err != nil {
		log.Printf("using bundled font: %v", err)
	}

	opts := app.DefaultOptions()
	opts.PlayerFrames = len(player.Frames)
	opts.EnemyFrames = len(enemy.Frames)
	opts.Seed = settings.Seed
	game := app.NewGame(opts)
	audio.NewSoundSystem(game.EventDispatcher, newSoundSink(settings))

	sm := state.NewStateMachine(game, window.NewInput(), score.NewFileStore(settings.HighScorePath))
	a := &AppGame{
		stateMachine:   sm,
		renderer:       window.NewRenderer(player, enemy, fonts),
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
