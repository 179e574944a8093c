package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"bullet-bunny/internal/app"
	"bullet-bunny/internal/audio"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/internal/platform/speaker"
	"bullet-bunny/internal/platform/tty"
	"bullet-bunny/internal/score"
	"bullet-bunny/internal/state"
)

func newSoundSink(settings config.Settings) (interfaces.SoundSink, func()) {
	if settings.Mute {
		return audio.NopSink{}, func() {}
	}
	sink, err := speaker.New(audio.NewBank(beep.SampleRate(config.SampleRate), settings.Volume))
	if err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio disabled: %v", err)
		return audio.NopSink{}, func() {}
	}
	return sink, sink.Close
}

func run(sm *state.StateMachine, renderer *tty.Renderer) {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	last := time.Now()
	for now := range ticker.C {
		sm.Update(now.Sub(last).Seconds())
		last = now
		if sm.Done() {
			return
		}
		sm.Draw(renderer)
		renderer.Show()
	}
}

func main() {
	logFile := setupLogging(os.Getenv("BULLET_BUNNY_DEBUG") == "1")
	if logFile != nil {
		defer logFile.Close()
	}

	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		log.Printf("using default settings: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	sink, closeSink := newSoundSink(settings)
	defer closeSink()

	opts := app.DefaultOptions()
	opts.Seed = settings.Seed
	game := app.NewGame(opts)
	audio.NewSoundSystem(game.EventDispatcher, sink)

	input := tty.NewInput(screen.Size, config.ScreenWidth, config.ScreenHeight)
	go input.Poll(screen)

	sm := state.NewStateMachine(game, input, score.NewFileStore(settings.HighScorePath))
	run(sm, tty.NewRenderer(screen, config.ScreenWidth, config.ScreenHeight))
	log.Printf("exiting, high score %d", game.Session().HighScore)
}
