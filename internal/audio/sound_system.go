package audio

import (
	"log"

	"bullet-bunny/internal/event"
	"bullet-bunny/internal/interfaces"
)

// NopSink discards every sound. Used when muted or when no device opened.
type NopSink struct{}

func (NopSink) Play(interfaces.Sound) {}

// SoundSystem turns game events into sound effects.
type SoundSystem struct {
	sink interfaces.SoundSink
}

var eventSounds = map[event.EventType]interfaces.Sound{
	event.BulletFired:     interfaces.SoundShot,
	event.EnemyDestroyed:  interfaces.SoundExplosion,
	event.WaveStarted:     interfaces.SoundWave,
	event.HighScoreBeaten: interfaces.SoundRecord,
	event.GameOver:        interfaces.SoundGameOver,
	event.PauseToggled:    interfaces.SoundPause,
}

// NewSoundSystem subscribes a sound system to every event that has a sound.
func NewSoundSystem(dispatcher *event.Dispatcher, sink interfaces.SoundSink) *SoundSystem {
	if sink == nil {
		sink = NopSink{}
	}
	s := &SoundSystem{sink: sink}
	for t := range eventSounds {
		dispatcher.Subscribe(t, s)
	}
	return s
}

func (s *SoundSystem) OnEvent(e event.Event) {
	sound, ok := eventSounds[e.Type]
	if !ok {
		log.Printf("sound system: unexpected event %s", e.Type)
		return
	}
	s.sink.Play(sound)
}

// Detach unsubscribes the system from dispatcher.
func (s *SoundSystem) Detach(dispatcher *event.Dispatcher) {
	for t := range eventSounds {
		dispatcher.Unsubscribe(t, s)
	}
}
