package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"bullet-bunny/internal/interfaces"
)

// Bank synthesizes a fresh streamer for each sound effect.
type Bank struct {
	rate      beep.SampleRate
	volume    float64
	noiseSeed int64
}

// NewBank creates a bank rendering at rate with a master volume in [0, 1].
func NewBank(rate beep.SampleRate, volume float64) *Bank {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Bank{rate: rate, volume: volume, noiseSeed: 7}
}

// SampleRate returns the rate every streamer is rendered at.
func (b *Bank) SampleRate() beep.SampleRate {
	return b.rate
}

// Sounds lists every effect the bank can produce.
func Sounds() []interfaces.Sound {
	return []interfaces.Sound{
		interfaces.SoundShot,
		interfaces.SoundExplosion,
		interfaces.SoundWave,
		interfaces.SoundRecord,
		interfaces.SoundGameOver,
		interfaces.SoundPause,
	}
}

// Streamer returns a new finite streamer for s, or nil for an unknown sound.
func (b *Bank) Streamer(s interfaces.Sound) beep.Streamer {
	var st beep.Streamer
	switch s {
	case interfaces.SoundShot:
		st = newVolume(tone(1400, 500, 90*time.Millisecond, WaveSquare, b.rate), 0.35)
	case interfaces.SoundExplosion:
		d := 280 * time.Millisecond
		noise := NewEnvelope(NewNoise(d, b.noiseSeed, b.rate), d, 2*time.Millisecond, 220*time.Millisecond, b.rate)
		thump := tone(120, 40, d, WaveSine, b.rate)
		st = beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.6))
	case interfaces.SoundWave:
		st = beep.Seq(
			tone(523.25, 523.25, 90*time.Millisecond, WaveSine, b.rate),
			tone(783.99, 783.99, 140*time.Millisecond, WaveSine, b.rate),
		)
	case interfaces.SoundRecord:
		st = newVolume(beep.Seq(
			tone(987.77, 987.77, 80*time.Millisecond, WaveSquare, b.rate),
			tone(1318.51, 1318.51, 200*time.Millisecond, WaveSquare, b.rate),
		), 0.4)
	case interfaces.SoundGameOver:
		st = newVolume(beep.Seq(
			tone(392, 392, 180*time.Millisecond, WaveSaw, b.rate),
			tone(311.13, 311.13, 180*time.Millisecond, WaveSaw, b.rate),
			tone(261.63, 180, 420*time.Millisecond, WaveSaw, b.rate),
		), 0.5)
	case interfaces.SoundPause:
		st = tone(660, 660, 60*time.Millisecond, WaveSine, b.rate)
	default:
		return nil
	}
	return &effects.Gain{Streamer: st, Gain: b.volume - 1}
}
