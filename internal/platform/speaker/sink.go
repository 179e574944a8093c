package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"bullet-bunny/internal/audio"
	"bullet-bunny/internal/interfaces"
)

// Sink mixes effects onto the default output device via beep's speaker.
type Sink struct {
	mu     sync.Mutex
	bank   *audio.Bank
	mixer  *beep.Mixer
	closed bool
}

// New opens the speaker at the bank's sample rate with a 100ms buffer.
func New(bank *audio.Bank) (*Sink, error) {
	rate := bank.SampleRate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Sink{
		bank:  bank,
		mixer: &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Sink) Play(snd interfaces.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	st := s.bank.Streamer(snd)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
