package window

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"bullet-bunny/internal/audio"
	"bullet-bunny/internal/interfaces"
)

// SoundPlayer plays pre-rendered effects through ebiten's audio context.
type SoundPlayer struct {
	ctx   *ebaudio.Context
	clips map[interfaces.Sound][]byte
}

// NewSoundPlayer renders every sound of bank once. Only one ebiten audio
// context may exist per process, so call this at most once.
func NewSoundPlayer(bank *audio.Bank) *SoundPlayer {
	p := &SoundPlayer{
		ctx:   ebaudio.NewContext(int(bank.SampleRate())),
		clips: make(map[interfaces.Sound][]byte),
	}
	for _, s := range audio.Sounds() {
		p.clips[s] = audio.RenderPCM(bank.Streamer(s))
	}
	return p
}

func (p *SoundPlayer) Play(s interfaces.Sound) {
	clip, ok := p.clips[s]
	if !ok || len(clip) == 0 {
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.Play()
}
