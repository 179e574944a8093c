// internal/interfaces/game_context.go
package interfaces

import (
	"image/color"

	"bullet-bunny/internal/component"
)

// SpriteID selects a sprite sheet.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteEnemy
)

// TextSize selects one of the three fonts.
type TextSize int

const (
	TextSmall TextSize = iota
	TextMedium
	TextLarge
)

// Align is the horizontal anchor of DrawText's x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Renderer receives one frame of draw calls: Clear, then sprites and rects,
// then text. Presenting the frame is left to the host.
type Renderer interface {
	Clear(c color.Color)
	DrawSprite(id SpriteID, frame int, box component.Box)
	FillRect(box component.Box, c color.Color)
	// DrawText draws s with its top edge at y.
	DrawText(s string, x, y float64, size TextSize, c color.Color, align Align)
}

// Sound names a sound effect.
type Sound int

const (
	SoundShot Sound = iota
	SoundExplosion
	SoundWave
	SoundRecord
	SoundGameOver
	SoundPause
)

// SoundSink plays sound effects without blocking.
type SoundSink interface {
	Play(s Sound)
}
