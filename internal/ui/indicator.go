// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"bullet-bunny/internal/component"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
)

// DrawHUD writes score, wave and high score in the top-left corner.
func DrawHUD(r interfaces.Renderer, s *component.Session) {
	lines := []struct {
		text string
		y    float64
	}{
		{fmt.Sprintf("Score: %d", s.Score), config.HUDScoreY},
		{fmt.Sprintf("Wave: %d", s.Wave), config.HUDWaveY},
		{fmt.Sprintf("High Score: %d", s.HighScore), config.HUDHighScore},
	}
	for _, l := range lines {
		r.DrawText(l.text, config.HUDMarginX, l.y, interfaces.TextSmall, config.TextColor, interfaces.AlignLeft)
	}
}

// DrawCentered draws a single line centred on the field's vertical axis.
func DrawCentered(r interfaces.Renderer, fieldWidth float64, s string, y float64, size interfaces.TextSize, c color.Color) {
	r.DrawText(s, fieldWidth/2, y, size, c, interfaces.AlignCenter)
}
