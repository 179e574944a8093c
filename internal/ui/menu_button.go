// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"bullet-bunny/internal/component"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
)

// ButtonID identifies a main-menu button.
type ButtonID int

const (
	ButtonStart ButtonID = iota
	ButtonInstructions
	ButtonQuit
)

// MenuButton is a clickable label on the main menu.
type MenuButton struct {
	ID    ButtonID
	Rect  component.Box
	Text  string
	Color color.RGBA
}

// NewMenuButton centres a button horizontally in a field of fieldWidth.
func NewMenuButton(id ButtonID, text string, y, fieldWidth float64, c color.RGBA) MenuButton {
	return MenuButton{
		ID: id,
		Rect: component.Box{
			X: fieldWidth/2 - config.MenuButtonWidth/2,
			Y: y,
			W: config.MenuButtonWidth,
			H: config.MenuButtonHeight,
		},
		Text:  text,
		Color: c,
	}
}

// MenuLayout returns the three main-menu buttons, top to bottom.
func MenuLayout(fieldWidth float64) []MenuButton {
	return []MenuButton{
		NewMenuButton(ButtonStart, "START GAME", config.MenuStartY, fieldWidth, config.StartColor),
		NewMenuButton(ButtonInstructions, "INSTRUCTIONS", config.MenuInstructionsY, fieldWidth, config.TextColor),
		NewMenuButton(ButtonQuit, "QUIT", config.MenuQuitY, fieldWidth, config.QuitColor),
	}
}

// HitTest returns the button under (x, y), if any.
func HitTest(buttons []MenuButton, x, y float64) (ButtonID, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return 0, false
}

// Draw renders the label centred in the button's rect.
func (b MenuButton) Draw(r interfaces.Renderer) {
	r.DrawText(b.Text, b.Rect.X+b.Rect.W/2, b.Rect.Y, interfaces.TextMedium, b.Color, interfaces.AlignCenter)
}
