package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bullet-bunny/internal/interfaces"
)

var keyBindings = map[interfaces.Action][]ebiten.Key{
	interfaces.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	interfaces.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	interfaces.ActionFire:    {ebiten.KeySpace},
	interfaces.ActionPause:   {ebiten.KeyEscape},
	interfaces.ActionCancel:  {ebiten.KeyEscape},
	interfaces.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// Input reads the ebiten keyboard and mouse. Cursor positions are already
// in field coordinates because the game's Layout is the field size.
type Input struct {
	clicked bool
	clickX  float64
	clickY  float64
	closing bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Update() {
	in.clicked = false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.clicked = true
		in.clickX, in.clickY = float64(x), float64(y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.clicked = true
		in.clickX, in.clickY = float64(x), float64(y)
	}
	in.closing = ebiten.IsWindowBeingClosed()
}

func (in *Input) JustPressed(a interfaces.Action) bool {
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (in *Input) Held(a interfaces.Action) bool {
	for _, k := range keyBindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (in *Input) Clicked() (float64, float64, bool) {
	return in.clickX, in.clickY, in.clicked
}

func (in *Input) CloseRequested() bool {
	return in.closing
}
