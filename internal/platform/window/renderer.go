package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"bullet-bunny/internal/assets"
	"bullet-bunny/internal/component"
	"bullet-bunny/internal/interfaces"
)

// Renderer draws onto the ebiten screen handed to Begin.
type Renderer struct {
	screen *ebiten.Image
	sheets map[interfaces.SpriteID]*Sheet
	faces  map[interfaces.TextSize]font.Face
}

func NewRenderer(player, enemy *Sheet, fonts assets.Fonts) *Renderer {
	return &Renderer{
		sheets: map[interfaces.SpriteID]*Sheet{
			interfaces.SpritePlayer: player,
			interfaces.SpriteEnemy:  enemy,
		},
		faces: map[interfaces.TextSize]font.Face{
			interfaces.TextSmall:  fonts.Small,
			interfaces.TextMedium: fonts.Medium,
			interfaces.TextLarge:  fonts.Large,
		},
	}
}

// Begin targets screen for the following draw calls.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) Clear(c color.Color) {
	r.screen.Fill(c)
}

// DrawSprite stretches the frame to fill box.
func (r *Renderer) DrawSprite(id interfaces.SpriteID, frame int, box component.Box) {
	sheet, ok := r.sheets[id]
	if !ok {
		return
	}
	img := sheet.Frame(frame)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	op.GeoM.Translate(box.X, box.Y)
	r.screen.DrawImage(img, op)
}

func (r *Renderer) FillRect(box component.Box, c color.Color) {
	vector.DrawFilledRect(r.screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), c, false)
}

func (r *Renderer) DrawText(s string, x, y float64, size interfaces.TextSize, c color.Color, align interfaces.Align) {
	face, ok := r.faces[size]
	if !ok || face == nil {
		return
	}
	bounds := text.BoundString(face, s)
	drawX := int(x) - bounds.Min.X
	if align == interfaces.AlignCenter {
		drawX = int(x) - bounds.Min.X - bounds.Dx()/2
	}
	baseline := int(y) + face.Metrics().Ascent.Ceil()
	text.Draw(r.screen, s, face, drawX, baseline, c)
}
