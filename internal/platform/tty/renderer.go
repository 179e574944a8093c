package tty

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"bullet-bunny/internal/component"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
	"bullet-bunny/pkg/render"
)

// Glyphs cycled by animation frame.
var spriteGlyphs = map[interfaces.SpriteID][]rune{
	interfaces.SpritePlayer: {'^', 'A'},
	interfaces.SpriteEnemy:  {'W', 'M'},
}

var spriteColors = map[interfaces.SpriteID]color.RGBA{
	interfaces.SpritePlayer: config.PlayerColor,
	interfaces.SpriteEnemy:  config.EnemyColor,
}

// Renderer scales the field onto the terminal grid. Each cell covers
// fieldW/cols by fieldH/rows field units.
type Renderer struct {
	screen tcell.Screen
	fieldW float64
	fieldH float64
	bg     tcell.Color
}

func NewRenderer(screen tcell.Screen, fieldW, fieldH float64) *Renderer {
	return &Renderer{
		screen: screen,
		fieldW: fieldW,
		fieldH: fieldH,
		bg:     tcell.ColorBlack,
	}
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}

func (r *Renderer) Clear(c color.Color) {
	r.bg = toTcell(c)
	style := tcell.StyleDefault.Background(r.bg)
	r.screen.SetStyle(style)
	r.screen.Clear()
}

func (r *Renderer) DrawSprite(id interfaces.SpriteID, frame int, box component.Box) {
	glyphs := spriteGlyphs[id]
	if len(glyphs) == 0 {
		return
	}
	if frame < 0 {
		frame = -frame
	}
	glyph := glyphs[frame%len(glyphs)]
	style := tcell.StyleDefault.Background(r.bg).Foreground(toTcell(spriteColors[id])).Bold(true)
	r.fill(box, glyph, style)
}

func (r *Renderer) FillRect(box component.Box, c color.Color) {
	r.fill(box, '|', tcell.StyleDefault.Background(r.bg).Foreground(toTcell(c)))
}

func (r *Renderer) DrawText(s string, x, y float64, size interfaces.TextSize, c color.Color, align interfaces.Align) {
	col, row := r.toCell(x, y)
	runes := []rune(s)
	if align == interfaces.AlignCenter {
		col -= len(runes) / 2
	}
	style := tcell.StyleDefault.Background(r.bg).Foreground(toTcell(c))
	if size == interfaces.TextLarge {
		style = style.Bold(true)
	}
	cols, rows := r.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for i, ch := range runes {
		if cx := col + i; cx >= 0 && cx < cols {
			r.screen.SetContent(cx, row, ch, nil, style)
		}
	}
}

// fill covers every cell the box touches, at least one cell, clipped to the
// screen.
func (r *Renderer) fill(box component.Box, ch rune, style tcell.Style) {
	x0, y0 := r.toCell(box.X, box.Y)
	x1, y1 := r.toCell(box.Right(), box.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	cols, rows := r.screen.Size()
	for y := max(y0, 0); y < min(y1, rows); y++ {
		for x := max(x0, 0); x < min(x1, cols); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) toCell(x, y float64) (int, int) {
	cols, rows := r.screen.Size()
	cx := math.Floor(x * float64(cols) / r.fieldW)
	cy := math.Floor(y * float64(rows) / r.fieldH)
	return int(cx), int(cy)
}

func toTcell(c color.Color) tcell.Color {
	rgba := render.ToRGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
