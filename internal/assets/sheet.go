package assets

import (
	"image"
	"image/color"
	"image/draw"

	"bullet-bunny/pkg/render"
)

// FrameRects cuts bounds into frameW x frameH cells, row by row. Partial
// cells at the right or bottom edge are dropped.
func FrameRects(bounds image.Rectangle, frameW, frameH int) []image.Rectangle {
	if frameW <= 0 || frameH <= 0 {
		return nil
	}
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	rects := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := bounds.Min.X + col*frameW
			y := bounds.Min.Y + row*frameH
			rects = append(rects, image.Rect(x, y, x+frameW, y+frameH))
		}
	}
	return rects
}

// Placeholder builds a horizontal strip of frames standing in for a missing
// sprite sheet. Each frame is a filled body with a darker outline and a
// lighter band whose position moves with the frame index, so the animation
// still reads on screen.
func Placeholder(frameW, frameH, frames int, c color.RGBA) *image.RGBA {
	if frames < 1 {
		frames = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, frameW*frames, frameH))
	outline := render.DarkenColor(c)
	band := render.ScaleColor(c, 1.3)

	for i := 0; i < frames; i++ {
		cell := image.Rect(i*frameW, 0, (i+1)*frameW, frameH)
		draw.Draw(img, cell, image.NewUniform(outline), image.Point{}, draw.Src)
		draw.Draw(img, cell.Inset(1), image.NewUniform(c), image.Point{}, draw.Src)

		bandH := frameH / 8
		if bandH < 1 {
			bandH = 1
		}
		y := 1 + (frameH-2-bandH)*i/frames
		r := image.Rect(cell.Min.X+1, y, cell.Max.X-1, y+bandH).Intersect(cell.Inset(1))
		draw.Draw(img, r, image.NewUniform(band), image.Point{}, draw.Src)
	}
	return img
}
