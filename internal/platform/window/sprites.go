package window

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"bullet-bunny/internal/assets"
)

// Sheet is one animation strip cut into frames.
type Sheet struct {
	Frames []*ebiten.Image
	FrameW int
	FrameH int
}

// Frame returns frame i wrapped into range, or nil for an empty sheet.
func (s *Sheet) Frame(i int) *ebiten.Image {
	if len(s.Frames) == 0 {
		return nil
	}
	if i < 0 {
		i = -i
	}
	return s.Frames[i%len(s.Frames)]
}

// LoadSheet reads the image at path and slices it into frameW x frameH
// frames. When the file is missing or too small for one frame a generated
// strip of fallbackFrames frames in fallback color is used instead.
func LoadSheet(path string, frameW, frameH, fallbackFrames int, fallback color.RGBA) *Sheet {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err == nil {
		if sheet := slice(img, frameW, frameH); len(sheet.Frames) > 0 {
			log.Printf("loaded %d frames from %s", len(sheet.Frames), path)
			return sheet
		}
		log.Printf("sprite sheet %s is smaller than one %dx%d frame, using placeholder", path, frameW, frameH)
	} else {
		log.Printf("could not load sprite sheet %s: %v, using placeholder", path, err)
	}
	strip := ebiten.NewImageFromImage(assets.Placeholder(frameW, frameH, fallbackFrames, fallback))
	return slice(strip, frameW, frameH)
}

func slice(img *ebiten.Image, frameW, frameH int) *Sheet {
	sheet := &Sheet{FrameW: frameW, FrameH: frameH}
	for _, r := range assets.FrameRects(img.Bounds(), frameW, frameH) {
		sheet.Frames = append(sheet.Frames, img.SubImage(r).(*ebiten.Image))
	}
	return sheet
}
