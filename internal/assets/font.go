package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"bullet-bunny/internal/config"
)

// Fonts holds the three faces used by the screens.
type Fonts struct {
	Small  font.Face
	Medium font.Face
	Large  font.Face
}

// LoadFonts parses the TrueType/OpenType font at path. An empty path selects
// the bundled Go Regular font. If path cannot be used the bundled font is
// returned together with the error so the caller can log it.
func LoadFonts(path string) (Fonts, error) {
	var loadErr error
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("read font %s: %w", path, err)
		} else {
			data = b
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		loadErr = fmt.Errorf("parse font %s: %w", path, err)
		if tt, err = opentype.Parse(goregular.TTF); err != nil {
			return Fonts{}, fmt.Errorf("parse bundled font: %w", err)
		}
	}

	var fonts Fonts
	for _, f := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fonts.Small, config.TextSizeSmall},
		{&fonts.Medium, config.TextSizeMedium},
		{&fonts.Large, config.TextSizeLarge},
	} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return Fonts{}, fmt.Errorf("create %.0fpt face: %w", f.size, err)
		}
		*f.dst = face
	}
	return fonts, loadErr
}
