package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Mono   font.Face
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFonts builds faces from the Go fonts bundled with x/image.
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}
	if fonts.Normal, err = newFace(goregular.TTF, 14); err != nil {
		return nil, err
	}
	// debug overlay
	if fonts.Mono, err = newFace(gomono.TTF, 12); err != nil {
		return nil, err
	}
	return fonts, nil
}
