package gbase

import (
	"clickchess/src/base"
	"clickchess/src/coord"
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW   int = 640
	WindowH   int = 640
	BoardMarg int = 8 // frame around the tiles, in pixels
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg          color.RGBA
	TileLight   color.RGBA
	TileDark    color.RGBA
	Frame       color.RGBA
	FrameStroke color.RGBA
	Accent      color.RGBA
	Hover       color.RGBA
	Text        color.RGBA
	CursorLine  color.RGBA
	SnapLine    color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

// Tile returns the colour of square i.
func (p Palette) Tile(i int) color.RGBA {
	if base.SideFromIndex(i) == base.Light {
		return p.TileLight
	}
	return p.TileDark
}

var LightPalette = Palette{
	Bg:          color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	TileLight:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	TileDark:    color.RGBA{0x19, 0x19, 0x70, 0xff}, // midnight blue
	Frame:       color.RGBA{0xff, 0xff, 0xff, 0xff},
	FrameStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	Accent:      color.RGBA{0x22, 0x88, 0xcc, 0xff},
	Hover:       color.RGBA{0x22, 0x88, 0xcc, 0x55},
	Text:        color.RGBA{0x22, 0x22, 0x22, 0xff},
	CursorLine:  color.RGBA{0x00, 0xc0, 0x00, 0xff},
	SnapLine:    color.RGBA{0xd0, 0x00, 0x00, 0xff},
}

var DarkPalette = Palette{
	Bg:          color.RGBA{0x12, 0x12, 0x12, 0xff},
	TileLight:   color.RGBA{0xb8, 0xb8, 0xc8, 0xff},
	TileDark:    color.RGBA{0x30, 0x34, 0x4a, 0xff},
	Frame:       color.RGBA{0x20, 0x20, 0x20, 0xff},
	FrameStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	Accent:      color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Hover:       color.RGBA{0x2a, 0xa1, 0xd1, 0x55},
	Text:        color.RGBA{0xee, 0xee, 0xee, 0xff},
	CursorLine:  color.RGBA{0x40, 0xff, 0x40, 0xff},
	SnapLine:    color.RGBA{0xff, 0x50, 0x50, 0xff},
}

// ---- Camera ----

// Camera maps window pixels to board world space: world origin at the window
// centre, y pointing up.
type Camera struct {
	W, H int
}

func (c Camera) ScreenToWorld(x, y float64) coord.Vec2 {
	return coord.Vec2{X: x - float64(c.W)/2, Y: float64(c.H)/2 - y}
}

func (c Camera) WorldToScreen(p coord.Vec2) (float64, float64) {
	return p.X + float64(c.W)/2, float64(c.H)/2 - p.Y
}

// Contains reports whether a window pixel is inside the viewport.
func (c Camera) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.W && y < c.H
}

// TileTopLeft is the window pixel of the top-left corner of square i, whose
// sprite is centred on the square position.
func (c Camera) TileTopLeft(g coord.Grid, i int) (float64, float64) {
	sx, sy := c.WorldToScreen(g.SquareToPosition(i))
	return sx - g.Scale/2, sy - g.Scale/2
}
