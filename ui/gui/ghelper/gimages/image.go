package gimages

import (
	"bytes"
	"clickchess/assets"
	"clickchess/src/base"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizePiece renders the SVG artwork of an asset key into a size x size image.
func RasterizePiece(name string, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid piece size %d", size)
	}
	data, err := assets.Piece(name)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// LoadPieceImages renders every asset key at the given size.
func LoadPieceImages(size int) (map[string]image.Image, error) {
	out := make(map[string]image.Image)
	for _, name := range base.AllAssetNames() {
		img, err := RasterizePiece(name, size)
		if err != nil {
			return nil, err
		}
		out[name] = img
	}
	return out, nil
}
