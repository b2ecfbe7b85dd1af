package gimages

import (
	"clickchess/src/base"
	"testing"
)

func TestLoadPieceImages(t *testing.T) {
	imgs, err := LoadPieceImages(48)
	if err != nil {
		t.Fatalf("LoadPieceImages: %v", err)
	}
	if len(imgs) != 12 {
		t.Fatalf("got %d images", len(imgs))
	}
	for name, img := range imgs {
		if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
			t.Fatalf("%s bounds = %v", name, b)
		}
		opaque := 0
		for y := 0; y < 48; y++ {
			for x := 0; x < 48; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
					opaque++
				}
			}
		}
		if opaque == 0 {
			t.Fatalf("%s rendered blank", name)
		}
	}
}

func TestRasterizeUnknown(t *testing.T) {
	if _, err := RasterizePiece("zzt", 32); err == nil {
		t.Fatalf("expected error for unknown asset")
	}
	if _, err := RasterizePiece(base.AssetName(base.King, base.Light), 0); err == nil {
		t.Fatalf("expected error for zero size")
	}
}
