package ghelper

import (
	"clickchess/src/base"
	"clickchess/ui/gui/ghelper/gfont"
	"clickchess/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	pieceImages map[string]*ebiten.Image
	fonts       *gfont.Fonts
}

// NewGUIAssetsWorker rasterises the piece artwork at the tile size.
func NewGUIAssetsWorker(tileSize int) (*GUIAssetsWorker, error) {
	imgs, err := gimages.LoadPieceImages(tileSize)
	if err != nil {
		return nil, err
	}
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	aw := &GUIAssetsWorker{pieceImages: make(map[string]*ebiten.Image, len(imgs)), fonts: fonts}
	for name, img := range imgs {
		aw.pieceImages[name] = ebiten.NewImageFromImage(img)
	}
	return aw, nil
}

func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieceImages[base.AssetName(p.Type, p.Side)]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
