// Package assets embeds the piece artwork. Files are named by
// base.AssetName plus ".svg".
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed pieces/*.svg
var pieceFiles embed.FS

const PieceExt = ".svg"

// Piece returns the SVG source for an asset key such as "klt".
func Piece(name string) ([]byte, error) {
	data, err := fs.ReadFile(pieceFiles, "pieces/"+name+PieceExt)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}
	return data, nil
}
