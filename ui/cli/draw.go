package cli

import (
	"clickchess/src/base"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Piece -> unicode glyph
func pieceGlyph(p base.Piece) string {
	glyphs := map[base.PieceType][2]string{
		base.King:   {"♔", "♚"},
		base.Queen:  {"♕", "♛"},
		base.Rook:   {"♖", "♜"},
		base.Bishop: {"♗", "♝"},
		base.Knight: {"♘", "♞"},
		base.Pawn:   {"♙", "♟"},
	}
	g, ok := glyphs[p.Type]
	if !ok {
		return "?"
	}
	if p.Side == base.Light {
		return g[0]
	}
	return g[1]
}

// PrintBoard draws the board rank 8 first. selected is -1 when nothing is
// selected.
func PrintBoard(w io.Writer, pieces []base.Piece, selected int) {
	var at [base.SquareCount]*base.Piece
	for i := range pieces {
		if sq := pieces[i].Square; sq >= 0 && sq < base.SquareCount {
			at[sq] = &pieces[i]
		}
	}

	lightTile := color.New(color.BgWhite, color.FgBlack)
	darkTile := color.New(color.BgHiBlack, color.FgHiWhite)
	marked := color.New(color.BgCyan, color.FgBlack)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			idx := rank*8 + file
			g := " "
			if p := at[idx]; p != nil {
				g = pieceGlyph(*p)
			}
			style := lightTile
			if base.SideFromIndex(idx) == base.Dark {
				style = darkTile
			}
			if idx == selected {
				style = marked
			}
			style.Fprintf(w, " %s ", g)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}
