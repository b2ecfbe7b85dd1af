package convlayout

import (
	"clickchess/src/base"
	"errors"
	"fmt"
	"strings"
)

// StartLayout is the classic arrangement: ranks 1-2 light, ranks 7-8 dark.
// Each '/' skips to the start of the next rank.
const StartLayout string = "rnbqkbnrpppppppp////PPPPPPPPRNBQKBNR"

const RankSeparator = '/'

var (
	ErrInvalidPiece = errors.New("invalid layout piece")
	ErrOverflow     = errors.New("layout overflows the board")
)

type Placement struct {
	Type   base.PieceType
	Side   base.Side
	Square int
}

// Parse reads a layout string into placements in board order.
func Parse(layout string) ([]Placement, error) {
	var out []Placement
	i := 0
	for pos, ch := range layout {
		if ch == RankSeparator {
			i = i - (i % 8) + 8
			continue
		}
		t := base.PieceTypeFromRune(ch)
		if t == base.InvalidType {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidPiece, ch, pos)
		}
		if i >= base.SquareCount {
			return nil, fmt.Errorf("%w: piece %q lands on square %d", ErrOverflow, ch, i)
		}
		out = append(out, Placement{Type: t, Side: base.SideFromRune(ch), Square: i})
		i++
	}
	return out, nil
}

// Format writes placements back as a layout string. Only layouts without
// gaps inside a rank can be expressed; ErrInvalidPiece is returned otherwise.
func Format(pieces []base.Piece) (string, error) {
	var grid [base.SquareCount]rune
	for _, p := range pieces {
		if p.Square < 0 || p.Square >= base.SquareCount {
			return "", fmt.Errorf("%w: square %d", ErrOverflow, p.Square)
		}
		grid[p.Square] = p.Rune()
	}

	var b strings.Builder
	i := 0
	for rank := 0; rank < 8; rank++ {
		start := rank * 8
		end := start
		for end < start+8 && grid[end] != 0 {
			end++
		}
		for sq := end; sq < start+8; sq++ {
			if grid[sq] != 0 {
				return "", fmt.Errorf("%w: gap before square %d", ErrInvalidPiece, sq)
			}
		}
		if end == start {
			continue
		}
		// skip to this rank from the cursor left by the previous one
		for i < start {
			b.WriteRune(RankSeparator)
			i = i - (i % 8) + 8
		}
		for sq := start; sq < end; sq++ {
			b.WriteRune(grid[sq])
		}
		i = end
	}
	return b.String(), nil
}
