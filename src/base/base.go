package base

import "fmt"

const SquareCount = 64

type PieceType uint8

const (
	InvalidType PieceType = iota
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

func (t PieceType) String() string {
	switch t {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Pawn:
		return "pawn"
	default:
		return "invalid"
	}
}

type Side uint8

const (
	Light Side = iota
	Dark
)

func (s Side) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// PieceID is a stable, non-zero identifier of a piece on one board.
type PieceID uint32

type Piece struct {
	ID     PieceID
	Type   PieceType
	Side   Side
	Square int
}

func (p Piece) String() string {
	sq, err := AlgebraicFromSquare(p.Square)
	if err != nil {
		sq = fmt.Sprintf("#%d", p.Square)
	}
	return fmt.Sprintf("%s %s #%d at %s", p.Side, p.Type, p.ID, sq)
}

// Rune returns the layout character of the piece: lowercase Light, uppercase Dark.
func (p Piece) Rune() rune {
	r := TypeLetter(p.Type)
	if p.Side == Dark {
		return r - 'a' + 'A'
	}
	return r
}

func FileOf(i int) int {
	return i % 8
}

func RankOf(i int) int {
	return i / 8
}

// SideFromIndex is the tile colour of square i.
func SideFromIndex(i int) Side {
	file := i % 8
	rank := (i - file) / 8
	if (file+rank)%2 == 0 {
		return Light
	}
	return Dark
}

func PieceTypeFromRune(r rune) PieceType {
	switch r {
	case 'k', 'K':
		return King
	case 'q', 'Q':
		return Queen
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	case 'r', 'R':
		return Rook
	case 'p', 'P':
		return Pawn
	default:
		return InvalidType
	}
}

func SideFromRune(r rune) Side {
	if r >= 'A' && r <= 'Z' {
		return Dark
	}
	return Light
}

func TypeLetter(t PieceType) rune {
	switch t {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Rook:
		return 'r'
	case Pawn:
		return 'p'
	default:
		return '?'
	}
}

func SideLetter(s Side) rune {
	if s == Light {
		return 'l'
	}
	return 'd'
}

// AssetName is the artwork key of a piece: <type><side>t, e.g. "klt" or "pdt".
func AssetName(t PieceType, s Side) string {
	return string([]rune{TypeLetter(t), SideLetter(s), 't'})
}

// AllAssetNames lists the twelve keys every artwork set has to provide.
func AllAssetNames() []string {
	types := []PieceType{King, Queen, Bishop, Knight, Rook, Pawn}
	names := make([]string, 0, len(types)*2)
	for _, s := range []Side{Light, Dark} {
		for _, t := range types {
			names = append(names, AssetName(t, s))
		}
	}
	return names
}

func SquareFromAlgebraic(pos string) (int, error) {
	// 'a' ~ 'h' to number
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return -1, fmt.Errorf("invalid position %q", pos)
	}
	return int(pos[1]-'1')*8 + int(pos[0]-'a'), nil
}

func AlgebraicFromSquare(index int) (string, error) {
	if index < 0 || index >= SquareCount {
		return "", fmt.Errorf("invalid square index %d", index)
	}
	return string([]rune{rune(index%8 + 'a'), rune(index/8 + '1')}), nil
}
