package tui

import (
	"clickchess/src/base"
	"clickchess/src/coord"

	"github.com/gdamore/tcell/v2"
)

const (
	leftMargin   = 4
	topMargin    = 2
	squareWidth  = 2
	filesLabel   = "a b c d e f g h"
	statusOffset = 2
)

// Theme holds the colours of the terminal board.
type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	Selected    tcell.Color
	Light       tcell.Color
	Dark        tcell.Color
	Label       tcell.Color
}

var DefaultTheme = Theme{
	SquareLight: tcell.ColorTan,
	SquareDark:  tcell.ColorSaddleBrown,
	Selected:    tcell.ColorTeal,
	Light:       tcell.ColorWhite,
	Dark:        tcell.ColorBlack,
	Label:       tcell.ColorGray,
}

var defStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// cellOf returns the top-left terminal cell of square i. Rank 8 is on top.
func cellOf(i int) (col, row int) {
	return leftMargin + base.FileOf(i)*squareWidth, topMargin + (coord.BoardSide - 1 - base.RankOf(i))
}

// squareAt maps a terminal cell back to a square index.
func squareAt(col, row int) (int, bool) {
	if col < leftMargin || row < topMargin {
		return 0, false
	}
	file := (col - leftMargin) / squareWidth
	rank := coord.BoardSide - 1 - (row - topMargin)
	if file >= coord.BoardSide || rank < 0 {
		return 0, false
	}
	return rank*coord.BoardSide + file, true
}

func pieceRune(p base.Piece) rune {
	switch p.Type {
	case base.King:
		return '♚'
	case base.Queen:
		return '♛'
	case base.Rook:
		return '♜'
	case base.Bishop:
		return '♝'
	case base.Knight:
		return '♞'
	case base.Pawn:
		return '♟'
	}
	return '?'
}

func squareBg(i int, selected int, t Theme) tcell.Color {
	if i == selected {
		return t.Selected
	}
	if base.SideFromIndex(i) == base.Light {
		return t.SquareLight
	}
	return t.SquareDark
}

// drawBoard draws the squares, the pieces and the file/rank labels.
func drawBoard(s tcell.Screen, pieces []base.Piece, selected int, t Theme) {
	var at [coord.SquareCount]*base.Piece
	for i := range pieces {
		if coord.IsValidIndex(pieces[i].Square) {
			at[pieces[i].Square] = &pieces[i]
		}
	}
	label := tcell.StyleDefault.Foreground(t.Label)
	for i := 0; i < coord.SquareCount; i++ {
		col, row := cellOf(i)
		bg := squareBg(i, selected, t)
		style := tcell.StyleDefault.Background(bg)
		r := ' '
		if p := at[i]; p != nil {
			r = pieceRune(*p)
			if p.Side == base.Light {
				style = style.Foreground(t.Light)
			} else {
				style = style.Foreground(t.Dark)
			}
		}
		s.SetContent(col, row, r, nil, style)
		s.SetContent(col+1, row, ' ', nil, tcell.StyleDefault.Background(bg))
	}
	for rank := 0; rank < coord.BoardSide; rank++ {
		_, row := cellOf(rank * coord.BoardSide)
		s.SetContent(leftMargin-2, row, rune('1'+rank), nil, label)
	}
	drawText(s, leftMargin, topMargin+coord.BoardSide, label, filesLabel)
}
