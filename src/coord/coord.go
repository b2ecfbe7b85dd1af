// Package coord maps square indexes to board-local world positions and back.
//
//	8| 56 57 58 59 60 61 62 63
//	7| 48 49 50 51 52 53 54 55
//	6| 40 41 42 43 44 45 46 47
//	5| 32 33 34 35 36 37 38 39
//	4| 24 25 26 27 28 29 30 31
//	3| 16 17 18 19 20 21 22 23
//	2| 8  9  10 11 12 13 14 15
//	1| 0  1  2  3  4  5  6  7
//	__ a  b  c  d  e  f  g  h
package coord

import (
	"fmt"
	"math"
)

// GridScale is the default cell size in world units.
const GridScale float64 = 50

const (
	BoardSide    = 8
	SquareCount  = BoardSide * BoardSide
	halfSquares  = BoardSide / 2
	invalidIndex = -1
)

// Vec2 is a position in board-local space, origin at the board centre, y up.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

func (v Vec2) String() string { return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y) }

// Splat returns a vector with both components set to s.
func Splat(s float64) Vec2 { return Vec2{X: s, Y: s} }

// Grid is the board transform for one cell size.
type Grid struct {
	Scale float64
}

func NewGrid(scale float64) Grid {
	if scale <= 0 {
		scale = GridScale
	}
	return Grid{Scale: scale}
}

// HalfBoard is half the board width: 4 cells.
func (g Grid) HalfBoard() float64 {
	return g.Scale * BoardSide / 2
}

// Offset moves square (0,0) so that the board is centred on the world origin.
func (g Grid) Offset() Vec2 {
	return Splat(-g.HalfBoard())
}

func (g Grid) originOffset() Vec2 {
	return Splat(g.Scale / 2)
}

// SquareToPosition returns the world position of square i. Only defined for 0..63.
func (g Grid) SquareToPosition(i int) Vec2 {
	file := i % BoardSide
	rank := (i - file) / BoardSide
	return Vec2{X: float64(file), Y: float64(rank)}.Scale(g.Scale).Add(g.Offset())
}

// PositionToSquare is the inverse of SquareToPosition. The cell coordinates are
// truncated toward zero and then made absolute, so it is not floor for
// negative input. Check IsOnBoard first on live pointer input.
func (g Grid) PositionToSquare(p Vec2) int {
	adjusted := p.Sub(g.Offset()).Add(g.originOffset()).Scale(1 / g.Scale)
	x := math.Abs(math.Trunc(adjusted.X))
	y := math.Abs(math.Trunc(adjusted.Y))
	return int(x) + int(y)*BoardSide
}

// IsOnBoard reports whether both axes lie within [-4*scale, 4*scale].
func (g Grid) IsOnBoard(p Vec2) bool {
	h := g.HalfBoard()
	return !(p.X < -h || p.X > h || p.Y < -h || p.Y > h)
}

// Snap returns the position of the square p resolves to.
func (g Grid) Snap(p Vec2) Vec2 {
	return g.SquareToPosition(g.PositionToSquare(p))
}

func IsValidIndex(i int) bool {
	return i >= 0 && i < SquareCount
}

// ResolveSquare combines the bounds test and the index transform. It returns
// false for positions off the board and for indexes the transform pushes past
// the last square near the far edges.
func (g Grid) ResolveSquare(p Vec2) (int, bool) {
	if !g.IsOnBoard(p) {
		return invalidIndex, false
	}
	i := g.PositionToSquare(p)
	if !IsValidIndex(i) {
		return invalidIndex, false
	}
	return i, true
}
