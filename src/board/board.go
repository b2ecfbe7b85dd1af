// Package board holds the pieces of one session in an entity table keyed by
// a stable piece id.
package board

import (
	"clickchess/src/base"
	"clickchess/src/logic/convert/convlayout"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

var ErrUnknownPiece = errors.New("unknown piece")

type Board struct {
	pieces map[base.PieceID]*base.Piece
	nextID base.PieceID
}

func NewBoard() *Board {
	return &Board{pieces: make(map[base.PieceID]*base.Piece), nextID: 1}
}

// CreateFromLayout replaces the board contents with the pieces of layout.
func (b *Board) CreateFromLayout(layout string) error {
	placements, err := convlayout.Parse(layout)
	if err != nil {
		return fmt.Errorf("error parse layout: %w", err)
	}
	b.Clear()
	for _, p := range placements {
		b.Place(p.Type, p.Side, p.Square)
	}
	return nil
}

// Place adds a piece and returns it with its new id. Occupancy is not checked.
func (b *Board) Place(t base.PieceType, s base.Side, square int) base.Piece {
	p := &base.Piece{ID: b.nextID, Type: t, Side: s, Square: square}
	b.pieces[p.ID] = p
	b.nextID++
	return *p
}

func (b *Board) Clear() {
	b.pieces = make(map[base.PieceID]*base.Piece)
}

func (b *Board) ids() []base.PieceID {
	ids := maps.Keys(b.pieces)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PieceAt scans the table for the piece on square i.
func (b *Board) PieceAt(i int) (base.Piece, bool) {
	for _, id := range b.ids() {
		if p := b.pieces[id]; p.Square == i {
			return *p, true
		}
	}
	return base.Piece{}, false
}

func (b *Board) Get(id base.PieceID) (base.Piece, bool) {
	p, ok := b.pieces[id]
	if !ok {
		return base.Piece{}, false
	}
	return *p, true
}

// Move sets the square of piece id. Whoever draws the piece recomputes its
// position from the square.
func (b *Board) Move(id base.PieceID, dst int) error {
	p, ok := b.pieces[id]
	if !ok {
		return fmt.Errorf("move %d: %w", id, ErrUnknownPiece)
	}
	p.Square = dst
	return nil
}

func (b *Board) Remove(id base.PieceID) error {
	if _, ok := b.pieces[id]; !ok {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownPiece)
	}
	delete(b.pieces, id)
	return nil
}

// Pieces returns a snapshot ordered by id.
func (b *Board) Pieces() []base.Piece {
	out := make([]base.Piece, 0, len(b.pieces))
	for _, id := range b.ids() {
		out = append(out, *b.pieces[id])
	}
	return out
}

func (b *Board) Len() int {
	return len(b.pieces)
}

// Layout renders the current placement as a layout string.
func (b *Board) Layout() (string, error) {
	return convlayout.Format(b.Pieces())
}
