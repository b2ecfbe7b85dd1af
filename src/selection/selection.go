// Package selection turns primary-button clicks into piece selection and
// moves. There are two states: Idle and Selected(piece).
package selection

import (
	"clickchess/src/base"
	"clickchess/src/coord"
	"fmt"
)

// Board is the part of the board model the machine needs.
type Board interface {
	PieceAt(i int) (base.Piece, bool)
	Get(id base.PieceID) (base.Piece, bool)
	Move(id base.PieceID, dst int) error
	Remove(id base.PieceID) error
}

// State is Idle when it holds no piece. The zero value is Idle.
type State struct {
	piece base.PieceID
}

func Idle() State { return State{} }

func Selected(id base.PieceID) State { return State{piece: id} }

func (s State) IsIdle() bool { return s.piece == 0 }

// Piece returns the selected piece id.
func (s State) Piece() (base.PieceID, bool) {
	return s.piece, s.piece != 0
}

func (s State) String() string {
	if s.IsIdle() {
		return "Idle"
	}
	return fmt.Sprintf("Selected(#%d)", s.piece)
}

type Kind int

const (
	NoEvent Kind = iota
	OffBoard
	EmptyClick
	Picked
	Dropped
	Captured
	Abandoned
)

func (k Kind) String() string {
	switch k {
	case NoEvent:
		return "none"
	case OffBoard:
		return "off-board"
	case EmptyClick:
		return "empty"
	case Picked:
		return "picked"
	case Dropped:
		return "dropped"
	case Captured:
		return "captured"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Outcome describes what one click did.
type Outcome struct {
	Kind   Kind
	Index  int
	Piece  base.Piece // picked or moved piece
	From   int
	Victim base.Piece // removed occupant, zero when nothing was removed
}

// Changed reports whether the click touched the board or the state.
func (o Outcome) Changed() bool {
	switch o.Kind {
	case Picked, Dropped, Captured, Abandoned:
		return true
	}
	return false
}

// Step applies a click on square index to state s.
func Step(s State, b Board, index int) (State, Outcome) {
	out := Outcome{Index: index, From: -1}
	target, hasTarget := b.PieceAt(index)

	selected, ok := s.Piece()
	if !ok {
		if !hasTarget {
			out.Kind = EmptyClick
			return s, out
		}
		out.Kind = Picked
		out.Piece = target
		out.From = target.Square
		return Selected(target.ID), out
	}

	// the occupant goes first, even when the move itself is then abandoned
	out.Kind = Dropped
	if hasTarget && target.ID != selected {
		if err := b.Remove(target.ID); err == nil {
			out.Kind = Captured
			out.Victim = target
		}
	}

	mover, ok := b.Get(selected)
	if !ok {
		out.Kind = Abandoned
		return Idle(), out
	}
	out.From = mover.Square
	if err := b.Move(mover.ID, index); err != nil {
		out.Kind = Abandoned
		return Idle(), out
	}
	mover.Square = index
	out.Piece = mover
	return Idle(), out
}

// Input is one tick of pointer state from a presentation layer.
type Input struct {
	Pressed   bool // primary button went down this tick
	HasCursor bool
	Cursor    coord.Vec2
}

// Click is a primary press at p.
func Click(p coord.Vec2) Input {
	return Input{Pressed: true, HasCursor: true, Cursor: p}
}

// Machine owns the selection state of one session.
type Machine struct {
	grid  coord.Grid
	board Board
	state State
}

func NewMachine(grid coord.Grid, b Board) *Machine {
	return &Machine{grid: grid, board: b}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Reset() { m.state = Idle() }

// Handle runs one input through the protocol. Inputs without a press, without
// a cursor or outside the board leave state and board alone.
func (m *Machine) Handle(in Input) Outcome {
	if !in.Pressed || !in.HasCursor {
		return Outcome{Kind: NoEvent, Index: -1, From: -1}
	}
	index, ok := m.grid.ResolveSquare(in.Cursor)
	if !ok {
		return Outcome{Kind: OffBoard, Index: -1, From: -1}
	}
	var out Outcome
	m.state, out = Step(m.state, m.board, index)
	return out
}
