package selection

import (
	"clickchess/src/base"
	"clickchess/src/board"
	"clickchess/src/coord"
	"clickchess/src/logic/convert/convlayout"
	"testing"
)

func newClassic(t *testing.T) (*Machine, *board.Board, coord.Grid) {
	t.Helper()
	b := board.NewBoard()
	if err := b.CreateFromLayout(convlayout.StartLayout); err != nil {
		t.Fatalf("CreateFromLayout: %v", err)
	}
	g := coord.NewGrid(coord.GridScale)
	return NewMachine(g, b), b, g
}

func clickSquare(m *Machine, g coord.Grid, i int) Outcome {
	return m.Handle(Click(g.SquareToPosition(i)))
}

func TestIdleClickOnPieceSelects(t *testing.T) {
	m, b, g := newClassic(t)
	pawn, _ := b.PieceAt(12)

	out := clickSquare(m, g, 12)
	if out.Kind != Picked || out.Piece.ID != pawn.ID {
		t.Fatalf("outcome = %+v", out)
	}
	if id, ok := m.State().Piece(); !ok || id != pawn.ID {
		t.Fatalf("state = %v", m.State())
	}
	if p, _ := b.Get(pawn.ID); p.Square != 12 {
		t.Fatalf("selecting moved the piece to %d", p.Square)
	}
}

func TestSelectedClickOnEmptyMoves(t *testing.T) {
	m, b, g := newClassic(t)
	pawn, _ := b.PieceAt(12)
	clickSquare(m, g, 12)

	out := clickSquare(m, g, 28)
	if out.Kind != Dropped || out.From != 12 || out.Index != 28 {
		t.Fatalf("outcome = %+v", out)
	}
	if p, _ := b.Get(pawn.ID); p.Square != 28 {
		t.Fatalf("pawn on %d, want 28", p.Square)
	}
	if !m.State().IsIdle() {
		t.Fatalf("state = %v, want Idle", m.State())
	}
	if b.Len() != 32 {
		t.Fatalf("Len = %d", b.Len())
	}
}

func TestSelectedClickOnOccupiedCaptures(t *testing.T) {
	m, b, g := newClassic(t)
	queen, _ := b.PieceAt(3)
	victim, _ := b.PieceAt(51)
	clickSquare(m, g, 3)

	out := clickSquare(m, g, 51)
	if out.Kind != Captured || out.Victim.ID != victim.ID {
		t.Fatalf("outcome = %+v", out)
	}
	if _, ok := b.Get(victim.ID); ok {
		t.Fatalf("victim still on the board")
	}
	if p, _ := b.Get(queen.ID); p.Square != 51 {
		t.Fatalf("queen on %d", p.Square)
	}
	if b.Len() != 31 || !m.State().IsIdle() {
		t.Fatalf("Len = %d, state = %v", b.Len(), m.State())
	}
}

func TestCaptureOwnSide(t *testing.T) {
	m, b, g := newClassic(t)
	rook, _ := b.PieceAt(0)
	pawn, _ := b.PieceAt(8)
	clickSquare(m, g, 0)
	if out := clickSquare(m, g, 8); out.Kind != Captured {
		t.Fatalf("outcome = %+v", out)
	}
	if _, ok := b.Get(pawn.ID); ok {
		t.Fatalf("own pawn survived")
	}
	if p, _ := b.PieceAt(8); p.ID != rook.ID {
		t.Fatalf("a2 = %+v", p)
	}
}

func TestIdleClickOnEmptyIsNoop(t *testing.T) {
	m, b, g := newClassic(t)
	before := b.Pieces()
	out := clickSquare(m, g, 35)
	if out.Kind != EmptyClick || out.Changed() {
		t.Fatalf("outcome = %+v", out)
	}
	if !m.State().IsIdle() {
		t.Fatalf("state = %v", m.State())
	}
	after := b.Pieces()
	if len(after) != len(before) {
		t.Fatalf("piece count changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("piece changed: %v -> %v", before[i], after[i])
		}
	}
}

func TestClickSelectedPieceAgain(t *testing.T) {
	m, b, g := newClassic(t)
	knight, _ := b.PieceAt(1)
	clickSquare(m, g, 1)
	out := clickSquare(m, g, 1)
	if out.Kind != Dropped {
		t.Fatalf("outcome = %+v", out)
	}
	if p, ok := b.Get(knight.ID); !ok || p.Square != 1 {
		t.Fatalf("knight = %+v, %v", p, ok)
	}
	if !m.State().IsIdle() {
		t.Fatalf("state = %v", m.State())
	}
}

func TestOffBoardIsIdempotent(t *testing.T) {
	offBoard := []coord.Vec2{
		{X: -201, Y: 0},
		{X: 0, Y: 250},
		{X: 1e6, Y: -1e6},
		{X: 200, Y: 200}, // on the bounds but resolves past h8
	}
	for _, selected := range []bool{false, true} {
		m, b, g := newClassic(t)
		if selected {
			clickSquare(m, g, 12)
		}
		stateBefore := m.State()
		before := b.Pieces()
		for _, p := range offBoard {
			if out := m.Handle(Click(p)); out.Kind != OffBoard {
				t.Fatalf("click at %v: outcome %+v", p, out)
			}
		}
		if m.State() != stateBefore {
			t.Fatalf("state changed: %v -> %v", stateBefore, m.State())
		}
		after := b.Pieces()
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("board changed")
			}
		}
	}
}

func TestNoPressOrCursor(t *testing.T) {
	m, _, g := newClassic(t)
	pos := g.SquareToPosition(12)
	if out := m.Handle(Input{Pressed: false, HasCursor: true, Cursor: pos}); out.Kind != NoEvent {
		t.Fatalf("outcome = %+v", out)
	}
	if out := m.Handle(Input{Pressed: true, HasCursor: false, Cursor: pos}); out.Kind != NoEvent {
		t.Fatalf("outcome = %+v", out)
	}
	if !m.State().IsIdle() {
		t.Fatalf("state = %v", m.State())
	}
}

func TestMissingMoverAbandons(t *testing.T) {
	m, b, g := newClassic(t)
	pawn, _ := b.PieceAt(12)
	target, _ := b.PieceAt(52)
	clickSquare(m, g, 12)

	if err := b.Remove(pawn.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	out := clickSquare(m, g, 52)
	if out.Kind != Abandoned {
		t.Fatalf("outcome = %+v", out)
	}
	if !m.State().IsIdle() {
		t.Fatalf("state = %v", m.State())
	}
	if _, ok := b.Get(target.ID); ok {
		t.Fatalf("occupant of e7 survived the click")
	}
	if out.Victim.ID != target.ID {
		t.Fatalf("victim = %+v, want %+v", out.Victim, target)
	}
	if b.Len() != 30 {
		t.Fatalf("Len = %d, want 30", b.Len())
	}
}

func TestMissingMoverOnEmptySquare(t *testing.T) {
	m, b, g := newClassic(t)
	pawn, _ := b.PieceAt(12)
	clickSquare(m, g, 12)
	if err := b.Remove(pawn.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	out := clickSquare(m, g, 28)
	if out.Kind != Abandoned || out.Victim.ID != 0 {
		t.Fatalf("outcome = %+v", out)
	}
	if b.Len() != 31 || !m.State().IsIdle() {
		t.Fatalf("Len = %d, state = %v", b.Len(), m.State())
	}
}

func TestStepIsPure(t *testing.T) {
	b := board.NewBoard()
	p := b.Place(base.Bishop, base.Dark, 5)
	s, out := Step(Idle(), b, 5)
	if out.Kind != Picked || s != Selected(p.ID) {
		t.Fatalf("Step = %v, %+v", s, out)
	}
	s, out = Step(s, b, 40)
	if out.Kind != Dropped || !s.IsIdle() || out.Piece.Square != 40 {
		t.Fatalf("Step = %v, %+v", s, out)
	}
}

func TestStateString(t *testing.T) {
	if Idle().String() != "Idle" {
		t.Fatalf("Idle = %q", Idle().String())
	}
	if Selected(7).String() != "Selected(#7)" {
		t.Fatalf("Selected = %q", Selected(7).String())
	}
}
