package cli

import (
	"bytes"
	"clickchess/src"
	"clickchess/src/base"
	"clickchess/src/coord"
	"clickchess/src/logic/convert/convlayout"
	"clickchess/src/logx"
	"io"
	"strings"
	"testing"
)

func run(t *testing.T, script string) (*src.GameBuilder, string) {
	t.Helper()
	gb := src.NewBuilderBoard(logx.NewNop(), coord.NewGrid(coord.GridScale))
	if err := gb.CreateClassic(); err != nil {
		t.Fatalf("CreateClassic: %v", err)
	}
	c := NewCLI(gb, convlayout.StartLayout, func(io.Writer, []base.Piece, int) {})
	var out bytes.Buffer
	c.SetIO(strings.NewReader(script), &out)
	if err := c.RunLineMode(); err != nil {
		t.Fatalf("RunLineMode: %v", err)
	}
	return gb, out.String()
}

func TestMoveBySquares(t *testing.T) {
	gb, out := run(t, "e2\ne4\nq\n")
	if !strings.Contains(out, "Selected light pawn") || !strings.Contains(out, "Moved light pawn") {
		t.Fatalf("output:\n%s", out)
	}
	if p, ok := gb.Board().PieceAt(28); !ok || p.Type != base.Pawn {
		t.Fatalf("e4 = %+v, %v", p, ok)
	}
}

func TestClickWorldPositions(t *testing.T) {
	// d1 queen to d7 by world coordinates
	gb, out := run(t, "click -50 -200\nclick -50 100\nstate\n")
	if !strings.Contains(out, "removed dark pawn") {
		t.Fatalf("output:\n%s", out)
	}
	if p, _ := gb.Board().PieceAt(51); p.Type != base.Queen {
		t.Fatalf("d7 = %+v", p)
	}
	if !strings.Contains(out, "State: Idle") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestOffBoardAndErrors(t *testing.T) {
	_, out := run(t, "click 900 0\nclick a b\nzz\nsq\n")
	for _, want := range []string{"Outside the board", "Invalid position", "Unknown command: zz", "Usage: sq"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestResetAndLayout(t *testing.T) {
	gb, out := run(t, "a2\na3\nreset\nlayout\n")
	if !strings.Contains(out, "Layout: "+convlayout.StartLayout) {
		t.Fatalf("output:\n%s", out)
	}
	if gb.Board().Len() != 32 {
		t.Fatalf("Len = %d", gb.Board().Len())
	}
}

func TestPrintBoard(t *testing.T) {
	var buf bytes.Buffer
	PrintBoard(&buf, []base.Piece{{ID: 1, Type: base.King, Side: base.Light, Square: 4}}, 4)
	s := buf.String()
	if !strings.Contains(s, "♔") || !strings.Contains(s, "a  b  c") {
		t.Fatalf("board:\n%s", s)
	}
}
