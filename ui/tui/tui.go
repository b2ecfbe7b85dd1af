package tui

import (
	"clickchess/src"
	"clickchess/src/selection"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUIProcessing runs the session in a terminal with mouse support. A click
// inside a square is reported as a click at the centre of that square.
type TUIProcessing struct {
	builder *src.GameBuilder
	layout  string
	screen  tcell.Screen
	theme   Theme
	status  string
	pressed bool
}

func NewTUI(b *src.GameBuilder, layout string) (*TUIProcessing, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("error create screen: %w", err)
	}
	return NewTUIWithScreen(b, layout, s), nil
}

func NewTUIWithScreen(b *src.GameBuilder, layout string, s tcell.Screen) *TUIProcessing {
	return &TUIProcessing{
		builder: b,
		layout:  layout,
		screen:  s,
		theme:   DefaultTheme,
		status:  "click a piece; r reset, q quit",
	}
}

func (tp *TUIProcessing) Run() error {
	if err := tp.screen.Init(); err != nil {
		return fmt.Errorf("error init screen: %w", err)
	}
	defer tp.screen.Fini()
	tp.screen.SetStyle(defStyle)
	tp.screen.EnableMouse()
	tp.draw()

	for {
		if !tp.handle(tp.screen.PollEvent()) {
			return nil
		}
		tp.draw()
	}
}

// handle processes one event and reports whether the loop should go on.
func (tp *TUIProcessing) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventResize:
		tp.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Rune() == 'q' || ev.Rune() == 'Q':
			return false
		case ev.Rune() == 'r' || ev.Rune() == 'R':
			if err := tp.builder.CreateFromLayout(tp.layout); err != nil {
				tp.status = fmt.Sprintf("reset failed: %v", err)
			} else {
				tp.status = "board reset"
			}
		}
	case *tcell.EventMouse:
		// tcell repeats the button mask on motion; click on the press edge only
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !tp.pressed {
			tp.click(ev.Position())
		}
		tp.pressed = down
	}
	return true
}

func (tp *TUIProcessing) click(col, row int) {
	i, ok := squareAt(col, row)
	if !ok {
		// off the drawn board; let the machine see a point past the edge
		tp.report(tp.builder.Click(selection.Click(tp.builder.Grid().Offset().Scale(2))))
		return
	}
	tp.report(tp.builder.ClickSquare(i))
}

func (tp *TUIProcessing) report(out selection.Outcome) {
	switch out.Kind {
	case selection.OffBoard:
		tp.status = "outside the board"
	case selection.EmptyClick:
		tp.status = "nothing to select there"
	case selection.Picked:
		tp.status = fmt.Sprintf("selected %v", out.Piece)
	case selection.Dropped:
		tp.status = fmt.Sprintf("moved %v", out.Piece)
	case selection.Captured:
		tp.status = fmt.Sprintf("moved %v, removed %v", out.Piece, out.Victim)
	case selection.Abandoned:
		tp.status = "selected piece is gone"
	}
}

func (tp *TUIProcessing) draw() {
	tp.screen.Clear()
	selected := -1
	if p, ok := tp.builder.SelectedPiece(); ok {
		selected = p.Square
	}
	drawBoard(tp.screen, tp.builder.Pieces(), selected, tp.theme)
	drawText(tp.screen, leftMargin, topMargin+8+statusOffset, defStyle, tp.status)
	tp.screen.Show()
}
