package src

import (
	"clickchess/src/base"
	"clickchess/src/board"
	"clickchess/src/coord"
	"clickchess/src/logic/convert/convlayout"
	"clickchess/src/logx"
	"clickchess/src/selection"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// GameBuilder is one interactive session: a board, its selection state and
// the grid clicks are resolved against. Call a Create* method first.
type GameBuilder struct {
	id      uuid.UUID
	grid    coord.Grid
	board   *board.Board
	machine *selection.Machine
	logger  logx.Logger
}

func NewBuilderBoard(logger logx.Logger, grid coord.Grid) *GameBuilder {
	id := uuid.New()
	b := board.NewBoard()
	return &GameBuilder{
		id:      id,
		grid:    grid,
		board:   b,
		machine: selection.NewMachine(grid, b),
		logger:  logger.With("session", id.String()),
	}
}

func (gb *GameBuilder) CreateClassic() error {
	gb.logger.Debug("create classic game")
	return gb.CreateFromLayout(convlayout.StartLayout)
}

// CreateFromLayout resets the board and the selection. An error here means
// the board is undefined and the session must not start.
func (gb *GameBuilder) CreateFromLayout(layout string) error {
	gb.logger.Debugf("create game by layout: %v", layout)
	if err := gb.board.CreateFromLayout(layout); err != nil {
		return err
	}
	gb.machine.Reset()
	gb.logger.Infof("board ready with %d pieces", gb.board.Len())
	return nil
}

// StartFromLayout is CreateFromLayout for command entry points: a bad layout
// is also written to w, since the log may go only to a file.
func (gb *GameBuilder) StartFromLayout(layout string, w io.Writer) error {
	if err := gb.CreateFromLayout(layout); err != nil {
		fmt.Fprintf(w, "error start layout %q: %v\n", layout, err)
		return err
	}
	return nil
}

// Click feeds one tick of pointer input to the selection machine.
func (gb *GameBuilder) Click(in selection.Input) selection.Outcome {
	out := gb.machine.Handle(in)
	gb.logOutcome(in, out)
	return out
}

// ClickSquare clicks the centre of square i.
func (gb *GameBuilder) ClickSquare(i int) selection.Outcome {
	return gb.Click(selection.Click(gb.grid.SquareToPosition(i)))
}

func (gb *GameBuilder) logOutcome(in selection.Input, out selection.Outcome) {
	switch out.Kind {
	case selection.NoEvent:
	case selection.OffBoard:
		gb.logger.Debugf("click at %v outside the board", in.Cursor)
	case selection.EmptyClick:
		gb.logger.Debugf("click on empty %s", square(out.Index))
	case selection.Picked:
		gb.logger.Infof("select %v", out.Piece)
	case selection.Dropped:
		gb.logger.Infof("move from %s to %s: %v", square(out.From), square(out.Index), out.Piece)
	case selection.Captured:
		gb.logger.Infof("move from %s to %s: %v, removed %v", square(out.From), square(out.Index), out.Piece, out.Victim)
	case selection.Abandoned:
		if out.Victim.ID != 0 {
			gb.logger.Warnf("selected piece is gone, drop on %s abandoned, removed %v", square(out.Index), out.Victim)
		} else {
			gb.logger.Warnf("selected piece is gone, drop on %s abandoned", square(out.Index))
		}
	}
}

func square(i int) string {
	s, err := base.AlgebraicFromSquare(i)
	if err != nil {
		return fmt.Sprintf("#%d", i)
	}
	return s
}

func (gb *GameBuilder) State() selection.State {
	return gb.machine.State()
}

// SelectedPiece returns the currently selected piece, if it still exists.
func (gb *GameBuilder) SelectedPiece() (base.Piece, bool) {
	id, ok := gb.machine.State().Piece()
	if !ok {
		return base.Piece{}, false
	}
	return gb.board.Get(id)
}

func (gb *GameBuilder) Board() *board.Board {
	return gb.board
}

func (gb *GameBuilder) Pieces() []base.Piece {
	return gb.board.Pieces()
}

func (gb *GameBuilder) Grid() coord.Grid {
	return gb.grid
}

func (gb *GameBuilder) SessionID() string {
	return gb.id.String()
}

// Layout returns the board as a layout string, or an error when a rank has
// gaps the format cannot express.
func (gb *GameBuilder) Layout() (string, error) {
	return gb.board.Layout()
}

func (gb *GameBuilder) Logger() logx.Logger {
	return gb.logger
}
