package cli

import (
	"bufio"
	"clickchess/src"
	"clickchess/src/base"
	"clickchess/src/coord"
	"clickchess/src/selection"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type DrawFunc func(w io.Writer, pieces []base.Piece, selected int)

type CLIProcessing struct {
	builder *src.GameBuilder
	layout  string
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
	prompt  bool
}

func NewCLI(b *src.GameBuilder, layout string, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{
		builder: b,
		layout:  layout,
		draw:    draw,
		in:      os.Stdin,
		out:     os.Stdout,
		prompt:  term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// SetIO swaps stdin/stdout, mostly for scripted sessions.
func (c *CLIProcessing) SetIO(in io.Reader, out io.Writer) {
	c.in, c.out = in, out
	c.prompt = false
	if f, ok := in.(*os.File); ok {
		c.prompt = term.IsTerminal(int(f.Fd()))
	}
}

const help = `Commands:
  click X Y   click at world position X Y (board centre is 0 0)
  e2 | sq e2  click the centre of a square
  print       redraw the board
  state       show the selection state
  layout      show the board as a layout string
  reset       restore the starting layout
  help        this text
  q           quit`

// RunLineMode reads one command per line until EOF or q.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Type 'help' for commands, 'q' to quit.")
	c.printPrompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "Q" || line == "quit" {
			return nil
		}
		if line != "" {
			c.exec(strings.Fields(line))
		}
		c.printPrompt()
	}
	return scanner.Err()
}

func (c *CLIProcessing) printPrompt() {
	if c.prompt {
		fmt.Fprint(c.out, "> ")
	}
}

func (c *CLIProcessing) exec(args []string) {
	switch args[0] {
	case "help", "?":
		fmt.Fprintln(c.out, help)
	case "print", "p":
		c.redraw()
	case "state":
		fmt.Fprintf(c.out, "State: %v\n", c.builder.State())
	case "layout":
		l, err := c.builder.Layout()
		if err != nil {
			fmt.Fprintf(c.out, "Layout: not expressible (%v)\n", err)
			return
		}
		fmt.Fprintf(c.out, "Layout: %s\n", l)
	case "reset":
		if err := c.builder.CreateFromLayout(c.layout); err != nil {
			fmt.Fprintf(c.out, "Error reset: %v\n", err)
			return
		}
		c.redraw()
	case "click":
		if len(args) != 3 {
			fmt.Fprintln(c.out, "Usage: click X Y")
			return
		}
		x, errX := strconv.ParseFloat(args[1], 64)
		y, errY := strconv.ParseFloat(args[2], 64)
		if errX != nil || errY != nil {
			fmt.Fprintf(c.out, "Invalid position: %s %s\n", args[1], args[2])
			return
		}
		c.report(c.builder.Click(selection.Click(coord.Vec2{X: x, Y: y})))
	case "sq":
		if len(args) != 2 {
			fmt.Fprintln(c.out, "Usage: sq e2")
			return
		}
		c.clickAlgebraic(args[1])
	default:
		c.clickAlgebraic(args[0])
	}
}

func (c *CLIProcessing) clickAlgebraic(s string) {
	sq, err := base.SquareFromAlgebraic(strings.ToLower(s))
	if err != nil {
		fmt.Fprintf(c.out, "Unknown command: %s\n", s)
		return
	}
	c.report(c.builder.ClickSquare(sq))
}

func (c *CLIProcessing) report(out selection.Outcome) {
	switch out.Kind {
	case selection.OffBoard:
		fmt.Fprintln(c.out, "Outside the board")
	case selection.EmptyClick:
		fmt.Fprintln(c.out, "Nothing to select there")
	case selection.Picked:
		fmt.Fprintf(c.out, "Selected %v\n", out.Piece)
	case selection.Dropped:
		fmt.Fprintf(c.out, "Moved %v\n", out.Piece)
	case selection.Captured:
		fmt.Fprintf(c.out, "Moved %v, removed %v\n", out.Piece, out.Victim)
	case selection.Abandoned:
		fmt.Fprintln(c.out, "Selected piece is gone, move abandoned")
	}
	if out.Changed() {
		c.redraw()
	}
}

func (c *CLIProcessing) redraw() {
	selected := -1
	if p, ok := c.builder.SelectedPiece(); ok {
		selected = p.Square
	}
	c.draw(c.out, c.builder.Pieces(), selected)
}
