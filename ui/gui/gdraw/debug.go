package gdraw

import (
	"clickchess/src/coord"
	"clickchess/src/selection"
	"clickchess/ui/gui/gctx"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GUIDebugDrawer is the F3 overlay: selection state, resolved index, cursor
// and two gizmo lines from the world origin.
type GUIDebugDrawer struct {
	enabled bool

	cursor    coord.Vec2
	hasCursor bool
	last      selection.Outcome
}

func NewGUIDebugDrawer(enabled bool) *GUIDebugDrawer {
	return &GUIDebugDrawer{enabled: enabled, last: selection.Outcome{Index: -1, From: -1}}
}

func (dd *GUIDebugDrawer) Toggle() {
	dd.enabled = !dd.enabled
}

// Observe records the pointer of this tick and the last click that did something.
func (dd *GUIDebugDrawer) Observe(pos coord.Vec2, ok bool, out selection.Outcome) {
	dd.cursor, dd.hasCursor = pos, ok
	if out.Kind != selection.NoEvent {
		dd.last = out
	}
}

func (dd *GUIDebugDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	if !dd.enabled {
		return
	}
	face := ctx.AssetsWorker.Fonts().Mono
	lineH := face.Metrics().Height.Ceil()

	lines := []string{
		fmt.Sprintf("State %v", ctx.Builder.State()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("Last: %v", dd.last.Kind),
	}
	if dd.hasCursor {
		grid := ctx.Builder.Grid()
		idx := grid.PositionToSquare(dd.cursor)
		snapped := grid.Snap(dd.cursor)
		lines = append(lines,
			fmt.Sprintf("Index: %d", idx),
			fmt.Sprintf("Cursor: %v", dd.cursor),
			fmt.Sprintf("Valid: %v", grid.IsOnBoard(dd.cursor)),
		)

		ox, oy := ctx.Camera.WorldToScreen(coord.Vec2{})
		cx, cy := ctx.Camera.WorldToScreen(dd.cursor)
		sx, sy := ctx.Camera.WorldToScreen(snapped)
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(cx), float32(cy), 1, ctx.Theme.CursorLine, true)
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(sx), float32(sy), 1, ctx.Theme.SnapLine, true)
	} else {
		lines = append(lines, "Cursor: unavailable")
	}

	y := 8 + lineH
	for _, l := range lines {
		text.Draw(screen, l, face, 8, y, ctx.Theme.Text)
		y += lineH
	}
}
