package gdraw

import (
	"clickchess/src/coord"
	"clickchess/src/selection"
	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gctx"
	"clickchess/ui/gui/ghelper"
	"clickchess/ui/gui/ghelper/gdialog"
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const hint = "Q quit  F3 debug  Tab theme  R reset  O open layout"

// GUIBoardDrawer draws the board and feeds left clicks to the session.
type GUIBoardDrawer struct {
	tileSize int

	// cached images, rebuilt on theme change
	tiles      [coord.SquareCount]*ebiten.Image
	frame      *ebiten.Image
	ring       *ebiten.Image
	hover      *ebiten.Image
	themeBuilt gbase.Palette

	debug *GUIDebugDrawer
}

func NewGUIBoardDrawer(ctx *gctx.GUIGameContext) *GUIBoardDrawer {
	bd := &GUIBoardDrawer{
		tileSize: int(math.Round(ctx.Builder.Grid().Scale)),
		debug:    NewGUIDebugDrawer(ctx.Config.Debug),
	}
	bd.buildImages(ctx)
	return bd
}

func (bd *GUIBoardDrawer) buildImages(ctx *gctx.GUIGameContext) {
	ts := bd.tileSize
	dark := ghelper.NewFilledImage(ts, ts, ctx.Theme.TileDark)
	light := ghelper.NewFilledImage(ts, ts, ctx.Theme.TileLight)
	for i := range bd.tiles {
		if ctx.Theme.Tile(i) == ctx.Theme.TileLight {
			bd.tiles[i] = light
		} else {
			bd.tiles[i] = dark
		}
	}
	side := ts*coord.BoardSide + 2*gbase.BoardMarg
	bd.frame = ghelper.RenderRoundedRect(side, side, 6, ctx.Theme.Frame, ctx.Theme.FrameStroke, 2)
	bd.ring = ghelper.RenderSelectionRing(ts, ctx.Theme.Accent, 4)
	bd.hover = ghelper.NewFilledImage(ts, ts, ctx.Theme.Hover)
	bd.themeBuilt = ctx.Theme
}

// cursor returns the pointer in world space, or false when the window has no
// focus or the pointer is outside it.
func cursor(ctx *gctx.GUIGameContext) (coord.Vec2, bool) {
	if !ebiten.IsFocused() {
		return coord.Vec2{}, false
	}
	mx, my := ebiten.CursorPosition()
	if !ctx.Camera.Contains(mx, my) {
		return coord.Vec2{}, false
	}
	return ctx.Camera.ScreenToWorld(float64(mx), float64(my)), true
}

func (bd *GUIBoardDrawer) Update(ctx *gctx.GUIGameContext) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return gbase.ErrExit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		bd.debug.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ctx.Theme == gbase.LightPalette {
			ctx.Theme = gbase.DarkPalette
		} else {
			ctx.Theme = gbase.LightPalette
		}
		ctx.Config.Theme = ctx.Theme.String()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := ctx.Builder.CreateFromLayout(ctx.Config.Layout); err != nil {
			ctx.Logx.Errorf("error reset board: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		bd.openLayout(ctx)
	}
	if bd.themeBuilt != ctx.Theme {
		bd.buildImages(ctx)
	}

	pos, ok := cursor(ctx)
	out := ctx.Builder.Click(selection.Input{
		Pressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		HasCursor: ok,
		Cursor:    pos,
	})
	bd.debug.Observe(pos, ok, out)
	return nil
}

// openLayout loads a layout file chosen in a native dialog. A bad file
// leaves the board as it was.
func (bd *GUIBoardDrawer) openLayout(ctx *gctx.GUIGameContext) {
	res, err := gdialog.OpenFile("Open layout")
	if err != nil {
		ctx.Logx.Warnf("open layout: %v", err)
		return
	}
	layout := strings.TrimSpace(string(res.Data))
	if err := ctx.Builder.CreateFromLayout(layout); err != nil {
		ctx.Logx.Errorf("error load layout %s: %v", res.Name, err)
		gdialog.ShowError("Layout", fmt.Sprintf("%s: %v", res.Name, err))
		return
	}
	ctx.Config.Layout = layout
}

func (bd *GUIBoardDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	grid := ctx.Builder.Grid()

	// frame around the tiles; tile 0 is the bottom-left one
	fx, _ := ctx.Camera.TileTopLeft(grid, 0)
	_, fy := ctx.Camera.TileTopLeft(grid, coord.SquareCount-1)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(fx-float64(gbase.BoardMarg), fy-float64(gbase.BoardMarg))
	screen.DrawImage(bd.frame, op)

	for i := 0; i < coord.SquareCount; i++ {
		x, y := ctx.Camera.TileTopLeft(grid, i)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(bd.tiles[i], op)
	}

	if pos, ok := cursor(ctx); ok {
		if i, ok := grid.ResolveSquare(pos); ok {
			x, y := ctx.Camera.TileTopLeft(grid, i)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			screen.DrawImage(bd.hover, op)
		}
	}

	for _, p := range ctx.Builder.Pieces() {
		img := ctx.AssetsWorker.Piece(p)
		if img == nil || !coord.IsValidIndex(p.Square) {
			continue
		}
		x, y := ctx.Camera.TileTopLeft(grid, p.Square)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	if p, ok := ctx.Builder.SelectedPiece(); ok {
		x, y := ctx.Camera.TileTopLeft(grid, p.Square)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(bd.ring, op)
	}

	text.Draw(screen, hint, ctx.AssetsWorker.Fonts().Normal, 8, ctx.Camera.H-10, ctx.Theme.Text)
	bd.debug.Draw(ctx, screen)
}
