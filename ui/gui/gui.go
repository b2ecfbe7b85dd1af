package gui

import (
	"clickchess/src"
	"clickchess/src/logx"
	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/gctx"
	"clickchess/ui/gui/gdraw"
	"clickchess/ui/gui/ghelper"
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	board *gdraw.GUIBoardDrawer
	ctx   *gctx.GUIGameContext
}

func NewGUI(b *src.GameBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	aw, err := ghelper.NewGUIAssetsWorker(int(math.Round(b.Grid().Scale)))
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(b, aw, cfg, logx)
	return &GUIProcessing{
		board: gdraw.NewGUIBoardDrawer(ctx),
		ctx:   ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("ClickChess")
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		gp.ctx.Logx.Info("exit on request")
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	return gp.board.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.board.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Camera.W, gp.ctx.Camera.H
}
