package gctx

import (
	"clickchess/src"
	"clickchess/src/logx"
	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.GameBuilder
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Camera       gbase.Camera
	Logx         logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Camera:       gbase.Camera{W: c.WindowW, H: c.WindowH},
		Logx:         l,
	}
}
