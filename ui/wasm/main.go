package main

import (
	"clickchess/src"
	"clickchess/src/logx"
	"clickchess/ui/gui"
	"clickchess/ui/gui/gbase/gconf"
	"fmt"
)

func GetLogger() *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString("debug"),
		false,
		true,
	)
	l.InitLogger(nil)
	return l
}

// RunGUI starts the browser build with the default config; there is no
// config file to read there.
func RunGUI() error {
	logger := GetLogger()
	cfg, err := gconf.NewGUIConfig("")
	if err != nil {
		return err
	}
	gb := src.NewBuilderBoard(logger, cfg.Grid())
	if err := gb.CreateFromLayout(cfg.Layout); err != nil {
		return fmt.Errorf("error init board: %w", err)
	}
	g, err := gui.NewGUI(gb, cfg, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func main() {
	if err := RunGUI(); err != nil {
		fmt.Println(err)
	}
}
