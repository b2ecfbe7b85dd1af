package ui

import (
	"clickchess/src"
	"clickchess/src/logx"
	clic "clickchess/ui/cli"
	"clickchess/ui/gui"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/ghelper/gdialog"
	"clickchess/ui/tui"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "clickchess.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("layout") {
		cfg.Layout = c.String("layout")
	}
	if c.IsSet("cell") {
		cfg.SetCellSize(c.Float("cell"))
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	return cfg, nil
}

// session opens the log file and builds a session from the configured
// layout. The returned close func must be called on exit.
func session(c *cli.Command, onBadLayout func(error)) (*src.GameBuilder, *gconf.Config, func(), error) {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error open logfile: %w", err)
	}
	l := GetLogger(file, c)
	closer := func() {
		_ = l.Sync()
		file.Close()
	}

	cfg, err := loadConfig(c)
	if err != nil {
		closer()
		return nil, nil, nil, err
	}

	gb := src.NewBuilderBoard(l, cfg.Grid())
	if err := gb.StartFromLayout(cfg.Layout, os.Stderr); err != nil {
		if onBadLayout != nil {
			onBadLayout(err)
		}
		gb.Logger().Fatalf("error start layout %q: %v", cfg.Layout, err)
	}
	return gb, cfg, closer, nil
}

func RunGUI(c *cli.Command) error {
	gb, cfg, closer, err := session(c, func(err error) {
		gdialog.ShowError("ClickChess", fmt.Sprintf("invalid layout: %v", err))
	})
	if err != nil {
		return err
	}
	defer closer()

	g, err := gui.NewGUI(gb, cfg, gb.Logger())
	if err != nil {
		return err
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	gb, cfg, closer, err := session(c, nil)
	if err != nil {
		return err
	}
	defer closer()

	clic.EnableANSI()
	return clic.NewCLI(gb, cfg.Layout, clic.PrintBoard).RunLineMode()
}

func RunTUI(c *cli.Command) error {
	gb, cfg, closer, err := session(c, nil)
	if err != nil {
		return err
	}
	defer closer()

	t, err := tui.NewTUI(gb, cfg.Layout)
	if err != nil {
		return err
	}
	return t.Run()
}

func flags() []cli.Flag {
	lof := &cli.StringFlag{
		Name:  "layout",
		Usage: "starting layout string",
	}
	cef := &cli.FloatFlag{
		Name:  "cell",
		Usage: "grid scale, world units per square",
	}
	cof := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to JSON or YAML config",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	return []cli.Flag{lof, cef, cof, df, lf, cf}
}

func RunClickChess() error {
	report := func(mode string, run func(*cli.Command) error) cli.ActionFunc {
		return func(ctx context.Context, c *cli.Command) error {
			if err := run(c); err != nil {
				fmt.Printf("error %s: %v\n", mode, err)
			}
			return nil
		}
	}

	return (&cli.Command{
		Name:  "clickchess",
		Usage: "click-to-move chess board",
		// flags are inherited by the subcommands
		Flags: flags(),
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "window with mouse input",
				Action: report("GUI", RunGUI),
			},
			{
				Name:   "tui",
				Usage:  "terminal board with mouse input",
				Action: report("TUI", RunTUI),
			},
			{
				Name:   "cli",
				Usage:  "line mode",
				Action: report("CLI", RunCLI),
			},
			{
				Name:  "config",
				Usage: "write the effective config file",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig(c)
					if err != nil {
						fmt.Printf("error config: %v\n", err)
						return nil
					}
					if err := cfg.Save(c.String("config")); err != nil {
						fmt.Printf("error save config: %v\n", err)
						return nil
					}
					fmt.Printf("config written to %s\n", c.String("config"))
					return nil
				},
			},
		},
		Action: report("GUI", RunGUI),
	}).Run(context.Background(), os.Args)
}
