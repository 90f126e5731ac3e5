package ui

import (
	"context"
	"evilboard/src"
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/engine"
	"evilboard/src/engine/uci"
	"evilboard/src/logx"
	clic "evilboard/ui/cli"
	"evilboard/ui/gui"
	"evilboard/ui/gui/gbase/gconf"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

const logfile string = "evilboard.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// buildGame applies --fen / --moves to a fresh builder
func buildGame(c *cli.Command, logger logx.Logger) (*src.GameBuilder, error) {
	gb := src.NewBuilderBoard(logger)
	if fen := c.String("fen"); fen != "" {
		gb.CreateFree(fen)
		return gb, nil
	}
	if moves := c.String("moves"); moves != "" {
		if err := gb.CreateFromMoves(strings.Fields(moves)); err != nil {
			return nil, fmt.Errorf("error read moves: %w", err)
		}
	}
	return gb, nil
}

// startEngine opens the UCI engine at path; an empty path keeps random replies
func startEngine(path string, moveTime time.Duration, depth int, logger logx.Logger) (*uci.UCIExecutor, error) {
	if path == "" {
		return nil, nil
	}
	e := uci.NewUCIExec(logger, engine.SearchParams{MaxDepth: depth, MoveTime: moveTime}, path)
	if err := e.Init(); err != nil {
		return nil, fmt.Errorf("error start engine: %w", err)
	}
	return e, nil
}

func RunCLI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	gb, err := buildGame(c, logger)
	if err != nil {
		return err
	}
	cfg := board.DefaultConfig()
	cfg.ShowAnimations = false
	cfg.Dragging = false
	ctrl := board.NewController(cfg, nil, logger)
	s := src.NewSession(gb, ctrl, logger)
	s.SetPlayer(base.ColorFromString(c.String("color")), c.Bool("opponent"))
	moveTime := time.Duration(c.Int("movetime")) * time.Millisecond
	exe, err := startEngine(c.String("engine"), moveTime, int(c.Int("depth")), logger)
	if err != nil {
		return err
	}
	if exe != nil {
		defer exe.Close()
		s.SetEngine(exe)
	}
	s.Sync()

	clic.EnableANSI()
	cl := clic.NewCLI(s, clic.PrintBoard)
	if err := cl.Run(); err != nil {
		return fmt.Errorf("error evilboard: %w", err)
	}
	return nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	conf, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		logger.Errorf("error config: %v", err)
		return err
	}
	if c.IsSet("color") {
		conf.Orientation = c.String("color")
	}
	if c.IsSet("opponent") {
		conf.Opponent = c.Bool("opponent")
	}
	if c.IsSet("engine") {
		conf.Engine = c.String("engine")
	}
	if c.IsSet("movetime") {
		conf.EngineMoveMs = int(c.Int("movetime"))
	}
	if c.Bool("debug") {
		conf.Debug = true
	}

	gb, err := buildGame(c, logger)
	if err != nil {
		return err
	}
	var eng engine.Engine
	exe, err := startEngine(conf.Engine, conf.EngineMoveTime(), int(c.Int("depth")), logger)
	if err != nil {
		return err
	}
	if exe != nil {
		defer exe.Close()
		eng = exe
	}
	g, err := gui.NewGUI(gb, eng, conf, logger)
	if err != nil {
		return err
	}
	return g.Run()
}

func RunEvilBoard() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "placement for a free board (FEN, only the first field is read)",
	}
	mf := &cli.StringFlag{
		Name:  "moves",
		Usage: "UCI moves from the start position, space separated",
	}
	colf := &cli.StringFlag{
		Name:  "color",
		Usage: "side you play: white, black or empty for both",
	}
	of := &cli.BoolFlag{
		Name:  "opponent",
		Usage: "the other side replies, with the engine if one is given",
	}
	ef := &cli.StringFlag{
		Name:  "engine",
		Usage: "path to a UCI engine for the opponent, random moves without it",
	}
	mtf := &cli.IntFlag{
		Name:  "movetime",
		Value: 500,
		Usage: "engine search time per reply, ms",
	}
	dpf := &cli.IntFlag{
		Name:  "depth",
		Usage: "engine search depth limit, 0 for none",
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
	conff := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to GUI config (yaml or json)",
	}
	cliff := []cli.Flag{ff, mf, colf, of, ef, mtf, dpf, df, lf, cf}
	guiff := []cli.Flag{ff, mf, colf, of, ef, mtf, dpf, df, lf, cf, conff}

	runGUI := func(ctx context.Context, c *cli.Command) error {
		if err := RunGUI(c); err != nil {
			fmt.Printf("error GUI: %v\n", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "evilboard",
		Usage: "interactive chessboard",
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("%v\n", err)
					}
					return nil
				},
			},
			{
				Name:   "gui",
				Usage:  "open the board window",
				Flags:  guiff,
				Action: runGUI,
			},
		},
		Flags:  guiff,
		Action: runGUI,
	}).Run(context.Background(), os.Args)
}
