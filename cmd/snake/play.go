package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL - Turn
  Ctrl+S           - Save a screenshot (text and PNG)
  Q/Ctrl+C         - Quit

After a death, answer y/enter to play again or n/esc to quit.

Difficulty options:
  easy   - Half the starting speed and speed-up per food
  normal - Values from the config file
  hard   - One and a half times the starting speed and speed-up

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// The terminal must fit the board before the game starts.
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}
	bw, bh := tui.BoardSize(core.NewGrid(cfg.Grid.Width, cfg.Grid.Height))
	if width < bw || height < bh+1 {
		return fmt.Errorf("terminal is %dx%d, a %dx%d grid needs at least %dx%d",
			width, height, cfg.Grid.Width, cfg.Grid.Height, bw, bh+1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Timing.TickRate
	rt.FrameRate = cfg.Timing.FrameRate
	rt.Seed = flagSeed

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tick_rate", rt.TickRate,
		"frame_rate", rt.FrameRate,
		"speed", cfg.Motion.InitialSpeed,
		"seed", rt.Seed,
	)

	g := game.New(cfg, rt, logger)
	err = tui.Run(ctx, g, game.OptionsFromRuntime(rt), tui.Options{Logger: logger})
	if err != nil {
		logger.Error("game failed", "error", err)
		return err
	}
	logger.Info("finished", "score", g.Score(), "size", g.Size())
	return writeSummary(cmd.OutOrStdout(), g)
}

// writeSummary prints the final result once the alternate screen is gone.
func writeSummary(w io.Writer, g *game.Game) error {
	_, err := fmt.Fprintf(w, "Game has terminated successfully!\nScore: %d\nSize: %d\n", g.Score(), g.Size())
	return err
}

// newLogger returns a logger writing to path, or a discarding one if path is
// empty. The terminal belongs to the game, so logs never go to stdout.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closer, nil
}
