package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/game"
	"github.com/vovakirdan/tui-goblins/internal/platform/tui"
	"github.com/vovakirdan/tui-goblins/internal/registry"
	"github.com/vovakirdan/tui-goblins/internal/storage"
)

var flagLevelFile string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  A/D, Left/Right  - Run
  W/S, Up/Down     - Climb ladders
  Space, K         - Jump
  F, J             - Throw a torch
  P                - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Save a text screenshot
  Q, Esc           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  goblins play graveyard
  goblins play crypt --difficulty hard
  goblins play --level-file ./my-level.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a level from a YAML file instead of a built-in one")
}

func runPlay(_ *cobra.Command, args []string) error {
	g, err := selectGame(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("playing", "level", g.ID(), "seed", flagSeed)
	if err := tui.Run(g, store, terminalConfig(), playOptions()...); err != nil {
		return fmt.Errorf("running level: %w", err)
	}
	return nil
}

// selectGame resolves the level from --level-file or the registry.
func selectGame(args []string) (registry.Game, error) {
	if flagLevelFile != "" {
		level, err := config.LoadLevel(flagLevelFile)
		if err != nil {
			return nil, err
		}
		return game.New(level), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("missing level id (run 'goblins list' to see available levels)")
	}
	if !registry.Exists(args[0]) {
		return nil, fmt.Errorf("unknown level %q (run 'goblins list' to see available levels)", args[0])
	}
	return registry.Create(args[0])
}

// terminalConfig sizes the run to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func playOptions() []tui.Option {
	opts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithHoldTicks(game.LoadConfig().Render.HoldTicks),
	}
	if u, err := user.Current(); err == nil {
		opts = append(opts, tui.WithPlayer(u.Username))
	}
	return opts
}
