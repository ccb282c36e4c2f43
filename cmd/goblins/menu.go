package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-goblins/internal/platform/tui"
	"github.com/vovakirdan/tui-goblins/internal/registry"
	"github.com/vovakirdan/tui-goblins/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a level.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Scores and run history
  Q            - Quit

Examples:
  goblins menu
  goblins menu --difficulty easy
  goblins menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	opts := playOptions()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		g, err := registry.Create(result.LevelID)
		if err != nil {
			logger.Error("cannot create level", "level", result.LevelID, "err", err)
			continue
		}
		logger.Info("playing", "level", g.ID())
		if err := tui.Run(g, store, cfg, opts...); err != nil {
			return fmt.Errorf("running level: %w", err)
		}
	}
}
