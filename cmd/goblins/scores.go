package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-goblins/internal/registry"
	"github.com/vovakirdan/tui-goblins/internal/storage"
)

var (
	flagRuns  bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores or run history",
	Long: `Display the best scores of a level, or of all levels when none is given.

Examples:
  goblins scores
  goblins scores graveyard
  goblins scores crypt --runs
  goblins scores crypt --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of high scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores and runs of the level")
}

func runScores(_ *cobra.Command, args []string) error {
	levelID, title := "", "All levels"
	if len(args) == 1 {
		levelID = args[0]
		g, err := registry.Create(levelID)
		if err != nil {
			return fmt.Errorf("unknown level %q (run 'goblins list' to see available levels)", levelID)
		}
		title = g.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if levelID == "" {
			return fmt.Errorf("--clear needs a level")
		}
		if err := store.ClearScores(levelID); err != nil {
			return err
		}
		logger.Info("scores cleared", "level", levelID)
		fmt.Printf("Cleared scores and runs of %s.\n", title)
		return nil
	case flagRuns:
		return printRuns(store, levelID, title)
	}
	return printScores(store, levelID, title)
}

func printScores(store *storage.Store, levelID, title string) error {
	scores, err := store.TopScores(levelID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, e.Score, e.LevelID, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if levelID != "" {
		if stats, err := store.Stats(levelID); err == nil && stats.Runs > 0 {
			fmt.Printf("\n%d runs, %d cleared, average %.0f\n", stats.Runs, stats.Wins, stats.AvgScore)
		}
	}
	return nil
}

func printRuns(store *storage.Store, levelID, title string) error {
	runs, err := store.RecentRuns(levelID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-10s  %-8s  %-6s  %-10s  %s\n", "Level", "Result", "Score", "Ticks", "Player", "Date")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-10s  %-8d  %-6d  %-10s  %s\n",
			r.LevelID, r.Outcome, r.Score, r.Ticks, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
