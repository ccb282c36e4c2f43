// goblins is a Ghosts'n Goblins style platformer for the terminal.
//
// Usage:
//
//	goblins list               - List available levels
//	goblins play <level>       - Play a level
//	goblins menu               - Pick levels interactively
//	goblins serve              - Start SSH server for remote play
//	goblins scores [level]     - Show high scores or run history
//	goblins simulate <level>   - Run a level headless and stream frames
//	goblins inspect <file>     - Summarize a recorded frame stream
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.goblins/scores.db)
//	--config <path>     - Use a custom tuning file
//	--difficulty <name> - easy, normal, hard or fixed
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/game"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

// logger writes to ~/.goblins/goblins.log so it never draws over the game.
var logger = log.New(os.Stderr)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goblins",
	Short: "Ghosts & Goblins - a graveyard platformer in your terminal",
	Long: `Guide the knight through graveyards and crypts full of zombies,
carnivorous plants and magicians. Throw torches, climb ladders and reach
the exit before your lives run out.

Available commands:
  list      - Show all available levels
  play      - Play a specific level directly
  menu      - Interactive level picker
  serve     - Start SSH server for remote play
  scores    - View high scores and past runs
  simulate  - Run a level without a terminal and stream frames
  inspect   - Summarize a recorded frame stream

Examples:
  goblins list
  goblins play graveyard
  goblins menu --difficulty hard
  goblins serve --ssh :2222
  goblins simulate crypt --ticks 900 --hold Right --out run.msgpack`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.goblins/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(inspectCmd)
}

// setup configures logging and the tuning shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if dir := config.UserDir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "goblins.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				logger.SetOutput(f)
				logger.SetReportTimestamp(true)
			}
		}
	}

	if flagDifficulty != "" {
		switch config.DifficultyPreset(flagDifficulty) {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		default:
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	game.SetLogger(logger)
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	return nil
}
