package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/game"
)

var (
	flagTicks       int
	flagHold        []string
	flagAttackEvery int
	flagOut         string
	flagEvery       int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [level]",
	Short: "Run a level headless and stream frames",
	Long: `Run a level without a terminal, holding a fixed set of actions,
and write every frame as a msgpack stream for external renderers.

The run stops at the tick limit or when the level is cleared or lost.
A summary is printed to stderr.

Actions: Left, Right, Up, Down, Jump, Attack

Examples:
  goblins simulate graveyard --ticks 600 --hold Right
  goblins simulate crypt --hold Right,Jump --attack-every 15 --out run.msgpack
  goblins simulate --level-file ./my-level.yaml --seed 42 --out -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 900, "Maximum number of ticks to run")
	simulateCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Actions held on every tick")
	simulateCmd.Flags().IntVar(&flagAttackEvery, "attack-every", 0, "Press Attack every N ticks (0 = never)")
	simulateCmd.Flags().StringVar(&flagOut, "out", "", "Frame stream destination, - for stdout (empty = no frames)")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 1, "Write one frame every N ticks")
	simulateCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Simulate a level from a YAML file")
}

func runSimulate(_ *cobra.Command, args []string) error {
	level, err := resolveLevel(args)
	if err != nil {
		return err
	}

	held := make([]core.Action, 0, len(flagHold))
	for _, name := range flagHold {
		a, ok := core.ParseAction(name)
		if !ok {
			return fmt.Errorf("unknown action %q", name)
		}
		held = append(held, a)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := game.NewSession(level, game.LoadConfig(), game.WithSeed(seed), game.WithLogger(logger))
	if err != nil {
		return err
	}

	var enc *game.FrameEncoder
	var out *bufio.Writer
	if flagOut != "" {
		w, closeOut, err := openOutput(flagOut)
		if err != nil {
			return err
		}
		defer closeOut()
		out = bufio.NewWriter(w)
		enc = game.NewFrameEncoder(out)
	}

	frames := 0
	for session.Ticks() < flagTicks && !session.Won() && !session.GameOver() {
		in := core.FrameOf(held...)
		if flagAttackEvery > 0 && session.Ticks()%flagAttackEvery == 0 {
			in.Set(core.ActionAttack)
		}
		session.Tick(in)

		if enc != nil && (flagEvery <= 1 || session.Ticks()%flagEvery == 0) {
			if err := enc.Encode(session.Frame()); err != nil {
				return err
			}
			frames++
		}
	}
	if out != nil {
		if err := out.Flush(); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
	}

	result := "time limit"
	switch {
	case session.Won():
		result = "cleared"
	case session.GameOver():
		result = "game over"
	}
	logger.Info("simulation finished", "level", level.ID, "seed", seed, "ticks", session.Ticks(), "result", result)
	fmt.Fprintf(os.Stderr, "%s: %s after %d ticks, score %d, lives %d, %d frames written (seed %d)\n",
		level.ID, result, session.Ticks(), session.Score(), session.Lives(), frames, seed)
	return nil
}

// resolveLevel finds the level named by args or --level-file.
func resolveLevel(args []string) (config.Level, error) {
	if flagLevelFile != "" {
		return config.LoadLevel(flagLevelFile)
	}
	if len(args) == 0 {
		return config.Level{}, fmt.Errorf("missing level id (run 'goblins list' to see available levels)")
	}
	levels, err := config.BuiltinLevels()
	if err != nil {
		return config.Level{}, err
	}
	for _, l := range levels {
		if l.ID == args[0] {
			return l, nil
		}
	}
	return config.Level{}, fmt.Errorf("unknown level %q (run 'goblins list' to see available levels)", args[0])
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
