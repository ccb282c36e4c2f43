package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-goblins/internal/game"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a recorded frame stream",
	Long: `Read a msgpack frame stream written by 'goblins simulate' and print
how the run went: ticks covered, final score and the peak number of
entities of each kind. Use - to read from stdin.

Examples:
  goblins inspect run.msgpack
  goblins simulate crypt --out - | goblins inspect -`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(_ *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := game.NewFrameDecoder(bufio.NewReader(r))
	var (
		count int
		first game.Frame
		last  game.Frame
		peak  = make(map[string]int)
	)
	for {
		f, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", count+1, err)
		}
		if count == 0 {
			first = f
		}
		last = f
		count++

		kinds := make(map[string]int)
		for _, e := range f.Entities {
			kinds[e.Kind]++
		}
		for k, n := range kinds {
			peak[k] = max(peak[k], n)
		}
	}

	if count == 0 {
		fmt.Println("No frames.")
		return nil
	}

	status := "running"
	switch {
	case last.Won:
		status = "cleared"
	case last.GameOver:
		status = "game over"
	}
	fmt.Printf("Level:  %s\n", last.Level)
	fmt.Printf("Frames: %d (ticks %d-%d)\n", count, first.Tick, last.Tick)
	fmt.Printf("Result: %s, score %d, lives %d\n", status, last.Score, last.Lives)
	fmt.Println()
	fmt.Println("Peak entities:")

	kinds := make([]string, 0, len(peak))
	for k := range peak {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-10s %d\n", k, peak[k])
	}
	return nil
}
