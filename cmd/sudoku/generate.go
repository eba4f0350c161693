package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tranmh/sudoku-solver/internal/boardio"
	"github.com/tranmh/sudoku-solver/internal/difficulty"
	"github.com/tranmh/sudoku-solver/internal/generator"
	"github.com/tranmh/sudoku-solver/internal/solver"
)

func newGenerateCommand() *cobra.Command {
	var seed int64
	var levelStr string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(levelStr)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			g := generator.New(solver.DLX{})
			res, err := g.Generate(context.Background(), seed, level)
			if err != nil {
				return err
			}

			fmt.Printf("Seed: %d\n", seed)
			fmt.Printf("Difficulty: %s\n", level)
			fmt.Printf("Puzzle:%s\n", boardio.Format(res.Puzzle))
			fmt.Printf("Generated in: %dms\n", res.Duration.Milliseconds())
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (default: current time)")
	cmd.Flags().StringVar(&levelStr, "difficulty", "medium", "easy|medium|hard|expert")

	return cmd
}

func parseLevel(s string) (difficulty.Level, error) {
	switch s {
	case "easy":
		return difficulty.Easy, nil
	case "medium":
		return difficulty.Medium, nil
	case "hard":
		return difficulty.Hard, nil
	case "expert":
		return difficulty.Expert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q: want easy|medium|hard|expert", s)
	}
}
