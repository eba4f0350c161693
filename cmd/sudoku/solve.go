package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tranmh/sudoku-solver/internal/boardio"
	"github.com/tranmh/sudoku-solver/internal/propagator"
	"github.com/tranmh/sudoku-solver/internal/solver"
)

func newRootCommand() *cobra.Command {
	var simple, smart, justPrint bool

	cmd := &cobra.Command{
		Use:   "sudoku (--simple|--smart) <input-file>",
		Short: "Solve a Sudoku board read from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if simple == smart {
				return fmt.Errorf("bad search strategy: exactly one of --simple or --smart is required")
			}
			return runSolve(args[0], smart, justPrint)
		},
	}

	cmd.Flags().BoolVar(&simple, "simple", false, "use the null propagator (plain chronological backtracking)")
	cmd.Flags().BoolVar(&smart, "smart", false, "use the forced-move propagator")
	cmd.Flags().BoolVar(&justPrint, "just-print", false, "print the parsed board and exit")
	_ = cmd.Flags().MarkHidden("just-print")

	return cmd
}

func runSolve(path string, smart, justPrint bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening file: %q: %w", path, err)
	}
	defer f.Close()

	b, err := boardio.Parse(f)
	if err != nil {
		return err
	}

	fmt.Printf("Beginning state:\n%s\n", boardio.Format(b))

	if justPrint {
		return nil
	}

	prop := propagator.Func(propagator.Null)
	if smart {
		prop = propagator.TrivialMoveOptimization
	}

	start := time.Now()
	count, _ := solver.Solve(&b, prop)
	elapsed := time.Since(start)

	fmt.Printf("Solution state:\n%s\n\n", boardio.Format(b))
	fmt.Printf("Solution found with: %d variable assignments\n", count)
	fmt.Printf("Solution took: %dus\n", elapsed.Microseconds())
	fmt.Printf("Equal to: %dms\n", elapsed.Milliseconds())
	fmt.Printf("Equal to: %ds\n", int64(elapsed.Seconds()))

	return nil
}
