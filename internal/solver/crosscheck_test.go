package solver_test

import (
	"context"
	"testing"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/boardio"
	"github.com/tranmh/sudoku-solver/internal/generator"
	"github.com/tranmh/sudoku-solver/internal/propagator"
	"github.com/tranmh/sudoku-solver/internal/solver"
	"github.com/tranmh/sudoku-solver/internal/validator"
)

const crossCheckHard = `
7 _ _ _ _ _ _ _ _
6 _ _ 4 1 _ 2 5 _
_ 1 3 _ 9 5 _ _ _
8 6 _ _ _ _ _ _ _
3 _ 1 _ _ _ 4 _ 5
_ _ _ _ _ _ _ 8 6
_ _ _ 8 4 _ 5 3 _
_ 4 2 _ 3 6 _ _ 7
_ _ _ _ _ _ _ _ 9
`

func mustParseBoard(t *testing.T, s string) board.Board {
	t.Helper()
	b, err := boardio.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return b
}

// TestCrossCheckAgainstSAT verifies solver.Solve and the independent
// SAT-based oracle agree on satisfiability for a batch of generated
// puzzles: this is the adversarial cross-check the DFS backtracking
// engine and the CDCL solver were never meant to share code with.
func TestCrossCheckAgainstSAT(t *testing.T) {
	g := generator.New(solver.DLX{})

	for seed := int64(1); seed <= 5; seed++ {
		res, err := g.Generate(context.Background(), seed, 1)
		if err != nil {
			t.Fatalf("Generate(seed=%d): %v", seed, err)
		}

		dfsBoard := res.Puzzle.Copy()
		_, dfsSolved := solver.Solve(&dfsBoard, propagator.TrivialMoveOptimization)

		_, satSolved := solver.SAT{}.Solve(res.Puzzle)

		if dfsSolved != satSolved {
			t.Fatalf("seed %d: DFS solved=%v, SAT solved=%v", seed, dfsSolved, satSolved)
		}
		if dfsSolved && !validator.IsSolved(dfsBoard) {
			t.Fatalf("seed %d: DFS reported solved but board fails IsSolved", seed)
		}
	}
}

// TestCrossCheckDLXAgreesWithSAT confirms the DLX uniqueness oracle and
// the SAT solver agree on solvability of the same board.
func TestCrossCheckDLXAgreesWithSAT(t *testing.T) {
	b := mustParseBoard(t, crossCheckHard)

	dlxOut, dlxOK, err := solver.DLX{}.Solve(b)
	if err != nil {
		t.Fatalf("DLX.Solve errored: %v", err)
	}
	satOut, satOK := solver.SAT{}.Solve(b)

	if dlxOK != satOK {
		t.Fatalf("DLX solved=%v, SAT solved=%v", dlxOK, satOK)
	}
	if dlxOK && !dlxOut.Equal(satOut) {
		t.Fatalf("DLX and SAT disagree on the (unique) solution:\nDLX: %v\nSAT: %v", dlxOut.RowMajor(), satOut.RowMajor())
	}
}

func TestDLXUniqueOnKnownPuzzle(t *testing.T) {
	b := mustParseBoard(t, crossCheckHard)
	unique, err := solver.DLX{}.Unique(b)
	if err != nil {
		t.Fatalf("Unique errored: %v", err)
	}
	if !unique {
		t.Fatalf("expected the hard sample puzzle to have a unique solution")
	}
}

func TestDLXRejectsDuplicateGiven(t *testing.T) {
	var b board.Board
	b.Set(0, 0, 5)
	b.Set(0, 1, 5) // duplicate in row 0

	if _, _, err := (solver.DLX{}).Solve(b); err == nil {
		t.Fatalf("expected an error for a board with a duplicate given")
	}
}
