// Package generator builds new puzzles by filling a random solved board
// and carving cells out one at a time while a uniqueness oracle confirms
// the puzzle still has exactly one solution, adapted from the teacher's
// UniqueGenerator.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/difficulty"
	"github.com/tranmh/sudoku-solver/internal/oracle"
)

// ErrCanceled is returned when ctx is canceled mid-generation.
var ErrCanceled = errors.New("generator: canceled")

// UniquenessChecker reports whether a partially-filled board has exactly
// one solution. internal/solver.DLX satisfies this.
type UniquenessChecker interface {
	Unique(b board.Board) (bool, error)
}

// Generator carves puzzles down from a randomly filled solved board.
type Generator struct {
	Checker UniquenessChecker
}

// New wires a Generator against the given uniqueness oracle.
func New(checker UniquenessChecker) *Generator {
	return &Generator{Checker: checker}
}

// Result is a generated puzzle: the carved board, its full solution, and
// how long carving took.
type Result struct {
	Puzzle   board.Board
	Solution board.Board
	Duration time.Duration
}

// Generate produces a puzzle of the given difficulty level, seeded for
// reproducibility. It fills a random valid solution, then removes givens
// in random order, one at a time, keeping a removal only if the resulting
// board still has a unique solution and the target given count has not
// yet been reached.
func (g *Generator) Generate(ctx context.Context, seed int64, level difficulty.Level) (Result, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	solution, ok := fillRandom(ctx, rng)
	if !ok {
		return Result{}, ErrCanceled
	}

	puzzle := solution
	positions := rng.Perm(board.CellCount)
	target := difficulty.TargetGivens(level)
	deadline := start.Add(900 * time.Millisecond)

	for _, pos := range positions {
		if ctx.Err() != nil {
			return Result{}, ErrCanceled
		}
		if time.Now().After(deadline) {
			break
		}
		if countGivens(puzzle) <= target {
			break
		}

		r, c := pos/board.Size, pos%board.Size
		old := puzzle.At(r, c)
		if old == board.Empty {
			continue
		}
		puzzle.Set(r, c, board.Empty)

		unique, err := g.Checker.Unique(puzzle)
		if err != nil || !unique {
			puzzle.Set(r, c, old)
		}
	}

	return Result{Puzzle: puzzle, Solution: solution, Duration: time.Since(start)}, nil
}

func countGivens(b board.Board) int {
	n := 0
	for _, d := range b.RowMajor() {
		if d != board.Empty {
			n++
		}
	}
	return n
}

// fillRandom solves an empty board into a full valid solution using
// random digit ordering at each cell, backtracking on dead ends.
func fillRandom(ctx context.Context, rng *rand.Rand) (board.Board, bool) {
	var b board.Board
	var order [board.Size]board.Digit
	for i := range order {
		order[i] = board.Digit(i + 1)
	}

	var dfs func(row, col int) bool
	dfs = func(row, col int) bool {
		if ctx.Err() != nil {
			return false
		}
		if row == board.Size {
			return true
		}
		nextRow, nextCol := row, col+1
		if nextCol == board.Size {
			nextRow, nextCol = row+1, 0
		}

		rng.Shuffle(board.Size, func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, d := range order {
			if oracle.IsLegal(b, row, col, d) {
				b.Set(row, col, d)
				if dfs(nextRow, nextCol) {
					return true
				}
				b.Set(row, col, board.Empty)
			}
		}
		return false
	}

	if !dfs(0, 0) {
		return board.Board{}, false
	}
	return b, true
}
