// Package ports declares the interfaces internal/usecase and
// internal/httpapi depend on, adapted from the teacher's ports package to
// the new board/puzzle/difficulty types.
package ports

import (
	"context"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/difficulty"
	"github.com/tranmh/sudoku-solver/internal/generator"
	"github.com/tranmh/sudoku-solver/internal/puzzle"
)

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, level difficulty.Level) (generator.Result, error)
}

// Hinter returns the next logical step, if any, for a partially-filled
// board.
type Hinter interface {
	Hint(b board.Board) (Hint, bool)
}

// Hint describes a single logical deduction a player could make next.
type Hint struct {
	Message string
	Cell    board.Pos
	Digit   board.Digit
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *puzzle.Puzzle) error
	Load(ctx context.Context, id string) (*puzzle.Puzzle, error)
	List(ctx context.Context) ([]puzzle.Meta, error)
}
