// Package puzzle defines the persisted, generated-puzzle representation
// shared by internal/generator, internal/storage, internal/usecase and
// internal/httpapi, adapted from the teacher's domain.Puzzle.
package puzzle

import "github.com/tranmh/sudoku-solver/internal/board"

// Puzzle is a generated Sudoku together with its solution and metadata.
type Puzzle struct {
	ID         string `json:"id,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Givens     board.Board `json:"givens"`
	Solution   board.Board `json:"solution"`
	CreatedAt  int64  `json:"createdAt,omitempty"`
	Name       string `json:"name,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Meta is a lightweight listing entry, omitting the board data.
type Meta struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Difficulty string `json:"difficulty"`
	CreatedAt  int64  `json:"createdAt"`
}
