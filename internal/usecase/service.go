// Package usecase wires the domain packages behind the ports interfaces
// into the single facade internal/httpapi and cmd/sudoku call, adapted
// from the teacher's Service.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/difficulty"
	"github.com/tranmh/sudoku-solver/internal/ports"
	"github.com/tranmh/sudoku-solver/internal/propagator"
	"github.com/tranmh/sudoku-solver/internal/puzzle"
	"github.com/tranmh/sudoku-solver/internal/solver"
)

// ErrNotConfigured is returned by any Service method whose backing
// dependency was left nil at construction time.
var ErrNotConfigured = errors.New("usecase: dependency not configured")

// Service is the single application facade: it holds one of each port and
// forwards calls to whichever was configured, matching the teacher's
// wiring style.
type Service struct {
	Generator ports.Generator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

// New wires a Service against the given ports. Any of them may be nil; the
// corresponding methods then return ErrNotConfigured.
func New(g ports.Generator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Generator: g, Hinter: h, Storage: st}
}

// Solve runs the spec-mandated DFS solver directly; solving needs no
// injected dependency, it always uses solver.Solve.
func (s *Service) Solve(b board.Board, smart bool) (result board.Board, count int, solved bool) {
	prop := propagator.Func(propagator.Null)
	if smart {
		prop = propagator.TrivialMoveOptimization
	}
	working := b.Copy()
	count, solved = solver.Solve(&working, prop)
	return working, count, solved
}

// Generate produces and IDs a new puzzle. It does not persist the puzzle;
// that is Save's job.
func (s *Service) Generate(ctx context.Context, seed int64, level difficulty.Level, now int64) (puzzle.Puzzle, error) {
	if s.Generator == nil {
		return puzzle.Puzzle{}, ErrNotConfigured
	}
	res, err := s.Generator.Generate(ctx, seed, level)
	if err != nil {
		return puzzle.Puzzle{}, err
	}
	p := puzzle.Puzzle{
		ID:         fmt.Sprintf("%x-%d", seed, now),
		Seed:       seed,
		Difficulty: level.String(),
		Givens:     res.Puzzle,
		Solution:   res.Solution,
		CreatedAt:  now,
	}
	return p, nil
}

// Hint delegates to the configured Hinter.
func (s *Service) Hint(b board.Board) (ports.Hint, bool, error) {
	if s.Hinter == nil {
		return ports.Hint{}, false, ErrNotConfigured
	}
	h, ok := s.Hinter.Hint(b)
	return h, ok, nil
}

// Save persists p via the configured Storage.
func (s *Service) Save(ctx context.Context, p *puzzle.Puzzle) error {
	if s.Storage == nil {
		return ErrNotConfigured
	}
	return s.Storage.Save(ctx, p)
}

// Load retrieves a puzzle by ID via the configured Storage.
func (s *Service) Load(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	if s.Storage == nil {
		return nil, ErrNotConfigured
	}
	return s.Storage.Load(ctx, id)
}

// List enumerates saved puzzles via the configured Storage.
func (s *Service) List(ctx context.Context) ([]puzzle.Meta, error) {
	if s.Storage == nil {
		return nil, ErrNotConfigured
	}
	return s.Storage.List(ctx)
}
