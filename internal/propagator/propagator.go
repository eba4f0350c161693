// Package propagator implements the forced-move ("naked single") inference
// of spec.md section 4.6, plus the null propagator that reduces the DFS
// solver to pure chronological backtracking when plugged in instead.
package propagator

import (
	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/domainengine"
)

// Func is a propagator: it performs optimistic in-place inference on b and
// reports how many assignments it made. The DFS solver takes one of these
// as a pluggable strategy parameter.
type Func func(b *board.Board) int

// Null is the no-op propagator: it never mutates the board and always
// reports zero assignments. Plugging it into the solver yields pure
// chronological backtracking.
func Null(_ *board.Board) int {
	return 0
}

// ApplyTrivialMove finds the first empty cell (row-major order) whose
// domain has exactly one legal digit and assigns it. It returns true iff
// such a cell was found and assigned; when it returns true the board has
// one fewer empty cell and remains valid. When it returns false, no
// single-candidate empty cell exists.
func ApplyTrivialMove(b *board.Board) bool {
	for _, e := range domainengine.Domains(*b) {
		if e.Value != board.Empty {
			continue
		}
		if domainengine.Cardinality(e.Mask) == 1 {
			b.SetPos(e.Pos, domainengine.SoleDigit(e.Mask))
			return true
		}
	}
	return false
}

// TrivialMoveOptimization repeatedly applies ApplyTrivialMove until it
// reports no further move, returning the number of assignments made. This
// is the Func plugged in for the "smart" strategy.
func TrivialMoveOptimization(b *board.Board) int {
	count := 0
	for ApplyTrivialMove(b) {
		count++
	}
	return count
}
