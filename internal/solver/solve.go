// Package solver implements the DFS backtracking engine of spec.md
// section 4.7 (Solve), plus two supplemental solving techniques kept
// alongside it: an exact-cover Dancing Links solver used only for fast
// uniqueness testing during puzzle generation, and a SAT-based oracle used
// only as an independent cross-check in tests.
// Solve itself is the only solving technique the CLI exposes.
package solver

import (
	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/domainengine"
	"github.com/tranmh/sudoku-solver/internal/propagator"
	"github.com/tranmh/sudoku-solver/internal/validator"
)

// Solve performs depth-first backtracking search, driven by a pluggable
// propagation callback. It returns the total number of variable
// assignments performed during this invocation (including those made by
// propagate, by the branching step, and recursively by child calls) and
// whether b was brought to a solved state.
//
// If solved is true, b has been updated in place to the solved board. If
// solved is false, b is left exactly as it was on entry.
func Solve(b *board.Board, propagate propagator.Func) (count int, solved bool) {
	if !validator.IsValid(*b) {
		return 0, false
	}
	if !domainengine.HasLegalAssignments(*b) {
		return 0, false
	}

	count = propagate(b)

	if validator.IsSolved(*b) {
		return count, true
	}

	domains := domainengine.Domains(*b)
	branch := firstEmpty(domains)

	for _, d := range domainengine.Digits(branch.Mask) {
		next := b.Copy()
		next.SetPos(branch.Pos, d)
		count++

		if validator.IsSolved(next) {
			*b = next
			return count, true
		}

		childCount, ok := Solve(&next, propagate)
		count += childCount

		if ok {
			*b = next
			return count, true
		}
	}

	return count, false
}

// firstEmpty returns the first empty cell's domain entry in row-major
// order. The caller must have already confirmed HasLegalAssignments, so
// its mask is guaranteed nonempty.
func firstEmpty(domains [board.CellCount]domainengine.Entry) domainengine.Entry {
	for _, e := range domains {
		if e.Value == board.Empty {
			return e
		}
	}
	panic("solver: firstEmpty called on a fully populated board")
}
