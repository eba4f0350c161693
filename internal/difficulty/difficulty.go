// Package difficulty grades and targets puzzle difficulty, a feature the
// distilled spec dropped but the generator (and the original CLI's
// counterpart tooling) needs to pick how many givens to carve down to.
// Grading is done by running the forced-move propagator alone and then the
// solver itself with that propagator, and comparing their assignment
// counts, rather than a static given count, since given count alone is a
// poor difficulty proxy.
package difficulty

import (
	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/propagator"
	"github.com/tranmh/sudoku-solver/internal/solver"
)

// Level buckets a puzzle's difficulty, adapted from the teacher's
// domain.Difficulty enum.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	Expert
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// TargetGivens returns the number of givens the generator should aim to
// leave on the board for a puzzle of level l.
func TargetGivens(l Level) int {
	switch l {
	case Easy:
		return 40
	case Medium:
		return 34
	case Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Grade estimates a solved-or-unsolved puzzle's difficulty by measuring
// how much branching solver.Solve needs once forced moves are exhausted.
// A puzzle that the trivial-move propagator alone solves is Easy; beyond
// that, the number of guesses (solver.Solve's assignments beyond the
// initial propagation pass, which includes the propagation done inside
// each branch) buckets it into the remaining three levels.
func Grade(b board.Board) Level {
	trivialOnly := b.Copy()
	propagator.TrivialMoveOptimization(&trivialOnly)
	if isComplete(trivialOnly) {
		return Easy
	}

	withSearch := b.Copy()
	total, ok := solver.Solve(&withSearch, propagator.TrivialMoveOptimization)
	if !ok {
		return Expert
	}

	propagated := b.Copy()
	forced := propagator.TrivialMoveOptimization(&propagated)
	guesses := total - forced

	switch {
	case guesses <= 4:
		return Medium
	case guesses <= 20:
		return Hard
	default:
		return Expert
	}
}

func isComplete(b board.Board) bool {
	for _, d := range b.RowMajor() {
		if d == board.Empty {
			return false
		}
	}
	return true
}
