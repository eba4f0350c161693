// Package hint suggests a single next logical move for a partially-filled
// board, adapted from the teacher's Singles hinter to use
// internal/domainengine instead of a duplicated allowed() check.
package hint

import (
	"fmt"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/domainengine"
	"github.com/tranmh/sudoku-solver/internal/ports"
)

// Singles is a minimal Hinter that surfaces the first naked single it
// finds, scanning in row-major order.
type Singles struct{}

// Hint returns the first empty cell with exactly one legal candidate, if
// any.
func (Singles) Hint(b board.Board) (ports.Hint, bool) {
	for _, e := range domainengine.Domains(b) {
		if e.Value != board.Empty {
			continue
		}
		if domainengine.Cardinality(e.Mask) != 1 {
			continue
		}
		d := domainengine.SoleDigit(e.Mask)
		return ports.Hint{
			Message: fmt.Sprintf("Single: only %d fits at %s", d, e.Pos),
			Cell:    e.Pos,
			Digit:   d,
		}, true
	}
	return ports.Hint{}, false
}
