// Package oracle is the legal-assignment oracle of spec.md section 4.4: it
// decides, for a single empty cell and a candidate digit, whether placing
// that digit would violate the row, column or section it belongs to.
package oracle

import "github.com/tranmh/sudoku-solver/internal/board"

// IsLegal reports whether digit may be assigned at (row, col): the target
// cell must be empty, digit must be in 1..9, and digit must not already
// appear in that cell's row, column or section. It never mutates b.
//
// Cost is O(27) cell reads: it scans only the three units containing the
// cell, short-circuiting on the first conflict found.
func IsLegal(b board.Board, row, col int, digit board.Digit) bool {
	if digit < board.MinDigit || digit > board.MaxDigit {
		return false
	}
	if !b.IsEmpty(row, col) {
		return false
	}

	rowUnit, colUnit, sectionUnit := board.UnitsOf(row, col)
	for _, idx := range [3]int{rowUnit, colUnit, sectionUnit} {
		for _, p := range board.UnitTable[idx] {
			if b.Get(p) == digit {
				return false
			}
		}
	}
	return true
}
