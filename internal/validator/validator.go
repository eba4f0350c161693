// Package validator decides Sudoku board legality and solvedness, per
// spec.md section 4.3: a non-failing pair of predicates over a board's 27
// constraint units.
package validator

import "github.com/tranmh/sudoku-solver/internal/board"

// IsValid reports whether no unit contains the same digit twice. Empty
// cells are ignored by duplicate detection.
//
// Every one of the 27 units is scanned, including on a fully populated
// board: rows that are each duplicate-free can still repeat a digit within
// a column or section.
func IsValid(b board.Board) bool {
	for i := 0; i < board.RowUnits; i++ {
		if hasDuplicate(b, board.UnitTable[i]) {
			return false
		}
	}

	for i := board.RowUnits; i < board.UnitCount; i++ {
		if hasDuplicate(b, board.UnitTable[i]) {
			return false
		}
	}

	return true
}

// IsSolved reports whether the board is valid and has no empty cell.
func IsSolved(b board.Board) bool {
	return isPopulated(b) && IsValid(b)
}

func isPopulated(b board.Board) bool {
	for _, d := range b.RowMajor() {
		if d == board.Empty {
			return false
		}
	}
	return true
}

// hasDuplicate scans one unit's 9 cells with a 9-bit seen-mask, returning
// true on the first repeated digit.
func hasDuplicate(b board.Board, u board.Unit) bool {
	var seen uint16
	for _, p := range u {
		d := b.Get(p)
		if d == board.Empty {
			continue
		}
		bit := uint16(1) << uint(d-1)
		if seen&bit != 0 {
			return true
		}
		seen |= bit
	}
	return false
}
