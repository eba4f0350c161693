// Package domainengine computes, for every empty cell on a board, the set
// of digits still legal there under the current assignments (spec.md
// section 4.5). Domains are represented as 9-bit masks: bit d-1 set means
// digit d is a legal candidate.
package domainengine

import (
	"math/bits"

	"github.com/tranmh/sudoku-solver/internal/board"
)

// FullMask has all 9 candidate bits set.
const FullMask uint16 = (1 << board.Size) - 1

// Entry is one cell's computed domain: its position, the current value
// (board.Empty if unassigned), and the legal-assignment bitmask. By
// convention an occupied cell's mask is 0.
type Entry struct {
	Pos   board.Pos
	Value board.Digit
	Mask  uint16
}

// Domains computes the per-cell entry for all 81 cells, in row-major
// order. For an empty cell the mask is the intersection, over the cell's
// row, column and section, of the digits not yet placed in any of them.
func Domains(b board.Board) [board.CellCount]Entry {
	var entries [board.CellCount]Entry

	idx := func(p board.Pos) int { return p.Row*board.Size + p.Col }

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			p := board.Pos{Row: r, Col: c}
			v := b.Get(p)
			mask := uint16(0)
			if v == board.Empty {
				mask = FullMask
			}
			entries[idx(p)] = Entry{Pos: p, Value: v, Mask: mask}
		}
	}

	for _, u := range board.UnitTable {
		for _, p := range u {
			d := b.Get(p)
			if d == board.Empty {
				continue
			}
			bit := uint16(1) << uint(d-1)
			for _, q := range u {
				e := &entries[idx(q)]
				if e.Value == board.Empty {
					e.Mask &^= bit
				}
			}
		}
	}

	return entries
}

// HasLegalAssignments reports whether every empty cell's domain is
// nonempty. False means the board is already dead: some empty cell has no
// digit left that could be placed there.
func HasLegalAssignments(b board.Board) bool {
	for _, e := range Domains(b) {
		if e.Value == board.Empty && e.Mask == 0 {
			return false
		}
	}
	return true
}

// Cardinality returns the number of candidate digits a mask carries.
func Cardinality(mask uint16) int {
	return bits.OnesCount16(mask)
}

// SoleDigit returns the single digit a singleton mask carries. The caller
// must ensure Cardinality(mask) == 1.
func SoleDigit(mask uint16) board.Digit {
	return board.Digit(bits.TrailingZeros16(mask) + 1)
}

// Digits returns a mask's candidate digits in ascending order.
func Digits(mask uint16) []board.Digit {
	out := make([]board.Digit, 0, board.Size)
	for d := board.MinDigit; d <= board.MaxDigit; d++ {
		if mask&(1<<uint(d-1)) != 0 {
			out = append(out, d)
		}
	}
	return out
}
