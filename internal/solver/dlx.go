// Dancing Links exact-cover solver, adapted from the teacher's DLX engine
// (originally written against internal/domain.Board) to internal/board's
// value-semantic types. It backs Unique, the fast uniqueness oracle the
// puzzle generator uses while carving cells out of a solved grid; the
// spec-mandated Solve in solve.go never calls into it.
package solver

import (
	"errors"

	"github.com/tranmh/sudoku-solver/internal/board"
)

// DLX is the exact-cover solver. Column layout: 324 constraint columns (81
// cell, 81 row-value, 81 col-value, 81 box-value), 729 candidate rows (one
// per (row, col, value) triple).
type DLX struct{}

const (
	dlxCells    = board.CellCount // 81
	dlxCols     = 4 * dlxCells    // 324
	dlxRows     = dlxCells * board.Size
	colCell     = 0
	colRowValue = dlxCells
	colColValue = colRowValue + board.Size*board.Size
	colBoxValue = colColValue + board.Size*board.Size
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool
}

type dlxMatrix struct {
	cols      [dlxCols]*dlxColumn
	rowHead   [dlxRows]*dlxNode
	sol       [dlxRows]*dlxNode
	solLen    int
	activeCnt int
}

func newDLXMatrix() *dlxMatrix {
	m := &dlxMatrix{}
	for i := 0; i < dlxCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		m.cols[i] = c
	}
	m.activeCnt = dlxCols

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			for v := 1; v <= board.Size; v++ {
				row := dlxRowIndex(r, c, v)
				cols := dlxRowColumns(r, c, v)
				var first, prev *dlxNode
				for _, colID := range cols {
					col := m.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					n.down = &col.dlxNode
					n.up = col.up
					col.up.down = n
					col.up = n
					col.size++
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rowHead[row] = first
			}
		}
	}
	return m
}

func dlxRowIndex(r, c, v int) int {
	return (r*board.Size+c)*board.Size + (v - 1)
}

func dlxRowColumns(r, c, v int) [4]int {
	cell := colCell + r*board.Size + c
	rowV := colRowValue + r*board.Size + (v - 1)
	colV := colColValue + c*board.Size + (v - 1)
	box := board.SectionOf(r, c)
	boxV := colBoxValue + box*board.Size + (v - 1)
	return [4]int{cell, rowV, colV, boxV}
}

func dlxDecodeRow(row int) (r, c, v int) {
	cell := row / board.Size
	v = (row % board.Size) + 1
	r = cell / board.Size
	c = cell % board.Size
	return
}

func dlxCover(col *dlxColumn, m *dlxMatrix) {
	if col.active {
		col.active = false
		m.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func dlxUncover(col *dlxColumn, m *dlxMatrix) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		m.activeCnt++
	}
}

func dlxChooseColumn(m *dlxMatrix) *dlxColumn {
	var best *dlxColumn
	for _, c := range m.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (m *dlxMatrix) search(k, wantCount int, found *int) bool {
	if m.activeCnt == 0 {
		m.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := dlxChooseColumn(m)
	if c == nil || c.size == 0 {
		return false
	}
	dlxCover(c, m)
	for r := c.down; r != &c.dlxNode; r = r.down {
		m.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				dlxCover(j.col, m)
			}
		}
		if m.search(k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				dlxUncover(j.col, m)
			}
			dlxUncover(c, m)
			return true
		}
		for j := r.left; j != r; j = j.left {
			dlxUncover(j.col, m)
		}
	}
	dlxUncover(c, m)
	return false
}

var errInvalidGiven = errors.New("solver: dlx: invalid given")

func (m *dlxMatrix) applyGiven(r, c, v int) error {
	row := dlxRowIndex(r, c, v)
	head := m.rowHead[row]
	if head == nil {
		return errInvalidGiven
	}
	// A column already covered by an earlier given means this given
	// repeats a digit in the same row, column or box (or the same cell).
	for j := head; ; j = j.right {
		if !j.col.active {
			return errInvalidGiven
		}
		if j.right == head {
			break
		}
	}
	for j := head; ; j = j.right {
		dlxCover(j.col, m)
		if j.right == head {
			break
		}
	}
	return nil
}

func buildDLX(b board.Board) (*dlxMatrix, error) {
	m := newDLXMatrix()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if d := b.At(r, c); d != board.Empty {
				if err := m.applyGiven(r, c, int(d)); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// Solve returns a solution to b via exact cover, or ok=false if none
// exists. err is non-nil only when b already places the same digit twice
// in some unit (a malformed given, not a search failure).
func (DLX) Solve(b board.Board) (out board.Board, ok bool, err error) {
	m, buildErr := buildDLX(b)
	if buildErr != nil {
		return board.Board{}, false, buildErr
	}
	found := 0
	m.search(0, 1, &found)
	if found < 1 {
		return board.Board{}, false, nil
	}
	out = b
	for i := 0; i < m.solLen; i++ {
		r, c, v := dlxDecodeRow(m.sol[i].rowIdx)
		out.Set(r, c, board.Digit(v))
	}
	return out, true, nil
}

// Unique reports whether b has exactly one solution. The search stops the
// instant a second solution is found, which is what makes this cheap
// enough to call once per candidate cell during generation; it is a
// generator-internal bounded test, not a general solution counter.
func (DLX) Unique(b board.Board) (bool, error) {
	m, err := buildDLX(b)
	if err != nil {
		return false, err
	}
	found := 0
	m.search(0, 2, &found)
	return found == 1, nil
}
