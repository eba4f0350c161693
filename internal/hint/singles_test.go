package hint

import (
	"testing"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/boardio"
)

const s1Solved = `
1 9 8 5 2 6 3 4 7
7 2 5 3 4 1 6 9 8
3 4 6 9 7 8 2 1 5
9 8 1 2 5 7 4 6 3
5 6 4 1 3 9 8 7 2
2 3 7 6 8 4 1 5 9
4 7 3 8 1 5 9 2 6
8 1 9 7 6 2 5 3 4
6 5 2 4 9 3 7 8 1
`

func TestSinglesFindsForcedCell(t *testing.T) {
	b, err := boardio.ParseString(s1Solved)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	b.Set(8, 8, board.Empty)

	h, ok := Singles{}.Hint(b)
	if !ok {
		t.Fatalf("expected a hint on a one-cell-missing board")
	}
	if h.Cell != (board.Pos{Row: 8, Col: 8}) {
		t.Fatalf("hint cell = %v, want (8,8)", h.Cell)
	}
	if h.Digit != 1 {
		t.Fatalf("hint digit = %d, want 1", h.Digit)
	}
}

func TestSinglesFindsNoneOnEmptyBoard(t *testing.T) {
	var b board.Board
	if _, ok := (Singles{}).Hint(b); ok {
		t.Fatalf("expected no naked single on a fully empty board")
	}
}
