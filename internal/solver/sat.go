package solver

import (
	sat "github.com/spjmurray/go-sat"

	"github.com/tranmh/sudoku-solver/internal/board"
)

// satVar names one boolean CDCL variable: "digit n is placed at (row, col)".
type satVar struct {
	row, col int
	n        int // 0-based digit, n+1 is the actual digit
}

// satRules adds the constraint clauses common to every Sudoku board: each
// cell holds exactly one digit, and each digit occurs at most once per row,
// column and box. This is the CNF encoding of the same 27-unit constraint
// table validator and oracle enforce procedurally.
func satRules(s *sat.CDCLSolver[satVar]) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			vars := make([]satVar, board.Size)
			for n := 0; n < board.Size; n++ {
				vars[n] = satVar{r, c, n}
			}
			s.AtLeastOneOf(vars...)
			s.AtMostOneOf(vars...)
		}
	}

	for _, u := range board.UnitTable {
		for n := 0; n < board.Size; n++ {
			vars := make([]satVar, board.Size)
			for i, p := range u {
				vars[i] = satVar{p.Row, p.Col, n}
			}
			s.AtMostOneOf(vars...)
		}
	}
}

func satInitialize(s *sat.CDCLSolver[satVar], b board.Board) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if d := b.At(r, c); d != board.Empty {
				s.Unary(satVar{r, c, int(d) - 1})
			}
		}
	}
}

// SAT is an independent solving oracle built on CDCL search rather than
// DFS backtracking, used only to cross-check Solve's results in tests. It
// never informs Solve itself.
type SAT struct{}

// Solve returns a solution to b found by the CDCL solver, or ok=false if
// the encoding is unsatisfiable.
func (SAT) Solve(b board.Board) (out board.Board, ok bool) {
	s := sat.NewCDCLSolver[satVar]()
	satRules(s)
	satInitialize(s, b)

	if !s.Solve(sat.DefaultChooser[satVar]) {
		return board.Board{}, false
	}

	for v, value := range s.Variables() {
		if value.Value() {
			out.Set(v.row, v.col, board.Digit(v.n+1))
		}
	}
	return out, true
}
