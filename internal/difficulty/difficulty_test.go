package difficulty

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

func TestGradeEasySolvedByPropagationAlone(t *testing.T) {
	b, err := boardio.ParseString(s1Solved)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	b.Set(8, 8, board.Empty)

	if got := Grade(b); got != Easy {
		t.Fatalf("Grade(single missing cell) = %v, want Easy", got)
	}
}

func TestGradeExpertOnUnsolvable(t *testing.T) {
	var b board.Board
	for c := 0; c < 8; c++ {
		b.Set(0, c, board.Digit(c+2))
	}
	b.Set(1, 8, 1)

	if got := Grade(b); got != Expert {
		t.Fatalf("Grade(unsolvable) = %v, want Expert", got)
	}
}

func TestTargetGivensDecreasesWithDifficulty(t *testing.T) {
	prev := TargetGivens(Easy)
	for _, l := range []Level{Medium, Hard, Expert} {
		cur := TargetGivens(l)
		if cur >= prev {
			t.Fatalf("TargetGivens(%v) = %d, want fewer givens than the easier level's %d", l, cur, prev)
		}
		prev = cur
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{Easy: "easy", Medium: "medium", Hard: "hard", Expert: "expert"}
	for l, want := range cases {
		if got := l.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", l, got, want)
		}
	}
}
