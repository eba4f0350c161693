package board

import "testing"

func TestSetGetRoundTrip(t *testing.T) {
	var b Board
	b.Set(3, 4, 7)
	if got := b.At(3, 4); got != 7 {
		t.Fatalf("At(3,4) = %d, want 7", got)
	}
	if !b.IsEmpty(0, 0) {
		t.Fatalf("fresh cell should be empty")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	var a Board
	a.Set(0, 0, 5)
	b := a.Copy()
	b.Set(0, 0, 9)

	if a.At(0, 0) != 5 {
		t.Fatalf("Copy aliased the original: a changed to %d", a.At(0, 0))
	}
}

func TestEqual(t *testing.T) {
	var a, b Board
	a.Set(1, 1, 3)
	b.Set(1, 1, 3)
	if !a.Equal(b) {
		t.Fatalf("identical boards reported unequal")
	}
	b.Set(1, 1, 4)
	if a.Equal(b) {
		t.Fatalf("differing boards reported equal")
	}
}

func TestRowColumnSection(t *testing.T) {
	var b Board
	for c := 0; c < Size; c++ {
		b.Set(2, c, Digit(c+1))
	}
	row := b.Row(2)
	for c := 0; c < Size; c++ {
		if row[c] != Digit(c+1) {
			t.Fatalf("Row(2)[%d] = %d, want %d", c, row[c], c+1)
		}
	}

	b.Set(0, 4, 9)
	col := b.Column(4)
	if col[0] != 9 {
		t.Fatalf("Column(4)[0] = %d, want 9", col[0])
	}

	b.Set(1, 1, 8)
	sec := b.Section(0)
	found := false
	for _, d := range sec {
		if d == 8 {
			found = true
		}
	}
	if !found {
		t.Fatalf("Section(0) missing the digit set at (1,1)")
	}
}

func TestEmptyCells(t *testing.T) {
	var b Board
	b.Set(0, 0, 1)
	empties := b.EmptyCells()
	if len(empties) != CellCount-1 {
		t.Fatalf("EmptyCells returned %d, want %d", len(empties), CellCount-1)
	}
	for _, p := range empties {
		if p == (Pos{Row: 0, Col: 0}) {
			t.Fatalf("EmptyCells included the occupied cell")
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var b Board
	b.Set(4, 4, 5)
	data, err := b.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var out Board
	if err := out.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !b.Equal(out) {
		t.Fatalf("JSON round trip did not preserve the board")
	}
}
