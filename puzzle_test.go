package nonogram

import (
	"testing"

	"crosswarped.com/nonogram/pkg/primitives"
)

func TestNewPuzzle_Valid(t *testing.T) {
	p := mustPuzzle(t, [][]int{{1, 2}, {3}}, [][]int{{1}, {2}, {}, {1}, {1}})

	if p.Height() != 2 || p.Width() != 5 {
		t.Errorf("dims = %dx%d, want 2x5", p.Height(), p.Width())
	}
	if got := p.RowClue(0).String(); got != "Clue(1 2)" {
		t.Errorf("RowClue(0) = %s, want Clue(1 2)", got)
	}
	if !p.ColClue(2).Empty() {
		t.Errorf("ColClue(2) = %v, want empty", p.ColClue(2))
	}
}

func TestNewPuzzle_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		cols [][]int
	}{
		{"no rows", nil, [][]int{{1}}},
		{"no columns", [][]int{{1}}, nil},
		{"row clue too wide", [][]int{{2, 2}}, [][]int{{1}, {1}, {1}, {1}}},
		{"column clue too tall", [][]int{{1}, {1}}, [][]int{{3}, {}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rowClues := make([]primitives.Clue, len(tc.rows))
			for i, blocks := range tc.rows {
				rowClues[i] = primitives.MustClue(blocks...)
			}
			colClues := make([]primitives.Clue, len(tc.cols))
			for i, blocks := range tc.cols {
				colClues[i] = primitives.MustClue(blocks...)
			}
			if p, err := NewPuzzle(rowClues, colClues); err == nil {
				t.Errorf("NewPuzzle succeeded with %v, want error", p)
			}
		})
	}
}

func TestNewPuzzle_CopiesClues(t *testing.T) {
	rows := []primitives.Clue{primitives.MustClue(1)}
	cols := []primitives.Clue{primitives.MustClue(1)}
	p, err := NewPuzzle(rows, cols)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}

	rows[0] = primitives.MustClue()
	if p.RowClue(0).Len() != 1 {
		t.Error("NewPuzzle must copy the clue slices")
	}
}
