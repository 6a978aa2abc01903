package nonogram

import "testing"

func TestVerify(t *testing.T) {
	p := mustPuzzle(t, [][]int{{1}, {1}}, [][]int{{2}, {}})

	good := NewGrid([][]bool{
		{true, false},
		{true, false},
	})
	if !Verify(good, p) {
		t.Error("valid grid rejected")
	}

	wrongCells := NewGrid([][]bool{
		{false, true},
		{true, false},
	})
	if Verify(wrongCells, p) {
		t.Error("grid violating the column clues accepted")
	}

	wrongShape := NewGrid([][]bool{
		{true, false},
	})
	if Verify(wrongShape, p) {
		t.Error("grid with mismatched dimensions accepted")
	}

	if Verify(good, nil) {
		t.Error("nil puzzle accepted")
	}
}

func TestVerify_EmptyClues(t *testing.T) {
	p := mustPuzzle(t, [][]int{{}, {}}, [][]int{{}, {}})

	empty := NewGrid([][]bool{
		{false, false},
		{false, false},
	})
	if !Verify(empty, p) {
		t.Error("all-empty grid rejected by all-empty clues")
	}

	oneFilled := NewGrid([][]bool{
		{false, true},
		{false, false},
	})
	if Verify(oneFilled, p) {
		t.Error("filled cell accepted by all-empty clues")
	}
}
