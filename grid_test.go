package nonogram

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrid_Repr(t *testing.T) {
	g := NewGrid([][]bool{
		{true, false, true},
		{false, true, false},
	})

	want := "■□■\n□■□"
	if got := g.Repr(); got != want {
		t.Errorf("Repr() = %q, want %q", got, want)
	}
	if g.Height() != 2 || g.Width() != 3 {
		t.Errorf("dims = %dx%d, want 2x3", g.Height(), g.Width())
	}
}

func TestGrid_CopiesInput(t *testing.T) {
	cells := [][]bool{{true, false}}
	g := NewGrid(cells)

	cells[0][0] = false
	if !g.Filled(0, 0) {
		t.Error("NewGrid must copy its input")
	}
}

func TestGrid_RowAndColumn(t *testing.T) {
	g := NewGrid([][]bool{
		{true, false},
		{true, true},
	})

	if diff := cmp.Diff([]bool{true, false}, g.Row(0)); diff != "" {
		t.Errorf("Row(0) mismatch (-want +got): %s", diff)
	}
	if diff := cmp.Diff([]bool{false, true}, g.Column(1)); diff != "" {
		t.Errorf("Column(1) mismatch (-want +got): %s", diff)
	}
}

func TestBoard_ApplyAndClear(t *testing.T) {
	b := newBoard(2, 3)

	if b.complete() {
		t.Error("fresh board reports complete")
	}

	b.applyRow(0, []bool{true, false, true})
	if diff := cmp.Diff([]bool{true}, b.columnPrefix(0, 1, nil)); diff != "" {
		t.Errorf("columnPrefix(0, 1) mismatch (-want +got): %s", diff)
	}
	if diff := cmp.Diff([]bool{false}, b.columnPrefix(1, 1, nil)); diff != "" {
		t.Errorf("columnPrefix(1, 1) mismatch (-want +got): %s", diff)
	}

	b.applyRow(1, []bool{false, false, true})
	if !b.complete() {
		t.Error("fully applied board reports incomplete")
	}

	g := b.toGrid()
	if got, want := g.Repr(), "■□■\n□□■"; got != want {
		t.Errorf("toGrid().Repr() = %q, want %q", got, want)
	}

	b.clearRow(1)
	if b.complete() {
		t.Error("board reports complete after clearRow")
	}
	if got := b.columnPrefix(2, 2, nil); !got[0] || got[1] {
		t.Errorf("columnPrefix(2, 2) after clear = %v, want [true false]", got)
	}
}

func TestBoard_ContradictionPanics(t *testing.T) {
	b := newBoard(1, 2)
	b.applyRow(0, []bool{true, false})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("re-applying a conflicting row should panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "contradiction") {
			t.Errorf("panic message = %v, want a contradiction report", r)
		}
	}()
	b.applyRow(0, []bool{false, true})
}

func TestBoard_WrongWidthPanics(t *testing.T) {
	b := newBoard(1, 3)

	defer func() {
		if recover() == nil {
			t.Fatal("applying a short row should panic")
		}
	}()
	b.applyRow(0, []bool{true})
}
