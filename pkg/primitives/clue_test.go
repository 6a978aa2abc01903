package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewClue(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		want    []int
		wantErr bool
	}{
		{"empty", nil, []int{}, false},
		{"single block", []int{3}, []int{3}, false},
		{"multiple blocks", []int{1, 2, 1}, []int{1, 2, 1}, false},
		{"zeros dropped", []int{0, 2, 0, 1, 0}, []int{2, 1}, false},
		{"all zeros is the empty clue", []int{0, 0}, []int{}, false},
		{"negative rejected", []int{1, -2}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewClue(tc.in...)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewClue(%v) expected error, got %v", tc.in, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClue(%v) unexpected error: %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, c.Blocks()); diff != "" {
				t.Errorf("Blocks mismatch (-want +got): %s", diff)
			}
		})
	}
}

func TestClue_MinLength(t *testing.T) {
	tests := []struct {
		clue Clue
		want int
	}{
		{MustClue(), 0},
		{MustClue(1), 1},
		{MustClue(5), 5},
		{MustClue(1, 1), 3},
		{MustClue(1, 2, 1), 6},
		{MustClue(3, 3), 7},
	}

	for _, tc := range tests {
		if got := tc.clue.MinLength(); got != tc.want {
			t.Errorf("%v.MinLength() = %d, want %d", tc.clue, got, tc.want)
		}
	}
}

func TestClue_SatisfiedBy(t *testing.T) {
	tests := []struct {
		name string
		clue Clue
		line []bool
		want bool
	}{
		{"empty clue, empty line", MustClue(), []bool{}, true},
		{"empty clue, all empty", MustClue(), []bool{false, false, false}, true},
		{"empty clue, one filled", MustClue(), []bool{false, true, false}, false},
		{"single block exact", MustClue(3), []bool{true, true, true}, true},
		{"single block shifted", MustClue(2), []bool{false, true, true, false}, true},
		{"block too long", MustClue(2), []bool{true, true, true}, false},
		{"block too short", MustClue(3), []bool{true, true, false}, false},
		{"split block", MustClue(2), []bool{true, false, true}, false},
		{"two blocks", MustClue(1, 1), []bool{true, false, true}, true},
		{"two blocks wrong order length", MustClue(1, 2), []bool{true, true, false, true}, false},
		{"trailing block closes at line end", MustClue(1, 2), []bool{true, false, true, true}, true},
		{"extra block", MustClue(1), []bool{true, false, true}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.clue.SatisfiedBy(tc.line); got != tc.want {
				t.Errorf("%v.SatisfiedBy(%v) = %v, want %v", tc.clue, tc.line, got, tc.want)
			}
		})
	}
}

func TestReadBlocks(t *testing.T) {
	tests := []struct {
		line []bool
		want []int
	}{
		{[]bool{}, nil},
		{[]bool{false, false}, nil},
		{[]bool{true}, []int{1}},
		{[]bool{true, true, false, true}, []int{2, 1}},
		{[]bool{false, true, false, true, true, true}, []int{1, 3}},
	}

	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, ReadBlocks(tc.line)); diff != "" {
			t.Errorf("ReadBlocks(%v) mismatch (-want +got): %s", tc.line, diff)
		}
	}
}

func TestClue_String(t *testing.T) {
	if got := MustClue(1, 2, 1).String(); got != "Clue(1 2 1)" {
		t.Errorf("String() = %q, want %q", got, "Clue(1 2 1)")
	}
	if got := MustClue().String(); got != "Clue()" {
		t.Errorf("String() = %q, want %q", got, "Clue()")
	}
}
