package nonogram

import (
	"fmt"

	"crosswarped.com/nonogram/pkg/primitives"
)

// Puzzle is the immutable pairing of a grid shape with one clue per row and
// one clue per column. The solver never mutates a Puzzle; all search state
// lives in grids derived from it, so a Puzzle can back any number of
// concurrent solve invocations.
type Puzzle struct {
	rows []primitives.Clue
	cols []primitives.Clue
}

// NewPuzzle validates and builds a puzzle from row and column clues.
//
// A puzzle is well-formed only if every row clue's minimal satisfying length
// fits the width and every column clue's fits the height. Ill-formed puzzles
// are rejected here so the solver never has to.
func NewPuzzle(rows, cols []primitives.Clue) (*Puzzle, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("puzzle must have at least one row and one column, got %dx%d",
			len(rows), len(cols))
	}

	for i, clue := range rows {
		if clue.MinLength() > len(cols) {
			return nil, fmt.Errorf("row %d clue %v needs %d cells but the puzzle is %d wide",
				i, clue, clue.MinLength(), len(cols))
		}
	}
	for i, clue := range cols {
		if clue.MinLength() > len(rows) {
			return nil, fmt.Errorf("column %d clue %v needs %d cells but the puzzle is %d tall",
				i, clue, clue.MinLength(), len(rows))
		}
	}

	p := &Puzzle{
		rows: make([]primitives.Clue, len(rows)),
		cols: make([]primitives.Clue, len(cols)),
	}
	copy(p.rows, rows)
	copy(p.cols, cols)
	return p, nil
}

// Height returns the number of rows.
func (p *Puzzle) Height() int {
	return len(p.rows)
}

// Width returns the number of columns.
func (p *Puzzle) Width() int {
	return len(p.cols)
}

// RowClue returns the clue for row r.
func (p *Puzzle) RowClue(r int) primitives.Clue {
	return p.rows[r]
}

// ColClue returns the clue for column c.
func (p *Puzzle) ColClue(c int) primitives.Clue {
	return p.cols[c]
}

func (p *Puzzle) String() string {
	return fmt.Sprintf("Puzzle(%dx%d)", p.Height(), p.Width())
}
