package nonogram

import (
	"fmt"
	"strings"
)

// Grid is a completed, immutable nonogram solution: every cell is either
// filled or empty.
type Grid struct {
	cells [][]bool
}

// NewGrid copies a row-major cell array into a Grid. Every row must have the
// same width.
func NewGrid(cells [][]bool) Grid {
	copied := make([][]bool, len(cells))
	for r, row := range cells {
		if r > 0 && len(row) != len(cells[0]) {
			panic(fmt.Sprintf("NewGrid: row %d has width %d, row 0 has width %d",
				r, len(row), len(cells[0])))
		}
		copied[r] = make([]bool, len(row))
		copy(copied[r], row)
	}
	return Grid{cells: copied}
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.cells)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Filled reports whether the cell at row r, column c is filled.
func (g Grid) Filled(r, c int) bool {
	return g.cells[r][c]
}

// Row returns a copy of row r.
func (g Grid) Row(r int) []bool {
	out := make([]bool, len(g.cells[r]))
	copy(out, g.cells[r])
	return out
}

// Column returns a copy of column c.
func (g Grid) Column(c int) []bool {
	out := make([]bool, len(g.cells))
	for r := range g.cells {
		out[r] = g.cells[r][c]
	}
	return out
}

// Repr renders the grid one row per line, filled cells as ■ and empty as □.
func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for r := range g.cells {
		var sb strings.Builder
		for _, filled := range g.cells[r] {
			if filled {
				sb.WriteRune('■')
			} else {
				sb.WriteRune('□')
			}
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{height: %d, width: %d, cells: %v}", g.Height(), g.Width(), g.cells)
}

// cell is one square of a board mid-search.
type cell uint8

const (
	cellUnknown cell = iota
	cellEmpty
	cellFilled
)

// board is the mutable grid the search engine works on. Rows are installed
// and cleared whole as the search advances and backtracks; the board itself
// holds no other search state.
type board struct {
	height, width int
	cells         []cell // row-major
}

func newBoard(height, width int) *board {
	return &board{
		height: height,
		width:  width,
		cells:  make([]cell, height*width),
	}
}

// applyRow installs a fully-known row assignment. Overwriting an
// already-assigned cell means the search discipline is broken, which is an
// engine bug rather than a puzzle property, so it panics instead of
// masquerading as an unsatisfiable branch.
func (b *board) applyRow(r int, line []bool) {
	if len(line) != b.width {
		panic(fmt.Sprintf("applyRow: assignment width %d does not match board width %d",
			len(line), b.width))
	}
	base := r * b.width
	for c, filled := range line {
		next := cellEmpty
		if filled {
			next = cellFilled
		}
		if prev := b.cells[base+c]; prev != cellUnknown && prev != next {
			panic(fmt.Sprintf("applyRow: contradiction at (%d,%d): search discipline bug", r, c))
		}
		b.cells[base+c] = next
	}
}

// clearRow undoes applyRow for row r.
func (b *board) clearRow(r int) {
	base := r * b.width
	for c := 0; c < b.width; c++ {
		b.cells[base+c] = cellUnknown
	}
}

// columnPrefix writes the first depth cells of column c into buf and returns
// it. All cells above the search frontier are known, so the prefix is a plain
// boolean line.
func (b *board) columnPrefix(c, depth int, buf []bool) []bool {
	buf = buf[:0]
	for r := 0; r < depth; r++ {
		buf = append(buf, b.cells[r*b.width+c] == cellFilled)
	}
	return buf
}

// complete reports whether every cell is assigned.
func (b *board) complete() bool {
	for _, cl := range b.cells {
		if cl == cellUnknown {
			return false
		}
	}
	return true
}

// toGrid snapshots the board into an immutable Grid. The board must be
// complete.
func (b *board) toGrid() Grid {
	cells := make([][]bool, b.height)
	for r := 0; r < b.height; r++ {
		row := make([]bool, b.width)
		for c := 0; c < b.width; c++ {
			switch b.cells[r*b.width+c] {
			case cellFilled:
				row[c] = true
			case cellEmpty:
				row[c] = false
			default:
				panic(fmt.Sprintf("toGrid: cell (%d,%d) still unknown", r, c))
			}
		}
		cells[r] = row
	}
	return Grid{cells: cells}
}
