// Package internal holds per-solve caches shared by the search engine.
package internal

import (
	"crosswarped.com/nonogram/pkg/primitives"
)

// LineCache carries the per-line solution sets of one solve invocation and
// memoizes column prefix-feasibility answers. Sibling search branches that
// share a column prefix ask the same feasibility question repeatedly; the
// cache answers each distinct question once.
//
// A LineCache belongs to a single solve call and is not safe for concurrent
// use, matching the engine's one-board-per-invocation discipline.
type LineCache struct {
	rows []primitives.LineSolutions
	cols []primitives.LineSolutions

	// colFeasible[c] maps an encoded prefix of column c to its answer.
	colFeasible []map[string]bool
}

// NewLineCache builds a cache over the puzzle's row and column solution sets.
func NewLineCache(rows, cols []primitives.LineSolutions) *LineCache {
	feasible := make([]map[string]bool, len(cols))
	for i := range feasible {
		feasible[i] = make(map[string]bool)
	}
	return &LineCache{rows: rows, cols: cols, colFeasible: feasible}
}

// RowSolutions returns the solution set for row r.
func (c *LineCache) RowSolutions(r int) primitives.LineSolutions {
	return c.rows[r]
}

// ColumnSolutions returns the solution set for column col.
func (c *LineCache) ColumnSolutions(col int) primitives.LineSolutions {
	return c.cols[col]
}

// ColumnFeasible reports whether column col's clue admits a completion of the
// given fixed prefix, memoizing the answer.
func (c *LineCache) ColumnFeasible(col int, prefix []bool) bool {
	key := encodePrefix(prefix)
	if answer, ok := c.colFeasible[col][key]; ok {
		return answer
	}
	answer := c.cols[col].CanComplete(prefix)
	c.colFeasible[col][key] = answer
	return answer
}

func encodePrefix(prefix []bool) string {
	buf := make([]byte, len(prefix))
	for i, filled := range prefix {
		if filled {
			buf[i] = '#'
		} else {
			buf[i] = '.'
		}
	}
	return string(buf)
}
