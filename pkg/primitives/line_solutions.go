package primitives

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrInfeasibleLength is returned by SolutionsFor when no line of the
// requested length can satisfy the clue. It signals invalid input, not an
// unsatisfiable search.
var ErrInfeasibleLength = errors.New("line length cannot satisfy clue")

// LineSolutions is the set of all assignments of a fixed-length line that
// satisfy a clue. The set is never materialized: All iterates it lazily and
// Count computes its size in closed form.
type LineSolutions struct {
	clue   Clue
	length int
}

// SolutionsFor builds the solution set for a clue over a line of the given
// length. It fails if the length is negative or below the clue's MinLength.
func SolutionsFor(clue Clue, length int) (LineSolutions, error) {
	if length < 0 {
		return LineSolutions{}, fmt.Errorf("line length %d: %w", length, ErrInfeasibleLength)
	}
	if length < clue.MinLength() {
		return LineSolutions{}, fmt.Errorf("line length %d below clue minimum %d: %w",
			length, clue.MinLength(), ErrInfeasibleLength)
	}
	return LineSolutions{clue: clue, length: length}, nil
}

// Clue returns the clue the solutions satisfy.
func (s LineSolutions) Clue() Clue {
	return s.clue
}

// Length returns the line length of every solution.
func (s LineSolutions) Length() int {
	return s.length
}

// Count returns the number of distinct solutions.
//
// Placing k blocks in a line of length n with sum(blocks) = X leaves
// n - X - (k-1) cells of slack to distribute over k+1 gap slots, which is
// C(n - X + 1, k) placements. The empty clue has exactly one solution.
func (s LineSolutions) Count() int64 {
	return binomial(s.length-s.clue.Sum()+1, s.clue.Len())
}

// All returns a lazy, restartable sequence of every solution, each exactly
// once, in a deterministic order: lexicographic by block start positions,
// so the all-blocks-leftmost assignment comes first and each subsequent
// assignment slides the last movable block right.
//
// Yielded slices are fresh copies and safe to retain.
func (s LineSolutions) All() iter.Seq[[]bool] {
	return func(yield func([]bool) bool) {
		line := make([]bool, s.length)
		s.place(line, 0, 0, yield)
	}
}

// place puts blocks[bi:] at start positions >= pos and yields each completed
// line. It returns false once the consumer stops.
func (s LineSolutions) place(line []bool, pos, bi int, yield func([]bool) bool) bool {
	blocks := s.clue.blocks
	if bi == len(blocks) {
		return yield(slices.Clone(line))
	}

	// Remaining blocks and their mandatory separating gaps must still fit.
	need := 0
	for _, b := range blocks[bi:] {
		need += b + 1
	}
	need-- // no gap required after the final block

	for p := pos; p+need <= s.length; p++ {
		for i := p; i < p+blocks[bi]; i++ {
			line[i] = true
		}
		if !s.place(line, p+blocks[bi]+1, bi+1, yield) {
			return false
		}
		for i := p; i < p+blocks[bi]; i++ {
			line[i] = false
		}
	}
	return true
}

// First returns the first solution in All's order (every block as far left
// as possible), or nil if the set is empty. The set is non-empty for every
// LineSolutions built by SolutionsFor.
func (s LineSolutions) First() []bool {
	for line := range s.All() {
		return line
	}
	return nil
}

// CanComplete reports whether at least one solution agrees with the given
// fixed prefix. Cells past the prefix are free. A full-length prefix makes
// this an exact satisfaction check.
//
// This is the primitive behind column-consistency pruning: during a
// row-by-row search, a column's cells above the frontier are fixed and the
// rest are undecided.
func (s LineSolutions) CanComplete(prefix []bool) bool {
	if len(prefix) > s.length {
		return false
	}

	blocks := s.clue.blocks
	// memo over (position, next block): 0 unseen, 1 feasible, 2 infeasible.
	width := len(blocks) + 1
	memo := make([]int8, (s.length+1)*width)

	var rec func(pos, bi int) bool
	rec = func(pos, bi int) bool {
		key := pos*width + bi
		if m := memo[key]; m != 0 {
			return m == 1
		}

		ok := false
		if bi == len(blocks) {
			// Every remaining fixed cell must be empty.
			ok = true
			for i := pos; i < len(prefix); i++ {
				if prefix[i] {
					ok = false
					break
				}
			}
		} else {
			// Leave pos empty, unless it is fixed filled.
			if pos < s.length && (pos >= len(prefix) || !prefix[pos]) {
				ok = rec(pos+1, bi)
			}
			// Or start block bi at pos.
			if !ok && pos+blocks[bi] <= s.length {
				fits := true
				for i := pos; i < pos+blocks[bi] && i < len(prefix); i++ {
					if !prefix[i] {
						fits = false
						break
					}
				}
				if fits {
					end := pos + blocks[bi]
					if end == s.length {
						ok = rec(end, bi+1)
					} else if end >= len(prefix) || !prefix[end] {
						// The cell after a block is its separating gap.
						ok = rec(end+1, bi+1)
					}
				}
			}
		}

		if ok {
			memo[key] = 1
		} else {
			memo[key] = 2
		}
		return ok
	}

	return rec(0, 0)
}

func (s LineSolutions) String() string {
	return fmt.Sprintf("LineSolutions(%s, length=%d)", s.clue, s.length)
}

// binomial returns C(n, k) as an int64. Exact for the line lengths nonogram
// grids use; callers never pass n past the low hundreds.
func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		// Multiply before dividing; the running product is always divisible.
		result = result * int64(n-k+i) / int64(i)
	}
	return result
}
