package primitives

import (
	"fmt"
	"strings"
)

// Clue is the constraint on a single line (one row or one column) of a
// nonogram: an ordered sequence of block lengths. A clue (a, b, c) requires
// exactly three runs of filled cells of lengths a, b, and c, in that order,
// with at least one empty cell between consecutive runs.
//
// The empty clue (no blocks) requires an all-empty line. Zero entries are
// dropped at construction, so the clue (0) is the empty clue.
//
// Clues are immutable once constructed.
type Clue struct {
	blocks []int
}

// NewClue builds a clue from the given block lengths.
//
// Zero entries are ignored; a negative entry is invalid input.
func NewClue(blocks ...int) (Clue, error) {
	kept := make([]int, 0, len(blocks))
	for _, b := range blocks {
		if b < 0 {
			return Clue{}, fmt.Errorf("clue block length %d is negative", b)
		}
		if b == 0 {
			continue
		}
		kept = append(kept, b)
	}
	return Clue{blocks: kept}, nil
}

// MustClue is NewClue for clues known to be valid. It panics on invalid input.
func MustClue(blocks ...int) Clue {
	c, err := NewClue(blocks...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of blocks in the clue.
func (c Clue) Len() int {
	return len(c.blocks)
}

// Empty reports whether the clue requires an all-empty line.
func (c Clue) Empty() bool {
	return len(c.blocks) == 0
}

// Blocks returns a copy of the block lengths.
func (c Clue) Blocks() []int {
	out := make([]int, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Sum returns the total number of filled cells the clue imposes.
func (c Clue) Sum() int {
	sum := 0
	for _, b := range c.blocks {
		sum += b
	}
	return sum
}

// MinLength returns the shortest line length that can satisfy the clue:
// all blocks plus one mandatory gap between each consecutive pair.
func (c Clue) MinLength() int {
	if len(c.blocks) == 0 {
		return 0
	}
	return c.Sum() + len(c.blocks) - 1
}

// SatisfiedBy reports whether a fully-assigned line matches the clue
// exactly: its filled runs, read in order, equal the clue's blocks.
func (c Clue) SatisfiedBy(line []bool) bool {
	next := 0
	run := 0
	for i := 0; i <= len(line); i++ {
		// A virtual trailing empty cell closes the final run.
		filled := i < len(line) && line[i]
		if filled {
			run++
			continue
		}
		if run > 0 {
			if next == len(c.blocks) || run != c.blocks[next] {
				return false
			}
			next++
			run = 0
		}
	}
	return next == len(c.blocks)
}

func (c Clue) String() string {
	if len(c.blocks) == 0 {
		return "Clue()"
	}
	parts := make([]string, len(c.blocks))
	for i, b := range c.blocks {
		parts[i] = fmt.Sprint(b)
	}
	return fmt.Sprintf("Clue(%s)", strings.Join(parts, " "))
}

// ReadBlocks returns the filled-run lengths of a line, in order.
//
// A line satisfies a clue iff ReadBlocks(line) equals the clue's blocks; this
// is the block-structure read that SatisfiedBy performs without allocating.
func ReadBlocks(line []bool) []int {
	var blocks []int
	run := 0
	for _, filled := range line {
		if filled {
			run++
			continue
		}
		if run > 0 {
			blocks = append(blocks, run)
			run = 0
		}
	}
	if run > 0 {
		blocks = append(blocks, run)
	}
	return blocks
}
