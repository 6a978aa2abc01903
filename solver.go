package nonogram

import (
	"context"
	"fmt"
	"iter"

	"crosswarped.com/nonogram/internal"
	"crosswarped.com/nonogram/pkg/primitives"
)

// Solver runs a depth-first backtracking search over row assignments,
// pruning with column prefix-feasibility after every placement. It is
// deterministic: identical input yields identical results in identical order.
//
// A Solver is single-threaded; each Solve or Solutions call owns its board
// for the duration of the call. Separate Solver instances over separate
// Puzzles may run concurrently.
type Solver struct {
	puzzle   *Puzzle
	maxSteps int64
}

// SolverParams configures a Solver.
type SolverParams struct {
	// MaxSteps bounds how many candidate row placements the search may try
	// before giving up with Aborted. Zero means unlimited.
	MaxSteps int64
}

// CreateSolver builds a solver for a puzzle.
func CreateSolver(p *Puzzle, params SolverParams) *Solver {
	return &Solver{puzzle: p, maxSteps: params.MaxSteps}
}

// Solve searches for one solution, first in the canonical candidate order
// wins. Cancellation of ctx or exhaustion of the step budget produces
// Aborted; exhausting the search space produces Unsatisfiable.
func (s *Solver) Solve(ctx context.Context) Result {
	run, err := s.newSearch()
	if err != nil {
		return Result{Outcome: InvalidInput, Reason: err}
	}

	var solution *Grid
	run.search(ctx, 0, func(g Grid) bool {
		solution = &g
		return false
	})

	switch {
	case solution != nil:
		return Result{Outcome: Solved, Grid: solution}
	case run.aborted:
		return Result{Outcome: Aborted}
	default:
		return Result{Outcome: Unsatisfiable}
	}
}

// Solutions returns a lazy sequence of every solution to the puzzle, in the
// deterministic search order. Breaking out of the range stops the search. An
// invalid puzzle yields nothing; use Solve to distinguish input errors.
func (s *Solver) Solutions(ctx context.Context) iter.Seq[Grid] {
	return func(yield func(Grid) bool) {
		run, err := s.newSearch()
		if err != nil {
			return
		}
		run.search(ctx, 0, yield)
	}
}

// Solve is a convenience wrapper: one solver, one invocation.
func Solve(ctx context.Context, p *Puzzle, params SolverParams) Result {
	return CreateSolver(p, params).Solve(ctx)
}

// search is the state of one solve invocation.
type search struct {
	puzzle *Puzzle
	board  *board
	cache  *internal.LineCache

	prefixBuf []bool

	steps    int64
	maxSteps int64
	aborted  bool
}

func (s *Solver) newSearch() (*search, error) {
	p := s.puzzle
	if p == nil {
		return nil, fmt.Errorf("solver has no puzzle")
	}

	// NewPuzzle already validated feasibility, so these cannot fail for a
	// puzzle built through it; checked anyway so a hand-rolled Puzzle can
	// never start a search.
	rows := make([]primitives.LineSolutions, p.Height())
	for r := range rows {
		sols, err := primitives.SolutionsFor(p.RowClue(r), p.Width())
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		rows[r] = sols
	}
	cols := make([]primitives.LineSolutions, p.Width())
	for c := range cols {
		sols, err := primitives.SolutionsFor(p.ColClue(c), p.Height())
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c, err)
		}
		cols[c] = sols
	}

	return &search{
		puzzle:    p,
		board:     newBoard(p.Height(), p.Width()),
		cache:     internal.NewLineCache(rows, cols),
		prefixBuf: make([]bool, 0, p.Height()),
		maxSteps:  s.maxSteps,
	}, nil
}

// search assigns rows depth-first starting at the given depth and yields
// every completed grid. It returns false once the consumer stops or the
// search aborts; either way the caller unwinds without trying further
// candidates.
func (s *search) search(ctx context.Context, depth int, yield func(Grid) bool) bool {
	if ctx.Err() != nil {
		s.aborted = true
		return false
	}

	if depth == s.puzzle.Height() {
		// Every column's full prefix was feasibility-checked at the last
		// placement, which for a complete column is exact satisfaction.
		return yield(s.board.toGrid())
	}

	for candidate := range s.cache.RowSolutions(depth).All() {
		s.steps++
		if s.maxSteps > 0 && s.steps > s.maxSteps {
			s.aborted = true
			return false
		}

		s.board.applyRow(depth, candidate)
		if s.columnsConsistent(depth + 1) {
			if !s.search(ctx, depth+1, yield) {
				s.board.clearRow(depth)
				return false
			}
		}
		s.board.clearRow(depth)
	}
	return true
}

// columnsConsistent checks that each column's assigned prefix can still be
// completed to satisfy its clue. Pruning here, after every row placement, is
// what keeps the search from degenerating into the full cross-product of row
// candidates.
func (s *search) columnsConsistent(depth int) bool {
	for c := 0; c < s.puzzle.Width(); c++ {
		s.prefixBuf = s.board.columnPrefix(c, depth, s.prefixBuf)
		if !s.cache.ColumnFeasible(c, s.prefixBuf) {
			return false
		}
	}
	return true
}
