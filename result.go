package nonogram

import "fmt"

// Outcome tags the conclusion of a solve invocation. The four outcomes are
// deliberately distinct: Unsatisfiable is a proof, Aborted is the absence of
// one, and neither is an input error.
type Outcome int

const (
	// Solved means a grid satisfying every clue was found.
	Solved Outcome = iota
	// Unsatisfiable means the search exhausted every candidate: no grid
	// satisfies the puzzle. This is a correct, final answer, not an error.
	Unsatisfiable
	// Aborted means the search was cancelled or ran out of budget before
	// reaching a conclusion. It carries no claim about satisfiability.
	Aborted
	// InvalidInput means the puzzle was malformed and no search was run.
	InvalidInput
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "Solved"
	case Unsatisfiable:
		return "Unsatisfiable"
	case Aborted:
		return "Aborted"
	case InvalidInput:
		return "InvalidInput"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one solve invocation. It is produced once and
// never mutated.
type Result struct {
	Outcome Outcome

	// Grid is the witness solution; set only when Outcome is Solved.
	Grid *Grid

	// Reason describes what was wrong with the input; set only when Outcome
	// is InvalidInput.
	Reason error
}

func (r Result) String() string {
	switch r.Outcome {
	case Solved:
		return fmt.Sprintf("Result(Solved, %dx%d)", r.Grid.Height(), r.Grid.Width())
	case InvalidInput:
		return fmt.Sprintf("Result(InvalidInput: %v)", r.Reason)
	default:
		return fmt.Sprintf("Result(%s)", r.Outcome)
	}
}
