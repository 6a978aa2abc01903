package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"crosswarped.com/nonogram"
	"crosswarped.com/nonogram/pkg/primitives"
)

// puzzleDoc is the JSON puzzle document format:
//
//	{"name": "heart", "clues": {"row": [[1,1],[3]], "col": [[2],[1],[2]]}}
type puzzleDoc struct {
	Name  string `json:"name"`
	Clues struct {
		Row [][]int `json:"row"`
		Col [][]int `json:"col"`
	} `json:"clues"`
}

func main() {
	file := flag.String("file", "", "The puzzle JSON file to solve (default: stdin)")
	firstOnly := flag.Bool("first", false, "Only report the first solution")
	doAll := flag.Bool("all", false, "Enumerate every solution")
	verifyOnly := flag.Bool("verify", false, "Only report whether the puzzle is well-formed")
	maxSteps := flag.Int64("max-steps", 0, "Abort after this many candidate placements (0 = unlimited)")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *firstOnly && *doAll {
		fmt.Println("Cannot use both -first and -all")
		os.Exit(1)
	}
	if !*firstOnly && *maxSteps > 0 {
		// Enumeration cannot tell an exhausted budget from an exhausted
		// search space; budgets only make sense when solving for one witness.
		fmt.Println("-max-steps requires -first")
		os.Exit(1)
	}

	doc, err := loadPuzzle(*file)
	if err != nil {
		fmt.Println("Error loading puzzle:", err)
		os.Exit(1)
	}

	puzzle, err := buildPuzzle(doc)
	if err != nil {
		fmt.Println("Invalid puzzle:", err)
		os.Exit(1)
	}

	if *verifyOnly {
		fmt.Printf("Puzzle %q is well-formed (%dx%d).\n", doc.Name, puzzle.Height(), puzzle.Width())
		return
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	solver := nonogram.CreateSolver(puzzle, nonogram.SolverParams{MaxSteps: *maxSteps})

	if *firstOnly {
		res := solver.Solve(ctx)
		switch res.Outcome {
		case nonogram.Solved:
			fmt.Println("--------------------------------")
			fmt.Println(res.Grid.Repr())
		case nonogram.Unsatisfiable:
			fmt.Println("No solution exists.")
		case nonogram.Aborted:
			fmt.Println("No solution found before the budget ran out.")
		case nonogram.InvalidInput:
			fmt.Println("Invalid puzzle:", res.Reason)
			os.Exit(1)
		}
	} else {
		count := 0
		for grid := range solver.Solutions(ctx) {
			if err := ctx.Err(); err != nil {
				fmt.Println("Context error:", err)
				break
			}

			count++
			fmt.Println("--------------------------------")
			fmt.Println(grid.Repr())

			if *doAll {
				continue
			}

			// Wait for user input and determine if they want to continue.
			// Continue (any key), or stop (n)
			fmt.Print("Continue? [Y/n]: ")
			var input string
			fmt.Scanln(&input)
			if input == "n" || input == "N" {
				break
			}
		}
		if count == 0 && ctx.Err() == nil {
			fmt.Println("No solution exists.")
		}
	}

	fmt.Println("--------------------------------")
	fmt.Println("Done")

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func loadPuzzle(path string) (*puzzleDoc, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var doc puzzleDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding puzzle document: %w", err)
	}
	return &doc, nil
}

func buildPuzzle(doc *puzzleDoc) (*nonogram.Puzzle, error) {
	rows := make([]primitives.Clue, len(doc.Clues.Row))
	for i, blocks := range doc.Clues.Row {
		clue, err := primitives.NewClue(blocks...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = clue
	}
	cols := make([]primitives.Clue, len(doc.Clues.Col))
	for i, blocks := range doc.Clues.Col {
		clue, err := primitives.NewClue(blocks...)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		cols[i] = clue
	}
	return nonogram.NewPuzzle(rows, cols)
}
