package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"crosswarped.com/nonogram"
	"crosswarped.com/nonogram/pkg/primitives"
)

type SolvePuzzleRequest struct {
	// Name selects a stored puzzle by name. When set, RowClues and ColClues
	// are ignored and the clues come from the puzzle store.
	Name         string  `json:"name"`
	RowClues     [][]int `json:"rowClues"`
	ColClues     [][]int `json:"colClues"`
	MaxSolutions int     `json:"maxSolutions"`
}

type SolvePuzzleResponse struct {
	Success   bool     `json:"success"`
	Outcome   string   `json:"outcome"`
	Solutions []string `json:"solutions"`
	Error     string   `json:"error,omitempty"`
}

func getStoredClues(ctx context.Context, name string) ([][]int, [][]int, error) {
	project := "nonogram-x"
	if envProject := os.Getenv("PUZZLE_PROJECT"); envProject != "" {
		project = envProject
	}
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query("SELECT row_clues, col_clues FROM `nonogram-x.FirestoreQuery.all_puzzles` WHERE name = @name")
	q.Location = "US"
	q.Parameters = []bigquery.QueryParameter{{Name: "name", Value: name}}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("job.Read: %w", err)
	}

	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("it.Next: %w", err)
		}

		rowJSON, ok := row[0].(string)
		if !ok {
			return nil, nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		colJSON, ok := row[1].(string)
		if !ok {
			return nil, nil, fmt.Errorf("row[1] is not a string: %v", row[1])
		}

		var rows, cols [][]int
		if err := json.Unmarshal([]byte(rowJSON), &rows); err != nil {
			return nil, nil, fmt.Errorf("unmarshaling row clues: %w", err)
		}
		if err := json.Unmarshal([]byte(colJSON), &cols); err != nil {
			return nil, nil, fmt.Errorf("unmarshaling column clues: %w", err)
		}
		return rows, cols, nil
	}
	return nil, nil, fmt.Errorf("no stored puzzle named %q", name)
}

func buildClues(blockLists [][]int) ([]primitives.Clue, error) {
	clues := make([]primitives.Clue, len(blockLists))
	for i, blocks := range blockLists {
		clue, err := primitives.NewClue(blocks...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		clues[i] = clue
	}
	return clues, nil
}

func execute(ctx context.Context, req SolvePuzzleRequest) ([]string, string, error) {
	if req.MaxSolutions <= 0 {
		return nil, "", fmt.Errorf("maxSolutions must be at least 1")
	}
	if req.MaxSolutions > 10 {
		return nil, "", fmt.Errorf("maxSolutions must be at most 10")
	}

	rowLists, colLists := req.RowClues, req.ColClues
	if req.Name != "" {
		var err error
		rowLists, colLists, err = getStoredClues(ctx, req.Name)
		if err != nil {
			return nil, "", fmt.Errorf("getStoredClues: %w", err)
		}
		log.WithFields(log.Fields{
			"name":   req.Name,
			"height": len(rowLists),
			"width":  len(colLists),
		}).Info("Loaded stored puzzle")
	}

	rows, err := buildClues(rowLists)
	if err != nil {
		return nil, "", fmt.Errorf("row clues: %w", err)
	}
	cols, err := buildClues(colLists)
	if err != nil {
		return nil, "", fmt.Errorf("column clues: %w", err)
	}

	puzzle, err := nonogram.NewPuzzle(rows, cols)
	if err != nil {
		return nil, "", err
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		log.WithField("timeout", timeout).Info("Setting solver timeout")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	solver := nonogram.CreateSolver(puzzle, nonogram.SolverParams{})

	var solutions []string
	for grid := range solver.Solutions(ctx) {
		solutions = append(solutions, grid.Repr())
		if len(solutions) >= req.MaxSolutions {
			break
		}
	}

	outcome := nonogram.Solved
	if len(solutions) == 0 {
		outcome = nonogram.Unsatisfiable
		if ctx.Err() != nil {
			outcome = nonogram.Aborted
		}
	}
	return solutions, outcome.String(), ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solvePuzzle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolvePuzzleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Error parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		response := SolvePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	solutions, outcome, err := execute(r.Context(), req)

	response := SolvePuzzleResponse{
		Success:   err == nil,
		Outcome:   outcome,
		Solutions: solutions,
	}

	if err != nil {
		response.Error = err.Error()
	} else if len(solutions) == 0 {
		response.Error = "No solution exists for the given clues"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.WithError(err).Error("Error marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	funcframework.RegisterHTTPFunction("/solve-puzzle", solvePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v", err)
	}
}
