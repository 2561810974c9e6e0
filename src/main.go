package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"crosswarped.com/fillin"
	"crosswarped.com/fillin/internal/wordsource"
)

type SolveRequest struct {
	// Grid rows: '#' blocked, '.' blank, 'a'-'z' pre-filled.
	Grid []string `json:"grid"`
	// Words lists the fill words inline.
	Words []string `json:"words"`
	// WordSet optionally names a stored word set to append to Words.
	WordSet string `json:"wordSet"`
}

type SolveResponse struct {
	Success  bool     `json:"success"`
	Solution []string `json:"solution,omitempty"`
	Nodes    int      `json:"nodes"`
	Error    string   `json:"error,omitempty"`
}

func execute(ctx context.Context, req SolveRequest) ([]string, fillin.Stats, error) {
	if len(req.Grid) == 0 {
		return nil, fillin.Stats{}, fmt.Errorf("grid must not be empty")
	}

	grid, err := fillin.ParseGridLines(req.Grid)
	if err != nil {
		return nil, fillin.Stats{}, fmt.Errorf("ParseGridLines: %w", err)
	}

	words := req.Words
	if req.WordSet != "" {
		fetched, err := wordsource.Fetch(ctx, wordsource.FetchParams{
			Project: os.Getenv("FILLIN_PROJECT"),
			Table:   os.Getenv("FILLIN_WORDSET_TABLE"),
			Set:     req.WordSet,
		})
		if err != nil {
			return nil, fillin.Stats{}, fmt.Errorf("wordsource.Fetch: %w", err)
		}
		logrus.WithFields(logrus.Fields{"set": req.WordSet, "words": len(fetched)}).Info("loaded word set")
		words = append(words, fetched...)
	}

	if len(words) == 0 {
		return nil, fillin.Stats{}, fmt.Errorf("words must not be empty")
	}

	timeout := 1 * time.Minute
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline) - 5*time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	solved, stats, err := fillin.Solve(ctx, grid, words)
	if err != nil {
		return nil, stats, err
	}

	rows := make([]string, 0, solved.Height())
	for y := 0; y < solved.Height(); y++ {
		row := make([]rune, solved.Width())
		for x := 0; x < solved.Width(); x++ {
			row[x] = solved.Get(y, x)
		}
		rows = append(rows, string(row))
	}
	return rows, stats, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solveFillin(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("invalid request body")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(SolveResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	solution, stats, err := execute(r.Context(), req)

	response := SolveResponse{
		Success:  err == nil,
		Solution: solution,
		Nodes:    stats.Nodes,
	}
	if err != nil {
		response.Error = err.Error()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logrus.WithError(err).Error("marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
	}
}

func main() {
	// Local development config; deployed functions get env from the platform.
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.JSONFormatter{})

	funcframework.RegisterHTTPFunction("/solve-fillin", solveFillin)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		logrus.Fatalf("funcframework.StartHostPort: %v", err)
	}
}
