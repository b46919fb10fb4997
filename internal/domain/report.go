package domain

import "time"

// PuzzleResult is the outcome for a single puzzle within a batch.
type PuzzleResult struct {
	PuzzleID   string  `json:"puzzle_id"`
	SourcePath string  `json:"source_path,omitempty"`
	Valid      bool    `json:"valid"`
	Issues     []Issue `json:"issues"`
}

// BatchReport aggregates one validation run over a directory or array file.
// A fresh report is produced per invocation; reports are never read back to
// seed a later run.
type BatchReport struct {
	PuzzleType       PuzzleType     `json:"puzzle_type"`
	SourcePath       string         `json:"source_path"`
	Strict           bool           `json:"strict"`
	ValidationPassed bool           `json:"validation_passed"`
	TotalPuzzles     int            `json:"total_puzzles"`
	ValidPuzzles     int            `json:"valid_puzzles"`
	InvalidPuzzles   int            `json:"invalid_puzzles"`
	Errors           int            `json:"errors"`
	Warnings         int            `json:"warnings"`
	Issues           []Issue        `json:"issues"`
	Puzzles          []PuzzleResult `json:"puzzles"`
	StartedAt        time.Time      `json:"started_at"`
	EndedAt          time.Time      `json:"ended_at"`
}

// PDFReport is the outcome of inspecting one rendered PDF.
type PDFReport struct {
	Path              string    `json:"path"`
	PageCount         int       `json:"page_count"`
	ExpectedPages     int       `json:"expected_pages"`
	PuzzlePagesOK     int       `json:"puzzle_pages_ok"`
	SolutionPagesOK   int       `json:"solution_pages_ok"`
	TextFallbackPages []int     `json:"text_fallback_pages"`
	ValidationPassed  bool      `json:"validation_passed"`
	Errors            int       `json:"errors"`
	Warnings          int       `json:"warnings"`
	Issues            []Issue   `json:"issues"`
	StartedAt         time.Time `json:"started_at"`
	EndedAt           time.Time `json:"ended_at"`
}
