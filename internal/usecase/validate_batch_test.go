package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

type fakeSource struct {
	records []ports.PuzzleRecord
	err     error
}

func (f fakeSource) Load(string, domain.PuzzleType) ([]ports.PuzzleRecord, error) {
	return f.records, f.err
}

// fakeValidator reports canned issues keyed by puzzle id.
type fakeValidator struct {
	typ    domain.PuzzleType
	issues map[string][]domain.Issue
}

func (f fakeValidator) Type() domain.PuzzleType { return f.typ }
func (f fakeValidator) Validate(p domain.Puzzle) []domain.Issue {
	return f.issues[p.ID()]
}

type fakeStore struct {
	saved  *domain.BatchReport
	id     string
	err    error
}

func (f *fakeStore) SaveBatch(r domain.BatchReport) (string, error) {
	f.saved = &r
	return f.id, f.err
}
func (f *fakeStore) SavePDF(domain.PDFReport) (string, error) { return f.id, f.err }

func sudokuRecord(id string) ports.PuzzleRecord {
	return ports.PuzzleRecord{Puzzle: domain.Puzzle{
		Type:       domain.TypeSudoku,
		SourcePath: id + ".json",
		Sudoku:     &domain.SudokuPuzzle{ID: id},
	}}
}

func warning(id string) domain.Issue {
	return domain.Issue{
		Severity:    domain.SeverityWarning,
		Category:    domain.CategoryBounds,
		PuzzleID:    id,
		Description: "clue count out of range",
	}
}

func TestValidateBatch_LenientPassesWithWarningsStrictFails(t *testing.T) {
	var records []ports.PuzzleRecord
	issues := map[string][]domain.Issue{}
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("p-%02d", i)
		records = append(records, sudokuRecord(id))
		if i >= 8 {
			issues[id] = []domain.Issue{warning(id)}
		}
	}

	val := fakeValidator{typ: domain.TypeSudoku, issues: issues}

	lenient := NewValidateBatch(fakeSource{records: records}, nil, []ports.Validator{val})
	report, id, err := lenient.Execute(context.Background(), "puzzles", domain.TypeSudoku, false)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if id != "" {
		t.Fatalf("no store configured, expected empty id, got %q", id)
	}
	if !report.ValidationPassed {
		t.Fatalf("lenient run with only warnings must pass")
	}
	if report.Errors != 0 || report.Warnings != 2 {
		t.Fatalf("expected 0 errors / 2 warnings, got %d/%d", report.Errors, report.Warnings)
	}
	if report.TotalPuzzles != 10 || report.ValidPuzzles != 10 {
		t.Fatalf("warnings alone must not invalidate puzzles: %+v", report)
	}

	strict := NewValidateBatch(fakeSource{records: records}, nil, []ports.Validator{val})
	report, _, err = strict.Execute(context.Background(), "puzzles", domain.TypeSudoku, true)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if report.ValidationPassed {
		t.Fatalf("strict run with warnings must fail")
	}
}

func TestValidateBatch_UnreadableFileDoesNotAbort(t *testing.T) {
	records := []ports.PuzzleRecord{
		sudokuRecord("ok-1"),
		{
			Puzzle:  domain.Puzzle{Type: domain.TypeSudoku, SourcePath: "broken.json"},
			LoadErr: errors.New("unexpected end of JSON input"),
		},
		sudokuRecord("ok-2"),
	}

	uc := NewValidateBatch(fakeSource{records: records}, nil,
		[]ports.Validator{fakeValidator{typ: domain.TypeSudoku}})

	report, _, err := uc.Execute(context.Background(), "puzzles", domain.TypeSudoku, false)
	if err != nil {
		t.Fatalf("a bad file must not abort the batch: %v", err)
	}
	if report.TotalPuzzles != 3 || report.ValidPuzzles != 2 || report.InvalidPuzzles != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if report.ValidationPassed {
		t.Fatalf("batch with an unreadable file must fail")
	}
	if len(report.Issues) != 1 || report.Issues[0].Category != domain.CategoryStructural {
		t.Fatalf("expected one synthetic structural issue, got %v", report.Issues)
	}
	if report.Issues[0].Location != "broken.json" {
		t.Fatalf("issue should point at the file: %+v", report.Issues[0])
	}
}

func TestValidateBatch_SavesReport(t *testing.T) {
	store := &fakeStore{id: "20260829T120000Z_sudoku"}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	uc := NewValidateBatch(
		fakeSource{records: []ports.PuzzleRecord{sudokuRecord("p-1")}},
		store,
		[]ports.Validator{fakeValidator{typ: domain.TypeSudoku}},
		WithNow(func() time.Time { return now }),
	)

	report, id, err := uc.Execute(context.Background(), "puzzles", domain.TypeSudoku, false)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if id != store.id {
		t.Fatalf("expected store id %q, got %q", store.id, id)
	}
	if store.saved == nil || store.saved.TotalPuzzles != 1 {
		t.Fatalf("report was not saved: %+v", store.saved)
	}
	if !report.StartedAt.Equal(now) || !report.EndedAt.Equal(now) {
		t.Fatalf("timestamps should come from the injected clock")
	}
}

func TestValidateBatch_NoValidatorForType(t *testing.T) {
	uc := NewValidateBatch(fakeSource{}, nil,
		[]ports.Validator{fakeValidator{typ: domain.TypeSudoku}})

	_, _, err := uc.Execute(context.Background(), "puzzles", domain.TypeCrossword, false)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected the error to wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidateBatch_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewValidateBatch(
		fakeSource{records: []ports.PuzzleRecord{sudokuRecord("p-1")}},
		nil,
		[]ports.Validator{fakeValidator{typ: domain.TypeSudoku}},
	)

	_, _, err := uc.Execute(ctx, "puzzles", domain.TypeSudoku, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
