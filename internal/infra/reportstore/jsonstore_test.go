package reportstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
)

func sampleReport(start time.Time) domain.BatchReport {
	return domain.BatchReport{
		PuzzleType:       domain.TypeSudoku,
		SourcePath:       "puzzles/",
		ValidationPassed: true,
		TotalPuzzles:     3,
		ValidPuzzles:     3,
		Issues:           []domain.Issue{},
		Puzzles:          []domain.PuzzleResult{},
		StartedAt:        start,
		EndedAt:          start.Add(time.Second),
	}
}

func TestSaveBatch_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	start := time.Date(2026, 8, 29, 10, 11, 12, 0, time.UTC)

	store := NewJSONStore(tmp, domain.DefaultConfig())
	id, err := store.SaveBatch(sampleReport(start))
	if err != nil {
		t.Fatalf("SaveBatch error: %v", err)
	}

	wantFile := filepath.Join(tmp, "reports", "20260829T101112Z_sudoku.json")
	if _, err := os.Stat(wantFile); err != nil {
		t.Fatalf("expected file at %s, stat err=%v (id=%s)", wantFile, err, id)
	}

	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.BatchReport
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.TotalPuzzles != 3 || !decoded.ValidationPassed {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}

	if strings.Contains(id, ".json") {
		t.Fatalf("id should not carry the extension: %q", id)
	}
}

func TestSaveBatch_WritesIndexWhenEnabled(t *testing.T) {
	tmp := t.TempDir()
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(true))
	if _, err := store.SaveBatch(sampleReport(start)); err != nil {
		t.Fatalf("SaveBatch error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "reports", "index.jsonl"))
	if err != nil {
		t.Fatalf("index missing: %v", err)
	}

	var ref Ref
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(b))), &ref); err != nil {
		t.Fatalf("index line: %v", err)
	}
	if ref.Kind != "sudoku" || !ref.Passed {
		t.Fatalf("unexpected index entry: %+v", ref)
	}
}

func TestListAndLoadRaw(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	older := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	if _, err := store.SaveBatch(sampleReport(older)); err != nil {
		t.Fatalf("save older: %v", err)
	}
	if _, err := store.SaveBatch(sampleReport(newer)); err != nil {
		t.Fatalf("save newer: %v", err)
	}

	refs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if !strings.HasPrefix(refs[0].ID, "20260829") {
		t.Fatalf("newest report must list first, got %q", refs[0].ID)
	}
	if refs[0].Kind != "sudoku" {
		t.Fatalf("unexpected kind %q", refs[0].Kind)
	}

	raw, err := store.LoadRaw(refs[0].ID)
	if err != nil {
		t.Fatalf("loadraw: %v", err)
	}
	if !json.Valid(raw) {
		t.Fatalf("stored report is not valid JSON")
	}
}

func TestList_EmptyWhenNoReports(t *testing.T) {
	store := NewJSONStore(t.TempDir(), domain.DefaultConfig())
	refs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected no refs, got %v", refs)
	}
}

func TestSavePDF_UsesFilenameSlug(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	id, err := store.SavePDF(domain.PDFReport{
		Path:      "output/Large Print Sudoku Vol 1.pdf",
		StartedAt: time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("SavePDF error: %v", err)
	}
	if !strings.HasSuffix(id, "pdf-large-print-sudoku-vol-1") {
		t.Fatalf("unexpected id %q", id)
	}
}
