package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

// ValidateBatch runs one validator over every puzzle of a batch and
// aggregates the findings into a report. One bad file never aborts the
// batch: its findings are recorded and the loop continues.
type ValidateBatch struct {
	source     ports.PuzzleSource
	store      ports.ReportStore
	validators map[domain.PuzzleType]ports.Validator
	now        func() time.Time
}

type BatchOption func(*ValidateBatch)

// WithNow is useful for tests.
func WithNow(now func() time.Time) BatchOption {
	return func(uc *ValidateBatch) { uc.now = now }
}

// NewValidateBatch wires the batch driver. store may be nil (report is
// returned but not persisted).
func NewValidateBatch(src ports.PuzzleSource, store ports.ReportStore, validators []ports.Validator, opts ...BatchOption) *ValidateBatch {
	uc := &ValidateBatch{
		source:     src,
		store:      store,
		validators: map[domain.PuzzleType]ports.Validator{},
		now:        time.Now,
	}
	for _, v := range validators {
		uc.validators[v.Type()] = v
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates the batch at path with the validator for typ. The
// returned id is the saved report's id ("" when no store is configured).
//
// Strict mode permits neither errors nor warnings; lenient mode permits
// warnings. Inputs are read once and never written.
func (uc *ValidateBatch) Execute(ctx context.Context, path string, typ domain.PuzzleType, strict bool) (domain.BatchReport, string, error) {
	report := domain.BatchReport{
		PuzzleType: typ,
		SourcePath: path,
		Strict:     strict,
		StartedAt:  uc.now().UTC(),
		Issues:     []domain.Issue{},
		Puzzles:    []domain.PuzzleResult{},
	}

	val, ok := uc.validators[typ]
	if !ok {
		return report, "", &domain.OpError{
			Op:   "validatebatch.execute",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: no validator registered for type %q", domain.ErrInvalidConfig, typ),
		}
	}

	records, err := uc.source.Load(path, typ)
	if err != nil {
		return report, "", err
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, "", err
		}

		result := uc.validateOne(val, rec)
		report.Puzzles = append(report.Puzzles, result)
		report.Issues = append(report.Issues, result.Issues...)

		report.TotalPuzzles++
		if result.Valid {
			report.ValidPuzzles++
		} else {
			report.InvalidPuzzles++
		}
	}

	report.Errors, report.Warnings = domain.CountBySeverity(report.Issues)
	report.ValidationPassed = report.Errors == 0 && (!strict || report.Warnings == 0)
	report.EndedAt = uc.now().UTC()

	var id string
	if uc.store != nil {
		id, err = uc.store.SaveBatch(report)
		if err != nil {
			return report, "", err
		}
	}

	return report, id, nil
}

// validateOne turns a load failure into a synthetic structural issue so the
// batch can keep going; otherwise it runs the validator. A puzzle is valid
// when it carries no error-severity issues (warnings alone do not invalidate
// it; strict mode accounts for them at the report level).
func (uc *ValidateBatch) validateOne(val ports.Validator, rec ports.PuzzleRecord) domain.PuzzleResult {
	if rec.LoadErr != nil {
		return domain.PuzzleResult{
			PuzzleID:   rec.Puzzle.ID(),
			SourcePath: rec.Puzzle.SourcePath,
			Valid:      false,
			Issues: []domain.Issue{{
				Severity:       domain.SeverityError,
				Category:       domain.CategoryStructural,
				Location:       rec.Puzzle.SourcePath,
				Description:    fmt.Sprintf("unreadable puzzle file: %v", rec.LoadErr),
				Recommendation: "regenerate the file or remove it from the batch",
			}},
		}
	}

	issues := val.Validate(rec.Puzzle)
	errs, _ := domain.CountBySeverity(issues)

	return domain.PuzzleResult{
		PuzzleID:   rec.Puzzle.ID(),
		SourcePath: rec.Puzzle.SourcePath,
		Valid:      errs == 0,
		Issues:     issues,
	}
}
