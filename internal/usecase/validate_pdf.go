package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

// ValidatePDF inspects a rendered book PDF for the silent image-embedding
// failure mode: pages that should carry a rasterized puzzle but fell back to
// a text placeholder.
//
// Page layout convention: puzzle pages come first, solution pages directly
// after (pages 1..P are puzzles, P+1..P+S are solutions). Front/back matter
// beyond that is covered by the page-count tolerance.
type ValidatePDF struct {
	inspector ports.PDFInspector
	store     ports.ReportStore
	cfg       domain.Config
	now       func() time.Time
}

type PDFOption func(*ValidatePDF)

func WithPDFNow(now func() time.Time) PDFOption {
	return func(uc *ValidatePDF) { uc.now = now }
}

func NewValidatePDF(inspector ports.PDFInspector, store ports.ReportStore, cfg domain.Config, opts ...PDFOption) *ValidatePDF {
	uc := &ValidatePDF{
		inspector: inspector,
		store:     store,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute checks the PDF at path against the expected page counts. Overall
// pass requires the coverage threshold on puzzle pages and on solution pages
// separately, and zero text-fallback pages. An unreadable PDF is the one
// fatal condition and comes back as an error.
func (uc *ValidatePDF) Execute(ctx context.Context, path string, puzzlePages, solutionPages int) (domain.PDFReport, string, error) {
	report := domain.PDFReport{
		Path:              path,
		ExpectedPages:     puzzlePages + solutionPages,
		TextFallbackPages: []int{},
		Issues:            []domain.Issue{},
		StartedAt:         uc.now().UTC(),
	}

	if err := ctx.Err(); err != nil {
		return report, "", err
	}

	pages, err := uc.inspector.PageCount(path)
	if err != nil {
		return report, "", &domain.OpError{
			Op:   "validatepdf.pagecount",
			Kind: domain.KindExecution,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrExecution, err),
		}
	}
	report.PageCount = pages

	tol := uc.cfg.PDF.PageCountTolerance
	pageCountOK := true
	if diff := pages - report.ExpectedPages; diff < -tol || diff > tol {
		pageCountOK = false
		report.Issues = append(report.Issues, domain.Issue{
			Severity: domain.SeverityError,
			Category: domain.CategoryRendering,
			Location: path,
			Description: fmt.Sprintf("page count %d outside expected %d±%d",
				pages, report.ExpectedPages, tol),
		})
	}

	images, err := uc.inspector.Images(path)
	if err != nil {
		return report, "", &domain.OpError{
			Op:   "validatepdf.images",
			Kind: domain.KindExecution,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrExecution, err),
		}
	}

	qualifying := map[int]bool{}
	hasImage := map[int]bool{}
	for _, img := range images {
		hasImage[img.Page] = true
		if img.Bytes >= uc.cfg.PDF.MinImageBytes &&
			img.Width >= uc.cfg.PDF.MinImageWidth &&
			img.Height >= uc.cfg.PDF.MinImageHeight {
			qualifying[img.Page] = true
		}
	}

	check := func(first, count int, kind string) int {
		ok := 0
		for p := first; p < first+count; p++ {
			switch {
			case qualifying[p]:
				ok++
			case hasImage[p]:
				report.Issues = append(report.Issues, domain.Issue{
					Severity: domain.SeverityError,
					Category: domain.CategoryRendering,
					Location: fmt.Sprintf("page %d", p),
					Description: fmt.Sprintf("%s image below minimum size (%dB / %dx%d px required)",
						kind, uc.cfg.PDF.MinImageBytes, uc.cfg.PDF.MinImageWidth, uc.cfg.PDF.MinImageHeight),
				})
			default:
				report.TextFallbackPages = append(report.TextFallbackPages, p)
				report.Issues = append(report.Issues, domain.Issue{
					Severity:       domain.SeverityError,
					Category:       domain.CategoryRendering,
					Location:       fmt.Sprintf("page %d", p),
					Description:    fmt.Sprintf("%s page has no embedded image (text fallback)", kind),
					Recommendation: "re-render the page; image embedding failed silently",
				})
			}
		}
		return ok
	}

	report.PuzzlePagesOK = check(1, puzzlePages, "puzzle")
	report.SolutionPagesOK = check(puzzlePages+1, solutionPages, "solution")

	report.Errors, report.Warnings = domain.CountBySeverity(report.Issues)
	report.ValidationPassed = pageCountOK &&
		covered(report.PuzzlePagesOK, puzzlePages, uc.cfg.PDF.CoverageThreshold) &&
		covered(report.SolutionPagesOK, solutionPages, uc.cfg.PDF.CoverageThreshold) &&
		len(report.TextFallbackPages) == 0
	report.EndedAt = uc.now().UTC()

	var id string
	if uc.store != nil {
		id, err = uc.store.SavePDF(report)
		if err != nil {
			return report, "", err
		}
	}

	return report, id, nil
}

func covered(ok, expected int, threshold float64) bool {
	if expected == 0 {
		return true
	}
	return float64(ok)/float64(expected) >= threshold
}
