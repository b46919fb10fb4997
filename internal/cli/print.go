package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func printBatch(w io.Writer, report domain.BatchReport, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"report_id": id,
			"report":    report,
		})
	case "pretty", "":
		printPrettyBatch(w, report, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyBatch(w io.Writer, report domain.BatchReport, id string) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s batch · %s", report.PuzzleType, report.SourcePath)))
	fmt.Fprintf(w, "Started:  %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", report.EndedAt.Sub(report.StartedAt))
	if id != "" {
		fmt.Fprintf(w, "Report:   %s\n", id)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Puzzles:  %d total, %d valid, %d invalid\n",
		report.TotalPuzzles, report.ValidPuzzles, report.InvalidPuzzles)
	fmt.Fprintf(w, "Findings: %d error(s), %d warning(s)\n", report.Errors, report.Warnings)
	fmt.Fprintln(w)

	printIssues(w, report.Issues)

	verdict := passStyle.Render("PASS")
	if !report.ValidationPassed {
		verdict = failStyle.Render("FAIL")
	}
	mode := "lenient"
	if report.Strict {
		mode = "strict"
	}
	fmt.Fprintf(w, "%s (%s mode)\n", verdict, faintStyle.Render(mode))
}

func printPDF(w io.Writer, report domain.PDFReport, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"report_id": id,
			"report":    report,
		})
	case "pretty", "":
		printPrettyPDF(w, report, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyPDF(w io.Writer, report domain.PDFReport, id string) {
	fmt.Fprintln(w, titleStyle.Render("pdf check · "+report.Path))
	fmt.Fprintf(w, "Pages:    %d (expected %d)\n", report.PageCount, report.ExpectedPages)
	fmt.Fprintf(w, "Images:   %d puzzle page(s) ok, %d solution page(s) ok\n",
		report.PuzzlePagesOK, report.SolutionPagesOK)
	if n := len(report.TextFallbackPages); n > 0 {
		fmt.Fprintf(w, "Fallback: %d page(s) with no embedded image\n", n)
	}
	if id != "" {
		fmt.Fprintf(w, "Report:   %s\n", id)
	}
	fmt.Fprintln(w)

	printIssues(w, report.Issues)

	verdict := passStyle.Render("PASS")
	if !report.ValidationPassed {
		verdict = failStyle.Render("FAIL")
	}
	fmt.Fprintln(w, verdict)
}

func printIssues(w io.Writer, issues []domain.Issue) {
	if len(issues) == 0 {
		return
	}

	for _, is := range issues {
		mark := failStyle.Render("✗")
		if is.Severity == domain.SeverityWarning {
			mark = warnStyle.Render("!")
		} else if is.Severity == domain.SeverityInfo {
			mark = faintStyle.Render("i")
		}

		loc := ""
		if is.PuzzleID != "" {
			loc = is.PuzzleID
		}
		if is.Location != "" {
			if loc != "" {
				loc += " "
			}
			loc += is.Location
		}
		if loc != "" {
			loc = faintStyle.Render("["+loc+"] ")
		}

		fmt.Fprintf(w, "  %s %s%s · %s\n", mark, loc, is.Category, is.Description)
		if is.Recommendation != "" {
			fmt.Fprintf(w, "    %s\n", faintStyle.Render("→ "+is.Recommendation))
		}
	}
	fmt.Fprintln(w)
}
