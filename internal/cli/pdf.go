package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/logger"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/pdfinfo"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/reportstore"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/usecase"
)

func pdfCmd() *cobra.Command {
	var file string
	var puzzlePages int
	var solutionPages int
	var cfgPath string
	var out string
	var format string
	var noSave bool

	c := &cobra.Command{
		Use:   "pdf",
		Short: "Check a rendered PDF for blank or text-fallback puzzle pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			var store ports.ReportStore
			if !noSave {
				store = reportstore.NewJSONStore(out, cfg, reportstore.WithIndex(true))
			}

			uc := usecase.NewValidatePDF(pdfinfo.NewInspector(), store, cfg)
			report, id, err := uc.Execute(cmd.Context(), file, puzzlePages, solutionPages)
			if err != nil {
				return err
			}

			logger.L().Info("pdf.done",
				"path", file, "pages", report.PageCount,
				"fallback", len(report.TextFallbackPages),
				"passed", report.ValidationPassed)

			if err := printPDF(os.Stdout, report, id, format); err != nil {
				return err
			}

			if !report.ValidationPassed {
				return fmt.Errorf("pdf validation failed (%d issue(s))", len(report.Issues))
			}
			return nil
		},
	}

	c.Flags().StringVar(&file, "file", "", "Rendered PDF path (required)")
	c.Flags().IntVar(&puzzlePages, "puzzle-pages", 0, "Expected number of puzzle pages (required)")
	c.Flags().IntVar(&solutionPages, "solution-pages", 0, "Expected number of solution pages")
	c.Flags().StringVar(&cfgPath, "config", "", "Config file (default: kindlemint.yaml discovered upward)")
	c.Flags().StringVar(&out, "out", ".", "Root directory for the reports/ output")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("file")
	_ = c.MarkFlagRequired("puzzle-pages")
	return c
}
