package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/logger"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/puzzlestore"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/reportstore"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/usecase"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/validator"
)

func validateCmd() *cobra.Command {
	var dir string
	var typeName string
	var cfgPath string
	var out string
	var format string
	var strict bool
	var noSave bool

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a batch of generated puzzles and write a JSON report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			typ, ok := domain.ParsePuzzleType(typeName)
			if !ok {
				return fmt.Errorf("unsupported --type %q (expected sudoku|crossword|wordsearch)", typeName)
			}

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			var store ports.ReportStore
			if !noSave {
				store = reportstore.NewJSONStore(out, cfg, reportstore.WithIndex(true))
			}

			validators := []ports.Validator{
				validator.NewSudoku(cfg),
				validator.NewCrossword(),
				validator.NewWordSearch(),
			}
			uc := usecase.NewValidateBatch(puzzlestore.NewFSLoader(), store, validators)

			report, id, err := uc.Execute(cmd.Context(), dir, typ, strict)
			if err != nil {
				return err
			}

			logger.L().Info("validate.done",
				"type", typ, "total", report.TotalPuzzles,
				"errors", report.Errors, "warnings", report.Warnings,
				"passed", report.ValidationPassed)

			if err := printBatch(os.Stdout, report, id, format); err != nil {
				return err
			}

			if !report.ValidationPassed {
				return fmt.Errorf("validation failed (%d error(s), %d warning(s))",
					report.Errors, report.Warnings)
			}
			return nil
		},
	}

	c.Flags().StringVar(&dir, "dir", "", "Puzzle directory or JSON array file (required)")
	c.Flags().StringVar(&typeName, "type", "", "Puzzle type: sudoku|crossword|wordsearch (required)")
	c.Flags().BoolVar(&strict, "strict", false, "Fail on warnings too, not only errors")
	c.Flags().StringVar(&cfgPath, "config", "", "Config file (default: kindlemint.yaml discovered upward)")
	c.Flags().StringVar(&out, "out", ".", "Root directory for the reports/ output")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("dir")
	_ = c.MarkFlagRequired("type")
	return c
}
