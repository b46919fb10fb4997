package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/config"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "kindlemint-validate",
		Short:        "QA gate for generated puzzle books",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)
			cleanup, _ = logger.Setup(logger.Config{Root: wd, Debug: debug})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .kindlemint/logs/validate.log")

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(pdfCmd())
	cmd.AddCommand(reportCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// loadConfig resolves the effective config: an explicit --config path, else
// kindlemint.yaml found walking up from the working directory, else the
// built-in defaults. An explicit path must load cleanly; a discovered file
// that fails to load is logged and the defaults apply.
func loadConfig(explicit string) (domain.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	path := config.Find(wd)
	if path == "" {
		return domain.DefaultConfig(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.L().Warn("config.load_failed", "path", path, "error", err)
	}
	return cfg, nil
}
