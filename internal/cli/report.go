package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/infra/reportstore"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/tui"
)

func reportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "report",
		Short: "Inspect saved validation reports",
	}
	c.AddCommand(reportShowCmd())
	c.AddCommand(reportBrowseCmd())
	return c
}

func reportShowCmd() *cobra.Command {
	var dir string
	var id string
	var query string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print a saved report (latest by default), optionally a jsonpath projection",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := reportstore.NewJSONStore(dir, domain.DefaultConfig())

			if id == "" {
				refs, err := store.List()
				if err != nil {
					return err
				}
				if len(refs) == 0 {
					return fmt.Errorf("no reports under %s/reports", dir)
				}
				id = refs[0].ID
			}

			raw, err := store.LoadRaw(id)
			if err != nil {
				return err
			}

			if query == "" {
				_, err = os.Stdout.Write(append(raw, '\n'))
				return err
			}

			var doc any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return err
			}
			val, err := jsonpath.Get(query, doc)
			if err != nil {
				return fmt.Errorf("jsonpath %q: %w", query, err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(val)
		},
	}

	c.Flags().StringVar(&dir, "dir", ".", "Root directory holding reports/")
	c.Flags().StringVar(&id, "id", "", "Report id (default: latest)")
	c.Flags().StringVar(&query, "query", "", "JSONPath projection, e.g. $.errors or $.issues[*].description")
	return c
}

func reportBrowseCmd() *cobra.Command {
	var dir string

	c := &cobra.Command{
		Use:   "browse",
		Short: "Browse saved reports in a TUI",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := reportstore.NewJSONStore(dir, domain.DefaultConfig())
			return tui.Run(tui.Deps{Store: store})
		},
	}

	c.Flags().StringVar(&dir, "dir", ".", "Root directory holding reports/")
	return c
}
