package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(buildinfo.String())
		},
	}
}
