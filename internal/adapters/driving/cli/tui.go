package cli

import (
	"github.com/spf13/cobra"

	"github.com/threec-labs/leads-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive lead dashboard",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireService(); err != nil {
			return err
		}
		return tui.NewApp(leadService).Run()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
