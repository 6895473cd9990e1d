package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the remote store is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireService(); err != nil {
			return err
		}
		if err := leadService.Health(context.Background()); err != nil {
			return err
		}
		cmd.Println("Store is healthy.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
