package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the remote collection to the backup namespace",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireService(); err != nil {
			return err
		}
		key, err := leadService.Backup(context.Background())
		if err != nil {
			return err
		}
		cmd.Printf("Backup written to %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
