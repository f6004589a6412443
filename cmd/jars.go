package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// jarsCmd represents the jars command
var jarsCmd = &cobra.Command{
	Use:   "jars",
	Short: "List the jar catalog",
	Long:  `Lists the server jars found under the manager's jar storage path, or in the configured S3 bucket.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := setupPanel()
		if err != nil {
			return err
		}
		defer p.logger.Sync()

		list, err := p.servers.Jars(commandContext(cmd))
		if err != nil {
			return err
		}
		for _, jar := range list {
			fmt.Fprintln(cmd.OutOrStdout(), jar)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(jarsCmd)
}
