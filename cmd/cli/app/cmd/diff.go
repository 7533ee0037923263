package cmd

import (
	"mailstub/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <expected> <actual>",
	Short: "Shows the differences between two snapshots",
	Long: `Prints a unified diff of two snapshots. The command fails when the snapshots
differ, so it can be used to gate CI jobs.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: SnapshotArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectDiffCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.OutOrStdout(), args[0], args[1])
	},
}
