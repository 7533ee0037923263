package cmd

import (
	"mailstub/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <snapshot>",
	Short: "Prints the templates and messages recorded in a snapshot",
	Long: `Prints every rendered template with its parameters and every sent message.
A plain name is looked up in the snapshot directory from .mailstub.yaml, anything
containing a path separator is read as a file path.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: SnapshotArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectShowCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.OutOrStdout(), args[0])
	},
}
