package cmd

import (
	"mailstub/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new configuration file with default values",
	Long:  `A new configuration file is written to .mailstub.yaml. The file is not created if it already exists.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
