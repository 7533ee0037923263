package cmd

import (
	"os"

	"mailstub/cmd/cli/app"
	"mailstub/internal/logging"

	"github.com/spf13/cobra"
)

var logLevel *string

var rootCmd = &cobra.Command{
	Use:   "mailstub",
	Short: "Inspects mail recorded by the stub email template service",
	Long: `mailstub works with the YAML snapshots written by tests that render mail
through the stub email template service.

Configuration is stored in .mailstub.yaml in the current directory. Run
'mailstub initialize' to create it.

Common workflows:
  mailstub show signup            Print the templates and messages of a snapshot
  mailstub diff signup signup-new Compare two snapshots`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyLogLevel(cmd)
	},
}

// applyLogLevel exports the effective log level for the logger provider.
// The flag wins over the environment, which wins over .mailstub.yaml.
func applyLogLevel(cmd *cobra.Command) error {
	if cmd.Flags().Changed("log-level") {
		return os.Setenv(logging.LevelEnv, *logLevel)
	}
	if os.Getenv(logging.LevelEnv) != "" {
		return nil
	}
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return err
	}
	exists, err := configRepo.ConfigExists()
	if err != nil || !exists {
		return err
	}
	config, err := configRepo.LoadConfig()
	if err != nil {
		return err
	}
	return os.Setenv(logging.LevelEnv, config.LogLevel)
}

func Execute() {
	logLevel = rootCmd.PersistentFlags().StringP("log-level", "l", "info", "Log level (debug, info, warn, error)")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
