package cmd

import (
	"jsxmerge/pkg/logging"
	"jsxmerge/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the jsxmerge command tree. logger is replaced by a
// development logger when --debug is given.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}

	rootCmd := &cobra.Command{
		Use:   "jsxmerge [root]",
		Short: "jsxmerge merges JavaScript sources into a single text file",
		Long: `jsxmerge recursively collects .jsx and .js files under a directory and
concatenates them into one text file, with a header and separator around each
file. Dependency and build directories are skipped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			if debug {
				if err := logging.Setup(true, logging.AppName, version.Version); err != nil {
					return err
				}
				logger = logging.Logger
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, logger)
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	addMergeFlags(rootCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
