package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"jsxmerge/pkg/merge"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes environment variables that override flag defaults,
// e.g. JSXMERGE_OUTPUT or JSXMERGE_NO_PROGRESS.
const EnvPrefix = "JSXMERGE"

func addMergeFlags(cmd *cobra.Command) {
	defaults := merge.DefaultArguments()
	cmd.Flags().StringP("output", "o", defaults.Output, "Output file")
	cmd.Flags().Bool("no-progress", false, "Do not print progress to stdout")
	cmd.Flags().StringSlice("ignore", defaults.IgnoreDirs, "Directory names to ignore (repeatable or comma separated)")
	cmd.Flags().StringSlice("ext", defaults.Extensions, "File extensions to merge, matched case-insensitively")
}

// loadArguments resolves merge arguments from flags, JSXMERGE_* environment
// variables and defaults, in that order of precedence.
func loadArguments(cmd *cobra.Command, args []string) (merge.Arguments, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return merge.Arguments{}, fmt.Errorf("error binding flags: %w", err)
	}

	a := merge.DefaultArguments()
	if len(args) > 0 {
		a.Root = args[0]
	}
	a.Output = v.GetString("output")
	a.Progress = !v.GetBool("no-progress")
	a.IgnoreDirs = stringList(v, "ignore")
	a.Extensions = stringList(v, "ext")
	return a, nil
}

// stringList reads a list setting. Flags arrive already split, environment
// variables as one raw string; both are split on commas and whitespace.
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case string:
		raw = []string{val}
	case []string:
		raw = val
	default:
		raw = v.GetStringSlice(key)
	}

	var items []string
	for _, item := range raw {
		items = append(items, strings.FieldsFunc(item, isListSeparator)...)
	}
	return items
}

func isListSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func runMerge(cmd *cobra.Command, args []string, logger *zap.Logger) error {
	a, err := loadArguments(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("Resolved arguments",
		zap.String("root", a.Root),
		zap.String("output", a.Output),
		zap.Bool("progress", a.Progress),
		zap.Strings("ignore", a.IgnoreDirs),
		zap.Strings("extensions", a.Extensions))

	if _, err := merge.Run(a, afero.NewOsFs(), cmd.OutOrStdout(), logger); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}
