package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cfopsum-dev/cfopsum/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cfopsum",
		Short:   "Sum fiscal entry and exit values by CFOP prefix",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSumCommand())

	return rootCmd
}
