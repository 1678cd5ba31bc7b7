// Package cli provides the command-line interface for jsdocgen.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "jsdocgen",
		Short: "Generate documentation from JavaScript source comments",
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd.Execute()
}
