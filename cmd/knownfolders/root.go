package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/knownfolders/pkg/knownfolders"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "knownfolders",
	Short: "Resolve Windows known folders to filesystem paths",
	Long: `knownfolders resolves the Windows shell's known folder identifiers
(user profile, local application data, documents, and the rest of the
catalog) into absolute filesystem paths.

Virtual folders, folders missing from the current configuration, and
identifiers unknown to the running Windows version are reported as
classified errors rather than paths.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (trace, debug, info, warn, error)")

	// Add version command
	rootCmd.AddCommand(versionCmd)

	// Add subcommands
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newListCommand())
}

// newCLILogger builds the stderr logger from the --log-level flag,
// falling back to the default logger on an unparsable level.
func newCLILogger() zerolog.Logger {
	level, err := knownfolders.LogLevelFromString(logLevel)
	if err != nil {
		return knownfolders.DefaultLogger()
	}
	return knownfolders.NewLogger(os.Stderr, level)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of knownfolders`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("knownfolders version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
