// Package cli implements the qura command: the web server, offline
// molecule exports and build information.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qura",
	Short: "Qura website server and molecule renderer",
	Long: `Serves the Qura landing page with its contact form and molecule
viewer, and renders the molecule to PNG or animated GIF offline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// NewRootCommand returns the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}
