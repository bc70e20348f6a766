// Package cli holds the devevents command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var Version = "dev"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "devevents",
	Version: Version,
	Short:   "Catalog of developer events and their speakers",
	Long: `devevents serves the Dev Events HTTP API under /api/dev-events.

Configuration is read from the environment (and a .env file outside production).
Run "devevents serve" to start the API or "devevents migrate up" to prepare the schema.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
