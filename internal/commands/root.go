package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var configFile string

// rootCmd starts the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "botaniq",
	Short: "Botaniq - plant care REST backend",
	Long: `Botaniq serves the plant catalog, per-user garden management and
user profiles behind a JWT-protected REST API.

Configuration is read from .env, an optional --config file and the
environment, in increasing order of precedence.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional config file (yaml, json, toml or env)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
