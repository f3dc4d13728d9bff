// Package cli holds the fileuploader command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X fileuploader/internal/cli.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "fileuploader",
	Short: "REST API for cars, their documents and document contents",
	Long: `fileuploader serves CRUD endpoints for cars, documents and contents.
Configuration is read from the environment; a .env file in the working
directory is loaded when present.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
