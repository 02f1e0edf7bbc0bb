package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "billarchive",
	Short: "Query service for the legislative bill archive",
	Long: `billarchive serves full-text and filtered queries over the normalized
archive of legislative-bill records, resolves bill documents, and classifies
timeline events by committee tenure window.

The archive file itself is produced out-of-band by the ingestion pipeline;
this service only reads it.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
