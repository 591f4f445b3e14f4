// Package main provides the issuedesk CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "issuedesk",
	Short: "Editorial issue-building from manuscript manifests",
	Long: `issuedesk builds a journal issue from a spreadsheet of submitted
manuscripts.

Core features:
  - Manifest ingestion with header normalization and schema validation
  - AI-assigned clinical topics with manual override
  - Interactive curation session (filter, select, download tracking)
  - Issue-plan export back to spreadsheet form

All state is session-local; only the exported plan and the diagnostics
log touch disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
