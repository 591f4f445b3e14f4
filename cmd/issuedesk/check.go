package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"issuedesk/internal/ingest"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <manifest.xlsx>",
	Short: "Validate a manifest without starting a session",
	Long: `Validate a manuscript manifest: parse the first sheet, normalize the
headers, and check the required columns (Author_family_name,
article_title, doi). Nothing is ingested.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status         string   `json:"status"`
	Rows           int      `json:"rows"`
	Columns        []string `json:"columns,omitempty"`
	MissingColumns []string `json:"missing_columns,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening manifest: %v", err)
	}
	defer f.Close()

	raw, err := ingest.ReadWorkbook(f)
	if err != nil {
		exitWithError(ExitDataError, "could not parse the manifest: %v", err)
	}

	rows := ingest.Normalize(raw)
	result := CheckResult{Status: "ok", Rows: len(rows)}
	if len(rows) > 0 {
		for col := range rows[0] {
			result.Columns = append(result.Columns, col)
		}
		sort.Strings(result.Columns)
	}

	exitCode := ExitSuccess
	if err := ingest.Validate(rows); err != nil {
		result.Status = "rejected"
		exitCode = ExitDataError

		var missing *ingest.MissingColumnsError
		switch {
		case errors.Is(err, ingest.ErrEmptyManifest):
			result.Reason = "the manifest appears to be empty"
		case errors.As(err, &missing):
			result.MissingColumns = missing.Columns
			result.Reason = err.Error()
		default:
			result.Reason = err.Error()
		}
	}

	if humanOutput {
		if result.Status == "ok" {
			fmt.Printf("Manifest check: OK\n\n%d rows, %d columns\n", result.Rows, len(result.Columns))
		} else {
			fmt.Printf("Manifest check: rejected\n\n  %s\n", result.Reason)
		}
	} else {
		outputJSON(result)
	}

	if exitCode != ExitSuccess {
		os.Exit(exitCode)
	}
	return nil
}
