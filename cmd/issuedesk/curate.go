package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"issuedesk/internal/config"
	"issuedesk/internal/logging"
	"issuedesk/internal/tui"
)

var curateLog string

func init() {
	curateCmd.Flags().StringVar(&curateLog, "log", "issuedesk.log", "Diagnostics log file for the session")
	rootCmd.AddCommand(curateCmd)
}

var curateCmd = &cobra.Command{
	Use:   "curate <manifest.xlsx>",
	Short: "Start an interactive curation session",
	Long: `Ingest a manuscript manifest and open the curation session: browse
and filter the table, select manuscripts for the issue, track PDF
downloads, and export the issue plan. Classification runs in the
background; topics resolve as the session is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runCurate,
}

func runCurate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	key := config.APIKey()
	if key == "" {
		exitWithError(ExitConfigError, "no Gemini credential: set %s or gemini_api_key in %s",
			config.EnvAPIKey, config.Path())
	}

	store, err := loadManifest(args[0])
	if err != nil {
		return err
	}

	log, err := logging.NewFile(curateLog)
	if err != nil {
		exitWithError(ExitError, "opening log file: %v", err)
	}
	defer log.Sync()

	cfg, _ := config.Load()
	log.Info("session started", "manifest", args[0], "rows", store.Len())

	model := tui.NewModel(store, newClassifier(key), log, cfg.DownloadsDir)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}

	log.Info("session ended")
	return nil
}
