package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"issuedesk/internal/article"
	"issuedesk/internal/classify"
	"issuedesk/internal/downloads"
	"issuedesk/internal/export"
)

// classifyTimeout bounds the background categorization call.
const classifyTimeout = 90 * time.Second

// classifyCmd runs the batched categorization for one upload. The message
// carries the generation the titles were taken from so Update can discard
// a result that arrives after a newer upload.
func classifyCmd(c classify.Classifier, generation int, titles []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), classifyTimeout)
		defer cancel()

		topics, err := c.Categorize(ctx, article.SurgicalTopics, titles)
		return TopicsResolvedMsg{Generation: generation, Topics: topics, Err: err}
	}
}

// scanDownloadsCmd collects DOIs from the configured downloads directory.
func scanDownloadsCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		dois, err := downloads.ScanDir(dir)
		return ScanCompleteMsg{DOIs: dois, Err: err}
	}
}

// exportCmd writes the selected subset as an issue-plan workbook in the
// working directory.
func exportCmd(articles []article.Article) tea.Cmd {
	return func() tea.Msg {
		path := export.DefaultFilename(time.Now())

		f, err := os.Create(path)
		if err != nil {
			return ExportCompleteMsg{Err: err}
		}
		defer f.Close()

		if err := export.Write(f, articles); err != nil {
			return ExportCompleteMsg{Err: err}
		}
		return ExportCompleteMsg{Path: path}
	}
}
