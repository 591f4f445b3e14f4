// Package tui implements the interactive curation session.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"issuedesk/internal/article"
	"issuedesk/internal/classify"
	"issuedesk/internal/logging"
	"issuedesk/internal/session"
)

// Tab identifies the active view.
type Tab int

const (
	TabTable Tab = iota
	TabDashboard
	TabQueue
)

// Model is the curation session state. All record mutations go through
// the session store inside Update; commands only produce messages.
type Model struct {
	store      *session.Store
	classifier classify.Classifier
	log        *logging.Logger

	downloadsDir string

	tab         Tab
	cursor      int
	filters     article.Filters
	classifying bool
	status      string
}

// NewModel creates a session over an already-ingested collection. The
// caller has called store.Replace; classification starts from Init.
func NewModel(store *session.Store, classifier classify.Classifier, log *logging.Logger, downloadsDir string) Model {
	return Model{
		store:        store,
		classifier:   classifier,
		log:          log,
		downloadsDir: downloadsDir,
		classifying:  true,
		status:       "AI sorting clinical domains...",
	}
}

// Init implements tea.Model: kick off the batched classification for the
// current upload.
func (m Model) Init() tea.Cmd {
	return classifyCmd(m.classifier, m.store.Generation(), m.store.Titles())
}

// visible returns the filtered view the cursor navigates.
func (m Model) visible() []article.Article {
	return m.store.Visible(m.filters)
}

// clampCursor keeps the cursor inside the visible subset after filter or
// collection changes.
func (m *Model) clampCursor() {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
