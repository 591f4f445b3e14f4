package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"issuedesk/internal/article"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TopicsResolvedMsg:
		return m.handleTopicsResolved(msg)
	case ScanCompleteMsg:
		return m.handleScanComplete(msg)
	case ExportCompleteMsg:
		return m.handleExportComplete(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input. Curation actions stay live
// while classification is in flight.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1":
		m.tab = TabTable
	case "2":
		m.tab = TabDashboard
	case "3":
		m.tab = TabQueue
	case "tab":
		m.tab = (m.tab + 1) % 3

	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "down", "j":
		m.cursor++
		m.clampCursor()

	case " ":
		if a, ok := m.current(); ok {
			m.store.ToggleSelected(a.ID)
		}
	case "d":
		if a, ok := m.current(); ok {
			m.store.ToggleDownloaded(a.ID)
		}
	case "t":
		// Manual topic override: cycle through the closed set. Sticks
		// even if the classifier response arrives later.
		if a, ok := m.current(); ok {
			m.store.SetTopic(a.ID, nextTopic(a.Topic))
		}

	case "r":
		m.filters.Rubrics = cycleFilter(m.filters.Rubrics, article.DistinctRubrics(m.store.Articles()))
		m.clampCursor()
	case "p":
		m.filters.ProductionStates = cycleFilter(m.filters.ProductionStates, article.DistinctStates(m.store.Articles()))
		m.clampCursor()
	case "f":
		m.filters.Topics = cycleFilter(m.filters.Topics, article.DistinctTopics(m.store.Articles()))
		m.clampCursor()
	case "c":
		m.filters = article.Filters{}
		m.clampCursor()

	case "s":
		if m.downloadsDir == "" {
			m.status = "no downloads_dir configured"
			break
		}
		m.status = "scanning downloads..."
		return m, scanDownloadsCmd(m.downloadsDir)

	case "e":
		selected := m.store.Selected()
		if len(selected) == 0 {
			m.status = "nothing selected to export"
			break
		}
		m.status = "exporting..."
		return m, exportCmd(selected)
	}

	return m, nil
}

// handleTopicsResolved merges the classification result. The store
// enforces the two guards: stale generations are dropped, and records a
// manual edit already resolved are never overwritten.
func (m Model) handleTopicsResolved(msg TopicsResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("classification failed, applying fallback topic",
			"generation", msg.Generation, "error", msg.Err)
		if m.store.ResolvePending(msg.Generation) {
			m.classifying = false
			m.status = "classification unavailable, topics defaulted"
		}
		return m, nil
	}

	if m.store.ApplyTopics(msg.Generation, msg.Topics) {
		m.classifying = false
		m.status = fmt.Sprintf("classified %d titles", len(msg.Topics))
		m.log.Info("classification merged",
			"generation", msg.Generation, "titles", len(msg.Topics))
	} else {
		m.log.Info("discarded stale classification result",
			"generation", msg.Generation, "current", m.store.Generation())
	}
	return m, nil
}

func (m Model) handleScanComplete(msg ScanCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.status = fmt.Sprintf("scan failed: %v", msg.Err)
		m.log.Warn("downloads scan failed", "error", msg.Err)
		return m, nil
	}
	changed := m.store.MarkDownloadedByDOI(msg.DOIs)
	m.status = fmt.Sprintf("scan found %d PDFs, marked %d downloaded", len(msg.DOIs), changed)
	return m, nil
}

func (m Model) handleExportComplete(msg ExportCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.status = fmt.Sprintf("export failed: %v", msg.Err)
		m.log.Error("export failed", "error", msg.Err)
		return m, nil
	}
	m.status = fmt.Sprintf("exported %s", msg.Path)
	return m, nil
}

// current returns the article under the cursor in the filtered view.
func (m Model) current() (article.Article, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return article.Article{}, false
	}
	return visible[m.cursor], true
}

// nextTopic advances through the closed topic set, wrapping at the end.
// A topic outside the set restarts at the beginning.
func nextTopic(current string) string {
	for i, t := range article.SurgicalTopics {
		if t == current {
			return article.SurgicalTopics[(i+1)%len(article.SurgicalTopics)]
		}
	}
	return article.SurgicalTopics[0]
}

// cycleFilter steps a single-value filter through the available values:
// off -> first -> second -> ... -> off.
func cycleFilter(active []string, values []string) []string {
	if len(values) == 0 {
		return nil
	}
	if len(active) == 0 {
		return values[:1]
	}
	for i, v := range values {
		if v == active[0] {
			if i+1 < len(values) {
				return values[i+1 : i+2]
			}
			return nil
		}
	}
	return values[:1]
}
