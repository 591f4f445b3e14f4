package tui

import (
	"fmt"
	"strings"

	"issuedesk/internal/article"
)

const (
	titleColWidth  = 46
	authorColWidth = 22
	topicColWidth  = 20
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("issuedesk"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabTable:
		b.WriteString(m.renderTable())
	case TabDashboard:
		b.WriteString(m.renderDashboard())
	case TabQueue:
		b.WriteString(m.renderQueue())
	}

	b.WriteString("\n")
	if m.classifying {
		b.WriteString(statusStyle.Render("AI sorting clinical domains..."))
		b.WriteString("  ")
	}
	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("space select · d downloaded · t topic · r/p/f filter · c clear · s scan · e export · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTabs() string {
	names := []string{"Table", "Dashboard", "Queue"}
	parts := make([]string, len(names))
	for i, name := range names {
		if Tab(i) == m.tab {
			parts[i] = tabActiveStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTable() string {
	visible := m.visible()
	if len(visible) == 0 {
		return mutedStyle.Render("no manuscripts match the active filters")
	}

	var b strings.Builder
	if !m.filters.IsZero() {
		b.WriteString(mutedStyle.Render(m.renderFilterLine()))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %-3s %-*s %-*s %-*s %s",
		"", titleColWidth, "TITLE", authorColWidth, "AUTHOR", topicColWidth, "TOPIC", "STATE")))
	b.WriteString("\n")

	for i, a := range visible {
		mark := "[ ]"
		if a.Selected {
			mark = "[x]"
		}
		dl := " "
		if a.Downloaded {
			dl = "↓"
		}

		line := fmt.Sprintf("%s%s %-*s %-*s %-*s %s",
			mark, dl,
			titleColWidth, truncate(a.Title, titleColWidth),
			authorColWidth, truncate(a.DisplayAuthor, authorColWidth),
			topicColWidth, truncate(a.Topic, topicColWidth),
			a.ProductionState)

		switch {
		case i == m.cursor:
			b.WriteString(cursorStyle.Render(line))
		case a.Selected:
			b.WriteString(selectedStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderFilterLine() string {
	var parts []string
	if len(m.filters.Rubrics) > 0 {
		parts = append(parts, "rubric="+strings.Join(m.filters.Rubrics, ","))
	}
	if len(m.filters.ProductionStates) > 0 {
		parts = append(parts, "state="+strings.Join(m.filters.ProductionStates, ","))
	}
	if len(m.filters.Topics) > 0 {
		parts = append(parts, "topic="+strings.Join(m.filters.Topics, ","))
	}
	return "filters: " + strings.Join(parts, "  ")
}

func (m Model) renderDashboard() string {
	s := m.store.Summary()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Articles selected   %d  (%d%% of %d)\n", s.SelectedCount, s.PercentSelected, s.TotalCount))
	b.WriteString(fmt.Sprintf("Estimated pages     %d\n", s.EstimatedPages))
	b.WriteString(fmt.Sprintf("Download progress   %d/%d %s\n", s.DownloadedCount, s.SelectedCount, progressBar(s.DownloadedCount, s.SelectedCount)))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Rubric breakdown"))
	b.WriteString("\n")
	b.WriteString(renderBreakdown(s.ByRubric, s.SelectedCount))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Clinical topic distribution"))
	b.WriteString("\n")
	b.WriteString(renderBreakdown(s.ByTopic, s.SelectedCount))

	return b.String()
}

func renderBreakdown(groups []article.GroupCount, total int) string {
	if len(groups) == 0 {
		return mutedStyle.Render("select articles to see distribution") + "\n"
	}

	var b strings.Builder
	for _, g := range groups {
		name := g.Name
		if name == "" {
			name = "Uncategorized"
		}
		b.WriteString(fmt.Sprintf("  %-24s %3d %s\n", truncate(name, 24), g.Count, progressBar(g.Count, total)))
	}
	return b.String()
}

func (m Model) renderQueue() string {
	selected := m.store.Selected()
	if len(selected) == 0 {
		return mutedStyle.Render("no manuscripts selected yet")
	}

	var b strings.Builder
	for _, a := range selected {
		mark := "[ ]"
		if a.Downloaded {
			mark = selectedStyle.Render("[✓]")
		}
		b.WriteString(fmt.Sprintf("%s %-*s %s\n", mark, titleColWidth, truncate(a.Title, titleColWidth), mutedStyle.Render(a.DOI)))
	}
	return b.String()
}

// progressBar renders a fixed-width ratio bar.
func progressBar(n, total int) string {
	const width = 20
	if total <= 0 {
		total = 1
	}
	filled := n * width / total
	if filled > width {
		filled = width
	}
	return barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}

// truncate shortens a string to max characters, adding "..." if cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
