package article

import (
	"sort"
	"strconv"
	"strings"
)

// GroupCount is one bucket in a breakdown, e.g. a rubric and how many
// selected articles carry it.
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary holds the dashboard statistics computed over the selected subset.
type Summary struct {
	TotalCount      int          `json:"total_count"`
	SelectedCount   int          `json:"selected_count"`
	PercentSelected int          `json:"percent_selected"`
	EstimatedPages  int          `json:"estimated_pages"`
	DownloadedCount int          `json:"downloaded_count"`
	ByRubric        []GroupCount `json:"by_rubric"`
	ByTopic         []GroupCount `json:"by_topic"`
}

// Summarize computes dashboard statistics. Counts and breakdowns cover only
// the selected articles; PercentSelected is relative to the whole
// collection. Last-page values that fail numeric coercion count as zero
// pages. Breakdowns are sorted by count descending; ties keep first-seen
// order.
func Summarize(articles []Article) Summary {
	s := Summary{TotalCount: len(articles)}

	rubricCounts := newGroupCounter()
	topicCounts := newGroupCounter()

	for _, a := range articles {
		if !a.Selected {
			continue
		}
		s.SelectedCount++
		s.EstimatedPages += coercePages(a.LastPage)
		if a.Downloaded {
			s.DownloadedCount++
		}
		rubricCounts.add(a.Rubric)
		topicCounts.add(a.Topic)
	}

	if s.TotalCount > 0 {
		s.PercentSelected = int(float64(s.SelectedCount)/float64(s.TotalCount)*100 + 0.5)
	}

	s.ByRubric = rubricCounts.sorted()
	s.ByTopic = topicCounts.sorted()
	return s
}

// coercePages converts a last-page cell to a page estimate. Blank and
// non-numeric values contribute nothing.
func coercePages(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

// groupCounter accumulates counts while remembering first-seen order so
// that equal counts sort deterministically.
type groupCounter struct {
	counts map[string]int
	order  []string
}

func newGroupCounter() *groupCounter {
	return &groupCounter{counts: make(map[string]int)}
}

func (g *groupCounter) add(name string) {
	if _, ok := g.counts[name]; !ok {
		g.order = append(g.order, name)
	}
	g.counts[name]++
}

func (g *groupCounter) sorted() []GroupCount {
	out := make([]GroupCount, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, GroupCount{Name: name, Count: g.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
