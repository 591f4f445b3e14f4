package article

import "time"

// Filters is the active filter specification for the curation views.
// An empty slice places no restriction on its field. A zero time leaves
// that side of the date range unbounded.
type Filters struct {
	Rubrics          []string  `json:"rubrics"`
	ProductionStates []string  `json:"production_states"`
	Topics           []string  `json:"topics"`
	DateFrom         time.Time `json:"date_from,omitempty"`
	DateTo           time.Time `json:"date_to,omitempty"`
}

// IsZero reports whether the filter places no restriction at all.
func (f Filters) IsZero() bool {
	return len(f.Rubrics) == 0 && len(f.ProductionStates) == 0 &&
		len(f.Topics) == 0 && f.DateFrom.IsZero() && f.DateTo.IsZero()
}

// Apply returns the articles matching the filter, in input order.
// Each multi-select set is an OR within itself; the sets combine with AND.
// The date range is inclusive on both ends and compares the parsed
// online-first date; a record without a parseable date matches only when
// the range is fully unbounded.
func (f Filters) Apply(articles []Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Matches reports whether a single article satisfies the filter.
func (f Filters) Matches(a Article) bool {
	if len(f.Rubrics) > 0 && !contains(f.Rubrics, a.Rubric) {
		return false
	}
	if len(f.ProductionStates) > 0 && !contains(f.ProductionStates, a.ProductionState) {
		return false
	}
	if len(f.Topics) > 0 && !contains(f.Topics, a.Topic) {
		return false
	}
	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		if a.OnlineFirstTime.IsZero() {
			return false
		}
		if !f.DateFrom.IsZero() && a.OnlineFirstTime.Before(f.DateFrom) {
			return false
		}
		if !f.DateTo.IsZero() && a.OnlineFirstTime.After(f.DateTo) {
			return false
		}
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// DistinctRubrics returns the rubric values present in the collection, in
// first-seen order. Used to build the filter sidebar.
func DistinctRubrics(articles []Article) []string {
	return distinct(articles, func(a Article) string { return a.Rubric })
}

// DistinctStates returns the production states present in the collection,
// in first-seen order.
func DistinctStates(articles []Article) []string {
	return distinct(articles, func(a Article) string { return a.ProductionState })
}

// DistinctTopics returns the topic values present in the collection, in
// first-seen order. This includes values outside the closed topic set so
// that manual edits and stale labels remain filterable.
func DistinctTopics(articles []Article) []string {
	return distinct(articles, func(a Article) string { return a.Topic })
}

func distinct(articles []Article, key func(Article) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		k := key(a)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
