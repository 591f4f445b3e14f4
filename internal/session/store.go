// Package session owns the in-memory record collection for one curation
// session and its well-defined mutation entry points.
//
// The store is written for a single event loop: there is no true
// parallelism, so no locking. The one async producer (classification)
// hands its result back into the loop as a message; the merge methods
// guard against stale uploads via a generation counter and against
// clobbering manual edits via per-record pending checks.
package session

import "issuedesk/internal/article"

// Store holds the current record collection. A new upload replaces the
// collection wholesale; there is no incremental merge between uploads.
type Store struct {
	articles   []article.Article
	generation int
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Replace installs a freshly derived collection and bumps the upload
// generation, implicitly abandoning any classification still in flight
// for the previous collection. Returns the new generation, which callers
// must attach to async work so its result can be validated on arrival.
func (s *Store) Replace(articles []article.Article) int {
	s.articles = articles
	s.generation = s.generation + 1
	return s.generation
}

// Generation returns the current upload generation.
func (s *Store) Generation() int {
	return s.generation
}

// Articles returns the current collection. Callers must not retain the
// slice across mutations.
func (s *Store) Articles() []article.Article {
	return s.articles
}

// Len returns the collection size.
func (s *Store) Len() int {
	return len(s.articles)
}

// Titles returns the ordered title list for classification. Duplicates
// are legal; the title-keyed merge gives every occurrence the same topic.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.articles))
	for i, a := range s.articles {
		titles[i] = a.Title
	}
	return titles
}

// ToggleSelected flips the selection flag of the record with the given id.
func (s *Store) ToggleSelected(id string) {
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].Selected = !s.articles[i].Selected
			return
		}
	}
}

// ToggleDownloaded flips the downloaded flag of the record with the given id.
func (s *Store) ToggleDownloaded(id string) {
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].Downloaded = !s.articles[i].Downloaded
			return
		}
	}
}

// SetTopic records a manual topic edit. Manual edits always stick: they
// overwrite the pending placeholder and survive any later merge.
func (s *Store) SetTopic(id, topic string) {
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].Topic = topic
			return
		}
	}
}

// SelectAll sets the selection flag on every record in the given subset.
func (s *Store) SelectAll(ids []string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for i := range s.articles {
		if want[s.articles[i].ID] {
			s.articles[i].Selected = true
		}
	}
}

// MarkDownloadedByDOI marks every record whose DOI appears in the set as
// downloaded, returning how many records changed state. Used by the
// downloads-directory scan.
func (s *Store) MarkDownloadedByDOI(dois map[string]bool) int {
	changed := 0
	for i := range s.articles {
		if s.articles[i].DOI == "" || s.articles[i].Downloaded {
			continue
		}
		if dois[s.articles[i].DOI] {
			s.articles[i].Downloaded = true
			changed++
		}
	}
	return changed
}

// ApplyTopics merges a classification result produced for the given
// generation. A stale generation is discarded wholesale: the records it
// was computed for no longer exist. Within the current generation, only
// records still carrying the pending placeholder are touched — a manual
// edit that landed while the request was in flight wins. Records whose
// title is absent from the lookup fall back to the standing fallback
// topic. Reports whether the merge applied.
func (s *Store) ApplyTopics(generation int, topics map[string]string) bool {
	if generation != s.generation {
		return false
	}
	for i := range s.articles {
		if s.articles[i].Topic != article.TopicPending {
			continue
		}
		if topic, ok := topics[s.articles[i].Title]; ok {
			s.articles[i].Topic = topic
		} else {
			s.articles[i].Topic = article.TopicFallback
		}
	}
	return true
}

// ResolvePending assigns the fallback topic to every record still pending.
// This is the failure path: however the classification call died, the
// session ends up with a fully labeled collection. Stale generations are
// discarded as in ApplyTopics.
func (s *Store) ResolvePending(generation int) bool {
	if generation != s.generation {
		return false
	}
	for i := range s.articles {
		if s.articles[i].Topic == article.TopicPending {
			s.articles[i].Topic = article.TopicFallback
		}
	}
	return true
}

// Selected returns the selected subset in collection order.
func (s *Store) Selected() []article.Article {
	var out []article.Article
	for _, a := range s.articles {
		if a.Selected {
			out = append(out, a)
		}
	}
	return out
}

// Visible returns the subset matching the filter, in collection order.
func (s *Store) Visible(f article.Filters) []article.Article {
	return f.Apply(s.articles)
}

// Summary computes dashboard statistics over the current collection.
func (s *Store) Summary() article.Summary {
	return article.Summarize(s.articles)
}
