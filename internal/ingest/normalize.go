package ingest

import "strings"

// Canonical column names for the manifest contract.
const (
	ColFamilyName   = "Author_family_name"
	ColGivenName    = "author_given_name"
	ColTitle        = "article_title"
	ColReceived     = "received"
	ColAccepted     = "accepted"
	ColLastPage     = "article_last_page"
	ColMSNumber     = "editorial_ms_number"
	ColDOI          = "doi"
	ColRubric       = "rubric"
	ColState        = "production_state"
	ColOnlineFirst  = "online_first_date"
	ColNotesOnIssue = "notes_on_issue_building"
	ColNoteForPE    = "note_for_pe"
)

// canonicalByLower maps a trimmed, lower-cased header onto its canonical
// column name.
var canonicalByLower = map[string]string{
	"author_family_name":      ColFamilyName,
	"author_given_name":       ColGivenName,
	"article_title":           ColTitle,
	"received":                ColReceived,
	"accepted":                ColAccepted,
	"article_last_page":       ColLastPage,
	"editorial_ms_number":     ColMSNumber,
	"doi":                     ColDOI,
	"rubric":                  ColRubric,
	"production_state":        ColState,
	"online_first_date":       ColOnlineFirst,
	"notes_on_issue_building": ColNotesOnIssue,
	"note_for_pe":             ColNoteForPE,
}

// Normalize maps arbitrary-cased, whitespace-padded headers onto the
// canonical column set. Keys that match a canonical column (after trimming
// and case folding) are rewritten to the canonical spelling; any other key
// is kept under its trimmed original form. No row is dropped, and output
// order matches input order. Normalizing already-normalized rows is a
// no-op.
func Normalize(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		norm := make(Row, len(row))
		for key, val := range row {
			trimmed := strings.TrimSpace(key)
			if canonical, ok := canonicalByLower[strings.ToLower(trimmed)]; ok {
				norm[canonical] = val
			} else {
				norm[trimmed] = val
			}
		}
		out[i] = norm
	}
	return out
}
