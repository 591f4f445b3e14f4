// Package article defines the core domain types for manuscript curation.
package article

import "time"

// SurgicalTopics is the closed set of clinical topics used for
// curation-time classification. The classifier is asked to pick from this
// list, but a topic outside it (a manual edit, or a sloppy model response)
// is still displayable and filterable.
var SurgicalTopics = []string{
	"Trauma",
	"Orthognathic",
	"Oral Oncology",
	"Reconstruction",
	"Pathology",
	"Dental Implants",
	"Cleft & Craniofacial",
	"Salivary Gland",
	"TMJ",
	"General Oral Surgery",
}

const (
	// TopicPending marks a record whose classification has not resolved yet.
	TopicPending = "Uncategorized"

	// TopicFallback is assigned when classification fails or omits a title.
	TopicFallback = "General Oral Surgery"

	// UnknownAuthor is the display name when both author fields are blank.
	UnknownAuthor = "Unknown Author"

	// NoDate is the display date when the online-first date is absent or
	// unparseable.
	NoDate = "N/A"
)

// Article represents one manuscript row from an uploaded manifest plus its
// session curation state.
type Article struct {
	// Identity, assigned at derivation and never reassigned.
	ID string `json:"id"`

	// Canonical manifest fields.
	FamilyName      string `json:"author_family_name"`
	GivenName       string `json:"author_given_name"`
	Title           string `json:"article_title"`
	Received        string `json:"received"`
	Accepted        string `json:"accepted"`
	LastPage        string `json:"article_last_page"`
	MSNumber        string `json:"editorial_ms_number"`
	DOI             string `json:"doi"`
	Rubric          string `json:"rubric"`
	ProductionState string `json:"production_state"`
	OnlineFirst     string `json:"online_first_date"`
	NotesOnIssue    string `json:"notes_on_issue_building"`
	NoteForPE       string `json:"note_for_pe"`

	// Extra holds columns the manifest carried beyond the canonical set.
	Extra map[string]string `json:"extra,omitempty"`

	// Derived display fields.
	DisplayAuthor string `json:"display_author"`
	FormattedDate string `json:"formatted_date"`

	// OnlineFirstTime is the parsed online-first date, zero when the raw
	// value was absent or unparseable. Used by the date-range filter.
	OnlineFirstTime time.Time `json:"-"`

	// Curation state.
	Selected   bool   `json:"selected"`
	Downloaded bool   `json:"downloaded"`
	Topic      string `json:"topic"`
}
