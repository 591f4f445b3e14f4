package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"issuedesk/internal/article"
)

// serialEpochOffset is the day count between the spreadsheet epoch
// (day 0 = 1899-12-30) and the Unix epoch (1970-01-01).
const serialEpochOffset = 25569

const secondsPerDay = 86400

// displayDateLayout renders dates the way the curation views show them.
const displayDateLayout = "Jan 2, 2006"

// dateLayouts are tried in order when the online-first cell is not a
// serial number.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// Derive converts validated, normalized rows into article records. Each
// row yields exactly one record; nothing is dropped or duplicated. The id
// is unique for the session and never reassigned. Bad or absent optional
// values degrade to sentinels, never to errors.
func Derive(rows []Row) []article.Article {
	articles := make([]article.Article, len(rows))
	for i, row := range rows {
		a := article.Article{
			ID:              fmt.Sprintf("art-%d-%s", i, uuid.NewString()),
			FamilyName:      strings.TrimSpace(row[ColFamilyName]),
			GivenName:       strings.TrimSpace(row[ColGivenName]),
			Title:           strings.TrimSpace(row[ColTitle]),
			Received:        strings.TrimSpace(row[ColReceived]),
			Accepted:        strings.TrimSpace(row[ColAccepted]),
			LastPage:        strings.TrimSpace(row[ColLastPage]),
			MSNumber:        strings.TrimSpace(row[ColMSNumber]),
			DOI:             strings.TrimSpace(row[ColDOI]),
			Rubric:          strings.TrimSpace(row[ColRubric]),
			ProductionState: strings.TrimSpace(row[ColState]),
			OnlineFirst:     strings.TrimSpace(row[ColOnlineFirst]),
			NotesOnIssue:    strings.TrimSpace(row[ColNotesOnIssue]),
			NoteForPE:       strings.TrimSpace(row[ColNoteForPE]),
			Topic:           article.TopicPending,
		}

		a.Extra = extraColumns(row)
		a.DisplayAuthor = displayAuthor(a.GivenName, a.FamilyName)
		a.OnlineFirstTime, a.FormattedDate = ParseOnlineFirst(a.OnlineFirst)

		articles[i] = a
	}
	return articles
}

// displayAuthor composes "given family", falling back to the unknown
// sentinel when both parts are blank.
func displayAuthor(given, family string) string {
	full := strings.TrimSpace(given + " " + family)
	if full == "" {
		return article.UnknownAuthor
	}
	return full
}

// ParseOnlineFirst interprets an online-first cell, which may be a
// spreadsheet serial day number or a date-like string. It returns the
// parsed time (zero on failure) and the display rendering ("N/A" on
// failure or absence).
func ParseOnlineFirst(v string) (time.Time, string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, article.NoDate
	}

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		sec := (serial - serialEpochOffset) * secondsPerDay
		t := time.Unix(int64(sec), 0).UTC()
		return t, t.Format(displayDateLayout)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), t.UTC().Format(displayDateLayout)
		}
	}

	return time.Time{}, article.NoDate
}

// extraColumns collects the row's non-canonical columns so downstream
// consumers can still see them.
func extraColumns(row Row) map[string]string {
	var extra map[string]string
	for key, val := range row {
		trimmed := strings.TrimSpace(key)
		if _, ok := canonicalByLower[strings.ToLower(trimmed)]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[trimmed] = strings.TrimSpace(val)
	}
	return extra
}

// Load runs the full ingestion pipeline over already-parsed rows:
// normalize, validate, derive. It is the single entry point callers use
// after ReadWorkbook.
func Load(raw []Row) ([]article.Article, error) {
	rows := Normalize(raw)
	if err := Validate(rows); err != nil {
		return nil, err
	}
	return Derive(rows), nil
}
