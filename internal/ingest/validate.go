package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// RequiredColumns are the columns a manifest must carry to be accepted.
var RequiredColumns = []string{ColFamilyName, ColTitle, ColDOI}

// ErrEmptyManifest is returned for a manifest with no data rows.
var ErrEmptyManifest = errors.New("manifest contains no rows")

// MissingColumnsError reports required columns absent from the manifest
// header. The user can fix the file and retry; nothing is ingested.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Validate checks a normalized row set against the required-column
// contract. Headers are assumed uniform across the batch, so only the
// first row's key set is inspected. A zero-row manifest fails with
// ErrEmptyManifest before the column check runs.
func Validate(rows []Row) error {
	if len(rows) == 0 {
		return ErrEmptyManifest
	}

	present := make(map[string]bool, len(rows[0]))
	for key := range rows[0] {
		present[strings.ToLower(strings.TrimSpace(key))] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[strings.ToLower(col)] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
