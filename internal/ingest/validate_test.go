package ingest

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate_EmptyManifest(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrEmptyManifest) {
		t.Errorf("Validate(nil) = %v, want ErrEmptyManifest", err)
	}
	if err := Validate([]Row{}); !errors.Is(err, ErrEmptyManifest) {
		t.Errorf("Validate(empty) = %v, want ErrEmptyManifest", err)
	}
}

func TestValidate_MissingColumns(t *testing.T) {
	tests := []struct {
		name        string
		row         Row
		wantMissing []string
	}{
		{
			name:        "no doi",
			row:         Row{ColFamilyName: "Smith", ColTitle: "A Study"},
			wantMissing: []string{ColDOI},
		},
		{
			name:        "only title",
			row:         Row{ColTitle: "A Study"},
			wantMissing: []string{ColFamilyName, ColDOI},
		},
		{
			name:        "nothing required",
			row:         Row{"Reviewer": "J. Doe"},
			wantMissing: []string{ColFamilyName, ColTitle, ColDOI},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]Row{tt.row})
			var missing *MissingColumnsError
			if !errors.As(err, &missing) {
				t.Fatalf("Validate() = %v, want MissingColumnsError", err)
			}
			if !reflect.DeepEqual(missing.Columns, tt.wantMissing) {
				t.Errorf("missing columns = %v, want %v", missing.Columns, tt.wantMissing)
			}
		})
	}
}

func TestValidate_Accept(t *testing.T) {
	rows := []Row{
		{ColFamilyName: "Smith", ColTitle: "A Study", ColDOI: "10.1234/x"},
		// Later rows are not inspected: headers are assumed uniform.
		{"unrelated": "value"},
	}

	if err := Validate(rows); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_CaseInsensitiveHeaders(t *testing.T) {
	// Validate runs after Normalize in the pipeline, but it must tolerate
	// canonical headers in any casing on its own.
	rows := []Row{
		{"author_family_name": "Smith", "ARTICLE_TITLE": "A Study", "Doi": "10.1234/x"},
	}

	if err := Validate(rows); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
