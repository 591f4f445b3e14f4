package ingest

import (
	"reflect"
	"testing"
)

func TestNormalize_HeaderCasing(t *testing.T) {
	rows := []Row{
		{
			"AUTHOR_FAMILY_NAME": "Smith",
			" Article_Title ":    "A Study",
			"DOI":                "10.1234/x",
			"Production_State":   "Draft",
		},
	}

	got := Normalize(rows)

	want := Row{
		ColFamilyName: "Smith",
		ColTitle:      "A Study",
		ColDOI:        "10.1234/x",
		ColState:      "Draft",
	}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("Normalize() = %v, want %v", got[0], want)
	}
}

func TestNormalize_PassthroughKeys(t *testing.T) {
	rows := []Row{
		{
			"article_title":  "A Study",
			" Reviewer ":     "J. Doe",
			"internal_score": "4",
		},
	}

	got := Normalize(rows)

	if got[0]["Reviewer"] != "J. Doe" {
		t.Errorf("unrecognized key not retained trimmed: %v", got[0])
	}
	if got[0]["internal_score"] != "4" {
		t.Errorf("unrecognized key dropped: %v", got[0])
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	rows := []Row{
		{
			ColFamilyName: "Smith",
			ColTitle:      "A Study",
			ColDOI:        "10.1234/x",
			"Reviewer":    "J. Doe",
		},
	}

	once := Normalize(rows)
	twice := Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize() not idempotent: %v != %v", once, twice)
	}
}

func TestNormalize_PreservesLengthAndOrder(t *testing.T) {
	rows := []Row{
		{ColTitle: "First"},
		{ColTitle: "Second"},
		{ColTitle: "Third"},
	}

	got := Normalize(rows)

	if len(got) != 3 {
		t.Fatalf("Normalize() returned %d rows, want 3", len(got))
	}
	for i, title := range []string{"First", "Second", "Third"} {
		if got[i][ColTitle] != title {
			t.Errorf("row %d title = %q, want %q", i, got[i][ColTitle], title)
		}
	}
}
