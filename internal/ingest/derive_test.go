package ingest

import (
	"strings"
	"testing"
	"time"

	"issuedesk/internal/article"
)

func TestDerive_OneRecordPerRow(t *testing.T) {
	rows := []Row{
		{ColFamilyName: "Smith", ColTitle: "First", ColDOI: "10.1/a"},
		{ColFamilyName: "Doe", ColTitle: "Second", ColDOI: "10.1/b"},
		{ColFamilyName: "", ColTitle: "", ColDOI: ""},
	}

	got := Derive(rows)

	if len(got) != len(rows) {
		t.Fatalf("Derive() returned %d records, want %d", len(got), len(rows))
	}

	seen := make(map[string]bool)
	for i, a := range got {
		if a.ID == "" {
			t.Errorf("record %d has empty id", i)
		}
		if seen[a.ID] {
			t.Errorf("duplicate id %s", a.ID)
		}
		seen[a.ID] = true
		if !strings.HasPrefix(a.ID, "art-") {
			t.Errorf("record %d id = %q, want art- prefix", i, a.ID)
		}
		if a.Topic != article.TopicPending {
			t.Errorf("record %d topic = %q, want %q", i, a.Topic, article.TopicPending)
		}
		if a.Selected || a.Downloaded {
			t.Errorf("record %d curation state not initialized false", i)
		}
	}
}

func TestDerive_DisplayAuthor(t *testing.T) {
	tests := []struct {
		name   string
		given  string
		family string
		want   string
	}{
		{"both parts", "Jane", "Doe", "Jane Doe"},
		{"family only", "", "Doe", "Doe"},
		{"given only", "Jane", "", "Jane"},
		{"both blank", "", "", article.UnknownAuthor},
		{"whitespace only", "  ", "  ", article.UnknownAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []Row{{ColGivenName: tt.given, ColFamilyName: tt.family}}
			got := Derive(rows)
			if got[0].DisplayAuthor != tt.want {
				t.Errorf("DisplayAuthor = %q, want %q", got[0].DisplayAuthor, tt.want)
			}
		})
	}
}

func TestParseOnlineFirst_SerialNumbers(t *testing.T) {
	tests := []struct {
		name    string
		serial  string
		want    time.Time
		wantFmt string
	}{
		{"2021 new year", "44197", time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), "Jan 1, 2021"},
		{"2022 new year", "44562", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), "Jan 1, 2022"},
		{"unix epoch", "25569", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), "Jan 1, 1970"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotFmt := ParseOnlineFirst(tt.serial)
			if !got.Equal(tt.want) {
				t.Errorf("ParseOnlineFirst(%s) = %v, want %v", tt.serial, got, tt.want)
			}
			if gotFmt != tt.wantFmt {
				t.Errorf("formatted = %q, want %q", gotFmt, tt.wantFmt)
			}
		})
	}
}

func TestParseOnlineFirst_Strings(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantFmt string
	}{
		{"iso date", "2022-03-15", "Mar 15, 2022"},
		{"us date", "03/15/2022", "Mar 15, 2022"},
		{"already formatted", "Mar 15, 2022", "Mar 15, 2022"},
		{"blank", "", article.NoDate},
		{"garbage", "next tuesday", article.NoDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, gotFmt := ParseOnlineFirst(tt.value)
			if gotFmt != tt.wantFmt {
				t.Errorf("ParseOnlineFirst(%q) formatted = %q, want %q", tt.value, gotFmt, tt.wantFmt)
			}
			if gotFmt == article.NoDate && !parsed.IsZero() {
				t.Errorf("ParseOnlineFirst(%q) parsed = %v, want zero", tt.value, parsed)
			}
		})
	}
}

func TestDerive_TrimsAndPassesThrough(t *testing.T) {
	rows := []Row{
		{
			ColFamilyName: " Smith ",
			ColTitle:      " A Study ",
			ColDOI:        " 10.1234/x ",
			"Reviewer":    " J. Doe ",
		},
	}

	got := Derive(rows)

	if got[0].FamilyName != "Smith" || got[0].Title != "A Study" || got[0].DOI != "10.1234/x" {
		t.Errorf("canonical fields not trimmed: %+v", got[0])
	}
	if got[0].Extra["Reviewer"] != "J. Doe" {
		t.Errorf("Extra = %v, want Reviewer retained", got[0].Extra)
	}
	if got[0].FormattedDate != article.NoDate {
		t.Errorf("FormattedDate = %q, want %q for absent date", got[0].FormattedDate, article.NoDate)
	}
}

func TestLoad_Pipeline(t *testing.T) {
	raw := []Row{
		{"AUTHOR_FAMILY_NAME": "Smith", "Article_Title": "A Study", "DOI": "10.1234/x", "online_first_date": "44562"},
	}

	got, err := Load(raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Load() returned %d records, want 1", len(got))
	}
	if got[0].FormattedDate != "Jan 1, 2022" {
		t.Errorf("FormattedDate = %q, want Jan 1, 2022", got[0].FormattedDate)
	}
}

func TestLoad_RejectsBeforeDeriving(t *testing.T) {
	raw := []Row{{"Article_Title": "A Study"}}

	got, err := Load(raw)
	if err == nil {
		t.Fatal("Load() error = nil, want missing-columns error")
	}
	if got != nil {
		t.Errorf("Load() produced %d records on rejection, want none", len(got))
	}
}
