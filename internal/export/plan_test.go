package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"issuedesk/internal/article"
)

func TestProject_ColumnsAndOrder(t *testing.T) {
	articles := []article.Article{
		{
			DisplayAuthor:   "Jane Doe",
			Title:           "A Study",
			Rubric:          "Case Report",
			ProductionState: "Done",
			FormattedDate:   "Jan 1, 2022",
			DOI:             "10.1234/x",
			MSNumber:        "MS-001",
			LastPage:        "12",
			NotesOnIssue:    "lead article",
			Topic:           "TMJ",
		},
	}

	rows := Project(articles)

	want := []string{"Jane Doe", "A Study", "Case Report", "Done", "Jan 1, 2022", "10.1234/x", "MS-001", "12", "lead article"}
	if len(rows) != 1 || len(rows[0]) != len(Columns) {
		t.Fatalf("Project() shape = %v", rows)
	}
	for i := range want {
		if rows[0][i] != want[i] {
			t.Errorf("column %s = %q, want %q", Columns[i], rows[0][i], want[i])
		}
	}
}

func TestProject_ExcludesTopic(t *testing.T) {
	for _, col := range Columns {
		if strings.EqualFold(col, "topic") {
			t.Fatalf("export columns contain %q", col)
		}
	}

	rows := Project([]article.Article{{Topic: "Orthognathic"}})
	for _, cell := range rows[0] {
		if cell == "Orthognathic" {
			t.Error("topic value leaked into export row")
		}
	}
}

func TestProject_MissingOptionals(t *testing.T) {
	rows := Project([]article.Article{{DisplayAuthor: "Jane Doe", Title: "A Study"}})

	for i, cell := range rows[0][2:] {
		if cell != "" {
			t.Errorf("optional column %s = %q, want empty string", Columns[i+2], cell)
		}
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	articles := []article.Article{
		{DisplayAuthor: "Jane Doe", Title: "A Study", DOI: "10.1234/x"},
		{DisplayAuthor: "John Smith", Title: "Another Study", DOI: "10.1234/y"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, articles); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reading exported workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != SheetName {
		t.Errorf("sheets = %v, want [%s]", got, SheetName)
	}

	cells, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("exported %d rows, want header + 2", len(cells))
	}
	if cells[0][0] != "Author" || cells[0][len(Columns)-1] != "Notes" {
		t.Errorf("header = %v", cells[0])
	}
	if cells[1][0] != "Jane Doe" || cells[2][1] != "Another Study" {
		t.Errorf("data rows = %v", cells[1:])
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	if got := DefaultFilename(now); got != "Editorial_Plan_2026-08-28.xlsx" {
		t.Errorf("DefaultFilename() = %q", got)
	}
}
