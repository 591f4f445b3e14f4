package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildManifest writes a small workbook into memory for round-trip tests.
func buildManifest(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("writing row %d: %v", i, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	return &buf
}

func TestReadWorkbook(t *testing.T) {
	buf := buildManifest(t, [][]interface{}{
		{"Author_family_name", "article_title", "doi", "online_first_date"},
		{"Smith", "A Study", "10.1234/x", 44562},
		{"Doe", "Another Study", "10.1234/y", ""},
	})

	rows, err := ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ReadWorkbook() returned %d rows, want 2", len(rows))
	}

	if rows[0]["Author_family_name"] != "Smith" {
		t.Errorf("row 0 family name = %q, want Smith", rows[0]["Author_family_name"])
	}
	// Raw cell values keep the serial as a number string.
	if rows[0]["online_first_date"] != "44562" {
		t.Errorf("row 0 online_first_date = %q, want raw serial 44562", rows[0]["online_first_date"])
	}
	if rows[1]["online_first_date"] != "" {
		t.Errorf("row 1 online_first_date = %q, want empty", rows[1]["online_first_date"])
	}
}

func TestReadWorkbook_ShortRows(t *testing.T) {
	buf := buildManifest(t, [][]interface{}{
		{"Author_family_name", "article_title", "doi"},
		{"Smith"},
	})

	rows, err := ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if rows[0]["doi"] != "" {
		t.Errorf("missing trailing cell = %q, want empty string", rows[0]["doi"])
	}
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	if _, err := ReadWorkbook(bytes.NewReader([]byte("not a zip"))); err == nil {
		t.Error("ReadWorkbook() error = nil, want parse error")
	}
}

func TestReadWorkbook_HeaderOnly(t *testing.T) {
	buf := buildManifest(t, [][]interface{}{
		{"Author_family_name", "article_title", "doi"},
	})

	rows, err := ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("ReadWorkbook() returned %d rows, want 0", len(rows))
	}
}
