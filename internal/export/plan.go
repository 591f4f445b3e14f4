// Package export writes the selected manuscripts as an issue-plan
// workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"issuedesk/internal/article"
)

// SheetName is the single sheet of the exported plan.
const SheetName = "Issue_Plan"

// Columns is the export header, in contract order. The topic column is
// deliberately absent: it is an internal curation aid, not part of the
// editorial export.
var Columns = []string{
	"Author",
	"Title",
	"Rubric",
	"Status",
	"Online First",
	"DOI",
	"MS Number",
	"Pages",
	"Notes",
}

// DefaultFilename stamps the plan filename with the export date.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("Editorial_Plan_%s.xlsx", now.Format("2006-01-02"))
}

// Project flattens articles to export rows matching Columns. Missing
// optional fields render as empty strings.
func Project(articles []article.Article) [][]string {
	rows := make([][]string, len(articles))
	for i, a := range articles {
		rows[i] = []string{
			a.DisplayAuthor,
			a.Title,
			a.Rubric,
			a.ProductionState,
			a.FormattedDate,
			a.DOI,
			a.MSNumber,
			a.LastPage,
			a.NotesOnIssue,
		}
	}
	return rows
}

// Write serializes the articles as an issue-plan workbook.
func Write(w io.Writer, articles []article.Article) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := writeRow(f, 1, Columns); err != nil {
		return err
	}
	for i, row := range Project(articles) {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, line int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", line, err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
		return fmt.Errorf("writing row %d: %w", line, err)
	}
	return nil
}
