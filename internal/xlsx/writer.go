package xlsx

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/broadway-grosses/internal/record"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet holding the weekly data.
const SheetName = "Weekly Shows"

// Number formats applied to the data columns.
const (
	currencyFormat = `"$"#,##0`
	numberFormat   = `#,##0`
	dateFormat     = `mm/dd/yyyy`
)

// Headers is the fixed column order of the output sheet.
var Headers = []string{"Week_Ending", "Gross_Gross", "Total_Attendance", "Number_of_Shows", "Scraped_Date"}

// columnWidths are fixed, per the layout the downstream sheet consumers
// expect.
var columnWidths = map[string]float64{
	"A": 15, // Week_Ending
	"B": 15, // Gross_Gross
	"C": 18, // Total_Attendance
	"D": 15, // Number_of_Shows
	"E": 20, // Scraped_Date
}

// WriteError reports a failed workbook write. It is terminal for the run
// but not for the process.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing workbook %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// DefaultFilename returns the timestamped output name used when the caller
// does not supply one.
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("weekly_show_data_%s.xlsx", t.Format("20060102_150405"))
}

// Write serializes records to an .xlsx workbook at filename and returns the
// path written. An empty filename selects the timestamped default. Records
// are written in the order given.
func Write(records []*record.WeeklyRecord, filename string) (string, error) {
	if filename == "" {
		filename = DefaultFilename(time.Now())
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", &WriteError{Path: filename, Err: err}
	}

	if err := f.SetSheetRow(SheetName, "A1", &Headers); err != nil {
		return "", &WriteError{Path: filename, Err: err}
	}

	dateStyle, err := newStyle(f, dateFormat)
	if err != nil {
		return "", &WriteError{Path: filename, Err: err}
	}
	currencyStyle, err := newStyle(f, currencyFormat)
	if err != nil {
		return "", &WriteError{Path: filename, Err: err}
	}
	numberStyle, err := newStyle(f, numberFormat)
	if err != nil {
		return "", &WriteError{Path: filename, Err: err}
	}

	for i, rec := range records {
		row := i + 2 // Row 1 is the header

		// A date cell when the week-ending text parsed, otherwise the raw token
		var weekCell interface{} = rec.WeekEndingText
		if rec.Dated() {
			weekCell = rec.WeekEnding
		}

		cells := []interface{}{
			weekCell,
			rec.GrossTotal,
			rec.TotalAttendance,
			rec.NumberOfShows,
			rec.ScrapedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
			return "", &WriteError{Path: filename, Err: err}
		}
	}

	if len(records) > 0 {
		lastRow := len(records) + 1
		styles := []struct {
			col   string
			style int
		}{
			{"A", dateStyle},
			{"B", currencyStyle},
			{"C", numberStyle},
		}
		for _, s := range styles {
			start := fmt.Sprintf("%s2", s.col)
			end := fmt.Sprintf("%s%d", s.col, lastRow)
			if err := f.SetCellStyle(SheetName, start, end, s.style); err != nil {
				return "", &WriteError{Path: filename, Err: err}
			}
		}
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return "", &WriteError{Path: filename, Err: err}
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return "", &WriteError{Path: filename, Err: err}
	}

	return filename, nil
}

// newStyle registers a custom number format and returns its style ID
func newStyle(f *excelize.File, format string) (int, error) {
	return f.NewStyle(&excelize.Style{CustomNumFmt: &format})
}
