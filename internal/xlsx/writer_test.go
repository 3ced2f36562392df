package xlsx

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pfrederiksen/broadway-grosses/internal/record"
	"github.com/xuri/excelize/v2"
)

func sampleRecords(t *testing.T) []*record.WeeklyRecord {
	t.Helper()
	scrapedAt := time.Date(2024, 5, 13, 9, 30, 0, 0, time.UTC)
	return []*record.WeeklyRecord{
		record.NewWeeklyRecord("05/12/2024", 1234567, 45678, 8, scrapedAt),
		record.NewWeeklyRecord("05/05/2024", 987654, 40123, 7, scrapedAt),
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekly.xlsx")

	got, err := Write(sampleRecords(t), path)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got != path {
		t.Errorf("expected returned path %s, got %s", path, got)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("reading sheet %q: %v", SheetName, err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 data rows, got %d rows", len(rows))
	}

	for i, h := range Headers {
		if rows[0][i] != h {
			t.Errorf("header %d: expected %s, got %s", i, h, rows[0][i])
		}
	}

	// Numeric cells hold raw integers; display formatting is style-level
	if rows[1][1] != "1234567" {
		t.Errorf("expected raw gross 1234567, got %q", rows[1][1])
	}
	if rows[1][2] != "45678" {
		t.Errorf("expected raw attendance 45678, got %q", rows[1][2])
	}
	if rows[1][3] != "8" {
		t.Errorf("expected 8 shows, got %q", rows[1][3])
	}
	if rows[1][4] != "2024-05-13 09:30:00" {
		t.Errorf("expected scraped timestamp, got %q", rows[1][4])
	}
}

func TestWrite_FormattedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekly.xlsx")

	if _, err := Write(sampleRecords(t), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	gross, err := f.GetCellValue(SheetName, "B2")
	if err != nil {
		t.Fatalf("reading B2: %v", err)
	}
	if gross != "$1,234,567" {
		t.Errorf("expected currency-formatted gross, got %q", gross)
	}

	attendance, err := f.GetCellValue(SheetName, "C2")
	if err != nil {
		t.Fatalf("reading C2: %v", err)
	}
	if attendance != "45,678" {
		t.Errorf("expected comma-formatted attendance, got %q", attendance)
	}
}

func TestWrite_ColumnWidths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekly.xlsx")

	if _, err := Write(sampleRecords(t), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	for col, want := range columnWidths {
		width, err := f.GetColWidth(SheetName, col)
		if err != nil {
			t.Fatalf("reading width of column %s: %v", col, err)
		}
		if width != want {
			t.Errorf("column %s: expected width %v, got %v", col, want, width)
		}
	}
}

func TestWrite_EmptySequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if _, err := Write(nil, path); err != nil {
		t.Fatalf("Write failed on empty input: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("reading sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}

func TestWrite_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "weekly.xlsx")

	_, err := Write(sampleRecords(t), path)
	if err == nil {
		t.Fatal("expected an error for an unwritable path")
	}

	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("expected *WriteError, got %T", err)
	}
	if werr.Path != path {
		t.Errorf("expected failing path in error, got %s", werr.Path)
	}
}

func TestDefaultFilename(t *testing.T) {
	ts := time.Date(2024, 5, 13, 9, 30, 15, 0, time.UTC)

	got := DefaultFilename(ts)
	want := "weekly_show_data_20240513_093015.xlsx"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
