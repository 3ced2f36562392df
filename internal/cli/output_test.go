package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/broadway-grosses/internal/record"
)

func sampleResult() *OutputResult {
	scrapedAt := time.Date(2024, 5, 13, 9, 30, 0, 0, time.UTC)
	records := []*record.WeeklyRecord{
		record.NewWeeklyRecord("05/12/2024", 1234567, 45678, 8, scrapedAt),
		record.NewWeeklyRecord("05/05/2024", 987654, 40123, 7, scrapedAt),
	}
	return &OutputResult{
		ScrapedAt:   scrapedAt,
		RecordCount: len(records),
		OutputPath:  "weekly_show_data_20240513_093000.xlsx",
		Records:     records,
	}
}

func TestWriteOutput_Text(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Successfully scraped 2 records") {
		t.Errorf("expected record count in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Weeks 05/12/2024 back to 05/05/2024") {
		t.Errorf("expected date span in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Data saved to weekly_show_data_20240513_093000.xlsx") {
		t.Errorf("expected output path in output, got:\n%s", out)
	}
}

func TestWriteOutput_TextVerbose(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "gross $1234567") {
		t.Errorf("expected per-record lines in verbose output, got:\n%s", out)
	}
}

func TestWriteOutput_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{ScrapedAt: time.Now().UTC()}

	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No data was scraped") {
		t.Errorf("expected empty-run message, got:\n%s", buf.String())
	}
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.RecordCount != 2 {
		t.Errorf("expected record_count 2, got %d", decoded.RecordCount)
	}
	if len(decoded.Records) != 2 {
		t.Errorf("expected 2 records, got %d", len(decoded.Records))
	}
	if decoded.Records[0].GrossTotal != 1234567 {
		t.Errorf("expected gross 1234567, got %d", decoded.Records[0].GrossTotal)
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteOutput(&buf, sampleResult(), OutputFormat("xml"), false); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
