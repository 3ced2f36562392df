package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/broadway-grosses/internal/record"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the run summary to be output
type OutputResult struct {
	ScrapedAt   time.Time              `json:"scraped_at"`
	RecordCount int                    `json:"record_count"`
	OutputPath  string                 `json:"output_path,omitempty"`
	Records     []*record.WeeklyRecord `json:"records,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the result as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.RecordCount == 0 {
		fmt.Fprintln(w, "No data was scraped. Please check the URL and data format.")
		return nil
	}

	fmt.Fprintf(w, "Successfully scraped %d records\n", result.RecordCount)

	if verbose {
		for _, rec := range result.Records {
			fmt.Fprintf(w, "  %s: gross $%d, attendance %d, shows %d\n",
				rec.WeekEndingText, rec.GrossTotal, rec.TotalAttendance, rec.NumberOfShows)
		}
	} else if newest, oldest := dateSpan(result.Records); newest != "" {
		fmt.Fprintf(w, "Weeks %s back to %s\n", newest, oldest)
	}

	if result.OutputPath != "" {
		fmt.Fprintf(w, "Data saved to %s\n", result.OutputPath)
	}

	return nil
}

// dateSpan returns the first and last week-ending texts of the sequence,
// which is newest-to-oldest when all dates parsed.
func dateSpan(records []*record.WeeklyRecord) (newest, oldest string) {
	if len(records) == 0 {
		return "", ""
	}
	return records[0].WeekEndingText, records[len(records)-1].WeekEndingText
}
