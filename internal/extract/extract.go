package extract

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/broadway-grosses/internal/capture"
	"github.com/pfrederiksen/broadway-grosses/internal/logger"
	"github.com/pfrederiksen/broadway-grosses/internal/record"
)

// SnippetLimit is how many characters of flattened page text the diagnostic
// capture keeps when nothing matched.
const SnippetLimit = 5000

// Label-anchored patterns for the four figures as they appear on the page.
var (
	weekPattern       = regexp.MustCompile(`Week Ending:\s*(\d{1,2}/\d{1,2}/\d{4})`)
	showsPattern      = regexp.MustCompile(`Number of Shows:\s*(\d+)`)
	grossPattern      = regexp.MustCompile(`Gross Gross:\s*\$?([\d,]+)`)
	attendancePattern = regexp.MustCompile(`Total Attendance:\s*([\d,]+)`)
)

// Series holds the four independently matched token sequences in document
// order. Lengths are not guaranteed equal.
type Series struct {
	Weeks      []string
	Shows      []string
	Gross      []string
	Attendance []string
}

// Empty reports whether no pattern matched anything at all.
func (s Series) Empty() bool {
	return len(s.Weeks) == 0 && len(s.Shows) == 0 && len(s.Gross) == 0 && len(s.Attendance) == 0
}

// Aligned reports whether all four series have the same length.
func (s Series) Aligned() bool {
	return len(s.Weeks) == len(s.Shows) && len(s.Shows) == len(s.Gross) && len(s.Gross) == len(s.Attendance)
}

// Min returns the number of positions that can be aligned across all four
// series.
func (s Series) Min() int {
	min := len(s.Weeks)
	for _, n := range []int{len(s.Shows), len(s.Gross), len(s.Attendance)} {
		if n < min {
			min = n
		}
	}
	return min
}

// FlattenHTML strips a page down to its visible text content, discarding
// markup, scripts, and styles.
func FlattenHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	return doc.Text(), nil
}

// FindSeries runs the four pattern searches over flattened page text and
// returns all non-overlapping matches in document order.
func FindSeries(text string) Series {
	return Series{
		Weeks:      findCaptures(weekPattern, text),
		Shows:      findCaptures(showsPattern, text),
		Gross:      findCaptures(grossPattern, text),
		Attendance: findCaptures(attendancePattern, text),
	}
}

// findCaptures returns the first capture group of every match of p in text
func findCaptures(p *regexp.Regexp, text string) []string {
	matches := p.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// Assembler turns flattened page text into WeeklyRecord sequences.
type Assembler struct {
	capture *capture.Capture
	now     func() time.Time
}

// New creates an Assembler. The capture may be nil, in which case the
// zero-match diagnostic snapshot is skipped.
func New(c *capture.Capture) *Assembler {
	return &Assembler{
		capture: c,
		now:     time.Now,
	}
}

// Assemble extracts the four series from flattened page text and pairs them
// into records. The result may be empty; extraction problems degrade the
// result rather than failing the run.
func (a *Assembler) Assemble(text string) []*record.WeeklyRecord {
	series := FindSeries(text)

	logger.Info("Series matched", logger.Fields{
		"weeks":      len(series.Weeks),
		"shows":      len(series.Shows),
		"gross":      len(series.Gross),
		"attendance": len(series.Attendance),
	})

	if series.Empty() {
		logger.Warn("No data found with current patterns; the page structure may have changed", nil)
		if a.capture != nil {
			path, err := a.capture.WriteSnippet(text, SnippetLimit)
			if err != nil {
				logger.Warn("Writing diagnostic capture failed", logger.Fields{"error": err.Error()})
			} else {
				logger.Info("Page text snippet saved for inspection", logger.Fields{"path": path})
			}
		}
		return []*record.WeeklyRecord{}
	}

	return a.AssembleSeries(series)
}

// AssembleSeries pairs the i-th element of each series into one record,
// truncating to the shortest series. Positions with unparseable numeric
// tokens are dropped individually.
func (a *Assembler) AssembleSeries(series Series) []*record.WeeklyRecord {
	if !series.Aligned() {
		mismatch := &MismatchError{
			Weeks:      len(series.Weeks),
			Shows:      len(series.Shows),
			Gross:      len(series.Gross),
			Attendance: len(series.Attendance),
		}
		logger.Warn("Series length mismatch, truncating to minimum", logger.Fields{
			"weeks":      mismatch.Weeks,
			"shows":      mismatch.Shows,
			"gross":      mismatch.Gross,
			"attendance": mismatch.Attendance,
			"kept":       mismatch.Min(),
		})
		logger.IncrCounter("extract.series_mismatches")
	}

	n := series.Min()
	if n == 0 {
		logger.Warn("No positions shared by all four series", nil)
		return []*record.WeeklyRecord{}
	}

	scrapedAt := a.now().UTC()
	records := make([]*record.WeeklyRecord, 0, n)

	for i := 0; i < n; i++ {
		gross, err := parseAmount(series.Gross[i])
		if err != nil {
			dropPosition(&FieldParseError{Index: i, Field: "gross", Raw: series.Gross[i], Err: err})
			continue
		}

		attendance, err := parseAmount(series.Attendance[i])
		if err != nil {
			dropPosition(&FieldParseError{Index: i, Field: "attendance", Raw: series.Attendance[i], Err: err})
			continue
		}

		shows, err := strconv.Atoi(strings.TrimSpace(series.Shows[i]))
		if err != nil {
			dropPosition(&FieldParseError{Index: i, Field: "shows", Raw: series.Shows[i], Err: err})
			continue
		}

		records = append(records, record.NewWeeklyRecord(series.Weeks[i], gross, attendance, shows, scrapedAt))
	}

	if record.AllDated(records) {
		record.SortNewestFirst(records)
	} else {
		logger.Warn("Could not parse every week-ending date, keeping source order", nil)
	}

	return records
}

// dropPosition logs a per-position parse failure; the rest of the batch is
// retained.
func dropPosition(err *FieldParseError) {
	logger.Warn("Dropping record position", logger.Fields{
		"index": err.Index,
		"field": err.Field,
		"raw":   err.Raw,
		"error": err.Err.Error(),
	})
	logger.IncrCounter("extract.dropped_positions")
}

// parseAmount strips thousands separators and parses the remainder as an
// integer amount.
func parseAmount(token string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(token), ",", "")
	return strconv.ParseInt(clean, 10, 64)
}
