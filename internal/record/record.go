package record

import "time"

// WeeklyRecord represents one week of reported Broadway grosses.
type WeeklyRecord struct {
	WeekEnding      time.Time `json:"week_ending"`
	WeekEndingText  string    `json:"week_ending_text"` // Raw token as matched on the page
	GrossTotal      int64     `json:"gross_total"`
	TotalAttendance int64     `json:"total_attendance"`
	NumberOfShows   int       `json:"number_of_shows"`
	ScrapedAt       time.Time `json:"scraped_at"`
}

// NewWeeklyRecord creates a WeeklyRecord with the week-ending date parsed
// from its raw text. The parsed date is the zero time if the text does not
// parse; callers decide whether that blocks sorting.
func NewWeeklyRecord(weekText string, gross, attendance int64, shows int, scrapedAt time.Time) *WeeklyRecord {
	return &WeeklyRecord{
		WeekEnding:      ParseWeekEnding(weekText),
		WeekEndingText:  weekText,
		GrossTotal:      gross,
		TotalAttendance: attendance,
		NumberOfShows:   shows,
		ScrapedAt:       scrapedAt,
	}
}

// Dated reports whether the record's week-ending date parsed successfully.
func (r *WeeklyRecord) Dated() bool {
	return !r.WeekEnding.IsZero()
}
