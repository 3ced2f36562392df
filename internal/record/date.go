package record

import "time"

// ParseWeekEnding attempts to parse a week-ending token into a time.Time.
// Returns time.Time{} (zero value) if parsing fails.
// Supports formats: "5/12/2024", "05/12/2024"
func ParseWeekEnding(text string) time.Time {
	if text == "" {
		return time.Time{}
	}

	// Try "5/12/2024" format (single digit month/day)
	t, err := time.Parse("1/2/2006", text)
	if err == nil {
		return t
	}

	// Try "05/12/2024" format
	t, err = time.Parse("01/02/2006", text)
	if err == nil {
		return t
	}

	// Could not parse, return zero time
	return time.Time{}
}

// AllDated reports whether every record in the slice has a parsed
// week-ending date.
func AllDated(records []*WeeklyRecord) bool {
	for _, r := range records {
		if !r.Dated() {
			return false
		}
	}
	return true
}
