package record

import "sort"

// SortNewestFirst orders records by week-ending date descending.
// The sort is stable: records with equal dates keep their original
// relative order.
func SortNewestFirst(records []*WeeklyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].WeekEnding.After(records[j].WeekEnding)
	})
}
