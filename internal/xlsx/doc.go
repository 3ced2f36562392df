// Package xlsx serializes weekly grosses records to an Excel workbook.
//
// The writer produces a single "Weekly Shows" sheet with a header row,
// currency formatting on the gross column, thousands separators on the
// attendance column, and fixed column widths. Output filenames default to
// a timestamped name so repeated runs never overwrite each other.
package xlsx
