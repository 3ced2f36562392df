package extract

import "fmt"

// MismatchError reports that the four matched series have different lengths.
// It is non-fatal: assembly proceeds with the minimum length.
type MismatchError struct {
	Weeks      int
	Shows      int
	Gross      int
	Attendance int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatched series lengths - weeks: %d, shows: %d, gross: %d, attendance: %d",
		e.Weeks, e.Shows, e.Gross, e.Attendance)
}

// Min returns the shortest series length, the number of positions that can
// be aligned.
func (e *MismatchError) Min() int {
	min := e.Weeks
	for _, n := range []int{e.Shows, e.Gross, e.Attendance} {
		if n < min {
			min = n
		}
	}
	return min
}

// FieldParseError reports a numeric token at one position that failed to
// parse after separator stripping. It is non-fatal: only that position is
// dropped.
type FieldParseError struct {
	Index int
	Field string
	Raw   string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("parsing %s at index %d: %q: %v", e.Field, e.Index, e.Raw, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}
