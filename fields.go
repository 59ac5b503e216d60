package dualdate

import (
	"fmt"
	"time"
)

// Fields holds civil date and time values with no offset attached.
// Month is 1-based ([time.January] == 1). There is no sub-second field.
type Fields struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// FieldsOf returns the wall-clock fields of t in t's own location.
// Sub-second precision is dropped.
func FieldsOf(t time.Time) Fields {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return Fields{Year: y, Month: m, Day: d, Hour: hh, Minute: mm, Second: ss}
}

// utcFieldsOf returns the UTC calendar fields of t.
func utcFieldsOf(t time.Time) Fields {
	return FieldsOf(t.UTC())
}

// UTC returns the instant whose UTC calendar fields equal f.
// Out-of-range values roll over the way [time.Date] normalizes them.
func (f Fields) UTC() time.Time {
	return f.In(time.UTC)
}

// In returns f as wall clock in loc. The fields are not shifted.
func (f Fields) In(loc *time.Location) time.Time {
	return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, 0, loc)
}

// Normalize returns f with out-of-range values rolled over.
func (f Fields) Normalize() Fields {
	return utcFieldsOf(f.UTC())
}

// String formats f as "2006-01-02 15:04:05".
func (f Fields) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		f.Year, int(f.Month), f.Day, f.Hour, f.Minute, f.Second)
}

// Compare returns -1, 0 or +1 depending on whether f is before, equal to or
// after other. Both are compared field by field without normalization.
func (f Fields) Compare(other Fields) int {
	a := [...]int{f.Year, int(f.Month), f.Day, f.Hour, f.Minute, f.Second}
	b := [...]int{other.Year, int(other.Month), other.Day, other.Hour, other.Minute, other.Second}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return +1
		}
	}
	return 0
}

// Before reports whether f comes before other.
func (f Fields) Before(other Fields) bool {
	return f.Compare(other) < 0
}

// After reports whether f comes after other.
func (f Fields) After(other Fields) bool {
	return other.Before(f)
}

// InRange reports whether f lies in [from, to] inclusive.
func (f Fields) InRange(from, to Fields) bool {
	return !f.Before(from) && !to.Before(f)
}
