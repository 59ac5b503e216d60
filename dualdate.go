// Package dualdate represents one nominal civil date and time through two
// lenses that always agree on their field values:
//
//   - the display lens, [Date.DisplayableLocal]: offset-free wall-clock fields,
//     safe to show to a user as-is.
//   - the wire lens, [Date.SendableUTC]: an absolute instant anchored to UTC,
//     safe to serialize for an API call.
//
// Converting between the two always goes through UTC field construction
// ([time.Date] with [time.UTC]) and never through the host's local offset, so
// the result is identical on every machine and a negative UTC offset can never
// shift the calendar day.
//
// A Date is created with [FromLocal], [FromLocalTime], [FromUTCInstant] or
// [FromWireString]:
//
//	d, err := dualdate.FromWireString("2019-01-01T00:00:00")
//	d.DisplayableLocal() // 2019-01-01 00:00:00
//	d.ToWireString()     // "2019-01-01T00:00:00.000Z"
//
// Host timezone assumption: the display fields are captured once and never
// reinterpreted. Rendering them through a different offset than the one the
// user typed them in (for example with [time.Time.In]) breaks the contract;
// use [Date.Local] or [Date.In], which re-anchor the fields without shifting.
//
// Dates are immutable values and safe for concurrent use.
package dualdate

import "time"

// WireLayout is the canonical UTC encoding produced by [Date.ToWireString].
const WireLayout = "2006-01-02T15:04:05.000Z"

// Date is a civil date and time. It holds the UTC instant only; the
// offset-free fields are its UTC calendar fields, so the two lenses cannot
// drift apart.
//
// The zero value is the unset Date; see [Date.IsZero].
type Date struct {
	utc time.Time
}

// FromLocal treats f as wall-clock fields in the user's display timezone.
// The wire instant is the UTC instant with the same field values; the host
// offset is never applied. Overflowing fields roll over like [time.Date] and
// the display fields are the rolled-over ones.
func FromLocal(f Fields) Date {
	return Date{utc: f.UTC()}
}

// FromLocalTime captures the wall-clock fields of t in t's own location and
// behaves like [FromLocal] on them. Sub-second precision is dropped.
func FromLocalTime(t time.Time) Date {
	return FromLocal(FieldsOf(t))
}

// FromUTCInstant treats t as a wire timestamp. It is kept as the wire
// instant (normalized to the UTC location), and its UTC calendar fields
// become the display fields.
func FromUTCInstant(t time.Time) Date {
	return Date{utc: t.UTC()}
}

// DisplayableLocal returns the offset-free fields. Render them directly;
// they already hold the local wall-clock values and must not be shifted.
func (d Date) DisplayableLocal() Fields {
	return utcFieldsOf(d.utc)
}

// SendableUTC returns the UTC instant. Serialize it directly; its UTC
// fields equal the display fields.
func (d Date) SendableUTC() time.Time {
	return d.utc
}

// ToWireString encodes the wire instant as "2006-01-02T15:04:05.000Z".
func (d Date) ToWireString() string {
	return d.utc.Format(WireLayout)
}

// String returns the display fields as "2006-01-02 15:04:05".
func (d Date) String() string {
	return d.DisplayableLocal().String()
}

// Local returns the display fields as wall clock in [time.Local].
func (d Date) Local() time.Time {
	return d.DisplayableLocal().In(time.Local)
}

// In returns the display fields as wall clock in loc.
func (d Date) In(loc *time.Location) time.Time {
	return d.DisplayableLocal().In(loc)
}

// IsZero reports whether d is the unset Date, whose instant is the zero
// [time.Time] (0001-01-01T00:00:00Z). Its two lenses agree like any other.
func (d Date) IsZero() bool {
	return d.utc.IsZero()
}

// Equal reports whether d and other denote the same instant.
func (d Date) Equal(other Date) bool {
	return d.utc.Equal(other.utc)
}

// Compare compares the wire instants of d and other.
func (d Date) Compare(other Date) int {
	return d.utc.Compare(other.utc)
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.utc.Before(other.utc)
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.utc.After(other.utc)
}
