package dualdate

import (
	"strconv"
	"strings"
	"time"
)

// wireInputLen is the exact length FromWireString accepts: 2006-01-02T15:04:05.
const wireInputLen = 19

// separators maps offsets in the wire input to the byte required there.
var separators = map[int]byte{4: '-', 7: '-', 10: 'T', 13: ':', 16: ':'}

// FromWireString parses text of the exact form "YYYY-MM-DDTHH:MM:SS" as
// offset-free fields and behaves like [FromLocal] on them.
//
// Anything else fails with a [*FormatError]: a wrong length, a missing "T",
// fractional seconds, a zone suffix, a date-only string. Field values are not
// range-checked; "2019-13-01T00:00:00" rolls over to 2020-01-01.
func FromWireString(s string) (Date, error) {
	if len(s) != wireInputLen {
		return Date{}, formatError(s, "want exactly 19 characters (YYYY-MM-DDTHH:MM:SS)")
	}
	if strings.IndexByte(s, 'T') < 0 {
		return Date{}, formatError(s, `missing "T" date/time separator`)
	}
	for i := 0; i < wireInputLen; i++ {
		if sep, ok := separators[i]; ok {
			if s[i] != sep {
				return Date{}, formatError(s, "want "+strconv.QuoteRune(rune(sep))+" at offset "+strconv.Itoa(i))
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return Date{}, formatError(s, "want digit at offset "+strconv.Itoa(i))
		}
	}

	f := Fields{
		Year:   digits(s[0:4]),
		Month:  time.Month(digits(s[5:7])),
		Day:    digits(s[8:10]),
		Hour:   digits(s[11:13]),
		Minute: digits(s[14:16]),
		Second: digits(s[17:19]),
	}
	return FromLocal(f), nil
}

// ParseCanonical parses RFC 3339 text such as the output of
// [Date.ToWireString] and behaves like [FromUTCInstant] on the result.
func ParseCanonical(s string) (Date, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, &FormatError{Input: s, Reason: "want RFC 3339 timestamp", Err: err}
	}
	return FromUTCInstant(t), nil
}

// Parse accepts either form: the strict 19-character wire input of
// [FromWireString] or an RFC 3339 timestamp as in [ParseCanonical].
func Parse(s string) (Date, error) {
	if len(s) == wireInputLen {
		return FromWireString(s)
	}
	return ParseCanonical(s)
}

// digits converts a run of ASCII digits already checked by the caller.
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

