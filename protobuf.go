package dualdate

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ToTimestamp returns the UTC instant as a protobuf Timestamp.
// The unset Date yields nil.
func (d Date) ToTimestamp() *timestamppb.Timestamp {
	if d.IsZero() {
		return nil
	}
	return timestamppb.New(d.utc)
}

// FromTimestamp behaves like [FromUTCInstant] on a protobuf Timestamp.
// A nil Timestamp yields the unset Date.
func FromTimestamp(ts *timestamppb.Timestamp) (Date, error) {
	if ts == nil {
		return Date{}, nil
	}
	if err := ts.CheckValid(); err != nil {
		return Date{}, errors.Wrap(err, "dualdate: invalid timestamp")
	}
	return FromUTCInstant(ts.AsTime()), nil
}
