package dualdate

import (
	"database/sql/driver"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
)

// PostgreSQL has one column type per lens: timestamp carries wall-clock
// fields without a zone, timestamptz carries an absolute instant.
// The unset Date maps to NULL in both directions.

// TimestampValue implements pgtype.TimestampValuer with the display fields.
func (d Date) TimestampValue() (pgtype.Timestamp, error) {
	if d.IsZero() {
		return pgtype.Timestamp{}, nil
	}
	return pgtype.Timestamp{Time: d.DisplayableLocal().UTC(), Valid: true}, nil
}

// ScanTimestamp implements pgtype.TimestampScanner. The column's wall-clock
// fields are read as-is, as [FromLocal] would.
func (d *Date) ScanTimestamp(v pgtype.Timestamp) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}
	if v.InfinityModifier != pgtype.Finite {
		return errors.Errorf("scan dualdate.Date: unsupported timestamp infinity modifier: %v", v.InfinityModifier)
	}
	*d = FromLocal(FieldsOf(v.Time))
	return nil
}

// TimestamptzValue implements pgtype.TimestamptzValuer with the UTC instant.
func (d Date) TimestamptzValue() (pgtype.Timestamptz, error) {
	if d.IsZero() {
		return pgtype.Timestamptz{}, nil
	}
	return pgtype.Timestamptz{Time: d.utc, Valid: true}, nil
}

// ScanTimestamptz implements pgtype.TimestamptzScanner, as [FromUTCInstant].
func (d *Date) ScanTimestamptz(v pgtype.Timestamptz) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}
	if v.InfinityModifier != pgtype.Finite {
		return errors.Errorf("scan dualdate.Date: unsupported timestamptz infinity modifier: %v", v.InfinityModifier)
	}
	*d = FromUTCInstant(v.Time)
	return nil
}

// Value implements driver.Valuer with the UTC instant.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.utc, nil
}

// Scan implements sql.Scanner. A time.Time is taken as an instant; text is
// decoded with [Parse].
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = FromUTCInstant(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return errors.Errorf("scan dualdate.Date: unsupported source type %T", src)
	}
}
