package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// EpochTime is a timestamp serialized as integer epoch milliseconds, the
// representation campaign clients consume. In the database it is stored as a
// regular timestamp; the scan/value conversion happens at the store layer.
type EpochTime time.Time

// Time returns the underlying time.Time.
func (e EpochTime) Time() time.Time {
	return time.Time(e)
}

// IsZero reports whether the timestamp is unset.
func (e EpochTime) IsZero() bool {
	return time.Time(e).IsZero()
}

// MarshalJSON serializes the timestamp as epoch milliseconds.
func (e EpochTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, time.Time(e).UnixMilli(), 10), nil
}

// UnmarshalJSON accepts integer epoch milliseconds.
func (e *EpochTime) UnmarshalJSON(b []byte) error {
	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*e = EpochTime(time.UnixMilli(ms).UTC())
	return nil
}

// Scan implements [database/sql.Scanner] so the store layer can read
// timestamp columns directly into the domain representation.
func (e *EpochTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*e = EpochTime(v)
		return nil
	case nil:
		*e = EpochTime{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into EpochTime", src)
	}
}

// Value implements [database/sql/driver.Valuer].
func (e EpochTime) Value() (driver.Value, error) {
	return time.Time(e), nil
}
