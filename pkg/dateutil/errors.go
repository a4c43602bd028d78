package dateutil

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateFormat is returned when a date is neither a YYYY?MM?DD
	// string, a non-negative Unix timestamp nor a time.Time.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidTimeFormat is returned when a time of day is not HHMM.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidFormat is returned for malformed period or year-month labels.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidStep is returned when a sequence step is less than one.
	ErrInvalidStep = errors.New("sequence step must be positive")
)

// DateFormatError carries the date value that could not be interpreted.
type DateFormatError struct {
	Value any
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date format: %v (%T)", e.Value, e.Value)
}

func (e *DateFormatError) Unwrap() error {
	return ErrInvalidDateFormat
}

// TimeFormatError carries the time string that is not HHMM.
type TimeFormatError struct {
	Value string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q (want HHMM)", e.Value)
}

func (e *TimeFormatError) Unwrap() error {
	return ErrInvalidTimeFormat
}

// FormatError carries a malformed label input. Kind names the expected
// shape, e.g. "YYYYMM".
type FormatError struct {
	Kind  string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format: %q (want %s)", e.Value, e.Kind)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
