package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is the set of date shapes accepted by the format-preserving
// functions. A string is YYYY?MM?DD with optional one-character
// delimiters, an integer is a Unix timestamp in seconds.
type Date interface {
	string | int | int64 | time.Time
}

// Transform maps an instant to another one. offset is passed through
// unchanged from the caller of Wrap.
type Transform func(t time.Time, offset int) time.Time

var textDateRe = regexp.MustCompile(`^([1-9][0-9]{3})(.?)([0-9]{2})(.?)([0-9]{2})$`)

type inputKind int

const (
	kindText inputKind = iota
	kindInstant
	kindStructured
)

// dateInput is a date normalized to a local instant, plus the renderer
// that turns a result back into the caller's shape.
type dateInput struct {
	kind    inputKind
	instant time.Time
	render  func(time.Time) any
}

// Wrap parses date, applies fn and renders the result in the same shape
// as date. Strings keep their delimiters, integers stay Unix seconds and
// time.Time values are rebuilt from the resulting instant only.
func Wrap[D Date](date D, offset int, fn Transform) (D, error) {
	var zero D

	in, err := parseDate(any(date))
	if err != nil {
		return zero, err
	}

	out, ok := in.render(fn(in.instant, offset)).(D)
	if !ok {
		return zero, &DateFormatError{Value: date}
	}
	return out, nil
}

// toTime normalizes any accepted date shape into a local instant.
func toTime[D Date](date D) (time.Time, error) {
	in, err := parseDate(any(date))
	if err != nil {
		return time.Time{}, err
	}
	return in.instant, nil
}

func parseDate(v any) (dateInput, error) {
	switch d := v.(type) {
	case string:
		return parseTextDate(d)
	case int:
		if d < 0 {
			return dateInput{}, &DateFormatError{Value: v}
		}
		return dateInput{
			kind:    kindInstant,
			instant: time.Unix(int64(d), 0),
			render:  func(t time.Time) any { return int(t.Unix()) },
		}, nil
	case int64:
		if d < 0 {
			return dateInput{}, &DateFormatError{Value: v}
		}
		return dateInput{
			kind:    kindInstant,
			instant: time.Unix(d, 0),
			render:  func(t time.Time) any { return t.Unix() },
		}, nil
	case time.Time:
		return dateInput{
			kind:    kindStructured,
			instant: d.In(time.Local),
			render:  func(t time.Time) any { return time.Unix(t.Unix(), 0) },
		}, nil
	default:
		return dateInput{}, &DateFormatError{Value: v}
	}
}

// parseTextDate accepts YYYYMMDD with an optional single character
// between the parts. The captured delimiters are replayed on output.
func parseTextDate(s string) (dateInput, error) {
	m := textDateRe.FindStringSubmatch(s)
	if m == nil {
		return dateInput{}, &DateFormatError{Value: s}
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[5])
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return dateInput{}, &DateFormatError{Value: s}
	}

	delim1, delim2 := m[2], m[4]
	return dateInput{
		kind:    kindText,
		instant: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local),
		render: func(t time.Time) any {
			// Sprintf, not t.Format: a delimiter may itself be a layout token.
			return fmt.Sprintf("%04d%s%02d%s%02d", t.Year(), delim1, int(t.Month()), delim2, t.Day())
		},
	}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
