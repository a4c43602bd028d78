package dateutil

import (
	"errors"
	"testing"
	"time"
)

func identity(t time.Time, _ int) time.Time { return t }

func TestWrapKeepsDelimiters(t *testing.T) {
	inputs := []string{
		"20170601",
		"2017-06-01",
		"2017/06/01",
		"2017.06.01",
		"2017/0601",
		"201706-01",
		"2017年06月01",
		"2017J06J01",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Wrap(in, 0, identity)
			if err != nil {
				t.Fatalf("Wrap(%q) error = %v", in, err)
			}
			if got != in {
				t.Errorf("Wrap(%q) = %q, want %q", in, got, in)
			}
		})
	}
}

func TestWrapPassesOffset(t *testing.T) {
	var seen int
	_, err := Wrap("20170601", 7, func(t time.Time, offset int) time.Time {
		seen = offset
		return t
	})
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if seen != 7 {
		t.Errorf("transform got offset %d, want 7", seen)
	}
}

func TestWrapTextParsesLocalMidnight(t *testing.T) {
	var got time.Time
	_, err := Wrap("2017-06-01", 0, func(t time.Time, _ int) time.Time {
		got = t
		return t
	})
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	want := time.Date(2017, 6, 1, 0, 0, 0, 0, jst)
	if !got.Equal(want) {
		t.Errorf("parsed instant = %v, want %v", got, want)
	}
}

func TestWrapInstant(t *testing.T) {
	sec := time.Date(2017, 6, 1, 0, 0, 0, 0, jst).Unix()
	day := func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }
	want := time.Date(2017, 6, 2, 0, 0, 0, 0, jst).Unix()

	got64, err := Wrap(sec, 1, day)
	if err != nil {
		t.Fatalf("Wrap(int64) error = %v", err)
	}
	if got64 != want {
		t.Errorf("Wrap(int64) = %d, want %d", got64, want)
	}

	gotInt, err := Wrap(int(sec), 1, day)
	if err != nil {
		t.Fatalf("Wrap(int) error = %v", err)
	}
	if int64(gotInt) != want {
		t.Errorf("Wrap(int) = %d, want %d", gotInt, want)
	}

	zero, err := Wrap(0, 0, identity)
	if err != nil || zero != 0 {
		t.Errorf("Wrap(0) = %d, %v, want 0, nil", zero, err)
	}
}

func TestWrapStructured(t *testing.T) {
	in := time.Date(2017, 6, 1, 10, 30, 0, 500, time.UTC)

	got, err := Wrap(in, 0, identity)
	if err != nil {
		t.Fatalf("Wrap(time.Time) error = %v", err)
	}
	if got.Unix() != in.Unix() {
		t.Errorf("Wrap(time.Time) = %v, want instant %v", got, in)
	}
	if got.Nanosecond() != 0 {
		t.Errorf("Wrap(time.Time) copied nanoseconds: %v", got)
	}
	if got.Location() != time.Local {
		t.Errorf("Wrap(time.Time) location = %v, want Local", got.Location())
	}
}

func TestWrapInvalid(t *testing.T) {
	tests := []struct {
		name  string
		call  func() error
		value any
	}{
		{"short text", func() error { _, err := Wrap("2017-6-1", 0, identity); return err }, "2017-6-1"},
		{"leading zero year", func() error { _, err := Wrap("09170601", 0, identity); return err }, "09170601"},
		{"two char delimiter", func() error { _, err := Wrap("2017--06-01", 0, identity); return err }, "2017--06-01"},
		{"month 13", func() error { _, err := Wrap("20171301", 0, identity); return err }, "20171301"},
		{"February 30", func() error { _, err := Wrap("20170230", 0, identity); return err }, "20170230"},
		{"empty", func() error { _, err := Wrap("", 0, identity); return err }, ""},
		{"negative int", func() error { _, err := Wrap(-1, 0, identity); return err }, -1},
		{"negative int64", func() error { _, err := Wrap(int64(-5), 0, identity); return err }, int64(-5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Fatalf("error = %v, want ErrInvalidDateFormat", err)
			}
			var dfe *DateFormatError
			if !errors.As(err, &dfe) {
				t.Fatalf("error %T is not *DateFormatError", err)
			}
			if dfe.Value != tt.value {
				t.Errorf("DateFormatError.Value = %#v, want %#v", dfe.Value, tt.value)
			}
		})
	}
}
