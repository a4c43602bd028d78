package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FiscalYearStartMonth is the first month of the fiscal year.
const FiscalYearStartMonth = time.April

const (
	FirstHalf  = 1
	SecondHalf = 2
)

var yearHalfRe = regexp.MustCompile(`^([12][0-9]{3})([12])$`)

// FiscalPeriod is a fiscal year split into two six-month halves.
type FiscalPeriod struct {
	Year int
	Half int
}

// FiscalPeriodOf returns the fiscal half containing t. January to March
// belong to the previous fiscal year.
func FiscalPeriodOf(t time.Time) FiscalPeriod {
	year := t.Year()
	if t.Month() < FiscalYearStartMonth {
		year--
	}

	// months elapsed since the fiscal year started, 0-11
	elapsed := int(t.Month()-FiscalYearStartMonth+12) % 12

	half := FirstHalf
	if elapsed >= 6 {
		half = SecondHalf
	}
	return FiscalPeriod{Year: year, Half: half}
}

// String returns the compact YYYYh form, e.g. "20171".
func (p FiscalPeriod) String() string {
	return fmt.Sprintf("%d%d", p.Year, p.Half)
}

// Label returns "2017年上期" for the first half and "2017年下期" for the second.
func (p FiscalPeriod) Label() string {
	if p.Half == FirstHalf {
		return fmt.Sprintf("%d年上期", p.Year)
	}
	return fmt.Sprintf("%d年下期", p.Year)
}

// FiscalYearAndHalf returns the fiscal half of date in YYYYh form.
//
// Example: "20170601" gives "20171", "20170301" gives "20162".
func FiscalYearAndHalf[D Date](date D) (string, error) {
	t, err := toTime(date)
	if err != nil {
		return "", err
	}
	return FiscalPeriodOf(t).String(), nil
}

// ParseFiscalPeriod parses the YYYYh form where h is 1 or 2.
func ParseFiscalPeriod(s string) (FiscalPeriod, error) {
	m := yearHalfRe.FindStringSubmatch(s)
	if m == nil {
		return FiscalPeriod{}, &FormatError{Kind: "YYYYh", Value: s}
	}
	year, _ := strconv.Atoi(m[1])
	half, _ := strconv.Atoi(m[2])
	return FiscalPeriod{Year: year, Half: half}, nil
}

// HalfYearLabel turns "20171" into "2017年上期" and "20172" into "2017年下期".
func HalfYearLabel(yearHalf string) (string, error) {
	p, err := ParseFiscalPeriod(yearHalf)
	if err != nil {
		return "", err
	}
	return p.Label(), nil
}
