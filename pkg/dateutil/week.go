package dateutil

import (
	"strings"
	"time"
)

const (
	// DefaultMondayLayout is used by MondayOfWeek when no layout is given.
	DefaultMondayLayout = "20060102"

	// DefaultLabelLayout is used by DateLabel when no layout is given.
	DefaultLabelLayout = "2006/01/02"

	shortWeekdayToken = "Mon"
	longWeekdayToken  = "Monday"
)

// Locale holds the weekday names substituted for the Mon and Monday
// layout tokens.
type Locale struct {
	// ShortWeekdays are indexed by time.Weekday, Sunday first.
	ShortWeekdays [7]string
	// DaySuffix is appended to the short name for the long form.
	DaySuffix string
}

// Japanese is the default locale: 月 for Mon, 月曜日 for Monday.
var Japanese = Locale{
	ShortWeekdays: [7]string{"日", "月", "火", "水", "木", "金", "土"},
	DaySuffix:     "曜日",
}

// Short returns the one-word name of wd.
func (l Locale) Short(wd time.Weekday) string {
	return l.ShortWeekdays[wd]
}

// Long returns the short name followed by the day suffix.
func (l Locale) Long(wd time.Weekday) string {
	return l.ShortWeekdays[wd] + l.DaySuffix
}

// MondayOfWeek returns the Monday of the Monday-Sunday week containing
// date, formatted with layout. A Sunday resolves to the Monday six days
// before it.
func MondayOfWeek[D Date](date D, layout string) (string, error) {
	t, err := toTime(date)
	if err != nil {
		return "", err
	}
	if layout == "" {
		layout = DefaultMondayLayout
	}
	return StartOfWeek(t).Format(layout), nil
}

// DateLabel formats date with layout using the Japanese weekday names,
// e.g. "2006年01月02日(Mon)" gives "2017年06月01日(木)".
func DateLabel[D Date](date D, layout string) (string, error) {
	return DateLabelIn(Japanese, date, layout)
}

// DateLabelIn is DateLabel with an explicit locale.
func DateLabelIn[D Date](loc Locale, date D, layout string) (string, error) {
	t, err := toTime(date)
	if err != nil {
		return "", err
	}
	if layout == "" {
		layout = DefaultLabelLayout
	}
	return formatWithWeekday(t, layout, loc.Short(t.Weekday()), loc.Long(t.Weekday())), nil
}

// formatWithWeekday formats t with layout, writing short and long in
// place of the Mon and Monday tokens. The names are written verbatim and
// never reach time.Format, so they cannot be read as layout tokens.
// Monday is matched before Mon since Mon is its prefix.
func formatWithWeekday(t time.Time, layout, short, long string) string {
	var b strings.Builder
	for {
		i := strings.Index(layout, shortWeekdayToken)
		if i < 0 {
			b.WriteString(t.Format(layout))
			return b.String()
		}
		b.WriteString(t.Format(layout[:i]))
		rest := layout[i:]
		if strings.HasPrefix(rest, longWeekdayToken) {
			b.WriteString(long)
			layout = rest[len(longWeekdayToken):]
		} else {
			b.WriteString(short)
			layout = rest[len(shortWeekdayToken):]
		}
	}
}
