package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
)

// MinutesPerDay is the length of one day in minutes.
const MinutesPerDay = 24 * 60

var hhmmRe = regexp.MustCompile(`^(\d{2})(\d{2})$`)

// TimeLabel formats "1730" as "17:30". An empty string is returned as is.
func TimeLabel(hhmm string) (string, error) {
	if hhmm == "" {
		return hhmm, nil
	}
	m := hhmmRe.FindStringSubmatch(hhmm)
	if m == nil {
		return "", &TimeFormatError{Value: hhmm}
	}
	return m[1] + ":" + m[2], nil
}

// TimeDifference returns end-start as HHMM, e.g. ("1330", "1700") gives
// "0330". An end earlier than start is taken to be on the following day,
// so the result is always between 0000 and 2359.
//
// ok is false when either argument is empty.
func TimeDifference(start, end string) (diff string, ok bool, err error) {
	if start == "" || end == "" {
		return "", false, nil
	}
	startMin, err := parseMinutes(start)
	if err != nil {
		return "", false, err
	}
	endMin, err := parseMinutes(end)
	if err != nil {
		return "", false, err
	}

	d := endMin - startMin
	if endMin < startMin {
		d += MinutesPerDay
	}
	return formatMinutes(d), true, nil
}

// AddTimeOffset returns start+diff as HHMM, e.g. ("1330", "0330") gives
// "1700". A sum past midnight wraps once; a sum of 48 hours or more is
// not folded back into a single day.
//
// ok is false when either argument is empty.
func AddTimeOffset(start, diff string) (end string, ok bool, err error) {
	if start == "" || diff == "" {
		return "", false, nil
	}
	startMin, err := parseMinutes(start)
	if err != nil {
		return "", false, err
	}
	diffMin, err := parseMinutes(diff)
	if err != nil {
		return "", false, err
	}

	sum := startMin + diffMin
	if sum >= MinutesPerDay {
		sum -= MinutesPerDay
	}
	return formatMinutes(sum), true, nil
}

// parseMinutes converts HHMM into minutes since midnight.
func parseMinutes(hhmm string) (int, error) {
	m := hhmmRe.FindStringSubmatch(hhmm)
	if m == nil {
		return 0, &TimeFormatError{Value: hhmm}
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return h*60 + mm, nil
}

func formatMinutes(total int) string {
	return fmt.Sprintf("%02d%02d", total/60, total%60)
}
