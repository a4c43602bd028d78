package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
)

// MapFunc turns the index-th enumerated value (0-based) into an entry.
type MapFunc[K comparable, V any] func(index, value int) (K, V)

var yearMonthRe = regexp.MustCompile(`^([12][0-9]{3})(0[1-9]|1[0-2])$`)

// MakeSequence enumerates begin..end inclusive in steps of step and maps
// each value through fn. When ascending is false the same bounds are
// walked from end down to begin. A range that is not a multiple of step
// stops at the last value inside the bounds.
func MakeSequence[K comparable, V any](begin, end int, ascending bool, step int, fn MapFunc[K, V]) (*OrderedMap[K, V], error) {
	if step < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	result := NewOrderedMap[K, V]()
	if ascending {
		for i, n := begin, 0; i <= end; i, n = i+step, n+1 {
			result.Set(fn(n, i))
		}
	} else {
		for i, n := end, 0; i >= begin; i, n = i-step, n+1 {
			result.Set(fn(n, i))
		}
	}
	return result, nil
}

// SameKeyValue uses the enumerated value as both key and value.
func SameKeyValue(_ int, value int) (int, int) {
	return value, value
}

// MakeYearList lists the years begin..end, each year used as both key
// and value.
func MakeYearList(begin, end int, ascending bool) *OrderedMap[int, int] {
	m, _ := MakeSequence(begin, end, ascending, 1, SameKeyValue)
	return m
}

// MakeYearListFunc lists the years begin..end every step years, mapping
// them through fn. For example a key of 2010 with a value of "2010年":
//
//	MakeYearListFunc(2010, 2011, true, 1, func(_, y int) (int, string) {
//		return y, fmt.Sprintf("%d年", y)
//	})
func MakeYearListFunc[K comparable, V any](begin, end int, ascending bool, step int, fn MapFunc[K, V]) (*OrderedMap[K, V], error) {
	return MakeSequence(begin, end, ascending, step, fn)
}

// MakeMonthList lists the months 01..12 as zero-padded strings used as
// both key and value.
func MakeMonthList(ascending bool) *OrderedMap[string, string] {
	m, _ := MakeSequence(1, 12, ascending, 1, paddedMonth)
	return m
}

// MakeMonthListFunc lists the months begin..end every step months. A list
// that wraps the year, such as April through March, cannot be expressed.
// A nil fn yields zero-padded strings.
func MakeMonthListFunc(ascending bool, begin, end, step int, fn MapFunc[string, string]) (*OrderedMap[string, string], error) {
	if fn == nil {
		fn = paddedMonth
	}
	return MakeSequence(begin, end, ascending, step, fn)
}

func paddedMonth(_ int, month int) (string, string) {
	v := fmt.Sprintf("%02d", month)
	return v, v
}

// MakeYearMonthList lists the YYYYMM values begin..end, labeled like
// "2012年11月". December is followed by January of the next year.
func MakeYearMonthList(begin, end int, ascending bool) (*OrderedMap[int, string], error) {
	return MakeYearMonthListFunc(begin, end, ascending, func(ym int) (string, error) {
		return YearMonthLabel(strconv.Itoa(ym))
	})
}

// MakeYearMonthListFunc is MakeYearMonthList with a custom value function.
// Keys are always the YYYYMM integers.
func MakeYearMonthListFunc[V any](begin, end int, ascending bool, fn func(ym int) (V, error)) (*OrderedMap[int, V], error) {
	for _, ym := range []int{begin, end} {
		if !yearMonthRe.MatchString(strconv.Itoa(ym)) {
			return nil, &FormatError{Kind: "YYYYMM", Value: strconv.Itoa(ym)}
		}
	}

	from, to := begin, end
	if !ascending {
		from, to = end, begin
	}

	result := NewOrderedMap[int, V]()
	for ym := from; yearMonthInRange(ym, to, ascending); ym = nextYearMonth(ym, ascending) {
		v, err := fn(ym)
		if err != nil {
			return nil, err
		}
		result.Set(ym, v)
	}
	return result, nil
}

// nextYearMonth steps YYYYMM by one month. Crossing a year boundary is a
// jump of 89: 201212+89 = 201301 and 201301-89 = 201212.
func nextYearMonth(ym int, ascending bool) int {
	if ascending {
		if ym%100 == 12 {
			return ym + 89
		}
		return ym + 1
	}
	if ym%100 == 1 {
		return ym - 89
	}
	return ym - 1
}

func yearMonthInRange(ym, to int, ascending bool) bool {
	if ascending {
		return ym <= to
	}
	return ym >= to
}

// YearMonthLabel turns "201706" into "2017年06月".
func YearMonthLabel(ym string) (string, error) {
	m := yearMonthRe.FindStringSubmatch(ym)
	if m == nil {
		return "", &FormatError{Kind: "YYYYMM", Value: ym}
	}
	return m[1] + "年" + m[2] + "月", nil
}
