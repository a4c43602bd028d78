package dateutil

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestMakeYearList(t *testing.T) {
	asc := MakeYearList(2010, 2013, true)
	if want := []int{2010, 2011, 2012, 2013}; !reflect.DeepEqual(asc.Keys(), want) {
		t.Errorf("MakeYearList(asc) keys = %v, want %v", asc.Keys(), want)
	}
	if !reflect.DeepEqual(asc.Keys(), asc.Values()) {
		t.Errorf("MakeYearList(asc) values = %v, want same as keys", asc.Values())
	}

	desc := MakeYearList(2010, 2013, false)
	if want := []int{2013, 2012, 2011, 2010}; !reflect.DeepEqual(desc.Keys(), want) {
		t.Errorf("MakeYearList(desc) keys = %v, want %v", desc.Keys(), want)
	}

	single := MakeYearList(2017, 2017, true)
	if single.Len() != 1 {
		t.Errorf("MakeYearList(2017, 2017) len = %d, want 1", single.Len())
	}

	empty := MakeYearList(2013, 2010, true)
	if empty.Len() != 0 {
		t.Errorf("MakeYearList(2013, 2010) len = %d, want 0", empty.Len())
	}
}

func TestMakeYearListFunc(t *testing.T) {
	m, err := MakeYearListFunc(2010, 2011, true, 1, func(_, y int) (int, string) {
		return y, fmt.Sprintf("%d年", y)
	})
	if err != nil {
		t.Fatalf("MakeYearListFunc() error = %v", err)
	}
	if v, _ := m.Get(2011); v != "2011年" {
		t.Errorf("Get(2011) = %q, want %q", v, "2011年")
	}

	byIndex, err := MakeYearListFunc(2000, 2010, false, 5, func(i, y int) (int, int) {
		return i, y
	})
	if err != nil {
		t.Fatalf("MakeYearListFunc() error = %v", err)
	}
	if want := []int{2010, 2005, 2000}; !reflect.DeepEqual(byIndex.Values(), want) {
		t.Errorf("values = %v, want %v", byIndex.Values(), want)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(byIndex.Keys(), want) {
		t.Errorf("keys = %v, want %v", byIndex.Keys(), want)
	}
}

func TestMakeSequenceStep(t *testing.T) {
	tests := []struct {
		name      string
		begin     int
		end       int
		ascending bool
		step      int
		want      []int
	}{
		{"exact multiple", 2010, 2014, true, 2, []int{2010, 2012, 2014}},
		{"stops inside bounds", 2010, 2015, true, 2, []int{2010, 2012, 2014}},
		{"descending stops inside bounds", 2010, 2015, false, 2, []int{2015, 2013, 2011}},
		{"step larger than range", 1, 3, true, 10, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MakeSequence(tt.begin, tt.end, tt.ascending, tt.step, SameKeyValue)
			if err != nil {
				t.Fatalf("MakeSequence() error = %v", err)
			}
			if !reflect.DeepEqual(m.Keys(), tt.want) {
				t.Errorf("MakeSequence(%d, %d, %v, %d) = %v, want %v",
					tt.begin, tt.end, tt.ascending, tt.step, m.Keys(), tt.want)
			}
		})
	}
}

func TestMakeSequenceInvalidStep(t *testing.T) {
	for _, step := range []int{0, -1} {
		if _, err := MakeSequence(1, 10, true, step, SameKeyValue); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("MakeSequence(step=%d) error = %v, want ErrInvalidStep", step, err)
		}
	}
}

func TestMakeMonthList(t *testing.T) {
	asc := MakeMonthList(true)
	if asc.Len() != 12 {
		t.Fatalf("MakeMonthList(true) len = %d, want 12", asc.Len())
	}
	keys := asc.Keys()
	if keys[0] != "01" || keys[11] != "12" {
		t.Errorf("MakeMonthList(true) keys = %v, want 01..12", keys)
	}
	if v, _ := asc.Get("09"); v != "09" {
		t.Errorf("Get(09) = %q, want %q", v, "09")
	}

	desc := MakeMonthList(false)
	if desc.Keys()[0] != "12" {
		t.Errorf("MakeMonthList(false) first key = %q, want 12", desc.Keys()[0])
	}
}

func TestMakeMonthListFunc(t *testing.T) {
	quarters, err := MakeMonthListFunc(true, 1, 12, 3, nil)
	if err != nil {
		t.Fatalf("MakeMonthListFunc() error = %v", err)
	}
	if want := []string{"01", "04", "07", "10"}; !reflect.DeepEqual(quarters.Keys(), want) {
		t.Errorf("keys = %v, want %v", quarters.Keys(), want)
	}

	labeled, err := MakeMonthListFunc(false, 4, 6, 1, func(_, m int) (string, string) {
		return fmt.Sprintf("%02d", m), fmt.Sprintf("%d月", m)
	})
	if err != nil {
		t.Fatalf("MakeMonthListFunc() error = %v", err)
	}
	if want := []string{"6月", "5月", "4月"}; !reflect.DeepEqual(labeled.Values(), want) {
		t.Errorf("values = %v, want %v", labeled.Values(), want)
	}
}

func TestMakeYearMonthList(t *testing.T) {
	asc, err := MakeYearMonthList(201211, 201302, true)
	if err != nil {
		t.Fatalf("MakeYearMonthList() error = %v", err)
	}
	if want := []int{201211, 201212, 201301, 201302}; !reflect.DeepEqual(asc.Keys(), want) {
		t.Errorf("keys = %v, want %v", asc.Keys(), want)
	}
	if want := []string{"2012年11月", "2012年12月", "2013年01月", "2013年02月"}; !reflect.DeepEqual(asc.Values(), want) {
		t.Errorf("values = %v, want %v", asc.Values(), want)
	}

	desc, err := MakeYearMonthList(201211, 201302, false)
	if err != nil {
		t.Fatalf("MakeYearMonthList(desc) error = %v", err)
	}
	if want := []int{201302, 201301, 201212, 201211}; !reflect.DeepEqual(desc.Keys(), want) {
		t.Errorf("desc keys = %v, want %v", desc.Keys(), want)
	}

	year, err := MakeYearMonthList(201701, 201712, true)
	if err != nil {
		t.Fatalf("MakeYearMonthList() error = %v", err)
	}
	if year.Len() != 12 {
		t.Errorf("MakeYearMonthList(201701, 201712) len = %d, want 12", year.Len())
	}
}

func TestMakeYearMonthListFunc(t *testing.T) {
	m, err := MakeYearMonthListFunc(201612, 201701, true, func(ym int) (int, error) {
		return ym % 100, nil
	})
	if err != nil {
		t.Fatalf("MakeYearMonthListFunc() error = %v", err)
	}
	if want := []int{12, 1}; !reflect.DeepEqual(m.Values(), want) {
		t.Errorf("values = %v, want %v", m.Values(), want)
	}

	boom := errors.New("boom")
	_, err = MakeYearMonthListFunc(201612, 201701, true, func(int) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

func TestMakeYearMonthListInvalid(t *testing.T) {
	for _, bounds := range [][2]int{{201213, 201302}, {201211, 20130}, {201200, 201302}} {
		_, err := MakeYearMonthList(bounds[0], bounds[1], true)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("MakeYearMonthList(%d, %d) error = %v, want ErrInvalidFormat", bounds[0], bounds[1], err)
		}
	}
}

func TestYearMonthLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"201706", "2017年06月", false},
		{"201212", "2012年12月", false},
		{"201713", "", true},
		{"201700", "", true},
		{"20176", "", true},
		{"301701", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := YearMonthLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("YearMonthLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var fe *FormatError
				if !errors.As(err, &fe) || fe.Value != tt.input {
					t.Errorf("YearMonthLabel(%q) error = %v, want *FormatError for input", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("YearMonthLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
