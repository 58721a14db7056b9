package speakable

import (
	"testing"
	"time"
)

func TestNiceDate(t *testing.T) {
	r := testRegistry(t)

	at := time.Date(2017, time.January, 31, 13, 22, 3, 0, time.UTC)

	got, err := r.NiceDate(at)
	if err != nil {
		t.Fatalf("NiceDate: %v", err)
	}
	want := "tuesday, january thirty first, twenty seventeen"
	if got != want {
		t.Fatalf("NiceDate = %q, want %q", got, want)
	}
}

func TestNiceDateRelativeDays(t *testing.T) {
	r := testRegistry(t)

	now := time.Date(2017, time.January, 31, 13, 22, 3, 0, time.UTC)

	tests := []struct {
		at   time.Time
		want string
	}{
		{now, "today"},
		{now.AddDate(0, 0, 1), "tomorrow"},
		{now.AddDate(0, 0, -1), "yesterday"},
	}
	for _, tc := range tests {
		got, err := r.NiceDate(tc.at, WithNow(now))
		if err != nil {
			t.Fatalf("NiceDate(%v): %v", tc.at, err)
		}
		if got != tc.want {
			t.Fatalf("NiceDate(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestNiceDateOmitsMatchingYear(t *testing.T) {
	r := testRegistry(t)

	now := time.Date(2017, time.January, 31, 13, 22, 3, 0, time.UTC)
	at := time.Date(2017, time.June, 15, 9, 0, 0, 0, time.UTC)

	got, err := r.NiceDate(at, WithNow(now))
	if err != nil {
		t.Fatalf("NiceDate: %v", err)
	}
	if got != "thursday, june fifteenth" {
		t.Fatalf("NiceDate = %q, want %q", got, "thursday, june fifteenth")
	}

	// a different year comes back in
	later := time.Date(2018, time.June, 15, 9, 0, 0, 0, time.UTC)
	got, err = r.NiceDate(later, WithNow(now))
	if err != nil {
		t.Fatalf("NiceDate: %v", err)
	}
	if got != "friday, june fifteenth, twenty eighteen" {
		t.Fatalf("NiceDate = %q, want %q", got, "friday, june fifteenth, twenty eighteen")
	}
}

func TestNiceDateFullYearSweep(t *testing.T) {
	r := testRegistry(t)

	start := time.Date(2017, time.December, 30, 0, 2, 3, 0, time.UTC)
	for _, locale := range []string{"en-us", "es-es"} {
		for day := 0; day < 368; day++ {
			at := start.AddDate(0, 0, day)
			got, err := r.NiceDate(at, WithLocale(locale))
			if err != nil {
				t.Fatalf("NiceDate(%v, %s): %v", at, locale, err)
			}
			if got == "" {
				t.Fatalf("NiceDate(%v, %s) produced no output", at, locale)
			}
		}
	}
}

func TestNiceDateTime(t *testing.T) {
	r := testRegistry(t)

	at := time.Date(2017, time.January, 31, 13, 22, 3, 0, time.UTC)

	got, err := r.NiceDateTime(at)
	if err != nil {
		t.Fatalf("NiceDateTime: %v", err)
	}
	want := "tuesday, january thirty first, twenty seventeen at one twenty two"
	if got != want {
		t.Fatalf("NiceDateTime = %q, want %q", got, want)
	}
}

func TestNiceYear(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		year int
		bc   bool
		want string
	}{
		{1984, false, "nineteen eighty four"},
		{1456, false, "fourteen fifty six"},
		{1907, false, "nineteen oh seven"},
		{1500, false, "fifteen hundred"},
		{1100, false, "eleven hundred"},
		{2000, false, "two thousand"},
		{2009, false, "two thousand nine"},
		{2018, false, "twenty eighteen"},
		{1000, false, "one thousand"},
		{500, false, "five hundred"},
		{480, true, "four hundred and eighty b.c."},
	}
	for _, tc := range tests {
		at := time.Date(tc.year, time.January, 31, 13, 2, 3, 0, time.UTC)
		var options []Option
		if tc.bc {
			options = append(options, AsBC())
		}
		got, err := r.NiceYear(at, options...)
		if err != nil {
			t.Fatalf("NiceYear(%d): %v", tc.year, err)
		}
		if got != tc.want {
			t.Fatalf("NiceYear(%d) = %q, want %q", tc.year, got, tc.want)
		}
	}
}

func TestNiceYearSweep(t *testing.T) {
	r := testRegistry(t)

	for _, locale := range []string{"en-us", "es-es"} {
		for year := 1; year < 9999; year++ {
			at := time.Date(year, time.January, 31, 13, 2, 3, 0, time.UTC)
			got, err := r.NiceYear(at, WithLocale(locale))
			if err != nil {
				t.Fatalf("NiceYear(%d, %s): %v", year, locale, err)
			}
			if got == "" {
				t.Fatalf("NiceYear(%d, %s) produced no output", year, locale)
			}
		}
	}
}
