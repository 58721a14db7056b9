package speakable

import (
	"testing"
	"time"
)

func clockTime(hour, minute, second int) time.Time {
	return time.Date(2017, time.January, 31, hour, minute, second, 0, time.UTC)
}

func TestNiceTimeSpoken12Hour(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		at      time.Time
		options []Option
		want    string
	}{
		{clockTime(13, 22, 3), nil, "one twenty two"},
		{clockTime(13, 22, 3), []Option{WithAmPm()}, "one twenty two p.m."},
		{clockTime(13, 0, 3), nil, "one o'clock"},
		{clockTime(13, 0, 3), []Option{WithAmPm()}, "one p.m."},
		{clockTime(13, 2, 3), nil, "one oh two"},
		{clockTime(13, 2, 3), []Option{WithAmPm()}, "one oh two p.m."},
		{clockTime(0, 2, 3), nil, "twelve oh two"},
		{clockTime(0, 2, 3), []Option{WithAmPm()}, "twelve oh two a.m."},
		{clockTime(1, 2, 33), nil, "one oh two"},
		{clockTime(1, 2, 33), []Option{WithAmPm()}, "one oh two a.m."},
		{clockTime(12, 15, 9), nil, "quarter past twelve"},
		{clockTime(12, 15, 9), []Option{WithAmPm()}, "quarter past twelve p.m."},
		{clockTime(5, 30, 0), []Option{WithAmPm()}, "half past five a.m."},
		{clockTime(1, 45, 0), nil, "quarter to two"},
		{clockTime(0, 0, 0), nil, "midnight"},
		{clockTime(12, 0, 0), nil, "noon"},
	}
	for _, tc := range tests {
		got, err := r.NiceTime(tc.at, tc.options...)
		if err != nil {
			t.Fatalf("NiceTime(%v): %v", tc.at, err)
		}
		if got != tc.want {
			t.Fatalf("NiceTime(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestNiceTimeSpoken24Hour(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		at   time.Time
		want string
	}{
		{clockTime(13, 22, 3), "thirteen twenty two"},
		{clockTime(13, 0, 3), "thirteen hundred"},
		{clockTime(13, 2, 3), "thirteen zero two"},
		{clockTime(0, 2, 3), "zero zero zero two"},
		{clockTime(1, 2, 33), "zero one zero two"},
	}
	for _, tc := range tests {
		// the am/pm switch has no effect on the 24-hour clock
		for _, options := range [][]Option{
			{With24Hour()},
			{With24Hour(), WithAmPm()},
		} {
			got, err := r.NiceTime(tc.at, options...)
			if err != nil {
				t.Fatalf("NiceTime(%v): %v", tc.at, err)
			}
			if got != tc.want {
				t.Fatalf("NiceTime(%v, 24h) = %q, want %q", tc.at, got, tc.want)
			}
		}
	}
}

func TestNiceTimeDigital(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		at      time.Time
		options []Option
		want    string
	}{
		{clockTime(13, 22, 3), []Option{Digital()}, "1:22"},
		{clockTime(13, 22, 3), []Option{Digital(), WithAmPm()}, "1:22 PM"},
		{clockTime(13, 22, 3), []Option{Digital(), With24Hour()}, "13:22"},
		{clockTime(13, 22, 3), []Option{Digital(), With24Hour(), WithAmPm()}, "13:22"},
		{clockTime(13, 0, 3), []Option{Digital()}, "1:00"},
		{clockTime(13, 0, 3), []Option{Digital(), WithAmPm()}, "1:00 PM"},
		{clockTime(13, 2, 3), []Option{Digital()}, "1:02"},
		{clockTime(13, 2, 3), []Option{Digital(), With24Hour()}, "13:02"},
		{clockTime(0, 2, 3), []Option{Digital()}, "12:02"},
		{clockTime(0, 2, 3), []Option{Digital(), WithAmPm()}, "12:02 AM"},
		{clockTime(0, 2, 3), []Option{Digital(), With24Hour()}, "00:02"},
		{clockTime(1, 2, 33), []Option{Digital(), With24Hour()}, "01:02"},
	}
	for _, tc := range tests {
		got, err := r.NiceTime(tc.at, tc.options...)
		if err != nil {
			t.Fatalf("NiceTime(%v): %v", tc.at, err)
		}
		if got != tc.want {
			t.Fatalf("NiceTime(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}
