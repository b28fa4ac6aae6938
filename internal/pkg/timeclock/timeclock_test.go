package timeclock

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"09:00 am", 9 * 60, true},
		{"9:00 AM", 9 * 60, true},
		{"09:00am", 9 * 60, true},
		{"05:30 pm", 17*60 + 30, true},
		{"12:00 am", 0, true},  // midnight
		{"12:00 pm", 12 * 60, true}, // noon
		{"12:30 am", 30, true},
		{"23:15", 23*60 + 15, true}, // already 24-hour
		{"9", 9 * 60, true},         // no minutes
		{"9pm", 21 * 60, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"25:00", 0, false},
		{"10:75", 0, false},
		{"13:00 pm", 0, false}, // 13+12 overflows the day
		{"-5:00", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseClock(c.input)
		if ok != c.ok {
			t.Errorf("ParseClock(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got != c.minutes {
			t.Errorf("ParseClock(%q) = %d, want %d", c.input, got, c.minutes)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		clockIn  string
		clockOut string
		total    string
		ok       bool
	}{
		{"09:00 am", "05:30 pm", "8.50", true},
		{"09:00 am", "05:00 pm", "8.00", true},
		{"10:00 pm", "06:00 am", "8.00", true}, // overnight wraparound
		{"11:45 pm", "12:15 am", "0.50", true},
		{"09:00", "17:30", "8.50", true},
		{"9", "17", "8.00", true},
		{"09:00 am", "09:00 am", "0.00", true},
		{"", "05:00 pm", "", false},
		{"09:00 am", "", "", false},
		{"garbage", "05:00 pm", "", false},
		{"09:00 am", "garbage", "", false},
	}
	for _, c := range cases {
		got, ok := HoursBetween(c.clockIn, c.clockOut)
		if ok != c.ok {
			t.Errorf("HoursBetween(%q, %q) ok = %v, want %v", c.clockIn, c.clockOut, ok, c.ok)
			continue
		}
		if got != c.total {
			t.Errorf("HoursBetween(%q, %q) = %q, want %q", c.clockIn, c.clockOut, got, c.total)
		}
	}
}

func TestSumTotals(t *testing.T) {
	cases := []struct {
		totals []string
		want   float64
	}{
		{[]string{"8.50", "8.00"}, 16.5},
		{[]string{"8.50", "", "not-a-number", "0.25"}, 8.75},
		{nil, 0},
	}
	for _, c := range cases {
		if got := SumTotals(c.totals); got != c.want {
			t.Errorf("SumTotals(%v) = %v, want %v", c.totals, got, c.want)
		}
	}
}
