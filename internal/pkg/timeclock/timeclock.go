package timeclock

import (
	"strconv"
	"strings"
)

// Package timeclock is the single implementation of clock-time parsing
// and elapsed-hours arithmetic. Every caller (submission API, previews,
// reports) must compute totals through it so values never drift.

// ParseClock parses a human-entered clock time in the form "H[:MM][ am|pm]"
// (case-insensitive, optional space before the meridiem, optional minutes)
// and returns minutes since midnight. Hour 12 with "am" maps to 0; "pm"
// adds 12 unless the hour is already 12. Times without a meridiem marker
// are taken as 24-hour values.
func ParseClock(s string) (int, bool) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return 0, false
	}

	var meridiem string
	switch {
	case strings.Contains(s, "am"):
		meridiem = "am"
	case strings.Contains(s, "pm"):
		meridiem = "pm"
	}
	if meridiem != "" {
		s = strings.ReplaceAll(s, meridiem, "")
	}

	hourPart := s
	minutePart := ""
	if i := strings.IndexByte(s, ':'); i >= 0 {
		hourPart = s[:i]
		minutePart = s[i+1:]
	}

	hours, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, false
	}

	minutes := 0
	if minutePart != "" {
		minutes, err = strconv.Atoi(minutePart)
		if err != nil {
			return 0, false
		}
	}

	if meridiem == "pm" && hours != 12 {
		hours += 12
	}
	if meridiem == "am" && hours == 12 {
		hours = 0
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}

// HoursBetween computes the elapsed working hours between two clock
// strings, formatted to two decimal places (e.g. "8.50"). Spans that come
// out negative are treated as overnight and wrapped by 24 hours. When
// either input is missing or unparsable there is no computed duration and
// ok is false; callers treat that as zero, never as a failure.
func HoursBetween(clockIn, clockOut string) (total string, ok bool) {
	in, ok := ParseClock(clockIn)
	if !ok {
		return "", false
	}
	out, ok := ParseClock(clockOut)
	if !ok {
		return "", false
	}

	diff := out - in
	if diff < 0 {
		diff += 24 * 60
	}

	return strconv.FormatFloat(float64(diff)/60.0, 'f', 2, 64), true
}

// SumTotals adds up per-day total strings produced by HoursBetween.
// Entries without a computed duration contribute nothing.
func SumTotals(totals []string) float64 {
	var sum float64
	for _, t := range totals {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			continue
		}
		sum += v
	}
	return sum
}
