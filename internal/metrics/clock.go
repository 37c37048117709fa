// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-02

// Package metrics computes per-PR age, staleness and review state from
// raw timestamps.
package metrics

import "time"

// BusinessDaysBetween counts the weekdays in the inclusive calendar-day
// range spanned by the two instants, after truncating both to UTC
// midnight. Argument order does not matter. The same weekday instant on
// both sides counts as 1.
//
// Staleness is reported in business days rather than raw elapsed time so
// a PR does not look more urgent just because a weekend passed.
func BusinessDaysBetween(start, end time.Time) int {
	s := midnightUTC(start)
	e := midnightUTC(end)
	if e.Before(s) {
		s, e = e, s
	}

	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// midnightUTC truncates an instant to midnight in the reference time zone.
func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
