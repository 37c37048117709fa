// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-02

package metrics

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDaysBetween(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := date(2026, time.March, 2)
	friday := date(2026, time.March, 6)
	saturday := date(2026, time.March, 7)
	sunday := date(2026, time.March, 8)
	nextMonday := date(2026, time.March, 9)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same weekday is inclusive", monday, monday, 1},
		{"monday to friday", monday, friday, 5},
		{"friday to monday skips the weekend", friday, nextMonday, 2},
		{"saturday to sunday", saturday, sunday, 0},
		{"weekend start", saturday, nextMonday, 1},
		{"full week", monday, nextMonday, 6},
		{"reversed arguments", nextMonday, friday, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BusinessDaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("Expected %d business days, got %d", tt.want, got)
			}
		})
	}
}

func TestBusinessDaysBetween_TruncatesToMidnight(t *testing.T) {
	// Late Friday evening to early Monday morning is still Fri+Mon = 2.
	friday := time.Date(2026, time.March, 6, 23, 30, 0, 0, time.UTC)
	monday := time.Date(2026, time.March, 9, 0, 15, 0, 0, time.UTC)

	if got := BusinessDaysBetween(friday, monday); got != 2 {
		t.Errorf("Expected 2 business days, got %d", got)
	}
}

func TestBusinessDaysBetween_NonUTCInput(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	a := time.Date(2026, time.March, 2, 4, 0, 0, 0, loc)  // Sunday 23:00 UTC
	b := time.Date(2026, time.March, 2, 23, 0, 0, 0, loc) // Monday 18:00 UTC

	// a falls on Sunday in UTC, b on Monday: Sunday contributes nothing.
	if got := BusinessDaysBetween(a, b); got != 1 {
		t.Errorf("Expected 1 business day, got %d", got)
	}
}
