package period

import (
	"testing"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

var testAnchor = time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC)

func utc(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func TestCalendarMonthBounds(t *testing.T) {
	spec := Spec{Mode: CalendarMonth}

	tests := []struct {
		name      string
		now       time.Time
		curStart  time.Time
		curEnd    time.Time
		prevStart time.Time
		prevEnd   time.Time
	}{
		{
			name:      "mid march",
			now:       utc(2025, time.March, 15, 12, 0, 0),
			curStart:  utc(2025, time.March, 1, 0, 0, 0),
			curEnd:    utc(2025, time.March, 31, 23, 59, 59),
			prevStart: utc(2025, time.February, 1, 0, 0, 0),
			prevEnd:   utc(2025, time.February, 28, 23, 59, 59),
		},
		{
			name:      "january rolls back to december",
			now:       utc(2025, time.January, 10, 0, 0, 0),
			curStart:  utc(2025, time.January, 1, 0, 0, 0),
			curEnd:    utc(2025, time.January, 31, 23, 59, 59),
			prevStart: utc(2024, time.December, 1, 0, 0, 0),
			prevEnd:   utc(2024, time.December, 31, 23, 59, 59),
		},
		{
			name:      "december current with november previous",
			now:       utc(2025, time.December, 31, 23, 59, 59),
			curStart:  utc(2025, time.December, 1, 0, 0, 0),
			curEnd:    utc(2025, time.December, 31, 23, 59, 59),
			prevStart: utc(2025, time.November, 1, 0, 0, 0),
			prevEnd:   utc(2025, time.November, 30, 23, 59, 59),
		},
		{
			name:      "leap february end",
			now:       utc(2024, time.February, 5, 8, 30, 0),
			curStart:  utc(2024, time.February, 1, 0, 0, 0),
			curEnd:    utc(2024, time.February, 29, 23, 59, 59),
			prevStart: utc(2024, time.January, 1, 0, 0, 0),
			prevEnd:   utc(2024, time.January, 31, 23, 59, 59),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := spec.Bounds(tt.now)
			assertWindow(t, "current", pair.Current, tt.curStart, tt.curEnd)
			assertWindow(t, "previous", pair.Previous, tt.prevStart, tt.prevEnd)
		})
	}
}

func TestCalendarMonthProperties(t *testing.T) {
	spec := Spec{Mode: CalendarMonth}

	// Walk two years of month boundaries and midpoints.
	now := utc(2024, time.January, 15, 6, 0, 0)
	for i := 0; i < 24; i++ {
		pair := spec.Bounds(now)

		if pair.Current.Start.Day() != 1 {
			t.Errorf("now=%v: current start day = %d, want 1", now, pair.Current.Start.Day())
		}
		if pair.Current.End.Sub(pair.Current.Start) < 27*24*time.Hour {
			t.Errorf("now=%v: current window shorter than 27 days", now)
		}
		if !pair.Previous.End.Before(pair.Current.Start) {
			t.Errorf("now=%v: previous end %v not before current start %v", now, pair.Previous.End, pair.Current.Start)
		}

		now = now.AddDate(0, 1, 0)
	}
}

func TestAnchoredRollingBounds(t *testing.T) {
	spec := Spec{Mode: AnchoredRolling, PeriodDays: 7, Anchor: testAnchor}

	tests := []struct {
		name     string
		now      time.Time
		curStart time.Time
	}{
		{"at anchor", testAnchor, testAnchor},
		{"one second in", testAnchor.Add(time.Second), testAnchor},
		{"ten days in starts second period", testAnchor.Add(10 * 24 * time.Hour), testAnchor.Add(7 * 24 * time.Hour)},
		{"exactly one period in", testAnchor.Add(7 * 24 * time.Hour), testAnchor.Add(7 * 24 * time.Hour)},
		{"far future", testAnchor.Add(100 * 24 * time.Hour), testAnchor.Add(98 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := spec.Bounds(tt.now)
			periodLen := 7 * 24 * time.Hour

			if !pair.Current.Start.Equal(tt.curStart) {
				t.Errorf("current start = %v, want %v", pair.Current.Start, tt.curStart)
			}
			if !pair.Current.End.Equal(tt.curStart.Add(periodLen)) {
				t.Errorf("current end = %v, want %v", pair.Current.End, tt.curStart.Add(periodLen))
			}

			// Windows tile: previous ends exactly where current starts.
			if !pair.Previous.End.Equal(pair.Current.Start) {
				t.Errorf("previous end = %v, want %v", pair.Previous.End, pair.Current.Start)
			}
			if !pair.Previous.Start.Equal(pair.Current.Start.Add(-periodLen)) {
				t.Errorf("previous start = %v, want %v", pair.Previous.Start, pair.Current.Start.Add(-periodLen))
			}

			// Start offset from the anchor is a whole number of periods.
			if pair.Current.Start.Sub(testAnchor)%periodLen != 0 {
				t.Errorf("current start %v not aligned to anchor", pair.Current.Start)
			}
		})
	}
}

func TestAnchoredRollingBeforeAnchor(t *testing.T) {
	spec := Spec{Mode: AnchoredRolling, PeriodDays: 7, Anchor: testAnchor}

	pair := spec.Bounds(testAnchor.Add(-48 * time.Hour))

	if !pair.Current.Start.Equal(testAnchor) {
		t.Errorf("current start = %v, want anchor %v", pair.Current.Start, testAnchor)
	}
	if !pair.Current.End.Equal(testAnchor.Add(7 * 24 * time.Hour)) {
		t.Errorf("current end = %v, want anchor+7d", pair.Current.End)
	}
	if !pair.Previous.End.Equal(testAnchor) {
		t.Errorf("previous end = %v, want anchor", pair.Previous.End)
	}
}

func TestEighthToSeventhBounds(t *testing.T) {
	spec := Spec{Mode: EighthToSeventh}

	tests := []struct {
		name      string
		now       time.Time
		curStart  time.Time
		curEnd    time.Time
		prevStart time.Time
		prevEnd   time.Time
	}{
		{
			name:      "day 7 belongs to the window that started last month",
			now:       utc(2025, time.November, 7, 12, 0, 0),
			curStart:  utc(2025, time.October, 8, 0, 0, 1),
			curEnd:    utc(2025, time.November, 7, 23, 59, 59),
			prevStart: utc(2025, time.September, 8, 0, 0, 1),
			prevEnd:   utc(2025, time.October, 8, 0, 0, 0),
		},
		{
			name:      "day 8 midnight opens a new window",
			now:       utc(2025, time.November, 8, 0, 0, 0),
			curStart:  utc(2025, time.November, 8, 0, 0, 1),
			curEnd:    utc(2025, time.December, 7, 23, 59, 59),
			prevStart: utc(2025, time.October, 8, 0, 0, 1),
			prevEnd:   utc(2025, time.November, 8, 0, 0, 0),
		},
		{
			name:      "early january reaches back into december",
			now:       utc(2026, time.January, 3, 9, 0, 0),
			curStart:  utc(2025, time.December, 8, 0, 0, 1),
			curEnd:    utc(2026, time.January, 7, 23, 59, 59),
			prevStart: utc(2025, time.November, 8, 0, 0, 1),
			prevEnd:   utc(2025, time.December, 8, 0, 0, 0),
		},
		{
			name:      "mid december crosses into january",
			now:       utc(2025, time.December, 20, 0, 0, 0),
			curStart:  utc(2025, time.December, 8, 0, 0, 1),
			curEnd:    utc(2026, time.January, 7, 23, 59, 59),
			prevStart: utc(2025, time.November, 8, 0, 0, 1),
			prevEnd:   utc(2025, time.December, 8, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := spec.Bounds(tt.now)
			assertWindow(t, "current", pair.Current, tt.curStart, tt.curEnd)
			assertWindow(t, "previous", pair.Previous, tt.prevStart, tt.prevEnd)

			// The 1-second gap between periods is part of the contract.
			if !pair.Previous.End.Equal(pair.Current.Start.Add(-time.Second)) {
				t.Errorf("previous end = %v, want current start - 1s", pair.Previous.End)
			}
		})
	}
}

func TestPercentageLeft(t *testing.T) {
	start := utc(2025, time.June, 1, 0, 0, 0)
	window := models.TimeWindow{Start: start, End: start.Add(100 * time.Second)}

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"at start", start, 100},
		{"before start clamps", start.Add(-time.Hour), 100},
		{"midpoint", start.Add(50 * time.Second), 50},
		{"at end", start.Add(100 * time.Second), 0},
		{"after end clamps", start.Add(time.Hour), 0},
		{"quarter elapsed", start.Add(25 * time.Second), 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageLeft(window, tt.now)
			if got != tt.want {
				t.Errorf("PercentageLeft = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentageLeftRounding(t *testing.T) {
	start := utc(2025, time.June, 1, 0, 0, 0)
	window := models.TimeWindow{Start: start, End: start.Add(3 * time.Second)}

	got := PercentageLeft(window, start.Add(time.Second))
	if got != 66.67 {
		t.Errorf("PercentageLeft = %v, want 66.67", got)
	}
}

func TestPercentageLeftMonotonic(t *testing.T) {
	start := utc(2025, time.June, 1, 0, 0, 0)
	window := models.TimeWindow{Start: start, End: start.Add(24 * time.Hour)}

	prev := 100.0
	for now := start.Add(-time.Hour); now.Before(window.End.Add(time.Hour)); now = now.Add(13 * time.Minute) {
		got := PercentageLeft(window, now)
		if got > prev {
			t.Fatalf("percentage increased from %v to %v at %v", prev, got, now)
		}
		prev = got
	}
}

func assertWindow(t *testing.T, label string, got models.TimeWindow, wantStart, wantEnd time.Time) {
	t.Helper()
	if !got.Start.Equal(wantStart) {
		t.Errorf("%s start = %v, want %v", label, got.Start, wantStart)
	}
	if !got.End.Equal(wantEnd) {
		t.Errorf("%s end = %v, want %v", label, got.End, wantEnd)
	}
}
