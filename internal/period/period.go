package period

import (
	"math"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

// Mode selects the calendaring rule used to derive reporting windows.
type Mode int

const (
	// CalendarMonth runs from the 1st at 00:00:00 to the last day of the
	// month at 23:59:59 UTC.
	CalendarMonth Mode = iota

	// AnchoredRolling tiles the timeline with fixed-length half-open
	// windows counted from a fixed anchor instant.
	AnchoredRolling

	// EighthToSeventh runs from the 8th at 00:00:01 to the 7th of the next
	// month at 23:59:59 UTC, with a 1-second gap between periods.
	EighthToSeventh
)

// Spec is the fixed configuration of one period scheme. All bound
// computations are pure functions of the Spec and now, total over any now.
type Spec struct {
	Mode       Mode
	PeriodDays int       // AnchoredRolling only
	Anchor     time.Time // AnchoredRolling only
}

// Bounds returns the current and previous reporting windows for now
// under this spec's calendaring rule.
func (s Spec) Bounds(now time.Time) models.PeriodPair {
	switch s.Mode {
	case AnchoredRolling:
		return s.anchoredRollingBounds(now)
	case EighthToSeventh:
		return eighthToSeventhBounds(now)
	default:
		return calendarMonthBounds(now)
	}
}

// calendarMonthBounds computes the current and previous calendar-month
// windows. The previous window is derived from now's own month arithmetic
// rather than from the current window, matching the upstream contract.
func calendarMonthBounds(now time.Time) models.PeriodPair {
	year, month, _ := now.UTC().Date()
	prevYear, prevMon := prevMonth(year, month)

	return models.PeriodPair{
		Current:  monthWindow(year, month),
		Previous: monthWindow(prevYear, prevMon),
	}
}

// monthWindow returns [1st 00:00:00, last day 23:59:59] of the given month.
// The end is inclusive to the last second, not the next month's midnight.
func monthWindow(year int, month time.Month) models.TimeWindow {
	nextYear, nextMon := nextMonth(year, month)
	return models.TimeWindow{
		Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(nextYear, nextMon, 1, 0, 0, 0, 0, time.UTC).Add(-time.Second),
	}
}

// anchoredRollingBounds computes half-open [start, end) windows of
// PeriodDays length counted from Anchor. Windows tile the timeline with no
// gaps from the anchor onward.
func (s Spec) anchoredRollingBounds(now time.Time) models.PeriodPair {
	length := time.Duration(s.PeriodDays) * 24 * time.Hour

	currentStart := s.Anchor
	if !now.Before(s.Anchor) {
		// Integer floor division: full periods elapsed since the anchor.
		periodsPassed := now.Sub(s.Anchor) / length
		currentStart = s.Anchor.Add(periodsPassed * length)
	}

	return models.PeriodPair{
		Current: models.TimeWindow{
			Start: currentStart,
			End:   currentStart.Add(length),
		},
		Previous: models.TimeWindow{
			Start: currentStart.Add(-length),
			End:   currentStart,
		},
	}
}

// eighthToSeventhBounds computes windows running from the 8th at 00:00:01
// to the following 7th at 23:59:59 UTC. previous.End is current.Start minus
// one second, which leaves a deliberate 1-second gap between periods
// (unlike AnchoredRolling's zero-gap tiling).
func eighthToSeventhBounds(now time.Time) models.PeriodPair {
	year, month, day := now.UTC().Date()

	var current models.TimeWindow
	if day < 8 {
		startYear, startMon := prevMonth(year, month)
		current = models.TimeWindow{
			Start: time.Date(startYear, startMon, 8, 0, 0, 1, 0, time.UTC),
			End:   time.Date(year, month, 7, 23, 59, 59, 0, time.UTC),
		}
	} else {
		endYear, endMon := nextMonth(year, month)
		current = models.TimeWindow{
			Start: time.Date(year, month, 8, 0, 0, 1, 0, time.UTC),
			End:   time.Date(endYear, endMon, 7, 23, 59, 59, 0, time.UTC),
		}
	}

	prevEnd := current.Start.Add(-time.Second)
	prevYear, prevMon := prevMonth(prevEnd.Year(), prevEnd.Month())

	return models.PeriodPair{
		Current: current,
		Previous: models.TimeWindow{
			Start: time.Date(prevYear, prevMon, 8, 0, 0, 1, 0, time.UTC),
			End:   prevEnd,
		},
	}
}

// prevMonth returns the month before the given one, wrapping the year at
// January.
func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// nextMonth returns the month after the given one, wrapping the year at
// December.
func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PercentageLeft reports how much of the window remains at now, as a
// percentage clamped to [0, 100] and rounded to 2 decimal places. It is 0
// once now reaches the window end and 100 until now reaches the start.
func PercentageLeft(w models.TimeWindow, now time.Time) float64 {
	total := w.End.Sub(w.Start)
	if total <= 0 {
		return 0
	}

	pct := float64(w.End.Sub(now)) / float64(total) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*100) / 100
}
