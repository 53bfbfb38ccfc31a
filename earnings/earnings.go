// Package earnings computes rolling earnings windows and per-day totals over
// an in-memory list of service records. Everything here is pure: the caller
// supplies the record snapshot and the evaluation instant, nothing touches
// the database or the wall clock.
package earnings

import (
	"time"

	"barbertrack-backend/models"
	"barbertrack-backend/utils"
)

// Summary is the earnings total and service count for one window.
type Summary struct {
	Total int64 `json:"total"`
	Count int   `json:"count"`
}

// SumAndCount totals the given records as-is. Callers pre-filter; no
// validation or clamping happens here, so negative prices (which the write
// path rejects) would still sum arithmetically.
func SumAndCount(records []models.ServiceRecord) Summary {
	var s Summary
	for _, r := range records {
		s.Total += r.Price
		s.Count++
	}
	return s
}

// SameDay reports whether two instants fall on the same calendar date in the
// given location. Date components only; never compare formatted strings.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// FilterByDay selects every record whose timestamp falls on the same
// calendar date as day, in loc. Input order is preserved.
func FilterByDay(records []models.ServiceRecord, day time.Time, loc *time.Location) []models.ServiceRecord {
	var out []models.ServiceRecord
	for _, r := range records {
		if SameDay(r.Timestamp, day, loc) {
			out = append(out, r)
		}
	}
	return out
}

// FilterFromInstant selects every record with timestamp >= start. The lower
// bound is inclusive: a record stamped exactly at a window start belongs to
// the window.
func FilterFromInstant(records []models.ServiceRecord, start time.Time) []models.ServiceRecord {
	var out []models.ServiceRecord
	for _, r := range records {
		if !r.Timestamp.Before(start) {
			out = append(out, r)
		}
	}
	return out
}

// TodayWindow returns local midnight of now's calendar day.
func TodayWindow(now time.Time, loc *time.Location) time.Time {
	return utils.BeginningOfDay(now.In(loc))
}

// WeekWindow returns local midnight of the most recent Sunday. The week
// starts on Sunday to match the Sunday-first calendar; when now is a Sunday
// the window starts today.
func WeekWindow(now time.Time, loc *time.Location) time.Time {
	day := utils.BeginningOfDay(now.In(loc))
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthWindow returns local midnight of day 1 of now's month.
func MonthWindow(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// YearWindow returns local midnight of January 1 of now's year.
func YearWindow(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
}

// WindowSummaries holds the four rolling windows evaluated at one instant.
// The windows overlap on purpose: each answers "how much since X", so today
// is contained in the week, the week in the month, and so on. They are not a
// partition and must not be made to sum to a grand total.
type WindowSummaries struct {
	Today Summary `json:"today"`
	Week  Summary `json:"week"`
	Month Summary `json:"month"`
	Year  Summary `json:"year"`
}

// Windows evaluates all four rolling windows over records at instant now.
func Windows(records []models.ServiceRecord, now time.Time, loc *time.Location) WindowSummaries {
	return WindowSummaries{
		Today: SumAndCount(FilterFromInstant(records, TodayWindow(now, loc))),
		Week:  SumAndCount(FilterFromInstant(records, WeekWindow(now, loc))),
		Month: SumAndCount(FilterFromInstant(records, MonthWindow(now, loc))),
		Year:  SumAndCount(FilterFromInstant(records, YearWindow(now, loc))),
	}
}

// ForDate returns the earnings total for one calendar date.
func ForDate(records []models.ServiceRecord, date time.Time, loc *time.Location) int64 {
	return SumAndCount(FilterByDay(records, date, loc)).Total
}
