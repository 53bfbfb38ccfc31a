// Package calendar derives the Sunday-first month grid shown by the
// dashboard and attaches per-day earnings to each cell. Like the earnings
// package it is stateless and pure; the caller owns the displayed month and
// the selected date and re-invokes after every data change.
package calendar

import (
	"fmt"
	"time"

	"barbertrack-backend/earnings"
	"barbertrack-backend/models"
)

// YearMonth identifies one displayed month.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Previous decrements the month, rolling the year back across January.
func (ym YearMonth) Previous() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Next increments the month, rolling the year forward across December.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// first returns local midnight of day 1 of the month.
func (ym YearMonth) first(loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
}

// Days returns the number of days in the month, leap Februaries included.
func (ym YearMonth) Days(loc *time.Location) int {
	return ym.first(loc).AddDate(0, 1, -1).Day()
}

// LeadingBlanks returns the weekday index (0=Sunday..6=Saturday) of day 1,
// which is the number of padding cells before the first dated cell.
func (ym YearMonth) LeadingBlanks(loc *time.Location) int {
	return int(ym.first(loc).Weekday())
}

// Cell is one grid position in the month view. Blank padding cells carry a
// zero Date and no earnings.
type Cell struct {
	Blank bool      `json:"blank"`
	Date  time.Time `json:"date,omitempty"`
	Total int64     `json:"total"`
	Count int       `json:"count"`
}

// MonthGrid produces the cell sequence for one month: LeadingBlanks padding
// cells followed by one cell per day, each annotated with that date's
// earnings computed over records.
func MonthGrid(ym YearMonth, records []models.ServiceRecord, loc *time.Location) []Cell {
	blanks := ym.LeadingBlanks(loc)
	days := ym.Days(loc)

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		date := time.Date(ym.Year, ym.Month, d, 0, 0, 0, 0, loc)
		s := earnings.SumAndCount(earnings.FilterByDay(records, date, loc))
		cells = append(cells, Cell{Date: date, Total: s.Total, Count: s.Count})
	}
	return cells
}

// SelectDate returns the records for one calendar date for the detail pane.
// Input order is preserved, so a timestamp-descending source list stays
// timestamp-descending.
func SelectDate(records []models.ServiceRecord, date time.Time, loc *time.Location) []models.ServiceRecord {
	return earnings.FilterByDay(records, date, loc)
}
