package calendar

import (
	"time"

	"github.com/borgmon/event-tracker/pkg/models"
)

// WeekStart returns midnight of the first day of the week containing date
func WeekStart(date time.Time, first time.Weekday) time.Time {
	d := models.DateOf(date)
	offset := (int(d.Weekday()) - int(first) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekDays returns the seven consecutive dates starting at start
func WeekDays(start time.Time) []time.Time {
	start = models.DateOf(start)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekEnd returns midnight of the last day of the week starting at start
func WeekEnd(start time.Time) time.Time {
	return models.DateOf(start).AddDate(0, 0, 6)
}

// MonthGrid lays out a month as rows of seven cells starting on first.
// Cells outside the month are the zero time.
func MonthGrid(year int, month time.Month, first time.Weekday, loc *time.Location) [][]time.Time {
	if loc == nil {
		loc = time.Local
	}
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lead := (int(day.Weekday()) - int(first) + 7) % 7

	rows := [][]time.Time{}
	row := make([]time.Time, 7)
	col := lead
	for day.Month() == month {
		row[col] = day
		col++
		if col == 7 {
			rows = append(rows, row)
			row = make([]time.Time, 7)
			col = 0
		}
		day = day.AddDate(0, 0, 1)
	}
	if col > 0 {
		rows = append(rows, row)
	}
	return rows
}

// WeekdayHeaders returns short weekday names in display order
func WeekdayHeaders(first time.Weekday) []string {
	headers := make([]string, 7)
	for i := range headers {
		headers[i] = time.Weekday((int(first) + i) % 7).String()[:3]
	}
	return headers
}
