package filter

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day or zone. The zero Date means
// unset.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date part of t as read in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date as YYYY-MM-DD, or "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Cursor is the month a calendar displays.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorOf returns the month containing t.
func CursorOf(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// first returns midnight UTC of day 1; months out of 1..12 normalize.
func (c Cursor) first() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Add returns the cursor moved by months.
func (c Cursor) Add(months int) Cursor {
	return CursorOf(c.first().AddDate(0, months, 0))
}

// DaysIn returns the number of days in the month.
func (c Cursor) DaysIn() int {
	return c.first().AddDate(0, 1, -1).Day()
}

// FirstWeekday returns the weekday of day 1.
func (c Cursor) FirstWeekday() time.Weekday {
	return c.first().Weekday()
}

func (c Cursor) String() string {
	t := c.first()
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// Grid is the cell layout of one month. Weeks start on Sunday.
type Grid struct {
	Cursor   Cursor
	Leading  int // blanks before day 1
	Days     int
	Trailing int // blanks after the last day to finish its week
}

// GridFor lays out the month of c.
func GridFor(c Cursor) Grid {
	c = c.Add(0)
	lead := int(c.FirstWeekday())
	days := c.DaysIn()
	trail := (7 - (lead+days)%7) % 7
	return Grid{Cursor: c, Leading: lead, Days: days, Trailing: trail}
}

// CellCount returns the total number of cells, blanks included.
func (g Grid) CellCount() int { return g.Leading + g.Days + g.Trailing }

// Rows returns the number of week rows covering the month.
func (g Grid) Rows() int { return g.CellCount() / 7 }

// Cells returns the day number of every cell, 0 for blanks.
func (g Grid) Cells() []int {
	cells := make([]int, g.CellCount())
	for d := 1; d <= g.Days; d++ {
		cells[g.Leading+d-1] = d
	}
	return cells
}

// Weeks returns Cells split into rows of seven.
func (g Grid) Weeks() [][]int {
	cells := g.Cells()
	weeks := make([][]int, 0, g.Rows())
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// Cell returns the row and column of day d.
func (g Grid) Cell(d int) (row, col int) {
	i := g.Leading + d - 1
	return i / 7, i % 7
}

// Calendar is a single-month date picker. It holds no selected date:
// a picked day leaves through OnSelect and the host stores it.
type Calendar struct {
	// OnSelect receives the picked date.
	OnSelect func(Date)
	// OnCancel is called when the user backs out without picking.
	OnCancel func()

	cursor Cursor
	focus  int
}

// NewCalendar creates a calendar showing the month of cursor.
func NewCalendar(cursor Cursor, onSelect func(Date), onCancel func()) *Calendar {
	return &Calendar{
		OnSelect: onSelect,
		OnCancel: onCancel,
		cursor:   cursor.Add(0),
		focus:    1,
	}
}

// Cursor returns the displayed month.
func (c *Calendar) Cursor() Cursor { return c.cursor }

// Grid returns the layout of the displayed month.
func (c *Calendar) Grid() Grid { return GridFor(c.cursor) }

// Navigate moves the displayed month by delta. The focused day is kept
// when it exists in the new month.
func (c *Calendar) Navigate(delta int) {
	c.cursor = c.cursor.Add(delta)
	c.focus = min(c.focus, c.cursor.DaysIn())
}

// Focus returns the keyboard-focused day of the displayed month.
func (c *Calendar) Focus() int { return c.focus }

// MoveFocus moves the focused day by delta days, paging the month when
// it crosses either edge.
func (c *Calendar) MoveFocus(delta int) {
	t := time.Date(c.cursor.Year, c.cursor.Month, c.focus, 0, 0, 0, 0, time.UTC).AddDate(0, 0, delta)
	c.cursor = CursorOf(t)
	c.focus = t.Day()
}

// Select emits day of the displayed month through OnSelect. Days outside
// the month are ignored.
func (c *Calendar) Select(day int) bool {
	if day < 1 || day > c.cursor.DaysIn() {
		return false
	}
	c.focus = day
	if c.OnSelect != nil {
		c.OnSelect(Date{Year: c.cursor.Year, Month: c.cursor.Month, Day: day})
	}
	return true
}

// SelectFocused selects the focused day.
func (c *Calendar) SelectFocused() bool { return c.Select(c.focus) }

// Cancel backs out of the calendar.
func (c *Calendar) Cancel() {
	if c.OnCancel != nil {
		c.OnCancel()
	}
}
