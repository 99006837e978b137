package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGridFor_KnownMonths(t *testing.T) {
	tests := []struct {
		name                      string
		cursor                    Cursor
		leading, days, trail, rows int
	}{
		// February 2026 starts on a Sunday and fills exactly four weeks.
		{"feb 2026", Cursor{2026, time.February}, 0, 28, 0, 4},
		{"mar 2026", Cursor{2026, time.March}, 0, 31, 4, 5},
		{"may 2026", Cursor{2026, time.May}, 5, 31, 6, 6},
		{"aug 2026", Cursor{2026, time.August}, 6, 31, 5, 6},
		{"feb 2024 leap", Cursor{2024, time.February}, 4, 29, 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GridFor(tt.cursor)
			assert.Equal(t, tt.leading, g.Leading)
			assert.Equal(t, tt.days, g.Days)
			assert.Equal(t, tt.trail, g.Trailing)
			assert.Equal(t, tt.rows, g.Rows())
			assert.Len(t, g.Cells(), tt.leading+tt.days+tt.trail)
		})
	}
}

func TestGrid_CellsAndWeeks(t *testing.T) {
	g := GridFor(Cursor{2026, time.March})
	cells := g.Cells()
	assert.Equal(t, 1, cells[0])
	assert.Equal(t, 31, cells[30])
	assert.Equal(t, []int{0, 0, 0, 0}, cells[31:])

	weeks := g.Weeks()
	require.Len(t, weeks, 5)
	assert.Equal(t, []int{29, 30, 31, 0, 0, 0, 0}, weeks[4])

	row, col := g.Cell(5)
	assert.Equal(t, 0, row)
	assert.Equal(t, 4, col)
}

func TestGridFor_PropertyMinimalRows(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := Cursor{
			Year:  rapid.IntRange(1900, 2200).Draw(t, "year"),
			Month: time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
		}
		g := GridFor(c)
		if g.CellCount() != g.Leading+g.Days+g.Trailing {
			t.Fatalf("cell count %d", g.CellCount())
		}
		if g.CellCount()%7 != 0 {
			t.Fatalf("%d cells do not fill whole weeks", g.CellCount())
		}
		if g.Leading > 6 || g.Trailing > 6 {
			t.Fatalf("padding beyond a week: lead=%d trail=%d", g.Leading, g.Trailing)
		}
		want := (g.Leading + g.Days + 6) / 7
		if g.Rows() != want {
			t.Fatalf("rows = %d, minimal is %d", g.Rows(), want)
		}
		first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
		if g.Leading != int(first.Weekday()) {
			t.Fatalf("leading %d for weekday %s", g.Leading, first.Weekday())
		}
	})
}

func TestCursor_AddWrapsYears(t *testing.T) {
	assert.Equal(t, Cursor{2027, time.January}, Cursor{2026, time.December}.Add(1))
	assert.Equal(t, Cursor{2025, time.December}, Cursor{2026, time.January}.Add(-1))
	assert.Equal(t, "March 2026", Cursor{2026, time.March}.String())
}

func TestCalendar_SelectEmitsDateOnly(t *testing.T) {
	var got Date
	c := NewCalendar(Cursor{2026, time.March}, func(d Date) { got = d }, nil)

	require.True(t, c.Select(5))
	assert.Equal(t, Date{2026, time.March, 5}, got)
	assert.Equal(t, "2026-03-05", got.String())

	assert.False(t, c.Select(0))
	assert.False(t, c.Select(32))
}

func TestCalendar_NavigationKeepsSelection(t *testing.T) {
	var selected Date
	c := NewCalendar(Cursor{2026, time.January}, func(d Date) { selected = d }, nil)
	require.True(t, c.Select(31))

	c.Navigate(1)
	assert.Equal(t, Cursor{2026, time.February}, c.Cursor())
	assert.Equal(t, 28, c.Focus(), "focus clamps into the shorter month")
	assert.Equal(t, Date{2026, time.January, 31}, selected, "navigation never alters a picked date")

	c.Navigate(-2)
	assert.Equal(t, Cursor{2025, time.December}, c.Cursor())
}

func TestCalendar_MoveFocusPagesMonths(t *testing.T) {
	c := NewCalendar(Cursor{2026, time.March}, nil, nil)
	c.MoveFocus(-1)
	assert.Equal(t, Cursor{2026, time.February}, c.Cursor())
	assert.Equal(t, 28, c.Focus())

	c.MoveFocus(7)
	assert.Equal(t, Cursor{2026, time.March}, c.Cursor())
	assert.Equal(t, 7, c.Focus())
}

func TestCalendar_PastAndFutureSelectable(t *testing.T) {
	var got []Date
	c := NewCalendar(Cursor{1999, time.December}, func(d Date) { got = append(got, d) }, nil)
	require.True(t, c.Select(31))
	c.Navigate(12 * 50)
	require.True(t, c.Select(1))
	assert.Equal(t, []Date{{1999, time.December, 31}, {2049, time.December, 1}}, got)
}

func TestCalendar_Cancel(t *testing.T) {
	cancelled := false
	c := NewCalendar(Cursor{2026, time.March}, nil, func() { cancelled = true })
	c.Cancel()
	assert.True(t, cancelled)
}

func TestDate_ParseAndCompare(t *testing.T) {
	d, err := ParseDate("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, Date{2026, time.March, 5}, d)

	_, err = ParseDate("05/03/2026")
	assert.Error(t, err)

	assert.True(t, Date{2026, time.March, 4}.Before(d))
	assert.False(t, d.Before(d))
	assert.Equal(t, "", Date{}.String())
	assert.True(t, Date{}.IsZero())
}
