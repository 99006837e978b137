package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"alphadash/internal/filter"
	"alphadash/internal/ui/textutil"
)

const (
	// bucketGap is the number of track cells between adjacent buckets.
	bucketGap = 4
	// searchMinOptions is the list length from which a search line shows.
	searchMinOptions = 5
	// fieldLabelWidth is the width of "From  " and "To    ".
	fieldLabelWidth = 6
	// dateFieldWidth is the width of "[ YYYY-MM-DD ]".
	dateFieldWidth = 14
)

type button struct {
	label   string
	primary bool
	press   func()
}

// buttonRow renders buttons two cells apart on content row row.
func buttonRow(row int, buttons ...button) (string, []spot) {
	var parts []string
	var spots []spot
	col := 0
	for _, b := range buttons {
		text := "[ " + b.label + " ]"
		style := Styles.Button
		if b.primary {
			style = Styles.ButtonPrimary
		}
		parts = append(parts, style.Render(text))
		press := b.press
		spots = append(spots, spot{
			Region: filter.Region{X: col, Y: row, W: textutil.Width(text), H: 1},
			press:  func(int, filter.Region) { press() },
		})
		col += textutil.Width(text) + 2
	}
	return strings.Join(parts, "  "), spots
}

func (v *FilterBarView) listPopup(l *filter.OptionList) popup {
	width := 0
	for _, o := range l.Options {
		width = max(width, textutil.Width(o))
	}
	width += 4

	var p popup
	if len(l.Options) >= searchMinOptions {
		v.search.Width = max(1, width-textutil.Width(v.search.Prompt)-1)
		p.lines = append(p.lines, ansi.Truncate(v.search.View(), width, ""))
	}
	top := len(p.lines)
	for row, idx := range l.Visible() {
		prefix, style := "  ", Styles.Option
		if row == l.Cursor() {
			prefix, style = "› ", Styles.OptionCursor
		}
		mark := "  "
		if idx == l.SelectedIndex() {
			mark = " ✓"
		}
		p.lines = append(p.lines,
			style.Render(textutil.PadRight(prefix+l.Options[idx], width-2))+Styles.OptionSelected.Render(mark))
		i := idx
		p.spots = append(p.spots, spot{
			Region: filter.Region{X: 0, Y: top + row, W: width, H: 1},
			press:  func(int, filter.Region) { v.bar.Resolve(l.Select(i)) },
		})
	}
	if len(l.Visible()) == 0 {
		p.lines = append(p.lines, Styles.Muted.Render(textutil.PadRight("no matches", width)))
	}
	return p
}

func (v *FilterBarView) rangePopup(r *filter.BucketRange) popup {
	s := r.Slider()
	n := s.Len()
	trackW := (n-1)*bucketGap + 1
	lo, hi := r.Draft()

	value := r.Bucket(lo) + " – " + r.Bucket(hi)
	if s.Pinned() {
		value = r.Bucket(lo) + " +"
	}

	var track strings.Builder
	for c := range trackW {
		switch {
		case c == lo*bucketGap:
			track.WriteString(v.handleStyle(filter.HandleMin).Render("●"))
		case c == hi*bucketGap && !s.Pinned():
			track.WriteString(v.handleStyle(filter.HandleMax).Render("●"))
		case c > lo*bucketGap && c <= hi*bucketGap:
			track.WriteString(Styles.TrackFill.Render("━"))
		default:
			track.WriteString(Styles.Track.Render("─"))
		}
	}

	p := popup{lines: []string{
		Styles.Title.Render(r.Title),
		Styles.Selected.Render(value),
		"",
		track.String(),
		Styles.Muted.Render(textutil.Spread(r.Buckets[0], r.Buckets[n-1], trackW)),
		"",
	}}
	p.spots = append(p.spots, spot{
		Region: filter.Region{X: 0, Y: 3, W: trackW, H: 1},
		press: func(col int, at filter.Region) {
			idx := filter.IndexAtCell(col, trackW, n)
			v.handle = s.Nearest(idx)
			s.Press(idx)
			v.drag = &trackDrag{slider: s, x: at.X, w: at.W}
		},
	})
	if r.Live {
		p.lines = append(p.lines, Styles.Hint.Render("←→ move  esc close"))
		return p
	}
	row, spots := buttonRow(len(p.lines),
		button{label: "Cancel", press: func() { v.bar.Resolve(r.Cancel()) }},
		button{label: "Apply", primary: true, press: func() { v.bar.Resolve(r.Apply()) }},
	)
	p.lines = append(p.lines, row, Styles.Hint.Render("←→ move  ↑↓ handle"))
	p.spots = append(p.spots, spots...)
	return p
}

func (v *FilterBarView) handleStyle(h filter.Handle) lipgloss.Style {
	if h == v.handle {
		return Styles.HandleFocused
	}
	return Styles.Handle
}

func (v *FilterBarView) pairPopup(ps *filter.PairSelect) popup {
	optW := 0
	for _, o := range ps.Options {
		optW = max(optW, textutil.Width(o))
	}
	from, to := ps.Draft()
	p := popup{lines: []string{Styles.Title.Render(ps.Title)}}
	for i, f := range []filter.PairField{filter.PairFrom, filter.PairTo} {
		label := "From"
		val := from
		if f == filter.PairTo {
			label, val = "To", to
		}
		style := Styles.Field
		if ps.Focus() == f {
			style = Styles.FieldFocused
		}
		row := 1 + i
		p.lines = append(p.lines, textutil.PadRight(label, fieldLabelWidth)+
			style.Render("‹ "+textutil.PadRight(val, optW)+" ›"))
		field := f
		p.spots = append(p.spots,
			spot{
				Region: filter.Region{X: fieldLabelWidth, Y: row, W: 1, H: 1},
				press:  func(int, filter.Region) { ps.SetFocus(field); ps.Cycle(field, -1) },
			},
			spot{
				Region: filter.Region{X: fieldLabelWidth + 2, Y: row, W: optW, H: 1},
				press:  func(int, filter.Region) { ps.SetFocus(field) },
			},
			spot{
				Region: filter.Region{X: fieldLabelWidth + optW + 3, Y: row, W: 1, H: 1},
				press:  func(int, filter.Region) { ps.SetFocus(field); ps.Cycle(field, 1) },
			},
		)
	}
	p.lines = append(p.lines, "")
	row, spots := buttonRow(len(p.lines),
		button{label: "Cancel", press: func() { v.bar.Resolve(ps.Cancel()) }},
		button{label: "Apply", primary: true, press: func() { v.bar.Resolve(ps.Apply()) }},
	)
	p.lines = append(p.lines, row, Styles.Hint.Render("↑↓ field  ←→ change"))
	p.spots = append(p.spots, spots...)
	return p
}

func (v *FilterBarView) datesPopup(d *filter.DateRangePicker) popup {
	draft := d.Draft()
	p := popup{lines: []string{Styles.Title.Render(d.Title)}}
	for i, f := range []filter.DateField{filter.FieldStart, filter.FieldEnd} {
		label := "From"
		val := draft.Start
		if f == filter.FieldEnd {
			label, val = "To", draft.End
		}
		text := val.String()
		style := Styles.Field
		if text == "" {
			text, style = "YYYY-MM-DD", Styles.Muted
		}
		if d.Focus() == f {
			style = Styles.FieldFocused
		}
		p.lines = append(p.lines, textutil.PadRight(label, fieldLabelWidth)+style.Render("[ "+text+" ]"))
		field := f
		p.spots = append(p.spots, spot{
			Region: filter.Region{X: fieldLabelWidth, Y: 1 + i, W: dateFieldWidth, H: 1},
			press: func(int, filter.Region) {
				d.SetFocus(field)
				d.OpenCalendar(field)
			},
		})
	}
	p.lines = append(p.lines, "")
	row, spots := buttonRow(len(p.lines),
		button{label: "Cancel", press: func() { v.bar.Resolve(d.Cancel()) }},
		button{label: "Apply", primary: true, press: func() { v.bar.Resolve(d.Apply()) }},
	)
	p.lines = append(p.lines, row, Styles.Hint.Render("enter pick  a apply"))
	p.spots = append(p.spots, spots...)
	return p
}

// calendarContent renders a month grid three cells per day, weeks from
// Sunday.
func (v *FilterBarView) calendarContent(c *filter.Calendar, field filter.DateField) popup {
	const width = 7*3 - 1
	g := c.Grid()
	header := "◂" + textutil.Center(c.Cursor().String(), width-2) + "▸"

	p := popup{lines: []string{
		Styles.Muted.Render(fmt.Sprintf("Pick %s date", field)),
		Styles.Title.Render(header),
		Styles.Muted.Render("Su Mo Tu We Th Fr Sa"),
	}}
	p.spots = append(p.spots,
		spot{Region: filter.Region{X: 0, Y: 1, W: 2, H: 1}, press: func(int, filter.Region) { c.Navigate(-1) }},
		spot{Region: filter.Region{X: width - 2, Y: 1, W: 2, H: 1}, press: func(int, filter.Region) { c.Navigate(1) }},
	)
	for w, week := range g.Weeks() {
		cells := make([]string, len(week))
		for col, day := range week {
			if day == 0 {
				cells[col] = "  "
				continue
			}
			style := Styles.Day
			if day == c.Focus() {
				style = Styles.DayFocused
			}
			cells[col] = style.Render(fmt.Sprintf("%2d", day))
			d := day
			p.spots = append(p.spots, spot{
				Region: filter.Region{X: col * 3, Y: 3 + w, W: 2, H: 1},
				press:  func(int, filter.Region) { c.Select(d) },
			})
		}
		p.lines = append(p.lines, strings.Join(cells, " "))
	}
	p.lines = append(p.lines, "")
	row, spots := buttonRow(len(p.lines), button{label: "Cancel", press: c.Cancel})
	p.lines = append(p.lines, row)
	p.spots = append(p.spots, spots...)
	return p
}
