package filter

import "time"

// DateRange is an optional start and end date. Either side may be unset
// and start may fall after end; the range is taken as the user left it.
type DateRange struct {
	Start, End Date
}

// IsZero reports whether neither side is set.
func (r DateRange) IsZero() bool { return r.Start.IsZero() && r.End.IsZero() }

// DateField selects one side of a DateRange.
type DateField int

const (
	FieldStart DateField = iota
	FieldEnd
)

func (f DateField) String() string {
	if f == FieldEnd {
		return "to"
	}
	return "from"
}

// DateRangePicker is a pair of date fields. Each field opens a Calendar on
// the scope's secondary layer; the primary panel stays open underneath.
// Picked dates land in a draft that Apply commits.
type DateRangePicker struct {
	Title string

	// Placeholder is the trigger label while nothing is committed.
	Placeholder string

	// OnApply receives the committed range.
	OnApply func(DateRange)

	// Now supplies the month a freshly opened calendar shows.
	Now func() time.Time

	committed DateRange
	draft     DateRange
	focus     DateField

	scope   *Popover
	id      GroupID
	cal     *Calendar
	editing DateField
}

// NewDateRangePicker creates a picker preset to initial.
func NewDateRangePicker(title string, initial DateRange, onApply func(DateRange)) *DateRangePicker {
	return &DateRangePicker{
		Title:     title,
		OnApply:   onApply,
		Now:       time.Now,
		committed: initial,
		draft:     initial,
	}
}

func (d *DateRangePicker) bind(p *Popover, id GroupID) {
	d.scope, d.id = p, id
}

// Kind implements Content.
func (d *DateRangePicker) Kind() ContentKind { return KindDateRange }

// Label implements Content.
func (d *DateRangePicker) Label() string {
	if d.committed.IsZero() && d.Placeholder != "" {
		return d.Placeholder
	}
	return side(d.committed.Start) + " → " + side(d.committed.End)
}

func side(dt Date) string {
	if dt.IsZero() {
		return "…"
	}
	return dt.String()
}

// Opened implements Content.
func (d *DateRangePicker) Opened() {
	d.draft = d.committed
	d.focus = FieldStart
	d.cal = nil
}

// Dismissed implements Content.
func (d *DateRangePicker) Dismissed() {
	d.draft = d.committed
	d.cal = nil
}

// Committed returns the committed range.
func (d *DateRangePicker) Committed() DateRange { return d.committed }

// Draft returns the range being edited.
func (d *DateRangePicker) Draft() DateRange { return d.draft }

// Focus returns the field receiving keyboard input.
func (d *DateRangePicker) Focus() DateField { return d.focus }

// SetFocus moves keyboard input to f.
func (d *DateRangePicker) SetFocus(f DateField) { d.focus = f }

// OpenCalendar opens the calendar for field f on the secondary layer. It
// fails unless this picker's panel is the open one.
func (d *DateRangePicker) OpenCalendar(f DateField) bool {
	if d.scope == nil || !d.scope.IsOpen(d.id) {
		return false
	}
	if !d.scope.OpenSecondary(f.String()) {
		return false
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	d.editing = f
	d.focus = f
	d.cal = NewCalendar(CursorOf(now()), d.pick, d.closeCalendar)
	return true
}

// Calendar returns the open calendar and the field it edits. A calendar
// whose layer was dismissed from outside (scrim press, Escape) is dropped
// here.
func (d *DateRangePicker) Calendar() (*Calendar, DateField, bool) {
	if d.cal == nil || d.scope == nil {
		return nil, 0, false
	}
	l, ok := d.scope.Secondary()
	if !ok || l.Owner != d.id || l.Tag != d.editing.String() {
		d.cal = nil
		return nil, 0, false
	}
	return d.cal, d.editing, true
}

func (d *DateRangePicker) pick(date Date) {
	if d.editing == FieldEnd {
		d.draft.End = date
	} else {
		d.draft.Start = date
	}
	d.closeCalendar()
}

func (d *DateRangePicker) closeCalendar() {
	d.cal = nil
	if d.scope != nil {
		d.scope.CloseSecondary()
	}
}

// Apply commits the draft and closes the panel.
func (d *DateRangePicker) Apply() Outcome {
	d.committed = d.draft
	if d.OnApply != nil {
		d.OnApply(d.committed)
	}
	return Close
}

// Cancel discards the draft and closes the panel.
func (d *DateRangePicker) Cancel() Outcome {
	d.Dismissed()
	return Close
}
