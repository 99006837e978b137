package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alphadash/internal/filter"
	"alphadash/internal/ui/textutil"
)

// maxPillLabel bounds the trigger text of a pill, arrow excluded.
const maxPillLabel = 18

// FilterBarView renders a filter.Bar as a row of pills at (X, Y) of its
// screen and draws the open panel below its pill. Coordinates of every
// region it registers are screen cells.
type FilterBarView struct {
	X, Y int

	bar    *filter.Bar
	focus  *FocusManager
	search textinput.Model
	handle filter.Handle
	drag   *trackDrag

	width, height int
	last          barLayout
}

// trackDrag is a slider drag in progress: the track's screen columns.
type trackDrag struct {
	slider *filter.RangeSlider
	x, w   int
}

// Ensure FilterBarView implements View.
var _ View = (*FilterBarView)(nil)

// NewFilterBarView wraps bar, drawing its pills on row y.
func NewFilterBarView(bar *filter.Bar, y int) *FilterBarView {
	ids := make([]filter.GroupID, 0, len(bar.Panels()))
	for _, p := range bar.Panels() {
		ids = append(ids, p.ID)
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	search.Cursor.SetMode(cursor.CursorStatic)
	v := &FilterBarView{
		Y:      y,
		bar:    bar,
		focus:  NewFocusManager(ids),
		search: search,
		width:  80,
		height: 24,
	}
	bar.OnChange = v.changed
	return v
}

func (v *FilterBarView) changed(_, to filter.ActiveFilter) {
	v.drag = nil
	v.handle = filter.HandleMin
	v.search.Reset()
	v.search.Blur()
	if id, ok := to.Get(); ok {
		v.focus.SetFocus(id)
		v.search.Focus()
	}
}

// Bar returns the wrapped bar.
func (v *FilterBarView) Bar() *filter.Bar { return v.bar }

// Focus returns the pill focus manager.
func (v *FilterBarView) Focus() *FocusManager { return v.focus }

// SetSize sets the screen area used to fit popups and center calendars.
func (v *FilterBarView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// Open reports whether a panel is open.
func (v *FilterBarView) Open() bool { return v.bar.Scope().Listening() }

// Teardown closes every layer for an unmounting screen.
func (v *FilterBarView) Teardown() {
	v.drag = nil
	v.bar.Teardown()
}

// Init implements View.
func (v *FilterBarView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *FilterBarView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		_, cmd := v.HandleKey(msg)
		return v, cmd
	case tea.MouseMsg:
		v.HandleMouse(msg)
	}
	return v, nil
}

// View implements View. It renders the pill row only; Compose adds the
// popups.
func (v *FilterBarView) View() string {
	return v.refresh().line
}

// Compose draws the open popup and calendar over base, a full screen
// rendering whose first line is screen row 0.
func (v *FilterBarView) Compose(base string) string {
	l := v.refresh()
	if l.popup != nil {
		base = placeOverlay(base, l.popup.box, l.popup.region.X, l.popup.region.Y)
	}
	if l.calendar != nil {
		base = placeOverlay(base, l.calendar.box, l.calendar.region.X, l.calendar.region.Y)
	}
	return base
}

// spot is a clickable cell range inside a popup.
type spot struct {
	filter.Region
	// press receives the column within the spot and the spot's screen
	// region.
	press func(col int, at filter.Region)
}

// popup is panel content before it is boxed: lines plus spots relative to
// the first content cell.
type popup struct {
	lines []string
	spots []spot
}

// placed is a boxed popup at its screen position.
type placed struct {
	box    string
	region filter.Region
	spots  []spot
}

func (p *placed) hit(x, y int) {
	for _, s := range p.spots {
		if s.Contains(x, y) {
			s.press(x-s.X, s.Region)
			return
		}
	}
}

type barLayout struct {
	line     string
	pills    []filter.Region
	popup    *placed
	calendar *placed
}

func (l barLayout) pillAt(panels []*filter.Panel, x, y int) (filter.GroupID, bool) {
	for i, r := range l.pills {
		if r.Contains(x, y) {
			return panels[i].ID, true
		}
	}
	return "", false
}

// box wraps content with style and places it with its corner at (x, y);
// spots move from content to screen coordinates.
func box(style lipgloss.Style, p popup, x, y int) *placed {
	b := style.Render(strings.Join(p.lines, "\n"))
	origin := filter.Region{
		X: x + style.GetBorderLeftSize() + style.GetPaddingLeft(),
		Y: y + style.GetBorderTopSize() + style.GetPaddingTop(),
	}
	spots := make([]spot, len(p.spots))
	for i, s := range p.spots {
		s.Region = s.Offset(origin.X, origin.Y)
		spots[i] = s
	}
	return &placed{box: b, region: boxRegion(b, x, y), spots: spots}
}

// refresh lays the bar out and registers its boundaries: every pill, plus
// the popup of the open panel, plus the calendar layer region.
func (v *FilterBarView) refresh() barLayout {
	scope := v.bar.Scope()
	panels := v.bar.Panels()
	l := barLayout{pills: make([]filter.Region, len(panels))}

	parts := make([]string, len(panels))
	x := v.X
	for i, p := range panels {
		style := Styles.Pill
		switch {
		case v.bar.IsOpen(p.ID):
			style = Styles.PillOpen
		case v.focus.Current == p.ID:
			style = Styles.PillFocused
		}
		parts[i] = style.Render(textutil.Truncate(p.Label(), maxPillLabel) + " ▾")
		w := lipgloss.Width(parts[i])
		l.pills[i] = filter.Region{X: x, Y: v.Y, W: w, H: 1}
		x += w + 1
	}
	l.line = strings.Join(parts, " ")

	for i, p := range panels {
		if !v.bar.IsOpen(p.ID) {
			scope.RegisterBoundary(p.ID, l.pills[i])
			continue
		}
		content := v.renderContent(p)
		bw := lipgloss.Width(Styles.Popup.Render(strings.Join(content.lines, "\n")))
		l.popup = box(Styles.Popup, content, fitX(l.pills[i].X, bw, v.width), v.Y+1)
		scope.RegisterBoundary(p.ID, l.pills[i], l.popup.region)

		if picker, ok := p.Content.(*filter.DateRangePicker); ok {
			if cal, field, open := picker.Calendar(); open {
				cc := v.calendarContent(cal, field)
				cb := Styles.Calendar.Render(strings.Join(cc.lines, "\n"))
				cx, cy := centerIn(cb, v.width, v.height)
				l.calendar = box(Styles.Calendar, cc, cx, cy)
				scope.SetSecondaryRegion(l.calendar.region)
			}
		}
	}
	v.last = l
	return l
}

func (v *FilterBarView) renderContent(p *filter.Panel) popup {
	switch c := p.Content.(type) {
	case *filter.OptionList:
		return v.listPopup(c)
	case *filter.BucketRange:
		return v.rangePopup(c)
	case *filter.PairSelect:
		return v.pairPopup(c)
	case *filter.DateRangePicker:
		return v.datesPopup(c)
	default:
		return popup{lines: []string{p.Content.Label()}}
	}
}

// HandleMouse routes a mouse event through the bar. It reports whether the
// event was consumed; a press that only dismissed a panel is consumed.
func (v *FilterBarView) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionMotion:
		if v.drag == nil {
			return false
		}
		v.drag.slider.DragTo(filter.IndexAtCell(msg.X-v.drag.x, v.drag.w, v.drag.slider.Len()))
		return true
	case tea.MouseActionRelease:
		if v.drag == nil {
			return false
		}
		v.drag.slider.Release()
		v.drag = nil
		return true
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
	default:
		return false
	}

	x, y := msg.X, msg.Y
	scope := v.bar.Scope()
	l := v.refresh()

	if l.calendar != nil {
		if l.calendar.region.Contains(x, y) {
			l.calendar.hit(x, y)
		} else {
			scope.PointerDown(x, y)
		}
		return true
	}
	if id, ok := l.pillAt(v.bar.Panels(), x, y); ok {
		v.bar.Toggle(id)
		v.focus.SetFocus(id)
		return true
	}
	if l.popup != nil && l.popup.region.Contains(x, y) {
		l.popup.hit(x, y)
		return true
	}
	_, closed := scope.PointerDown(x, y)
	return closed
}

// HandleKey routes a key through the bar. With a panel open every key but
// ctrl+c is consumed; otherwise only pill navigation is.
func (v *FilterBarView) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return false, nil
	}
	if cal, ok := v.openCalendar(); ok {
		v.calendarKey(cal, k)
		return true, nil
	}
	if p, ok := v.bar.Active(); ok {
		return true, v.panelKey(p, msg)
	}
	switch k {
	case "left", "shift+tab":
		v.focus.Prev()
	case "right", "tab":
		v.focus.Next()
	case "enter":
		v.bar.Toggle(v.focus.Current)
	default:
		return false, nil
	}
	return true, nil
}

func (v *FilterBarView) openCalendar() (*filter.Calendar, bool) {
	p, ok := v.bar.Active()
	if !ok {
		return nil, false
	}
	picker, ok := p.Content.(*filter.DateRangePicker)
	if !ok {
		return nil, false
	}
	cal, _, ok := picker.Calendar()
	return cal, ok
}

func (v *FilterBarView) panelKey(p *filter.Panel, msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	switch k {
	case "esc":
		v.bar.Scope().Dismiss()
		return nil
	case "tab":
		v.bar.Open(v.focus.Next())
		return nil
	case "shift+tab":
		v.bar.Open(v.focus.Prev())
		return nil
	}

	switch c := p.Content.(type) {
	case *filter.OptionList:
		return v.listKey(c, msg)
	case *filter.BucketRange:
		v.rangeKey(c, k)
	case *filter.PairSelect:
		v.pairKey(c, k)
	case *filter.DateRangePicker:
		v.datesKey(c, k)
	}
	return nil
}

func (v *FilterBarView) listKey(l *filter.OptionList, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		l.MoveCursor(-1)
	case "down":
		l.MoveCursor(1)
	case "enter":
		v.bar.Resolve(l.Choose())
	case "left":
		v.bar.Open(v.focus.Prev())
	case "right":
		v.bar.Open(v.focus.Next())
	default:
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeyBackspace && msg.Type != tea.KeySpace {
			return nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		l.SetQuery(v.search.Value())
		return cmd
	}
	return nil
}

func (v *FilterBarView) rangeKey(r *filter.BucketRange, k string) {
	s := r.Slider()
	if s.Pinned() {
		v.handle = filter.HandleMin
	}
	switch k {
	case "left", "h":
		s.Step(v.handle, -1)
	case "right", "l":
		s.Step(v.handle, 1)
	case "up", "down":
		if !s.Pinned() {
			v.handle = v.handle.Other()
		}
	case "enter":
		if r.Live {
			v.bar.Close()
			return
		}
		v.bar.Resolve(r.Apply())
	}
}

func (v *FilterBarView) pairKey(p *filter.PairSelect, k string) {
	switch k {
	case "up", "down":
		p.SetFocus(1 - p.Focus())
	case "left", "h":
		p.Cycle(p.Focus(), -1)
	case "right", "l":
		p.Cycle(p.Focus(), 1)
	case "enter":
		v.bar.Resolve(p.Apply())
	}
}

func (v *FilterBarView) datesKey(d *filter.DateRangePicker, k string) {
	switch k {
	case "up", "down":
		d.SetFocus(1 - d.Focus())
	case "enter":
		d.OpenCalendar(d.Focus())
	case "a":
		v.bar.Resolve(d.Apply())
	}
}

func (v *FilterBarView) calendarKey(c *filter.Calendar, k string) {
	switch k {
	case "left":
		c.MoveFocus(-1)
	case "right":
		c.MoveFocus(1)
	case "up":
		c.MoveFocus(-7)
	case "down":
		c.MoveFocus(7)
	case "h", "pgup":
		c.Navigate(-1)
	case "l", "pgdown":
		c.Navigate(1)
	case "enter":
		c.SelectFocused()
	case "esc":
		c.Cancel()
	}
}
