package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ActivityWindow lists committed filter selections with scrollback.
// Shown as an overlay; Esc dismisses.
type ActivityWindow struct {
	events   []CommitEvent
	viewport viewport.Model
}

// Ensure ActivityWindow implements View.
var _ View = (*ActivityWindow)(nil)

const defaultActivityWidth = 60
const defaultActivityHeight = 12

// NewActivityWindow creates a window showing events, oldest first.
func NewActivityWindow(events []CommitEvent) *ActivityWindow {
	vp := viewport.New(defaultActivityWidth, defaultActivityHeight)
	vp.Style = Styles.Popup
	w := &ActivityWindow{events: append([]CommitEvent(nil), events...), viewport: vp}
	w.refreshContent()
	return w
}

// Init implements View.
func (w *ActivityWindow) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (w *ActivityWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case CommitEvent:
		w.events = append(w.events, msg)
		w.refreshContent()
		return w, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		w.viewport.Width = max(40, min(msg.Width-4, 90))
		w.viewport.Height = max(8, msg.Height/2)
		w.refreshContent()
		return w, nil
	}

	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)
	return w, cmd
}

// View implements View.
func (w *ActivityWindow) View() string {
	header := Styles.Title.Render("Filter activity") + Styles.Muted.Render("  Esc: close")
	return header + "\n" + w.viewport.View()
}

// Events returns the listed events.
func (w *ActivityWindow) Events() []CommitEvent { return w.events }

func (w *ActivityWindow) refreshContent() {
	lines := make([]string, 0, len(w.events))
	for _, ev := range w.events {
		lines = append(lines, fmt.Sprintf("[%s] %-10s %-10s %s",
			ev.Time.Format("15:04:05"), ev.Screen, ev.Group, Styles.Selected.Render(ev.Value)))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Muted.Render("No selections committed yet.")
	}
	w.viewport.SetContent(content)
	w.viewport.GotoBottom()
}
