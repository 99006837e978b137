package filter

import (
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"
)

// OptionList is a single-choice list. Picking an item commits it at once
// and closes the panel.
type OptionList struct {
	Options []string

	// OnSelect receives the picked label.
	OnSelect func(label string)

	// LabelFunc renders the trigger from the selected label ("" when none).
	// Nil shows the selection as is.
	LabelFunc func(selected string) string

	selected int
	cursor   int
	query    string
	visible  []int
}

// NewOptionList creates a list with selected pre-chosen. An empty or
// unknown selected leaves the list without a choice.
func NewOptionList(options []string, selected string, onSelect func(string)) (*OptionList, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("new option list: %w", ErrNoOptions)
	}
	l := &OptionList{
		Options:  slices.Clone(options),
		OnSelect: onSelect,
		selected: slices.Index(options, selected),
	}
	l.SetQuery("")
	return l, nil
}

// Kind implements Content.
func (l *OptionList) Kind() ContentKind { return KindList }

// Selected returns the chosen label.
func (l *OptionList) Selected() (string, bool) {
	if l.selected < 0 {
		return "", false
	}
	return l.Options[l.selected], true
}

// SelectedIndex returns the chosen option index, or -1.
func (l *OptionList) SelectedIndex() int { return l.selected }

// Label implements Content.
func (l *OptionList) Label() string {
	sel, _ := l.Selected()
	if l.LabelFunc != nil {
		return l.LabelFunc(sel)
	}
	return sel
}

// Opened implements Content. The cursor starts on the current choice.
func (l *OptionList) Opened() {
	l.SetQuery("")
	l.cursor = max(0, slices.Index(l.visible, l.selected))
}

// Dismissed implements Content.
func (l *OptionList) Dismissed() {
	l.SetQuery("")
}

// Query returns the type-to-search text.
func (l *OptionList) Query() string { return l.query }

// SetQuery narrows the visible options to fuzzy matches of q, best first.
// An empty query shows every option in order.
func (l *OptionList) SetQuery(q string) {
	l.query = q
	l.cursor = 0
	if q == "" {
		l.visible = make([]int, len(l.Options))
		for i := range l.Options {
			l.visible[i] = i
		}
		return
	}
	matches := fuzzy.Find(q, l.Options)
	l.visible = make([]int, len(matches))
	for i, m := range matches {
		l.visible[i] = m.Index
	}
}

// Visible returns the option indices currently listed.
func (l *OptionList) Visible() []int { return l.visible }

// Cursor returns the highlighted row within Visible.
func (l *OptionList) Cursor() int { return l.cursor }

// MoveCursor moves the highlight by delta rows, stopping at the ends.
func (l *OptionList) MoveCursor(delta int) {
	if len(l.visible) == 0 {
		l.cursor = 0
		return
	}
	l.cursor = max(0, min(l.cursor+delta, len(l.visible)-1))
}

// Choose selects the highlighted row.
func (l *OptionList) Choose() Outcome {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return Stay
	}
	return l.Select(l.visible[l.cursor])
}

// Select commits option i. Indices outside the list are ignored.
func (l *OptionList) Select(i int) Outcome {
	if i < 0 || i >= len(l.Options) {
		return Stay
	}
	l.selected = i
	if l.OnSelect != nil {
		l.OnSelect(l.Options[i])
	}
	return Close
}

// SelectLabel commits the option named label.
func (l *OptionList) SelectLabel(label string) Outcome {
	return l.Select(slices.Index(l.Options, label))
}
