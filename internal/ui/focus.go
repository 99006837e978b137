package ui

import (
	"slices"

	"alphadash/internal/filter"
)

// FocusManager tracks which filter pill has keyboard focus and rotates it
// in bar order.
type FocusManager struct {
	Current  filter.GroupID
	Order    []filter.GroupID
	OnChange func(from, to filter.GroupID)
}

// NewFocusManager focuses the first id of order.
func NewFocusManager(order []filter.GroupID) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus to the following pill, wrapping at the end.
func (f *FocusManager) Next() filter.GroupID { return f.step(1) }

// Prev moves focus to the preceding pill, wrapping at the start.
func (f *FocusManager) Prev() filter.GroupID { return f.step(-1) }

func (f *FocusManager) step(delta int) filter.GroupID {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id filter.GroupID) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// Index returns the position of the focused pill, or -1.
func (f *FocusManager) Index() int { return slices.Index(f.Order, f.Current) }

func (f *FocusManager) set(id filter.GroupID) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
