package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"alphadash/internal/filter"
)

// Overlay is a modal view drawn centered above the current screen.
type Overlay struct {
	View View
	// Dismiss lists the keys that close the overlay.
	Dismiss []string

	region filter.Region
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Clear drops every overlay.
func (s *OverlayStack) Clear() {
	s.Stack = nil
}

// UpdateTop passes msg to the top overlay and stores the returned view.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// Render draws every overlay, bottom first, centered on base, and records
// where each landed for PressOutside.
func (s *OverlayStack) Render(base string, width, height int) string {
	for i := range s.Stack {
		box := s.Stack[i].View.View()
		x, y := centerIn(box, width, height)
		s.Stack[i].region = boxRegion(box, x, y)
		base = placeOverlay(base, box, x, y)
	}
	return base
}

// PressOutside reports whether a press at (x, y) misses the top overlay
// as last rendered.
func (s *OverlayStack) PressOutside(x, y int) bool {
	top, ok := s.Peek()
	if !ok {
		return false
	}
	return !top.region.Contains(x, y)
}
