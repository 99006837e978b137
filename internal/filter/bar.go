package filter

import (
	"fmt"
	"log/slog"
)

// Bar is the filter bar of one screen: its panels share a single Popover,
// so at most one of them is open at a time.
type Bar struct {
	Name string

	// OnChange observes primary transitions after the panels have been
	// notified.
	OnChange func(from, to ActiveFilter)

	scope  *Popover
	panels []*Panel
	byID   map[GroupID]*Panel
}

// NewBar creates a bar with a fresh exclusivity scope named name.
func NewBar(name string, logger *slog.Logger, panels ...*Panel) (*Bar, error) {
	b := &Bar{
		Name:  name,
		scope: NewPopover(name, logger),
		byID:  make(map[GroupID]*Panel, len(panels)),
	}
	for _, p := range panels {
		if p == nil || p.ID == "" {
			return nil, fmt.Errorf("new bar %q: %w", name, ErrEmptyGroupID)
		}
		if _, dup := b.byID[p.ID]; dup {
			return nil, fmt.Errorf("new bar %q: panel %q: %w", name, p.ID, ErrDuplicateGroup)
		}
		if s, ok := p.Content.(scoped); ok {
			s.bind(b.scope, p.ID)
		}
		b.byID[p.ID] = p
		b.panels = append(b.panels, p)
	}
	b.scope.OnChange = b.changed
	return b, nil
}

func (b *Bar) changed(from, to ActiveFilter) {
	if id, ok := from.Get(); ok {
		if p := b.byID[id]; p != nil {
			p.Content.Dismissed()
		}
	}
	if id, ok := to.Get(); ok {
		if p := b.byID[id]; p != nil {
			p.Content.Opened()
		}
	}
	if b.OnChange != nil {
		b.OnChange(from, to)
	}
}

// Scope returns the bar's Popover.
func (b *Bar) Scope() *Popover { return b.scope }

// Panels returns the panels in display order.
func (b *Bar) Panels() []*Panel { return b.panels }

// Panel looks up a panel by id.
func (b *Bar) Panel(id GroupID) (*Panel, bool) {
	p, ok := b.byID[id]
	return p, ok
}

// Toggle toggles panel id. Unknown ids are ignored.
func (b *Bar) Toggle(id GroupID) {
	if _, ok := b.byID[id]; ok {
		b.scope.Toggle(id)
	}
}

// Open opens panel id. Unknown ids are ignored.
func (b *Bar) Open(id GroupID) {
	if _, ok := b.byID[id]; ok {
		b.scope.Open(id)
	}
}

// Close closes whichever panel is open.
func (b *Bar) Close() { b.scope.Close() }

// IsOpen reports whether panel id is open.
func (b *Bar) IsOpen(id GroupID) bool { return b.scope.IsOpen(id) }

// Active returns the open panel.
func (b *Bar) Active() (*Panel, bool) {
	id, ok := b.scope.Active().Get()
	if !ok {
		return nil, false
	}
	p, ok := b.byID[id]
	return p, ok
}

// Resolve applies a content outcome to the open panel.
func (b *Bar) Resolve(o Outcome) {
	if o == Close {
		b.scope.Close()
	}
}

// Labels returns every trigger label in display order.
func (b *Bar) Labels() []string {
	out := make([]string, len(b.panels))
	for i, p := range b.panels {
		out[i] = p.Label()
	}
	return out
}

// Teardown closes the scope for an unmounting screen.
func (b *Bar) Teardown() { b.scope.Teardown() }
