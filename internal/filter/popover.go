package filter

import (
	"io"
	"log/slog"
)

// GroupID identifies a filter panel within one exclusivity scope
// (e.g. "mcap", "chain", "timerange").
type GroupID string

// ActiveFilter is either None or exactly one open group.
type ActiveFilter struct {
	id GroupID
}

// None is the ActiveFilter of a scope with every panel closed.
func None() ActiveFilter { return ActiveFilter{} }

// Only returns the ActiveFilter with id open. Only("") is None.
func Only(id GroupID) ActiveFilter { return ActiveFilter{id: id} }

// Get returns the open group, if any.
func (a ActiveFilter) Get() (GroupID, bool) {
	return a.id, a.id != ""
}

// IsNone reports whether no panel is open.
func (a ActiveFilter) IsNone() bool { return a.id == "" }

func (a ActiveFilter) String() string {
	if a.id == "" {
		return "none"
	}
	return string(a.id)
}

// Popover manages one exclusivity scope: at most one primary panel is
// open, and at most one secondary layer stacked above it.
//
// A Popover is created once per mounted screen and handed to the panels of
// that screen. It is not safe for concurrent use; all calls are expected
// from the Bubble Tea update loop.
type Popover struct {
	// Scope names the screen in log lines.
	Scope string

	// OnChange is called after every primary transition, with the previous
	// and the new ActiveFilter. Never called when nothing changes.
	OnChange func(from, to ActiveFilter)

	// OnLayer is called after the secondary layer opens or closes.
	OnLayer func(l Layer, open bool)

	active    ActiveFilter
	secondary *Layer
	bounds    map[GroupID][]Region
	log       *slog.Logger
}

// NewPopover creates a closed scope. A nil logger discards output.
func NewPopover(scope string, logger *slog.Logger) *Popover {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Popover{
		Scope:  scope,
		bounds: make(map[GroupID][]Region),
		log:    logger.With("scope", scope),
	}
}

// Active returns the open group of the scope.
func (p *Popover) Active() ActiveFilter { return p.active }

// IsOpen reports whether id is the open group.
func (p *Popover) IsOpen(id GroupID) bool {
	return id != "" && p.active.id == id
}

// Open makes id the open group, closing whatever else was open in a single
// transition. Open("") is a no-op.
func (p *Popover) Open(id GroupID) {
	if id == "" || p.active.id == id {
		return
	}
	p.transition(Only(id))
}

// Close closes the open group and any layer stacked above it.
func (p *Popover) Close() {
	if p.active.IsNone() {
		return
	}
	p.transition(None())
}

// Toggle closes id if it is open, otherwise opens it.
func (p *Popover) Toggle(id GroupID) {
	if id == "" {
		return
	}
	if p.active.id == id {
		p.Close()
		return
	}
	p.Open(id)
}

// transition is the only place the active group changes. The secondary
// layer belongs to the previous group, so it goes first.
func (p *Popover) transition(to ActiveFilter) {
	p.closeSecondary()
	from := p.active
	p.active = to
	if from.IsNone() && !to.IsNone() {
		p.log.Debug("outside-click listener attached")
	}
	if !from.IsNone() && to.IsNone() {
		p.log.Debug("outside-click listener detached")
	}
	p.log.Debug("popover transition", "from", from.String(), "to", to.String())
	if p.OnChange != nil {
		p.OnChange(from, to)
	}
}

// RegisterBoundary replaces the hit regions of id. A panel's boundary
// normally covers its trigger pill plus, while open, its popup.
// Registering no regions removes the boundary.
func (p *Popover) RegisterBoundary(id GroupID, regions ...Region) {
	if id == "" {
		return
	}
	if len(regions) == 0 {
		delete(p.bounds, id)
		return
	}
	p.bounds[id] = append([]Region(nil), regions...)
}

// Boundary returns the regions registered for id.
func (p *Popover) Boundary(id GroupID) []Region {
	return p.bounds[id]
}

// Listening reports whether the outside-click listener is attached, which
// is exactly while some primary panel is open.
func (p *Popover) Listening() bool { return !p.active.IsNone() }

// Inside reports whether (x, y) falls within any registered boundary.
func (p *Popover) Inside(x, y int) bool {
	for _, regions := range p.bounds {
		for _, r := range regions {
			if r.Contains(x, y) {
				return true
			}
		}
	}
	return false
}

// PointerDown applies outside-click dismissal for a press at (x, y).
//
// Only the topmost layer sees the press. With a secondary layer open, a
// press outside its region (the scrim) closes that layer alone; a press
// inside it does nothing here. Otherwise a press outside every registered
// boundary closes the open panel. A missing registration counts as
// outside.
//
// It returns the layer that was dismissed, and false when nothing closed.
func (p *Popover) PointerDown(x, y int) (LayerKind, bool) {
	if p.secondary != nil {
		if p.secondary.Region.Contains(x, y) {
			return LayerSecondary, false
		}
		p.log.Debug("secondary layer dismissed by scrim press", "x", x, "y", y)
		p.closeSecondary()
		return LayerSecondary, true
	}
	if !p.Listening() {
		return LayerPrimary, false
	}
	if p.Inside(x, y) {
		return LayerPrimary, false
	}
	p.log.Debug("primary layer dismissed by outside press", "x", x, "y", y)
	p.Close()
	return LayerPrimary, true
}

// Dismiss closes the topmost open layer only (the Escape key).
func (p *Popover) Dismiss() (LayerKind, bool) {
	if p.secondary != nil {
		p.closeSecondary()
		return LayerSecondary, true
	}
	if p.active.IsNone() {
		return LayerPrimary, false
	}
	p.Close()
	return LayerPrimary, true
}

// Teardown detaches the scope when its screen unmounts: every layer closes
// and every boundary is forgotten.
func (p *Popover) Teardown() {
	p.Close()
	clear(p.bounds)
	p.log.Debug("popover scope torn down")
}
