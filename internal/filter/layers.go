package filter

// LayerKind tags an overlay layer with its z-order within a scope.
type LayerKind int

const (
	// LayerPrimary is the filter popup governed by the ActiveFilter.
	LayerPrimary LayerKind = iota
	// LayerSecondary is a full-screen overlay opened from inside the
	// primary popup, such as the calendar of a date field.
	LayerSecondary
)

func (k LayerKind) String() string {
	switch k {
	case LayerPrimary:
		return "primary"
	case LayerSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Layer describes one open overlay.
type Layer struct {
	Kind LayerKind
	// Owner is the group whose popup is, or spawned, this layer.
	Owner GroupID
	// Tag distinguishes secondary layers of one owner (e.g. "from", "to").
	Tag string
	// Region is the secondary layer's own box. Presses outside it land on
	// the scrim. Unused for the primary layer.
	Region Region
}

// OpenSecondary stacks a secondary layer above the open panel. It fails
// when no panel is open; the secondary slot is never shared with the
// active-group slot. An already open secondary layer is replaced.
func (p *Popover) OpenSecondary(tag string) bool {
	owner, ok := p.active.Get()
	if !ok {
		return false
	}
	if p.secondary != nil {
		p.closeSecondary()
	}
	p.secondary = &Layer{Kind: LayerSecondary, Owner: owner, Tag: tag}
	p.log.Debug("secondary layer opened", "owner", string(owner), "tag", tag)
	if p.OnLayer != nil {
		p.OnLayer(*p.secondary, true)
	}
	return true
}

// SetSecondaryRegion records where the secondary layer is drawn.
func (p *Popover) SetSecondaryRegion(r Region) {
	if p.secondary != nil {
		p.secondary.Region = r
	}
}

// CloseSecondary closes the secondary layer and leaves the primary panel
// as it is.
func (p *Popover) CloseSecondary() bool {
	if p.secondary == nil {
		return false
	}
	p.closeSecondary()
	return true
}

func (p *Popover) closeSecondary() {
	if p.secondary == nil {
		return
	}
	l := *p.secondary
	p.secondary = nil
	p.log.Debug("secondary layer closed", "owner", string(l.Owner), "tag", l.Tag)
	if p.OnLayer != nil {
		p.OnLayer(l, false)
	}
}

// Secondary returns the open secondary layer.
func (p *Popover) Secondary() (Layer, bool) {
	if p.secondary == nil {
		return Layer{}, false
	}
	return *p.secondary, true
}

// Layers returns the open layers from bottom to top.
func (p *Popover) Layers() []Layer {
	owner, ok := p.active.Get()
	if !ok {
		return nil
	}
	out := []Layer{{Kind: LayerPrimary, Owner: owner}}
	if p.secondary != nil {
		out = append(out, *p.secondary)
	}
	return out
}

// Top returns the topmost open layer.
func (p *Popover) Top() (Layer, bool) {
	ls := p.Layers()
	if len(ls) == 0 {
		return Layer{}, false
	}
	return ls[len(ls)-1], true
}
