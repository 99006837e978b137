package filter

import "fmt"

// Panel is a trigger pill plus the content it discloses.
type Panel struct {
	ID      GroupID
	Content Content

	label func() string
}

// NewPanel creates a panel for content under id.
func NewPanel(id GroupID, content Content) (*Panel, error) {
	if id == "" {
		return nil, fmt.Errorf("new panel: %w", ErrEmptyGroupID)
	}
	if content == nil {
		return nil, fmt.Errorf("new panel %q: nil content", id)
	}
	return &Panel{ID: id, Content: content}, nil
}

// WithLabel overrides the trigger label. f must depend only on selection
// state.
func (p *Panel) WithLabel(f func() string) *Panel {
	p.label = f
	return p
}

// Label returns the trigger text.
func (p *Panel) Label() string {
	if p.label != nil {
		return p.label()
	}
	return p.Content.Label()
}
