package filter

import (
	"fmt"
	"slices"
)

// PairField selects one picker of a PairSelect.
type PairField int

const (
	PairFrom PairField = iota
	PairTo
)

func (f PairField) String() string {
	if f == PairTo {
		return "to"
	}
	return "from"
}

// PairSelect is two pickers (From, To) over one vocabulary, edited as a
// draft and committed by Apply. No ordering between them is enforced.
type PairSelect struct {
	Title   string
	Options []string

	// Placeholder is the trigger label while the pair spans the whole
	// vocabulary.
	Placeholder string

	// OnApply receives the committed labels.
	OnApply func(from, to string)

	from, to           int
	draftFrom, draftTo int
	focus              PairField
}

// NewPairSelect creates a pair preset to from and to. Unknown labels fall
// back to the first and last option.
func NewPairSelect(title string, options []string, from, to string, onApply func(from, to string)) (*PairSelect, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("pair select %q: %w", title, ErrNoOptions)
	}
	p := &PairSelect{Title: title, Options: slices.Clone(options), OnApply: onApply}
	p.from = slices.Index(options, from)
	if p.from < 0 {
		p.from = 0
	}
	p.to = slices.Index(options, to)
	if p.to < 0 {
		p.to = len(options) - 1
	}
	p.Opened()
	return p, nil
}

// Kind implements Content.
func (p *PairSelect) Kind() ContentKind { return KindPair }

// Label implements Content.
func (p *PairSelect) Label() string {
	if p.Placeholder != "" && p.from == 0 && p.to == len(p.Options)-1 {
		return p.Placeholder
	}
	return p.Options[p.from] + " – " + p.Options[p.to]
}

// Opened implements Content.
func (p *PairSelect) Opened() {
	p.draftFrom, p.draftTo = p.from, p.to
	p.focus = PairFrom
}

// Dismissed implements Content.
func (p *PairSelect) Dismissed() {
	p.draftFrom, p.draftTo = p.from, p.to
}

// Committed returns the committed labels.
func (p *PairSelect) Committed() (string, string) {
	return p.Options[p.from], p.Options[p.to]
}

// Draft returns the labels being edited.
func (p *PairSelect) Draft() (string, string) {
	return p.Options[p.draftFrom], p.Options[p.draftTo]
}

// Focus returns the picker receiving keyboard input.
func (p *PairSelect) Focus() PairField { return p.focus }

// SetFocus moves keyboard input to f.
func (p *PairSelect) SetFocus(f PairField) { p.focus = f }

// Cycle moves picker f by delta options, wrapping at the ends.
func (p *PairSelect) Cycle(f PairField, delta int) {
	n := len(p.Options)
	v := &p.draftFrom
	if f == PairTo {
		v = &p.draftTo
	}
	*v = ((*v+delta)%n + n) % n
}

// SetDraft sets picker f to option i. Indices outside the list are ignored.
func (p *PairSelect) SetDraft(f PairField, i int) {
	if i < 0 || i >= len(p.Options) {
		return
	}
	if f == PairTo {
		p.draftTo = i
		return
	}
	p.draftFrom = i
}

// Apply commits the draft and closes the panel.
func (p *PairSelect) Apply() Outcome {
	p.from, p.to = p.draftFrom, p.draftTo
	if p.OnApply != nil {
		p.OnApply(p.Options[p.from], p.Options[p.to])
	}
	return Close
}

// Cancel discards the draft and closes the panel.
func (p *PairSelect) Cancel() Outcome {
	p.Dismissed()
	return Close
}
