package filter

import "strings"

// Outcome tells the bar what a content action means for its panel.
type Outcome int

const (
	// Stay keeps the panel open.
	Stay Outcome = iota
	// Close asks the bar to close the panel.
	Close
)

// ContentKind names the widget inside a panel popup.
type ContentKind int

const (
	KindList ContentKind = iota
	KindRange
	KindThreshold
	KindPair
	KindDateRange
)

func (k ContentKind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindRange:
		return "range"
	case KindThreshold:
		return "threshold"
	case KindPair:
		return "pair"
	case KindDateRange:
		return "daterange"
	default:
		return "unknown"
	}
}

// Content is the popup body of a panel. The Popover never looks inside;
// the bar only forwards open and dismiss notifications.
type Content interface {
	Kind() ContentKind
	// Label is the trigger text, derived from the committed selection only.
	Label() string
	// Opened is called when the panel opens. Draft-based contents reload
	// their draft from the committed selection here.
	Opened()
	// Dismissed is called when the panel closes for any reason.
	Dismissed()
}

// scoped is implemented by contents that open layers of their own.
type scoped interface {
	bind(p *Popover, id GroupID)
}

// PlaceholderLabel shows placeholder when nothing, or the catch-all
// option all, is selected; otherwise the selection itself.
func PlaceholderLabel(placeholder, all string) func(string) string {
	return func(sel string) string {
		if sel == "" || sel == all {
			return placeholder
		}
		return sel
	}
}

// FirstWordLabel is PlaceholderLabel showing only the first word of the
// selection ("Micro influencer" -> "Micro").
func FirstWordLabel(placeholder, all string) func(string) string {
	return func(sel string) string {
		if sel == "" || sel == all {
			return placeholder
		}
		if f := strings.Fields(sel); len(f) > 0 {
			return f[0]
		}
		return placeholder
	}
}
