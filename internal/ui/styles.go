package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, committed values
	ColorHighlight = "205" // Magenta - open pills, handles, cursors
	ColorDanger    = "196" // Red - bearish, high severity
	ColorGain      = "42"  // Green - bullish, price up
	ColorMuted     = "241" // Gray - hints, blanks
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - unselected track, pill background
	ColorWarning   = "208" // Orange - medium severity
)

// Styles contains shared style definitions used across screens and popups.
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Filter pills
	Pill        lipgloss.Style
	PillOpen    lipgloss.Style
	PillFocused lipgloss.Style

	// Popup boxes
	Popup    lipgloss.Style
	Calendar lipgloss.Style
	Modal    lipgloss.Style

	// Popup content
	Option         lipgloss.Style
	OptionCursor   lipgloss.Style
	OptionSelected lipgloss.Style
	Track          lipgloss.Style
	TrackFill      lipgloss.Style
	Handle         lipgloss.Style
	HandleFocused  lipgloss.Style
	Button         lipgloss.Style
	ButtonPrimary  lipgloss.Style
	Field          lipgloss.Style
	FieldFocused   lipgloss.Style
	Day            lipgloss.Style
	DayFocused     lipgloss.Style

	// Text
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Gain     lipgloss.Style
	Loss     lipgloss.Style
	Warning  lipgloss.Style
	Tab      lipgloss.Style
	TabOpen  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Pill: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	PillOpen: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	PillFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorDim)).
		Underline(true).
		Padding(0, 1),
	Popup: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Calendar: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Option: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	OptionCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	OptionSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Track: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	TrackFill: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Handle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	HandleFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ButtonPrimary: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Field: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	FieldFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Day: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	DayFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Gain: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGain)),
	Loss: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabOpen: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Underline(true).
		Padding(0, 1),
}
