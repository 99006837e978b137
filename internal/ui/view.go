package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Screens, the filter bar and modals are Views.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// ScreenModel is a View that fills the area below the tab header and owns
// one filter bar.
type ScreenModel interface {
	View
	Screen() Screen
	Bar() *FilterBarView
	SetSize(width, height int)
}
