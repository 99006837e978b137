package ui

import (
	"time"

	"alphadash/internal/filter"
)

// SwitchScreenMsg remounts the app on Screen (1/2/3, SPC g …, header tabs).
type SwitchScreenMsg struct {
	Screen Screen
}

// ShowResetFiltersMsg asks for confirmation before ResetFiltersMsg (SPC f r).
type ShowResetFiltersMsg struct{}

// ResetFiltersMsg remounts the current screen with default selections.
type ResetFiltersMsg struct{}

// CloseFiltersMsg closes the open panel of the current screen (SPC f c).
type CloseFiltersMsg struct{}

// ShowProfileMsg opens the author card of a KOL post. A nil Post means the
// post under the KOL cursor (SPC p).
type ShowProfileMsg struct {
	Post *Post
}

// ShowActivityMsg opens the filter activity window (SPC l).
type ShowActivityMsg struct{}

// DismissModalMsg closes the topmost overlay.
type DismissModalMsg struct{}

// CommitEvent is one committed filter selection.
type CommitEvent struct {
	Time   time.Time
	Screen Screen
	Group  filter.GroupID
	Value  string
}
