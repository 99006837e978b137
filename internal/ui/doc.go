// Package ui is the Bubble Tea front end of alphadash.
//
// The AppModel owns a tab header, the current ScreenModel and an
// OverlayStack of modals. Every screen embeds a FilterBarView, which
// renders a filter.Bar as a row of pills, draws the open panel's popup
// and, above it, a calendar layer, and routes mouse presses through the
// bar's Popover for outside-click dismissal.
//
// Key routing: modals first, then an open filter panel, then the SPC
// leader registry, then the screen.
package ui
