// Package filter implements the disclosure/filter-panel subsystem shared by
// every dashboard screen.
//
// Core abstractions:
//   - Popover: one exclusivity scope. Tracks the single open group
//     (ActiveFilter), hit-tests pointer presses against registered
//     boundary regions, and owns the secondary overlay layer.
//   - RangeSlider: dual-handle (or pinned single-handle) slider over
//     discrete buckets.
//   - Calendar: single-month date grid with cursor navigation.
//   - Panel: a group id plus content (option list, bucket range,
//     pair select, date range).
//   - Bar: the panels of one screen sharing one Popover.
//
// Nothing in this package renders or blocks. Every method completes
// synchronously and is meant to be called from a Bubble Tea Update.
package filter
