package filter

import "errors"

var (
	// ErrEmptyGroupID is returned when a panel is built without an id.
	ErrEmptyGroupID = errors.New("filter: empty group id")
	// ErrDuplicateGroup is returned when two panels of one bar share an id.
	ErrDuplicateGroup = errors.New("filter: duplicate group id")
	// ErrNoBuckets is returned when a slider has no buckets to select from.
	ErrNoBuckets = errors.New("filter: range needs at least one bucket")
	// ErrNoOptions is returned when a list or pair select has no options.
	ErrNoOptions = errors.New("filter: option list is empty")
)
