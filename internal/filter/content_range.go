package filter

import (
	"fmt"
	"slices"
)

// BucketRange is a slider panel over labeled buckets. The slider edits a
// draft; Apply commits it, Cancel and dismissal throw it away. A Live
// range commits every slider change and needs no Apply.
type BucketRange struct {
	Title   string
	Buckets []string

	// Placeholder is the trigger label while the whole range is selected.
	Placeholder string
	// LabelFunc overrides the trigger label, given the committed bucket
	// labels.
	LabelFunc func(lo, hi string) string
	// Live commits on every slider change.
	Live bool

	// OnApply receives committed (min, max) indices.
	OnApply func(min, max int)

	slider *RangeSlider
	lo, hi int
}

// NewBucketRange creates a dual-handle range selecting buckets [lo, hi].
func NewBucketRange(title string, buckets []string, lo, hi int, onApply func(min, max int)) (*BucketRange, error) {
	r := &BucketRange{Title: title, Buckets: slices.Clone(buckets), OnApply: onApply}
	s, err := NewRangeSlider(len(buckets), lo, hi, r.slid)
	if err != nil {
		return nil, fmt.Errorf("bucket range %q: %w", title, err)
	}
	r.slider = s
	r.lo, r.hi = s.Range()
	return r, nil
}

// NewThreshold creates a live single-handle range selecting [lo, last].
func NewThreshold(title string, buckets []string, lo int, onApply func(min, max int)) (*BucketRange, error) {
	r := &BucketRange{Title: title, Buckets: slices.Clone(buckets), OnApply: onApply, Live: true}
	s, err := NewThresholdSlider(len(buckets), lo, r.slid)
	if err != nil {
		return nil, fmt.Errorf("threshold %q: %w", title, err)
	}
	r.slider = s
	r.lo, r.hi = s.Range()
	return r, nil
}

func (r *BucketRange) slid(lo, hi int) {
	if r.Live {
		r.commit(lo, hi)
	}
}

func (r *BucketRange) commit(lo, hi int) {
	r.lo, r.hi = lo, hi
	if r.OnApply != nil {
		r.OnApply(lo, hi)
	}
}

// Kind implements Content.
func (r *BucketRange) Kind() ContentKind {
	if r.slider.Pinned() {
		return KindThreshold
	}
	return KindRange
}

// Slider returns the draft slider.
func (r *BucketRange) Slider() *RangeSlider { return r.slider }

// Committed returns the committed (min, max).
func (r *BucketRange) Committed() (int, int) { return r.lo, r.hi }

// Draft returns the slider's current (min, max).
func (r *BucketRange) Draft() (int, int) { return r.slider.Range() }

// Bucket returns the label of bucket i, clamped into range.
func (r *BucketRange) Bucket(i int) string {
	return r.Buckets[r.slider.Clamp(i)]
}

// Label implements Content.
func (r *BucketRange) Label() string {
	lo, hi := r.Bucket(r.lo), r.Bucket(r.hi)
	switch {
	case r.LabelFunc != nil:
		return r.LabelFunc(lo, hi)
	case r.Placeholder != "" && r.lo == 0 && r.hi == len(r.Buckets)-1:
		return r.Placeholder
	case r.slider.Pinned():
		return lo + " +"
	default:
		return lo + " – " + hi
	}
}

// Opened implements Content.
func (r *BucketRange) Opened() { r.slider.Set(r.lo, r.hi) }

// Dismissed implements Content.
func (r *BucketRange) Dismissed() { r.slider.Set(r.lo, r.hi) }

// Apply commits the draft and closes the panel.
func (r *BucketRange) Apply() Outcome {
	r.commit(r.slider.Range())
	return Close
}

// Cancel restores the committed selection and closes the panel.
func (r *BucketRange) Cancel() Outcome {
	r.slider.Set(r.lo, r.hi)
	return Close
}
