package filter

import (
	"fmt"
	"math"
)

// Handle selects one end of a RangeSlider.
type Handle int

const (
	HandleMin Handle = iota
	HandleMax
)

func (h Handle) String() string {
	if h == HandleMax {
		return "max"
	}
	return "min"
}

// Other returns the opposite handle.
func (h Handle) Other() Handle {
	if h == HandleMax {
		return HandleMin
	}
	return HandleMax
}

// RangeSlider is a dual-handle slider over n discrete buckets. After every
// update 0 <= min <= max <= n-1 holds: out-of-range indices clamp to the
// ends and a handle pushed past the other stops on it.
//
// A pinned slider keeps max at n-1 and moves only the min handle, which
// makes it a single-handle threshold slider.
type RangeSlider struct {
	n        int
	min, max int
	pinned   bool

	// OnChange receives (min, max) after every committed move.
	OnChange func(min, max int)

	dragging bool
	drag     Handle
	tied     bool // press landed on coinciding handles; direction decides
	pressAt  int
	moved    bool
}

// NewRangeSlider creates a slider over n buckets with the given selection,
// clamped into a valid state.
func NewRangeSlider(n, min, max int, onChange func(min, max int)) (*RangeSlider, error) {
	if n < 1 {
		return nil, fmt.Errorf("new range slider with %d buckets: %w", n, ErrNoBuckets)
	}
	s := &RangeSlider{n: n, OnChange: onChange}
	s.Set(min, max)
	return s, nil
}

// NewThresholdSlider creates a pinned slider selecting [min, n-1].
func NewThresholdSlider(n, min int, onChange func(min, max int)) (*RangeSlider, error) {
	s, err := NewRangeSlider(n, min, n-1, onChange)
	if err != nil {
		return nil, err
	}
	s.pinned = true
	return s, nil
}

// Len returns the bucket count.
func (s *RangeSlider) Len() int { return s.n }

// Min returns the min handle index.
func (s *RangeSlider) Min() int { return s.min }

// Max returns the max handle index.
func (s *RangeSlider) Max() int { return s.max }

// Range returns (min, max).
func (s *RangeSlider) Range() (int, int) { return s.min, s.max }

// Pinned reports whether the max handle is fixed at the last bucket.
func (s *RangeSlider) Pinned() bool { return s.pinned }

// Pos returns the index of handle h.
func (s *RangeSlider) Pos(h Handle) int {
	if h == HandleMax {
		return s.max
	}
	return s.min
}

// Clamp maps any index into [0, n-1].
func (s *RangeSlider) Clamp(i int) int {
	return max(0, min(i, s.n-1))
}

// Set replaces the selection without firing OnChange. Used by hosts to
// load a committed selection. Inverted input collapses onto min.
func (s *RangeSlider) Set(lo, hi int) {
	lo, hi = s.Clamp(lo), s.Clamp(hi)
	if s.pinned {
		hi = s.n - 1
	}
	if hi < lo {
		hi = lo
	}
	s.min, s.max = lo, hi
	s.dragging = false
}

// place moves handle h to idx, enforcing the clamping and ordering rules.
// It reports whether the selection changed.
func (s *RangeSlider) place(h Handle, idx int) bool {
	idx = s.Clamp(idx)
	switch h {
	case HandleMin:
		if idx > s.max {
			idx = s.max
		}
		if idx == s.min {
			return false
		}
		s.min = idx
	case HandleMax:
		if s.pinned {
			return false
		}
		if idx < s.min {
			idx = s.min
		}
		if idx == s.max {
			return false
		}
		s.max = idx
	}
	return true
}

func (s *RangeSlider) commit() {
	if s.OnChange != nil {
		s.OnChange(s.min, s.max)
	}
}

// Move commits handle h at idx. OnChange fires when the selection
// actually moved.
func (s *RangeSlider) Move(h Handle, idx int) {
	if s.place(h, idx) {
		s.commit()
	}
}

// Step moves handle h by delta buckets and commits.
func (s *RangeSlider) Step(h Handle, delta int) {
	s.Move(h, s.Pos(h)+delta)
}

// Nearest returns the handle a press at idx grabs.
func (s *RangeSlider) Nearest(idx int) Handle {
	if s.pinned {
		return HandleMin
	}
	dMin, dMax := abs(idx-s.min), abs(idx-s.max)
	switch {
	case dMin < dMax:
		return HandleMin
	case dMax < dMin:
		return HandleMax
	case idx < s.min:
		return HandleMin
	case idx > s.max:
		return HandleMax
	default:
		return HandleMin
	}
}

// Press starts a drag at idx on the nearest handle and moves it there.
// Nothing is committed until Release.
func (s *RangeSlider) Press(idx int) Handle {
	idx = s.Clamp(idx)
	s.dragging = true
	s.drag = s.Nearest(idx)
	s.tied = !s.pinned && s.min == s.max && idx == s.min
	s.pressAt = idx
	s.moved = s.place(s.drag, idx)
	return s.drag
}

// DragTo moves the dragged handle to idx. When the press landed on two
// coinciding handles, the first movement picks the handle by direction so
// the pair can be pulled apart either way.
func (s *RangeSlider) DragTo(idx int) {
	if !s.dragging {
		return
	}
	idx = s.Clamp(idx)
	if s.tied && idx != s.pressAt {
		s.tied = false
		if idx > s.pressAt {
			s.drag = HandleMax
		} else {
			s.drag = HandleMin
		}
	}
	if s.place(s.drag, idx) {
		s.moved = true
	}
}

// Release ends the drag and commits it if any handle moved.
func (s *RangeSlider) Release() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.tied = false
	if s.moved {
		s.commit()
	}
}

// Dragging returns the handle being dragged.
func (s *RangeSlider) Dragging() (Handle, bool) {
	return s.drag, s.dragging
}

// IndexAt maps a continuous position in [0, 1] to the nearest of n
// bucket indices. Positions outside [0, 1] clamp to the ends.
func IndexAt(frac float64, n int) int {
	if n <= 1 || math.IsNaN(frac) {
		return 0
	}
	frac = max(0, min(frac, 1))
	return int(math.Round(frac * float64(n-1)))
}

// IndexAtCell maps column col of a track width cells wide to a bucket.
func IndexAtCell(col, width, n int) int {
	if width <= 1 {
		return 0
	}
	return IndexAt(float64(col)/float64(width-1), n)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
