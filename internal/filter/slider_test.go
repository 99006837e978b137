package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var mcapBuckets = []string{"1k", "10k", "100k", "1M", "10M", "100M", ">100M"}

func TestRangeSlider_DragMinToZero(t *testing.T) {
	var got [][2]int
	s, err := NewRangeSlider(len(mcapBuckets), 2, 5, func(lo, hi int) { got = append(got, [2]int{lo, hi}) })
	require.NoError(t, err)

	s.Press(2)
	s.DragTo(1)
	s.DragTo(0)
	assert.Empty(t, got, "intermediate moves are not committed")
	s.Release()

	lo, hi := s.Range()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 5, hi)
	assert.Equal(t, [][2]int{{0, 5}}, got)
	assert.Equal(t, "1k", mcapBuckets[lo])
	assert.Equal(t, "100M", mcapBuckets[hi])
}

func TestRangeSlider_BothHandlesOnOneBucket(t *testing.T) {
	s, err := NewRangeSlider(7, 1, 5, nil)
	require.NoError(t, err)

	s.Move(HandleMin, 3)
	s.Move(HandleMax, 3)

	lo, hi := s.Range()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 3, hi)
}

func TestRangeSlider_Clamping(t *testing.T) {
	s, err := NewRangeSlider(7, 2, 4, nil)
	require.NoError(t, err)

	s.Move(HandleMin, -10)
	assert.Equal(t, 0, s.Min())
	s.Move(HandleMax, 99)
	assert.Equal(t, 6, s.Max())
}

func TestRangeSlider_HandlesNeverCross(t *testing.T) {
	s, err := NewRangeSlider(7, 2, 4, nil)
	require.NoError(t, err)

	s.Move(HandleMin, 6)
	assert.Equal(t, 4, s.Min(), "min stops on max")
	assert.Equal(t, 4, s.Max())

	s.Move(HandleMax, 0)
	assert.Equal(t, 4, s.Max(), "max stops on min")
}

func TestRangeSlider_OnChangeOnlyWhenMoved(t *testing.T) {
	calls := 0
	s, err := NewRangeSlider(7, 0, 6, func(int, int) { calls++ })
	require.NoError(t, err)

	s.Move(HandleMin, -3)
	s.Step(HandleMax, 1)
	assert.Zero(t, calls)

	s.Step(HandleMin, 1)
	assert.Equal(t, 1, calls)
}

func TestRangeSlider_ConstructorClampsAndRejectsEmpty(t *testing.T) {
	_, err := NewRangeSlider(0, 0, 0, nil)
	assert.True(t, errors.Is(err, ErrNoBuckets))

	s, err := NewRangeSlider(4, 3, 1, nil)
	require.NoError(t, err)
	lo, hi := s.Range()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 3, hi, "inverted input collapses onto min")
}

func TestRangeSlider_PressPicksNearestHandle(t *testing.T) {
	s, err := NewRangeSlider(7, 1, 5, nil)
	require.NoError(t, err)

	assert.Equal(t, HandleMin, s.Nearest(0))
	assert.Equal(t, HandleMin, s.Nearest(2))
	assert.Equal(t, HandleMax, s.Nearest(4))
	assert.Equal(t, HandleMax, s.Nearest(6))
	assert.Equal(t, HandleMin, s.Nearest(3), "tie between the handles goes to min")
}

func TestRangeSlider_TiedHandlesSplitByDirection(t *testing.T) {
	s, err := NewRangeSlider(7, 3, 3, nil)
	require.NoError(t, err)

	s.Press(3)
	s.DragTo(5)
	s.Release()
	lo, hi := s.Range()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 5, hi)

	s.Set(3, 3)
	s.Press(3)
	s.DragTo(1)
	s.Release()
	lo, hi = s.Range()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)
}

func TestThresholdSlider_MaxIsPinned(t *testing.T) {
	s, err := NewThresholdSlider(4, 2, nil)
	require.NoError(t, err)
	assert.True(t, s.Pinned())
	assert.Equal(t, 3, s.Max())

	s.Move(HandleMax, 0)
	assert.Equal(t, 3, s.Max())
	assert.Equal(t, HandleMin, s.Nearest(3))

	s.Press(3)
	s.Release()
	assert.Equal(t, 3, s.Min())
	assert.Equal(t, 3, s.Max())
}

func TestIndexAt(t *testing.T) {
	assert.Equal(t, 0, IndexAt(-0.5, 7))
	assert.Equal(t, 0, IndexAt(0.05, 7))
	assert.Equal(t, 3, IndexAt(0.5, 7))
	assert.Equal(t, 6, IndexAt(0.95, 7))
	assert.Equal(t, 6, IndexAt(4, 7))
	assert.Equal(t, 0, IndexAt(0.7, 1))

	// 7 buckets on a 25-cell track: one bucket every 4 cells.
	assert.Equal(t, 0, IndexAtCell(1, 25, 7))
	assert.Equal(t, 1, IndexAtCell(3, 25, 7))
	assert.Equal(t, 6, IndexAtCell(24, 25, 7))
	assert.Equal(t, 6, IndexAtCell(80, 25, 7))
	assert.Equal(t, 0, IndexAtCell(-4, 25, 7))
}

func TestRangeSlider_PropertyInvariantHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		pinned := rapid.Bool().Draw(t, "pinned")
		var s *RangeSlider
		var err error
		check := func(lo, hi int) {
			if lo < 0 || lo > hi || hi > n-1 {
				t.Fatalf("invariant broken: 0 <= %d <= %d <= %d", lo, hi, n-1)
			}
		}
		if pinned {
			s, err = NewThresholdSlider(n, rapid.IntRange(-5, n+5).Draw(t, "lo"), check)
		} else {
			s, err = NewRangeSlider(n, rapid.IntRange(-5, n+5).Draw(t, "lo"), rapid.IntRange(-5, n+5).Draw(t, "hi"), check)
		}
		if err != nil {
			t.Fatalf("construct: %v", err)
		}
		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for range steps {
			idx := rapid.IntRange(-20, n+20).Draw(t, "idx")
			h := Handle(rapid.IntRange(0, 1).Draw(t, "handle"))
			switch rapid.IntRange(0, 4).Draw(t, "action") {
			case 0:
				s.Move(h, idx)
			case 1:
				s.Step(h, idx-n/2)
			case 2:
				s.Press(idx)
			case 3:
				s.DragTo(idx)
			case 4:
				s.Release()
			}
			check(s.Range())
			if pinned && s.Max() != n-1 {
				t.Fatalf("pinned max moved to %d", s.Max())
			}
		}
	})
}

func TestRangeSlider_PropertyExtremesClamp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		s, err := NewRangeSlider(n, rapid.IntRange(0, n-1).Draw(t, "lo"), n-1, nil)
		if err != nil {
			t.Fatalf("construct: %v", err)
		}
		s.Move(HandleMin, -rapid.IntRange(1, 100).Draw(t, "below"))
		if s.Min() != 0 {
			t.Fatalf("min = %d after dragging below 0", s.Min())
		}
		s.Move(HandleMax, n-1+rapid.IntRange(1, 100).Draw(t, "above"))
		if s.Max() != n-1 {
			t.Fatalf("max = %d after dragging above %d", s.Max(), n-1)
		}
	})
}
