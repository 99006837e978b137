package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetectionBar(t *testing.T) (*Bar, *OptionList) {
	t.Helper()
	chain := mustList(t, detectionChains, "All Chains")
	chainPanel, err := NewPanel("chain", chain)
	require.NoError(t, err)
	sevPanel, err := NewPanel("severity", mustList(t, []string{"All Severity", "Low", "Medium", "High"}, "All Severity"))
	require.NoError(t, err)
	bar, err := NewBar("detection", nil, chainPanel, sevPanel)
	require.NoError(t, err)
	return bar, chain
}

func TestBar_PickingOptionClosesAndRelabels(t *testing.T) {
	bar, chain := newDetectionBar(t)
	bar.Open("chain")
	require.True(t, bar.IsOpen("chain"))

	bar.Resolve(chain.SelectLabel("Solana"))

	assert.False(t, bar.IsOpen("chain"))
	assert.Equal(t, []string{"Solana", "All Severity"}, bar.Labels())
}

func TestBar_OpeningSecondPanelClosesFirst(t *testing.T) {
	mcap, err := NewBucketRange("Market Cap", mcapBuckets, 2, 5, nil)
	require.NoError(t, err)
	mp, err := NewPanel("mcap", mcap)
	require.NoError(t, err)
	sp, err := NewPanel("sector", mustList(t, []string{"All", "RWA", "AI"}, "All"))
	require.NoError(t, err)
	bar, err := NewBar("overview", nil, mp, sp)
	require.NoError(t, err)

	bar.Toggle("mcap")
	require.True(t, bar.IsOpen("mcap"))
	mcap.Slider().Move(HandleMin, 0)

	bar.Toggle("sector")
	assert.False(t, bar.IsOpen("mcap"))
	assert.True(t, bar.IsOpen("sector"))
	lo, _ := mcap.Draft()
	assert.Equal(t, 2, lo, "closing a panel discards its draft")

	active, ok := bar.Active()
	require.True(t, ok)
	assert.Equal(t, GroupID("sector"), active.ID)
}

func TestBar_OutsidePressClosesOnlyOpenPanel(t *testing.T) {
	bar, chain := newDetectionBar(t)
	bar.Resolve(chain.SelectLabel("Base"))
	bar.Scope().RegisterBoundary("severity", Region{X: 20, Y: 3, W: 14, H: 1}, Region{X: 20, Y: 4, W: 18, H: 6})
	var changes int
	bar.OnChange = func(ActiveFilter, ActiveFilter) { changes++ }

	bar.Open("severity")
	_, closed := bar.Scope().PointerDown(70, 15)

	assert.True(t, closed)
	assert.False(t, bar.IsOpen("severity"))
	assert.Equal(t, 2, changes)
	sel, _ := chain.Selected()
	assert.Equal(t, "Base", sel, "no other state changes")
}

func TestBar_RejectsBadPanels(t *testing.T) {
	a, err := NewPanel("chain", mustList(t, detectionChains, ""))
	require.NoError(t, err)
	b, err := NewPanel("chain", mustList(t, detectionChains, ""))
	require.NoError(t, err)

	_, err = NewBar("x", nil, a, b)
	assert.True(t, errors.Is(err, ErrDuplicateGroup))

	_, err = NewBar("x", nil, a, nil)
	assert.True(t, errors.Is(err, ErrEmptyGroupID))

	_, err = NewPanel("", mustList(t, detectionChains, ""))
	assert.True(t, errors.Is(err, ErrEmptyGroupID))
	_, err = NewPanel("chain", nil)
	assert.Error(t, err)
}

func TestBar_UnknownIDsIgnored(t *testing.T) {
	bar, _ := newDetectionBar(t)
	bar.Toggle("timeframe")
	bar.Open("nope")
	_, ok := bar.Active()
	assert.False(t, ok)
}

func TestBar_LabelOverride(t *testing.T) {
	l := mustList(t, []string{"Bullish", "Bearish"}, "Bullish")
	p, err := NewPanel("sentiment", l)
	require.NoError(t, err)
	p.WithLabel(func() string { return "Sentiment" })
	assert.Equal(t, "Sentiment", p.Label())
}

// recordingContent counts lifecycle notifications.
type recordingContent struct {
	opened, dismissed int
}

func (r *recordingContent) Kind() ContentKind { return KindList }
func (r *recordingContent) Label() string     { return "rec" }
func (r *recordingContent) Opened()           { r.opened++ }
func (r *recordingContent) Dismissed()        { r.dismissed++ }

func TestBar_LifecycleHooks(t *testing.T) {
	a, b := &recordingContent{}, &recordingContent{}
	pa, err := NewPanel("a", a)
	require.NoError(t, err)
	pb, err := NewPanel("b", b)
	require.NoError(t, err)
	bar, err := NewBar("hooks", nil, pa, pb)
	require.NoError(t, err)

	bar.Open("a")
	bar.Open("b")
	bar.Close()
	bar.Close()

	assert.Equal(t, 1, a.opened)
	assert.Equal(t, 1, a.dismissed)
	assert.Equal(t, 1, b.opened)
	assert.Equal(t, 1, b.dismissed)
}

func TestBar_TeardownClosesEverything(t *testing.T) {
	bar, _ := newDetectionBar(t)
	bar.Scope().RegisterBoundary("chain", Region{W: 10, H: 1})
	bar.Open("chain")
	bar.Teardown()
	assert.False(t, bar.IsOpen("chain"))
	assert.False(t, bar.Scope().Listening())
	assert.Empty(t, bar.Scope().Boundary("chain"))
}
