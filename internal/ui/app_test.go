package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"alphadash/internal/config"
	"alphadash/internal/filter"
	"alphadash/internal/logging"
	"alphadash/internal/telemetry"
)

func newTestApp(t *testing.T) (*AppModel, tea.Model) {
	t.Helper()
	a, err := NewAppModel(config.Default(), logging.Discard(), nil)
	require.NoError(t, err)
	a.Now = fixedClock
	m := a.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 45})
	return a, m
}

// send delivers msg and then every message its commands produce, the way
// the Bubble Tea runtime would. tea.Quit ends the chain and is returned.
func send(m tea.Model, msg tea.Msg) tea.Msg {
	for msg != nil {
		if _, ok := msg.(tea.QuitMsg); ok {
			return msg
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			return nil
		}
		msg = cmd()
	}
	return nil
}

func sendKeys(m tea.Model, keys ...string) tea.Msg {
	var last tea.Msg
	for _, k := range keys {
		last = send(m, keyMsg(k))
	}
	return last
}

func TestNewAppModel_StartScreenFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.StartScreen = config.ScreenDetection
	a, err := NewAppModel(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ScreenDetection, a.Screen)
	assert.Equal(t, ScreenDetection, a.KeyHandler.Screen)
	assert.IsType(t, &DetectionScreen{}, a.Current)

	cfg.StartScreen = "portfolio"
	_, err = NewAppModel(cfg, nil, nil)
	assert.Error(t, err)
}

func TestApp_NumberKeysSwitchAndRemount(t *testing.T) {
	a, m := newTestApp(t)
	old := a.Current.Bar()
	p, _ := old.Bar().Panel("sector")
	p.Content.(*filter.OptionList).SelectLabel("Meme")
	old.Bar().Open("chain")

	// The open panel would take the digit, so switch by message.
	send(m, SwitchScreenMsg{Screen: ScreenKOL})
	assert.Equal(t, ScreenKOL, a.Screen)
	assert.IsType(t, &KOLScreen{}, a.Current)
	assert.True(t, old.Bar().Scope().Active().IsNone(), "unmounted bar is torn down")

	sendKeys(m, "1")
	require.IsType(t, &OverviewScreen{}, a.Current)
	assert.NotSame(t, old, a.Current.Bar(), "switching back mounts a fresh screen")
	assert.Equal(t, "Sectors", a.Current.Bar().Bar().Labels()[1])
}

func TestApp_LeaderSequenceSwitches(t *testing.T) {
	a, m := newTestApp(t)
	sendKeys(m, " ")
	assert.True(t, a.KeyHandler.LeaderWaiting)
	assert.Contains(t, stripANSI(m.View()), "Go to")

	sendKeys(m, "g")
	assert.Contains(t, stripANSI(m.View()), "SPC g")

	sendKeys(m, "d")
	assert.Equal(t, ScreenDetection, a.Screen)
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_OpenPanelTakesKeysBeforeKeybinds(t *testing.T) {
	a, m := newTestApp(t)
	a.Current.Bar().Bar().Open("chain")

	assert.Nil(t, sendKeys(m, "q"), "q types into the search field")
	p, _ := a.Current.Bar().Bar().Panel("chain")
	assert.Equal(t, "q", p.Content.(*filter.OptionList).Query())

	sendKeys(m, "1", "2")
	assert.Equal(t, ScreenOverview, a.Screen)

	sendKeys(m, "esc")
	assert.False(t, a.Current.Bar().Open())
	assert.IsType(t, tea.QuitMsg{}, sendKeys(m, "q"))
}

func TestApp_CtrlCAlwaysQuits(t *testing.T) {
	a, m := newTestApp(t)
	a.Current.Bar().Bar().Open("chain")
	assert.IsType(t, tea.QuitMsg{}, sendKeys(m, "ctrl+c"))

	send(m, ShowResetFiltersMsg{})
	require.Equal(t, 1, a.Overlays.Len())
	assert.IsType(t, tea.QuitMsg{}, sendKeys(m, "ctrl+c"))
}

func TestApp_ProfileModal(t *testing.T) {
	a, m := newTestApp(t)
	sendKeys(m, "2", "j", "o")

	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	profile, ok := top.View.(*ProfileModal)
	require.True(t, ok)
	assert.Equal(t, "Cobie", profile.Post.Author)
	assert.Contains(t, stripANSI(m.View()), "X · Macro influencer · followers 100k >")

	// Keys go to the overlay, not the screen.
	sendKeys(m, "1")
	assert.Equal(t, ScreenKOL, a.Screen)

	sendKeys(m, "esc")
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestApp_LeaderProfileOnlyOnKOL(t *testing.T) {
	a, m := newTestApp(t)
	sendKeys(m, " ", "p")
	assert.Equal(t, 0, a.Overlays.Len())

	sendKeys(m, "2", " ", "p")
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	assert.Equal(t, "Ansem", top.View.(*ProfileModal).Post.Author)
}

func TestApp_ResetFiltersAfterConfirm(t *testing.T) {
	a, m := newTestApp(t)
	p, _ := a.Current.Bar().Bar().Panel("sector")
	p.Content.(*filter.OptionList).SelectLabel("Meme")
	require.Len(t, a.Current.(*OverviewScreen).Coins(), 1)

	sendKeys(m, " ", "f", "r")
	require.Equal(t, 1, a.Overlays.Len())
	assert.Contains(t, stripANSI(m.View()), "Reset filters?")

	sendKeys(m, "y")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Len(t, a.Current.(*OverviewScreen).Coins(), len(mockCoins))
	assert.Equal(t, "filters reset", a.Status)
}

func TestApp_ResetFiltersCancelled(t *testing.T) {
	a, m := newTestApp(t)
	p, _ := a.Current.Bar().Bar().Panel("sector")
	p.Content.(*filter.OptionList).SelectLabel("Meme")

	sendKeys(m, " ", "f", "r", "n")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Len(t, a.Current.(*OverviewScreen).Coins(), 1)
}

func TestApp_CommitsAreLoggedAndTraced(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	a, err := NewAppModel(config.Default(), logging.Discard(), telemetry.NewRecorder(exp))
	require.NoError(t, err)
	a.Now = fixedClock
	m := a.AsTeaModel()

	a.Current.Bar().Bar().Open("chain")
	sendKeys(m, "down", "enter")

	require.Len(t, a.Activity, 1)
	assert.Equal(t, CommitEvent{Time: fixedClock(), Screen: ScreenOverview, Group: "chain", Value: "Solana"}, a.Activity[0])
	assert.Equal(t, "chain → Solana", a.Status)

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, telemetry.SpanCommit, spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("alphadash.filter.value", "Solana"))
}

func TestApp_ActivityWindowFollowsCommits(t *testing.T) {
	a, m := newTestApp(t)
	p, _ := a.Current.Bar().Bar().Panel("sector")
	p.Content.(*filter.OptionList).SelectLabel("AI")

	sendKeys(m, " ", "l")
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	w := top.View.(*ActivityWindow)
	require.Len(t, w.Events(), 1)
	assert.Contains(t, stripANSI(m.View()), "Filter activity")

	a.commit(ScreenOverview, "chain", "Tron")
	assert.Len(t, w.Events(), 2)
	assert.Contains(t, stripANSI(w.View()), "Tron")
}

func TestApp_MouseTranslatesBelowHeader(t *testing.T) {
	a, m := newTestApp(t)
	x, y := findText(m.View(), "Sectors ▾")
	require.Equal(t, headerHeight+barRow, y)

	send(m, press(x, y))
	assert.True(t, a.Current.Bar().Bar().IsOpen("sector"))

	// A header press outside the tabs closes the panel.
	send(m, press(135, 1))
	assert.False(t, a.Current.Bar().Open())
}

func TestApp_HeaderTabsSwitch(t *testing.T) {
	a, m := newTestApp(t)
	x, y := findText(m.View(), "3 Detection")
	require.Equal(t, 0, y)

	send(m, press(x, y))
	assert.Equal(t, ScreenDetection, a.Screen)
}

func TestApp_PressOutsideOverlayDismisses(t *testing.T) {
	a, m := newTestApp(t)
	sendKeys(m, "2", "o")
	require.Equal(t, 1, a.Overlays.Len())
	x, y := findText(m.View(), "Esc: close")
	send(m, press(x, y))
	assert.Equal(t, 1, a.Overlays.Len(), "press inside keeps the modal")

	send(m, press(0, 44))
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestApp_DetectionUsesAppClock(t *testing.T) {
	a, m := newTestApp(t)
	a.Now = func() time.Time { return time.Date(2025, time.December, 31, 8, 0, 0, 0, time.UTC) }
	sendKeys(m, "3")

	d := a.Current.(*DetectionScreen)
	require.NotEmpty(t, d.Events())
	assert.Equal(t, "2025-12-31", d.Events()[0].Date.String())
}
