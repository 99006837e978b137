package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alphadash/internal/config"
	"alphadash/internal/filter"
	"alphadash/internal/logging"
	"alphadash/internal/telemetry"
)

// headerHeight is the number of rows above the current screen: the tab
// row and the status row.
const headerHeight = 2

// maxActivity bounds the kept commit history.
const maxActivity = 200

// AppModel is the root model. It owns exactly one mounted screen; switching
// screens tears the old one down and mounts a fresh one.
type AppModel struct {
	Screen     Screen
	Current    ScreenModel
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Config     *config.Config
	Log        *slog.Logger
	Recorder   *telemetry.Recorder // nil disables tracing
	Now        func() time.Time

	Status        string
	StatusIsError bool
	Activity      []CommitEvent

	width, height int
	tabs          []filter.Region
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model on cfg's start screen. A nil logger
// discards; a nil recorder disables tracing.
func NewAppModel(cfg *config.Config, logger *slog.Logger, rec *telemetry.Recorder) (*AppModel, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	start, err := ParseScreen(cfg.StartScreen)
	if err != nil {
		return nil, err
	}
	a := &AppModel{
		KeyHandler: NewKeyHandler(newKeybindRegistry()),
		Config:     cfg,
		Log:        logger,
		Recorder:   rec,
		Now:        time.Now,
		width:      80,
		height:     24,
	}
	if err := a.mount(start); err != nil {
		return nil, err
	}
	return a, nil
}

func newKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for i, s := range Screens {
		sc := s
		switchTo := func() tea.Msg { return SwitchScreenMsg{Screen: sc} }
		reg.BindWithDesc(fmt.Sprint(i+1), switchTo, sc.String())
	}
	reg.Group("SPC g", "Go to")
	reg.Group("SPC f", "Filters")
	reg.BindWithDesc("SPC g o", func() tea.Msg { return SwitchScreenMsg{Screen: ScreenOverview} }, "Overview")
	reg.BindWithDesc("SPC g k", func() tea.Msg { return SwitchScreenMsg{Screen: ScreenKOL} }, "KOL Feed")
	reg.BindWithDesc("SPC g d", func() tea.Msg { return SwitchScreenMsg{Screen: ScreenDetection} }, "Detection")
	reg.BindWithDesc("SPC f c", func() tea.Msg { return CloseFiltersMsg{} }, "Close panel")
	reg.BindWithDesc("SPC f r", func() tea.Msg { return ShowResetFiltersMsg{} }, "Reset filters")
	reg.BindWithDesc("SPC l", func() tea.Msg { return ShowActivityMsg{} }, "Activity")
	reg.BindWithDescForScreen("SPC p", func() tea.Msg { return ShowProfileMsg{} }, "Profile", []Screen{ScreenKOL})
	return reg
}

// newScreen builds a fresh screen model with default selections.
func (a *AppModel) newScreen(s Screen) (ScreenModel, error) {
	logger := a.Log.With("screen", s.String())
	switch s {
	case ScreenOverview:
		return NewOverviewScreen(a.Config.Overview, logger, a.commit)
	case ScreenKOL:
		return NewKOLScreen(a.Config.KOL, logger, a.commit)
	case ScreenDetection:
		return NewDetectionScreen(a.Config.Detection, logger, a.commit, a.Now)
	default:
		return nil, fmt.Errorf("mount: unknown screen %d", s)
	}
}

// mount replaces the current screen with a fresh s. On error the current
// screen stays.
func (a *AppModel) mount(s Screen) error {
	next, err := a.newScreen(s)
	if err != nil {
		return fmt.Errorf("mount %s: %w", s, err)
	}
	if a.Current != nil {
		a.Current.Bar().Teardown()
	}
	a.Screen = s
	a.Current = next
	a.Current.SetSize(a.width, a.height-headerHeight)
	if a.KeyHandler != nil {
		a.KeyHandler.Screen = s
	}
	a.Log.Debug("screen mounted", "screen", s.String())
	return nil
}

// commit observes every selection committed on the mounted screen.
func (a *AppModel) commit(screen Screen, group filter.GroupID, value string) {
	ev := CommitEvent{Time: a.Now(), Screen: screen, Group: group, Value: value}
	a.Activity = append(a.Activity, ev)
	if len(a.Activity) > maxActivity {
		a.Activity = a.Activity[len(a.Activity)-maxActivity:]
	}
	a.Status = fmt.Sprintf("%s → %s", group, value)
	a.StatusIsError = false
	a.Log.Info("filter committed", "screen", screen.String(), "group", string(group), "value", value)
	a.Recorder.RecordSelection(context.Background(), screen.String(), string(group), value)

	if top, ok := a.Overlays.Peek(); ok {
		if _, isActivity := top.View.(*ActivityWindow); isActivity {
			a.Overlays.UpdateTop(ev)
		}
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Current.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case SwitchScreenMsg:
		return a.handleSwitchScreen(msg)
	case ShowResetFiltersMsg:
		a.Overlays.Push(Overlay{View: NewResetFiltersConfirmModal(a.Screen), Dismiss: []string{"esc"}})
		return a, nil
	case ResetFiltersMsg:
		return a.handleResetFilters()
	case CloseFiltersMsg:
		a.Current.Bar().Bar().Close()
		return a, nil
	case ShowProfileMsg:
		return a.handleShowProfile(msg)
	case ShowActivityMsg:
		w := NewActivityWindow(a.Activity)
		w.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.Overlays.Push(Overlay{View: w, Dismiss: []string{"esc"}})
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	}

	v, cmd := a.Current.Update(msg)
	a.setCurrent(v)
	return a, cmd
}

func (a *appModelAdapter) setCurrent(v View) {
	if s, ok := v.(ScreenModel); ok {
		a.Current = s
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.header() + "\n" + a.Current.View()
	base = padLines(base, a.height)
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		if help := RenderKeybindHelp(a.KeyHandler); help != "" {
			h := len(strings.Split(help, "\n"))
			base = placeOverlay(base, help, 0, max(0, a.height-h))
		}
	}
	return a.Overlays.Render(base, a.width, a.height)
}

// header renders the tab row and status row and records the tab regions.
func (a *AppModel) header() string {
	a.tabs = a.tabs[:0]
	var parts []string
	x := 0
	for i, s := range Screens {
		style := Styles.Tab
		if s == a.Screen {
			style = Styles.TabOpen
		}
		tab := style.Render(fmt.Sprintf("%d %s", i+1, s))
		w := lipgloss.Width(tab)
		a.tabs = append(a.tabs, filter.Region{X: x, Y: 0, W: w, H: 1})
		parts = append(parts, tab)
		x += w + 1
	}
	status := Styles.Muted.Render(a.Status)
	if a.StatusIsError {
		status = Styles.Loss.Render(a.Status)
	}
	return strings.Join(parts, " ") + "\n" + status
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
