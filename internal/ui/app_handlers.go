package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSize resizes the screen below the header and the top overlay.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	a.Current.SetSize(a.width, max(0, a.height-headerHeight))
	cmd, _ := a.Overlays.UpdateTop(msg)
	return a, cmd
}

// handleKey routes a key: ctrl+c always quits; an overlay takes every other
// key; an open panel comes before the keybind system so typing into a
// search field never triggers commands; then keybinds; then the screen.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	if !a.Current.Bar().Open() && a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}
	v, cmd := a.Current.Update(msg)
	a.setCurrent(v)
	return a, cmd
}

// handleMouse routes a mouse event: a press outside the top overlay
// dismisses it, header tabs switch screens, everything else goes to the
// screen in screen coordinates.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if a.Overlays.Len() > 0 {
		if press && a.Overlays.PressOutside(msg.X, msg.Y) {
			a.Overlays.Pop()
		}
		return a, nil
	}
	if msg.Y < headerHeight {
		if !press {
			return a, nil
		}
		for i, r := range a.tabs {
			if r.Contains(msg.X, msg.Y) {
				s := Screens[i]
				return a, func() tea.Msg { return SwitchScreenMsg{Screen: s} }
			}
		}
		// Header presses still dismiss an open panel.
		a.Current.Bar().Bar().Scope().PointerDown(msg.X, msg.Y-headerHeight)
		return a, nil
	}
	msg.Y -= headerHeight
	v, cmd := a.Current.Update(msg)
	a.setCurrent(v)
	return a, cmd
}

// handleSwitchScreen remounts on another screen. Switching to the mounted
// screen is a no-op; SPC f r resets it.
func (a *appModelAdapter) handleSwitchScreen(msg SwitchScreenMsg) (tea.Model, tea.Cmd) {
	if msg.Screen == a.Screen {
		return a, nil
	}
	a.Overlays.Clear()
	if err := a.mount(msg.Screen); err != nil {
		a.Status = err.Error()
		a.StatusIsError = true
		a.Log.Error("switch screen", "err", err)
		return a, nil
	}
	a.Status = ""
	return a, a.Current.Init()
}

// handleResetFilters remounts the current screen; the confirm modal that
// asked for it is dropped.
func (a *appModelAdapter) handleResetFilters() (tea.Model, tea.Cmd) {
	a.Overlays.Clear()
	if err := a.mount(a.Screen); err != nil {
		a.Status = err.Error()
		a.StatusIsError = true
		a.Log.Error("reset filters", "err", err)
		return a, nil
	}
	a.Status = "filters reset"
	a.StatusIsError = false
	return a, a.Current.Init()
}

// handleShowProfile pushes the author card of msg.Post, or of the post
// under the KOL cursor.
func (a *appModelAdapter) handleShowProfile(msg ShowProfileMsg) (tea.Model, tea.Cmd) {
	post := msg.Post
	if post == nil {
		kol, ok := a.Current.(*KOLScreen)
		if !ok {
			return a, nil
		}
		p, ok := kol.SelectedPost()
		if !ok {
			a.Status = "No post selected"
			a.StatusIsError = true
			return a, nil
		}
		post = &p
	}
	a.Overlays.Push(Overlay{View: NewProfileModal(*post, a.Config.KOL.Followers), Dismiss: []string{"esc"}})
	return a, nil
}
