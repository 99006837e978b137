package ui

import (
	"fmt"

	"alphadash/internal/config"
)

// Screen identifies one of the dashboard's top-level screens.
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenKOL
	ScreenDetection
)

// Screens lists every screen in tab order.
var Screens = []Screen{ScreenOverview, ScreenKOL, ScreenDetection}

func (s Screen) String() string {
	switch s {
	case ScreenOverview:
		return "Overview"
	case ScreenKOL:
		return "KOL Feed"
	case ScreenDetection:
		return "Detection"
	default:
		return "Unknown"
	}
}

// ParseScreen maps a config screen name to a Screen.
func ParseScreen(name string) (Screen, error) {
	switch name {
	case config.ScreenOverview, "":
		return ScreenOverview, nil
	case config.ScreenKOL:
		return ScreenKOL, nil
	case config.ScreenDetection:
		return ScreenDetection, nil
	default:
		return ScreenOverview, fmt.Errorf("unknown screen %q", name)
	}
}
