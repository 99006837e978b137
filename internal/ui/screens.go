package ui

import (
	"fmt"
	"strings"

	"alphadash/internal/filter"
)

// Screen rows shared by every screen: title, subtitle, blank, filter bar,
// blank, body.
const (
	barRow  = 3
	bodyRow = 5
)

// CommitFunc observes every selection a screen commits.
type CommitFunc func(screen Screen, group filter.GroupID, value string)

func (f CommitFunc) call(screen Screen, group filter.GroupID, value string) {
	if f != nil {
		f(screen, group, value)
	}
}

// frame lays a screen out and composes the bar's popups over it.
func frame(title, subtitle string, bar *FilterBarView, body string, height int) string {
	base := strings.Join([]string{
		Styles.Title.Render(title),
		Styles.Subtitle.Render(subtitle),
		"",
		bar.View(),
		"",
		body,
	}, "\n")
	return bar.Compose(padLines(base, height))
}

// listPanel builds a panel around an option list.
func listPanel(id filter.GroupID, options []string, selected string, label func(string) string, onSelect func(string)) (*filter.Panel, *filter.OptionList, error) {
	l, err := filter.NewOptionList(options, selected, onSelect)
	if err != nil {
		return nil, nil, fmt.Errorf("panel %q: %w", id, err)
	}
	l.LabelFunc = label
	p, err := filter.NewPanel(id, l)
	if err != nil {
		return nil, nil, err
	}
	return p, l, nil
}

// firstOf returns the first option, which list panels treat as the
// catch-all ("All", "All Chains"). Empty options give "".
func firstOf(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

// firstOr returns the first of options when want is not among them.
func firstOr(options []string, want string) string {
	for _, o := range options {
		if o == want {
			return want
		}
	}
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

func lastOf(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[len(options)-1]
}

func formatPrice(p float64) string {
	switch {
	case p >= 1000:
		return fmt.Sprintf("$%.0f", p)
	case p >= 0.01:
		return fmt.Sprintf("$%.2f", p)
	default:
		return fmt.Sprintf("$%.6f", p)
	}
}

func formatChange(c float64) string {
	s := fmt.Sprintf("%+.2f%%", c)
	if c < 0 {
		return Styles.Loss.Render(s)
	}
	return Styles.Gain.Render(s)
}
