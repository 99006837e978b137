package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"alphadash/internal/ui/textutil"
)

// profileWidth is the text width of the profile card.
const profileWidth = 44

// ProfileModal shows the author card of a KOL post. Esc closes it.
type ProfileModal struct {
	Post      Post
	followers []string
}

// Ensure ProfileModal implements View.
var _ View = (*ProfileModal)(nil)

// NewProfileModal creates the card for p; followers is the bucket
// vocabulary p.Followers indexes.
func NewProfileModal(p Post, followers []string) *ProfileModal {
	return &ProfileModal{Post: p, followers: followers}
}

// Init implements View.
func (m *ProfileModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *ProfileModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

func (m *ProfileModal) audience() string {
	if m.Post.Followers >= 0 && m.Post.Followers < len(m.followers) {
		return "followers " + m.followers[m.Post.Followers]
	}
	return "followers unknown"
}

// View implements View.
func (m *ProfileModal) View() string {
	p := m.Post
	sentiment := Styles.Gain.Render(p.Sentiment)
	if p.Sentiment == "Bearish" {
		sentiment = Styles.Loss.Render(p.Sentiment)
	}
	lines := []string{
		Styles.Title.Render(p.Author) + " " + Styles.Muted.Render(p.Handle),
		Styles.Muted.Render(fmt.Sprintf("%s · %s · %s", p.Platform, p.Tier, m.audience())),
		"",
		Styles.Normal.Render(textutil.Truncate(p.Text, profileWidth)),
		"",
		fmt.Sprintf("Narrative  %s", p.Narrative),
		fmt.Sprintf("Engagement %s", p.Engagement),
		"Sentiment  " + sentiment,
		"",
		Styles.Hint.Render("Esc: close"),
	}
	return Styles.Modal.Render(strings.Join(lines, "\n"))
}
