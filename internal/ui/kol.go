package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"alphadash/internal/config"
	"alphadash/internal/filter"
	"alphadash/internal/ui/textutil"
)

// postHeight is the number of body lines one post occupies.
const postHeight = 3

// KOLScreen is the influencer post feed.
type KOLScreen struct {
	bar    *FilterBarView
	commit CommitFunc

	width, height int

	followers []string

	// First option of each list, the catch-all.
	allPlatforms   string
	allTiers       string
	allNarratives  string
	allEngagements string

	platform   string
	minFollow  int
	tier       string
	narrative  string
	engagement string
	sentiment  string

	cursor int
}

// Ensure KOLScreen implements ScreenModel.
var _ ScreenModel = (*KOLScreen)(nil)

// NewKOLScreen mounts the feed with default selections. Sentiment starts
// unselected.
func NewKOLScreen(cfg config.KOL, logger *slog.Logger, commit CommitFunc) (*KOLScreen, error) {
	s := &KOLScreen{
		commit:         commit,
		followers:      cfg.Followers,
		allPlatforms:   firstOf(cfg.Platforms),
		allTiers:       firstOf(cfg.Tiers),
		allNarratives:  firstOf(cfg.Narratives),
		allEngagements: firstOf(cfg.Engagements),
	}
	s.platform, s.tier, s.narrative, s.engagement = s.allPlatforms, s.allTiers, s.allNarratives, s.allEngagements

	platformPanel, _, err := listPanel("platform", cfg.Platforms, s.platform, filter.PlaceholderLabel("Platform", s.allPlatforms),
		func(v string) { s.platform = v; s.commit.call(ScreenKOL, "platform", v) })
	if err != nil {
		return nil, err
	}

	followers, err := filter.NewThreshold("Followers", cfg.Followers, cfg.FollowersMin, s.followersChanged)
	if err != nil {
		return nil, err
	}
	s.minFollow, _ = followers.Committed()
	followersPanel, err := filter.NewPanel("followers", followers)
	if err != nil {
		return nil, err
	}

	tierPanel, _, err := listPanel("tier", cfg.Tiers, s.tier, filter.FirstWordLabel("Influencer Tier", s.allTiers),
		func(v string) { s.tier = v; s.commit.call(ScreenKOL, "tier", v) })
	if err != nil {
		return nil, err
	}
	narrativePanel, _, err := listPanel("narrative", cfg.Narratives, s.narrative, filter.PlaceholderLabel("Narrative", s.allNarratives),
		func(v string) { s.narrative = v; s.commit.call(ScreenKOL, "narrative", v) })
	if err != nil {
		return nil, err
	}
	engagementPanel, _, err := listPanel("engagement", cfg.Engagements, s.engagement, filter.PlaceholderLabel("Engagement", s.allEngagements),
		func(v string) { s.engagement = v; s.commit.call(ScreenKOL, "engagement", v) })
	if err != nil {
		return nil, err
	}
	sentimentPanel, _, err := listPanel("sentiment", cfg.Sentiments, "", filter.PlaceholderLabel("Sentiment", ""),
		func(v string) { s.sentiment = v; s.commit.call(ScreenKOL, "sentiment", v) })
	if err != nil {
		return nil, err
	}

	bar, err := filter.NewBar("kol", logger,
		platformPanel, followersPanel, tierPanel, narrativePanel, engagementPanel, sentimentPanel)
	if err != nil {
		return nil, err
	}
	s.bar = NewFilterBarView(bar, barRow)
	return s, nil
}

func (s *KOLScreen) followersChanged(lo, _ int) {
	s.minFollow = lo
	s.cursor = 0
	s.commit.call(ScreenKOL, "followers", s.followers[lo]+" +")
}

// Screen implements ScreenModel.
func (s *KOLScreen) Screen() Screen { return ScreenKOL }

// Bar implements ScreenModel.
func (s *KOLScreen) Bar() *FilterBarView { return s.bar }

// SetSize implements ScreenModel.
func (s *KOLScreen) SetSize(width, height int) {
	s.width, s.height = width, height
	s.bar.SetSize(width, height)
}

// Posts returns the posts passing every committed filter.
func (s *KOLScreen) Posts() []Post {
	var out []Post
	for _, p := range mockPosts {
		switch {
		case s.platform != s.allPlatforms && p.Platform != s.platform:
		case p.Followers < s.minFollow:
		case s.tier != s.allTiers && p.Tier != s.tier:
		case s.narrative != s.allNarratives && p.Narrative != s.narrative:
		case s.engagement != s.allEngagements && p.Engagement != s.engagement:
		case s.sentiment != "" && p.Sentiment != s.sentiment:
		default:
			out = append(out, p)
		}
	}
	return out
}

// SelectedPost returns the post under the cursor.
func (s *KOLScreen) SelectedPost() (Post, bool) {
	posts := s.Posts()
	if s.cursor < 0 || s.cursor >= len(posts) {
		return Post{}, false
	}
	return posts[s.cursor], true
}

func (s *KOLScreen) moveCursor(delta int) {
	n := len(s.Posts())
	if n == 0 {
		s.cursor = 0
		return
	}
	s.cursor = max(0, min(n-1, s.cursor+delta))
}

func (s *KOLScreen) showProfile() tea.Cmd {
	p, ok := s.SelectedPost()
	if !ok {
		return nil
	}
	return func() tea.Msg { return ShowProfileMsg{Post: &p} }
}

// Init implements View.
func (s *KOLScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *KOLScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
	case tea.MouseMsg:
		if s.bar.HandleMouse(msg) {
			return s, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y >= bodyRow {
			i := (msg.Y - bodyRow) / postHeight
			if i < len(s.Posts()) {
				s.cursor = i
				return s, s.showProfile()
			}
		}
	case tea.KeyMsg:
		if handled, cmd := s.bar.HandleKey(msg); handled {
			return s, cmd
		}
		switch msg.String() {
		case "j", "down":
			s.moveCursor(1)
		case "k", "up":
			s.moveCursor(-1)
		case "o":
			return s, s.showProfile()
		}
	}
	return s, nil
}

// View implements View.
func (s *KOLScreen) View() string {
	posts := s.Posts()
	s.cursor = max(0, min(s.cursor, len(posts)-1))

	var body strings.Builder
	if len(posts) == 0 {
		body.WriteString(Styles.Muted.Render("No posts match the selected filters."))
	}
	textW := max(20, s.width-4)
	for i, p := range posts {
		marker := "  "
		nameStyle := Styles.Normal
		if i == s.cursor {
			marker = Styles.OptionCursor.Render("› ")
			nameStyle = Styles.OptionCursor
		}
		sentiment := Styles.Gain.Render(p.Sentiment)
		if p.Sentiment == "Bearish" {
			sentiment = Styles.Loss.Render(p.Sentiment)
		}
		fmt.Fprintf(&body, "%s%s %s  %s\n", marker, nameStyle.Render(p.Author),
			Styles.Muted.Render(p.Handle+" · "+p.Platform+" · "+p.Ago), sentiment)
		fmt.Fprintf(&body, "  %s\n", textutil.Truncate(p.Text, textW))
		body.WriteString("  " + Styles.Hint.Render(p.Narrative+" · "+p.Engagement+" · "+p.Tier))
		if i < len(posts)-1 {
			body.WriteString("\n")
		}
	}

	subtitle := fmt.Sprintf("%d posts · followers %s + · j/k move · o profile", len(posts), s.followers[s.minFollow])
	return frame("KOL Feed", subtitle, s.bar, body.String(), s.height)
}
