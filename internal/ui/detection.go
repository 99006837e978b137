package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"alphadash/internal/config"
	"alphadash/internal/filter"
)

// DetectionScreen is the on-chain event grid plus a live wallet feed.
type DetectionScreen struct {
	bar    *FilterBarView
	commit CommitFunc
	now    func() time.Time

	width, height int

	events    []Event
	allChains string
	allFeed   string
	allEvents string
	allSev    string

	chain     string
	feedChain string
	dates     filter.DateRange
	event     string
	severity  string
}

// Ensure DetectionScreen implements ScreenModel.
var _ ScreenModel = (*DetectionScreen)(nil)

// NewDetectionScreen mounts the detection screen. now dates the mock
// events and the month a fresh calendar opens on; nil means time.Now.
func NewDetectionScreen(cfg config.Detection, logger *slog.Logger, commit CommitFunc, now func() time.Time) (*DetectionScreen, error) {
	if now == nil {
		now = time.Now
	}
	s := &DetectionScreen{
		commit:    commit,
		now:       now,
		events:    mockEvents(now()),
		allChains: firstOf(cfg.Chains),
		allFeed:   firstOf(cfg.FeedChains),
		allEvents: firstOf(cfg.Events),
		allSev:    firstOf(cfg.Severities),
	}
	s.chain, s.event, s.severity = s.allChains, s.allEvents, s.allSev
	s.feedChain = s.allFeed

	chainPanel, _, err := listPanel("chain", cfg.Chains, s.chain, nil,
		func(v string) { s.chain = v; s.commit.call(ScreenDetection, "chain", v) })
	if err != nil {
		return nil, err
	}
	feedPanel, _, err := listPanel("feed", cfg.FeedChains, s.feedChain, func(sel string) string { return "Feed: " + sel },
		func(v string) { s.feedChain = v; s.commit.call(ScreenDetection, "feed", v) })
	if err != nil {
		return nil, err
	}

	picker := filter.NewDateRangePicker("Time Range", filter.DateRange{}, s.datesApplied)
	picker.Placeholder = "Time Range"
	picker.Now = s.now
	timePanel, err := filter.NewPanel("timerange", picker)
	if err != nil {
		return nil, err
	}

	eventPanel, _, err := listPanel("event", cfg.Events, s.event, nil,
		func(v string) { s.event = v; s.commit.call(ScreenDetection, "event", v) })
	if err != nil {
		return nil, err
	}
	sevPanel, _, err := listPanel("severity", cfg.Severities, s.severity, nil,
		func(v string) { s.severity = v; s.commit.call(ScreenDetection, "severity", v) })
	if err != nil {
		return nil, err
	}

	bar, err := filter.NewBar("detection", logger, chainPanel, feedPanel, timePanel, eventPanel, sevPanel)
	if err != nil {
		return nil, err
	}
	s.bar = NewFilterBarView(bar, barRow)
	return s, nil
}

func (s *DetectionScreen) datesApplied(r filter.DateRange) {
	s.dates = r
	s.commit.call(ScreenDetection, "timerange", r.Start.String()+" → "+r.End.String())
}

// Screen implements ScreenModel.
func (s *DetectionScreen) Screen() Screen { return ScreenDetection }

// Bar implements ScreenModel.
func (s *DetectionScreen) Bar() *FilterBarView { return s.bar }

// SetSize implements ScreenModel.
func (s *DetectionScreen) SetSize(width, height int) {
	s.width, s.height = width, height
	s.bar.SetSize(width, height)
}

// Events returns the events passing the chain, type, severity and date
// filters. Unset date sides are open; a start after the end matches
// nothing.
func (s *DetectionScreen) Events() []Event {
	var out []Event
	for _, e := range s.events {
		switch {
		case s.chain != s.allChains && e.Chain != s.chain:
		case s.event != s.allEvents && e.Type != s.event:
		case s.severity != s.allSev && e.Severity != s.severity:
		case !s.dates.Start.IsZero() && e.Date.Before(s.dates.Start):
		case !s.dates.End.IsZero() && s.dates.End.Before(e.Date):
		default:
			out = append(out, e)
		}
	}
	return out
}

// Feed returns the live transfers on the feed chain.
func (s *DetectionScreen) Feed() []Transfer {
	var out []Transfer
	for _, t := range mockTransfers {
		if s.feedChain == s.allFeed || t.Chain == s.feedChain {
			out = append(out, t)
		}
	}
	return out
}

// Init implements View.
func (s *DetectionScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *DetectionScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
	case tea.MouseMsg:
		s.bar.HandleMouse(msg)
	case tea.KeyMsg:
		_, cmd := s.bar.HandleKey(msg)
		return s, cmd
	}
	return s, nil
}

// View implements View.
func (s *DetectionScreen) View() string {
	events := s.Events()
	rows := make([][]string, len(events))
	for i, e := range events {
		rows[i] = []string{e.Date.String() + " " + e.Time, e.Chain, e.Type, e.Severity, e.Token, e.Detail}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Styles.Muted).
		Headers("When", "Chain", "Event", "Severity", "Token", "Detail").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Styles.Title.Padding(0, 1)
			}
			if col == 3 {
				return severityStyle(rows[row][col]).Padding(0, 1)
			}
			return Styles.Normal.Padding(0, 1)
		})

	var body strings.Builder
	body.WriteString(t.Render())
	if len(rows) == 0 {
		body.WriteString("\n" + Styles.Muted.Render("No events in the selected range."))
	}
	body.WriteString("\n\n" + Styles.Title.Render("Live feed · "+s.feedChain))
	feed := s.Feed()
	if len(feed) == 0 {
		body.WriteString("\n" + Styles.Muted.Render("quiet"))
	}
	for _, tr := range feed {
		fmt.Fprintf(&body, "\n%s %s %s %s", Styles.Muted.Render(tr.Chain), tr.Wallet, tr.Action, tr.Amount)
	}

	subtitle := fmt.Sprintf("%d events · %d transfers", len(events), len(feed))
	return frame("On-chain Detection", subtitle, s.bar, body.String(), s.height)
}

func severityStyle(sev string) lipgloss.Style {
	switch sev {
	case "High":
		return Styles.Loss
	case "Medium":
		return Styles.Warning
	default:
		return Styles.Muted
	}
}
