package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"alphadash/internal/config"
	"alphadash/internal/filter"
)

// OverviewScreen is the market table with cap, sector, chain, age and
// timeframe filters.
type OverviewScreen struct {
	bar    *FilterBarView
	commit CommitFunc

	width, height int

	caps         []string
	capLo, capHi int
	allSectors   string
	allChains    string
	sector       string
	chain        string
	ageFrom      string
	ageTo        string
	timeframe    string
}

// Ensure OverviewScreen implements ScreenModel.
var _ ScreenModel = (*OverviewScreen)(nil)

// NewOverviewScreen mounts the overview with default selections.
func NewOverviewScreen(cfg config.Overview, logger *slog.Logger, commit CommitFunc) (*OverviewScreen, error) {
	s := &OverviewScreen{
		commit:     commit,
		caps:       cfg.MarketCaps,
		allSectors: firstOf(cfg.Sectors),
		allChains:  firstOf(cfg.Chains),
		ageFrom:    firstOf(cfg.Ages),
		ageTo:      lastOf(cfg.Ages),
		timeframe:  firstOr(cfg.Timeframes, "24h"),
	}
	s.sector, s.chain = s.allSectors, s.allChains

	mcap, err := filter.NewBucketRange("Market Cap", cfg.MarketCaps, cfg.MarketCapMin, cfg.MarketCapMax, s.capsApplied)
	if err != nil {
		return nil, err
	}
	mcap.Placeholder = "All Caps"
	s.capLo, s.capHi = mcap.Committed()
	mcapPanel, err := filter.NewPanel("mcap", mcap)
	if err != nil {
		return nil, err
	}

	sectorPanel, _, err := listPanel("sector", cfg.Sectors, s.sector, filter.PlaceholderLabel("Sectors", s.allSectors),
		func(v string) { s.sector = v; s.commit.call(ScreenOverview, "sector", v) })
	if err != nil {
		return nil, err
	}
	chainPanel, _, err := listPanel("chain", cfg.Chains, s.chain, filter.PlaceholderLabel("Chain", s.allChains),
		func(v string) { s.chain = v; s.commit.call(ScreenOverview, "chain", v) })
	if err != nil {
		return nil, err
	}

	age, err := filter.NewPairSelect("Age", cfg.Ages, s.ageFrom, s.ageTo, s.ageApplied)
	if err != nil {
		return nil, err
	}
	age.Placeholder = "Age"
	agePanel, err := filter.NewPanel("age", age)
	if err != nil {
		return nil, err
	}

	tfPanel, _, err := listPanel("timeframe", cfg.Timeframes, s.timeframe, nil,
		func(v string) { s.timeframe = v; s.commit.call(ScreenOverview, "timeframe", v) })
	if err != nil {
		return nil, err
	}

	bar, err := filter.NewBar("overview", logger, mcapPanel, sectorPanel, chainPanel, agePanel, tfPanel)
	if err != nil {
		return nil, err
	}
	s.bar = NewFilterBarView(bar, barRow)
	return s, nil
}

func (s *OverviewScreen) capsApplied(lo, hi int) {
	s.capLo, s.capHi = lo, hi
	s.commit.call(ScreenOverview, "mcap", s.caps[lo]+" – "+s.caps[hi])
}

func (s *OverviewScreen) ageApplied(from, to string) {
	s.ageFrom, s.ageTo = from, to
	s.commit.call(ScreenOverview, "age", from+" – "+to)
}

// Screen implements ScreenModel.
func (s *OverviewScreen) Screen() Screen { return ScreenOverview }

// Bar implements ScreenModel.
func (s *OverviewScreen) Bar() *FilterBarView { return s.bar }

// SetSize implements ScreenModel.
func (s *OverviewScreen) SetSize(width, height int) {
	s.width, s.height = width, height
	s.bar.SetSize(width, height)
}

// Init implements View.
func (s *OverviewScreen) Init() tea.Cmd { return nil }

// Update implements View.
func (s *OverviewScreen) Update(msg tea.Msg) (View, tea.Cmd) {
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

// Coins returns the rows passing the chain and sector filters.
func (s *OverviewScreen) Coins() []Coin {
	var out []Coin
	for _, c := range mockCoins {
		if s.chain != s.allChains && c.Chain != s.chain {
			continue
		}
		if s.sector != s.allSectors && c.Sector != s.sector {
			continue
		}
		out = append(out, c)
	}
	return out
}

// View implements View.
func (s *OverviewScreen) View() string {
	coins := s.Coins()
	rows := make([][]string, len(coins))
	for i, c := range coins {
		sector := c.Sector
		if sector == "" {
			sector = "—"
		}
		rows[i] = []string{
			fmt.Sprint(i + 1), c.Symbol + " " + Styles.Muted.Render(c.Name), formatPrice(c.Price),
			formatChange(c.Change[s.timeframe]), c.Cap, sector, c.Chain,
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Styles.Muted).
		Headers("#", "Coin", "Price", s.timeframe, "Market Cap", "Sector", "Chain").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Styles.Title.Padding(0, 1)
			}
			return Styles.Normal.Padding(0, 1)
		})

	body := t.Render()
	if len(rows) == 0 {
		body += "\n" + Styles.Muted.Render("No assets match the selected chain and sector.")
	}
	status := []string{
		fmt.Sprintf("%d assets", len(rows)),
		"caps " + s.caps[s.capLo] + " – " + s.caps[s.capHi],
		"age " + s.ageFrom + " – " + s.ageTo,
	}
	return frame("Market Overview", strings.Join(status, " · "), s.bar, body, s.height)
}
