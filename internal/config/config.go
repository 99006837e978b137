// Package config holds the dashboard's settings: log level, the screen
// shown at startup, and the option vocabularies of every filter bar.
//
// Defaults are compiled in. A YAML file named by --config or
// ALPHADASH_CONFIG overrides any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "ALPHADASH_CONFIG"

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "ALPHADASH_LOG_LEVEL"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Screen names accepted by StartScreen.
const (
	ScreenOverview  = "overview"
	ScreenKOL       = "kol"
	ScreenDetection = "detection"
)

// Config is the top-level configuration.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	StartScreen string `yaml:"start_screen"`

	Overview  Overview  `yaml:"overview"`
	KOL       KOL       `yaml:"kol"`
	Detection Detection `yaml:"detection"`
}

// Option lists lead with their catch-all entry ("All", "All Chains"):
// selecting it disables that filter, whatever it is called. Sentiments,
// ages and timeframes have no catch-all.

// Overview holds the market overview filter vocabularies.
type Overview struct {
	MarketCaps   []string `yaml:"market_caps"`
	MarketCapMin int      `yaml:"market_cap_min"`
	MarketCapMax int      `yaml:"market_cap_max"`
	Sectors      []string `yaml:"sectors"`
	Chains       []string `yaml:"chains"`
	Ages         []string `yaml:"ages"`
	Timeframes   []string `yaml:"timeframes"`
}

// KOL holds the influencer feed filter vocabularies.
type KOL struct {
	Platforms    []string `yaml:"platforms"`
	Followers    []string `yaml:"followers"`
	FollowersMin int      `yaml:"followers_min"`
	Tiers        []string `yaml:"tiers"`
	Narratives   []string `yaml:"narratives"`
	Engagements  []string `yaml:"engagements"`
	Sentiments   []string `yaml:"sentiments"`
}

// Detection holds the on-chain detection filter vocabularies.
type Detection struct {
	Chains     []string `yaml:"chains"`
	FeedChains []string `yaml:"feed_chains"`
	Events     []string `yaml:"events"`
	Severities []string `yaml:"severities"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		StartScreen: ScreenOverview,
		Overview: Overview{
			MarketCaps:   []string{"1k", "10k", "100k", "1M", "10M", "100M", ">100M"},
			MarketCapMin: 2,
			MarketCapMax: 5,
			Sectors:      []string{"All", "RWA", "AI", "Meme", "DeFi", "Gaming", "DePIN"},
			Chains:       []string{"All", "Solana", "Ethereum", "BNB Chain", "Arbitrum", "Bitcoin", "Tron", "Polygon"},
			Ages:         []string{"< 1 day", "1 day", "7 days", "1 week", "1 month", "1 year", "> 1 year"},
			Timeframes:   []string{"1h", "24h", "7d"},
		},
		KOL: KOL{
			Platforms:    []string{"All", "Telegram", "X", "Reddit", "Discord"},
			Followers:    []string{"100", "1k", "10k", "100k >"},
			FollowersMin: 2,
			Tiers: []string{"All", "Micro influencer", "Macro influencer", "Mega influencer",
				"Smart money influencer", "Researcher and analyst"},
			Narratives:  []string{"All", "RWA", "Meme", "AI", "DePin"},
			Engagements: []string{"All", "Organic", "Viral", "Paid/Promo", "Controversial"},
			Sentiments:  []string{"Bullish", "Bearish"},
		},
		Detection: Detection{
			Chains:     []string{"All Chains", "Solana", "Ethereum", "BNB Chain", "Arbitrum", "Base"},
			FeedChains: []string{"All Chains", "Solana", "Ethereum", "BNB Chain", "Arbitrum", "Base"},
			Events: []string{"All Events", "Whale Buy", "Smart Money", "Sniper Bot",
				"Liquidity Removal", "Token Launch", "Risk Spike"},
			Severities: []string{"All Severity", "Low", "Medium", "High"},
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path falls back to $ALPHADASH_CONFIG; with neither set the defaults are
// returned as is. Environment overrides apply last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// Validate rejects empty vocabularies, out-of-range default indices and
// unknown screen names.
func (c *Config) Validate() error {
	switch c.StartScreen {
	case ScreenOverview, ScreenKOL, ScreenDetection:
	default:
		return fmt.Errorf("%w: start_screen %q", ErrInvalid, c.StartScreen)
	}
	lists := []struct {
		name string
		v    []string
	}{
		{"overview.market_caps", c.Overview.MarketCaps},
		{"overview.sectors", c.Overview.Sectors},
		{"overview.chains", c.Overview.Chains},
		{"overview.ages", c.Overview.Ages},
		{"overview.timeframes", c.Overview.Timeframes},
		{"kol.platforms", c.KOL.Platforms},
		{"kol.followers", c.KOL.Followers},
		{"kol.tiers", c.KOL.Tiers},
		{"kol.narratives", c.KOL.Narratives},
		{"kol.engagements", c.KOL.Engagements},
		{"kol.sentiments", c.KOL.Sentiments},
		{"detection.chains", c.Detection.Chains},
		{"detection.feed_chains", c.Detection.FeedChains},
		{"detection.events", c.Detection.Events},
		{"detection.severities", c.Detection.Severities},
	}
	for _, l := range lists {
		if len(l.v) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalid, l.name)
		}
	}
	o := c.Overview
	if o.MarketCapMin < 0 || o.MarketCapMin > o.MarketCapMax || o.MarketCapMax >= len(o.MarketCaps) {
		return fmt.Errorf("%w: market cap range [%d, %d] outside %d buckets",
			ErrInvalid, o.MarketCapMin, o.MarketCapMax, len(o.MarketCaps))
	}
	if c.KOL.FollowersMin < 0 || c.KOL.FollowersMin >= len(c.KOL.Followers) {
		return fmt.Errorf("%w: followers_min %d outside %d buckets",
			ErrInvalid, c.KOL.FollowersMin, len(c.KOL.Followers))
	}
	return nil
}
