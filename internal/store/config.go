package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type NewsSource struct {
	Name      string `yaml:"name"`
	URL       string `yaml:"url"`
	Container string `yaml:"container"`
	Title     string `yaml:"title"`
	Snippet   string `yaml:"snippet"`
}

type Config struct {
	Universe struct {
		Mode     string            `yaml:"mode"` // STATIC or SCREEN
		Static   []string          `yaml:"static"`
		Screener map[string]string `yaml:"screener"`
	} `yaml:"universe"`

	Parser struct {
		IgnoreDuplicates bool     `yaml:"ignore_duplicates"`
		CommonWords      []string `yaml:"common_words"` // replaces the built-in table when set
		ContractWindow   int      `yaml:"contract_window"`
	} `yaml:"parser"`

	Sentiment struct {
		Window    int                `yaml:"window"`
		Aggregate string             `yaml:"aggregate"` // mean or max
		Bullish   map[string]float64 `yaml:"bullish"`   // merged over the built-ins
		Bearish   map[string]float64 `yaml:"bearish"`
	} `yaml:"sentiment"`

	Reddit struct {
		Enabled      bool     `yaml:"enabled"`
		Subreddits   []string `yaml:"subreddits"`
		PostLimit    int      `yaml:"post_limit"`
		CommentLimit int      `yaml:"comment_limit"`
		TimeoutSecs  int      `yaml:"timeout_seconds"`
	} `yaml:"reddit"`

	News struct {
		Enabled     bool         `yaml:"enabled"`
		TimeoutSecs int          `yaml:"timeout_seconds"`
		Sources     []NewsSource `yaml:"sources"`
	} `yaml:"news"`
}

func (c *Config) Validate() error {
	if c.Universe.Mode != "STATIC" && c.Universe.Mode != "SCREEN" {
		return fmt.Errorf("invalid universe.mode '%s': must be 'STATIC' or 'SCREEN'", c.Universe.Mode)
	}
	if c.Universe.Mode == "STATIC" && len(c.Universe.Static) == 0 {
		return errors.New("universe.static cannot be empty in STATIC mode")
	}
	if c.Sentiment.Aggregate != "" && c.Sentiment.Aggregate != "mean" && c.Sentiment.Aggregate != "max" {
		return fmt.Errorf("sentiment.aggregate must be 'mean' or 'max', got '%s'", c.Sentiment.Aggregate)
	}
	if c.Sentiment.Window < 0 {
		return fmt.Errorf("sentiment.window cannot be negative, got %d", c.Sentiment.Window)
	}
	if c.Parser.ContractWindow < 0 {
		return fmt.Errorf("parser.contract_window cannot be negative, got %d", c.Parser.ContractWindow)
	}
	if c.Reddit.Enabled && len(c.Reddit.Subreddits) == 0 {
		return errors.New("reddit.subreddits cannot be empty when reddit is enabled")
	}
	for _, s := range c.News.Sources {
		if s.Name == "" || s.URL == "" || s.Container == "" || s.Title == "" {
			return fmt.Errorf("news source '%s' is missing a required field", s.Name)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
