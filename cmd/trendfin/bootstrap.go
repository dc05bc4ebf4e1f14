package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"trendfin/internal/interfaces"
	"trendfin/internal/logger"
	"trendfin/internal/market"
	"trendfin/internal/news"
	"trendfin/internal/parse"
	"trendfin/internal/reddit"
	"trendfin/internal/scan"
	"trendfin/internal/scan/sourceobs"
	"trendfin/internal/sentiment"
	"trendfin/internal/store"
	"trendfin/internal/trace"
)

// initializeSystem initializes environment, logger, and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// buildLexicon constructs the ticker universe: static from config, or pulled
// from the FMP screener in SCREEN mode.
func buildLexicon(ctx context.Context, cfg *store.Config) (*parse.Lexicon, error) {
	symbols := cfg.Universe.Static

	if cfg.Universe.Mode == "SCREEN" {
		apiKey := os.Getenv("FMP_API_KEY")
		if apiKey == "" {
			return nil, errors.New("FMP_API_KEY missing for SCREEN universe mode")
		}
		source := market.NewUniverseSource(market.NewClient(apiKey), cfg.Universe.Screener)
		fetched, err := source.Symbols(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ticker universe: %w", err)
		}
		logger.Info(ctx, "Fetched ticker universe", "symbols", len(fetched))
		symbols = fetched
	}

	return parse.NewLexicon(symbols)
}

// buildService wires the parsers, analyzer, and text sources.
func buildService(ctx context.Context, cfg *store.Config, lexicon *parse.Lexicon) (*scan.Service, error) {
	tickers, err := parse.NewTickerParser(lexicon, parse.TickerParserConfig{
		IgnoreDuplicates: cfg.Parser.IgnoreDuplicates,
		CommonWords:      cfg.Parser.CommonWords,
	})
	if err != nil {
		return nil, err
	}

	contracts, err := parse.NewContractParser(lexicon, parse.ContractParserConfig{
		IgnoreDuplicates: cfg.Parser.IgnoreDuplicates,
		Window:           cfg.Parser.ContractWindow,
	})
	if err != nil {
		return nil, err
	}

	analyzer, err := sentiment.NewAnalyzer(sentiment.Config{
		Window:    cfg.Sentiment.Window,
		Aggregate: cfg.Sentiment.Aggregate,
		Bullish:   cfg.Sentiment.Bullish,
		Bearish:   cfg.Sentiment.Bearish,
	})
	if err != nil {
		return nil, err
	}

	sources := []interfaces.TextSource{}
	if cfg.Reddit.Enabled {
		timeout := time.Duration(cfg.Reddit.TimeoutSecs) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client := reddit.NewClient(timeout)
		src := reddit.NewSource(client, cfg.Reddit.Subreddits, cfg.Reddit.PostLimit, cfg.Reddit.CommentLimit)
		sources = append(sources, sourceobs.Wrap(src))
	}
	if cfg.News.Enabled {
		timeout := time.Duration(cfg.News.TimeoutSecs) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		scraper := news.NewScraper(cfg.News.Sources, timeout)
		sources = append(sources, sourceobs.Wrap(scraper))
	}
	if len(sources) == 0 {
		logger.Warn(ctx, "No text sources enabled; only one-shot -text mode will produce output")
	}

	return scan.New(tickers, contracts, analyzer, sources), nil
}
