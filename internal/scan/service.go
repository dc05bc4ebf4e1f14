// Package scan wires the parsers and the sentiment analyzer over batches of
// collected text, producing per-ticker trend records.
package scan

import (
	"context"
	"sort"

	"trendfin/internal/interfaces"
	"trendfin/internal/logger"
	"trendfin/internal/parse"
	"trendfin/internal/sentiment"
	"trendfin/internal/trace"
	"trendfin/internal/types"
)

// Report is the full extraction result for one text.
type Report struct {
	Tickers      []types.TickerMention   `json:"tickers"`
	Contracts    []types.ContractMention `json:"contracts"`
	Score        types.SentimentScore    `json:"score"`
	TickerScores map[string]float64      `json:"ticker_scores,omitempty"`
}

// Result is the aggregate of one scan over all sources.
type Result struct {
	Documents int                     `json:"documents"`
	Trends    []types.TickerTrend     `json:"trends"`
	Contracts []types.ContractMention `json:"contracts"`
}

// Service runs the extraction pipeline. The parsers and analyzer are pure;
// all I/O stays behind the TextSource boundary.
type Service struct {
	tickers   *parse.TickerParser
	contracts *parse.ContractParser
	analyzer  *sentiment.Analyzer
	sources   []interfaces.TextSource
}

// New creates a scan service.
func New(tickers *parse.TickerParser, contracts *parse.ContractParser, analyzer *sentiment.Analyzer, sources []interfaces.TextSource) *Service {
	return &Service{
		tickers:   tickers,
		contracts: contracts,
		analyzer:  analyzer,
		sources:   sources,
	}
}

// AnalyzeText extracts mentions and sentiment from a single text.
func (s *Service) AnalyzeText(text string) (Report, error) {
	tickers, err := s.tickers.Tickers(text)
	if err != nil {
		return Report{}, err
	}
	contracts, err := s.contracts.Contracts(text)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Tickers:   tickers,
		Contracts: contracts,
		Score:     s.analyzer.Score(text),
	}

	if len(tickers) > 0 {
		report.TickerScores = make(map[string]float64)
		for _, m := range tickers {
			if _, done := report.TickerScores[m.Symbol]; done {
				continue
			}
			score, err := s.analyzer.TickerScore(text, m.Symbol)
			if err != nil {
				return Report{}, err
			}
			report.TickerScores[m.Symbol] = score.Polarity
		}
	}

	return report, nil
}

// Run collects documents from every source and aggregates per-ticker trends.
// Documents that cannot be parsed are logged and skipped; the scan is
// best-effort over whatever text arrived.
func (s *Service) Run(ctx context.Context) (Result, error) {
	ctx, span := trace.StartSpan(ctx, "scan.run")
	defer span.End()

	docs := []types.Document{}
	for _, source := range s.sources {
		collected, err := source.Collect(ctx)
		if err != nil {
			logger.ErrorWithErr(ctx, "Source collection failed", err, "source", source.Name())
			continue
		}
		docs = append(docs, collected...)
	}
	logger.Info(ctx, "Collected documents", "count", len(docs), "sources", len(s.sources))

	type tickerAgg struct {
		mentions  int
		contracts int
		documents int
		polarity  float64
	}
	aggs := map[string]*tickerAgg{}
	allContracts := []types.ContractMention{}

	for _, doc := range docs {
		report, err := s.AnalyzeText(doc.Text())
		if err != nil {
			logger.Warn(ctx, "Skipping unparseable document", "source", doc.Source, "id", doc.ID, "error", err)
			continue
		}

		allContracts = append(allContracts, report.Contracts...)

		perDoc := map[string]bool{}
		for _, m := range report.Tickers {
			agg := aggs[m.Symbol]
			if agg == nil {
				agg = &tickerAgg{}
				aggs[m.Symbol] = agg
			}
			agg.mentions++
			if !perDoc[m.Symbol] {
				perDoc[m.Symbol] = true
				agg.documents++
				agg.polarity += report.TickerScores[m.Symbol]
			}
		}
		for _, c := range report.Contracts {
			agg := aggs[c.Underlying]
			if agg == nil {
				agg = &tickerAgg{}
				aggs[c.Underlying] = agg
			}
			agg.contracts++
		}
	}

	trends := make([]types.TickerTrend, 0, len(aggs))
	for symbol, agg := range aggs {
		trend := types.TickerTrend{
			Symbol:    symbol,
			Mentions:  agg.mentions,
			Contracts: agg.contracts,
			Documents: agg.documents,
		}
		if agg.documents > 0 {
			trend.Polarity = agg.polarity / float64(agg.documents)
		}
		trends = append(trends, trend)
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Mentions != trends[j].Mentions {
			return trends[i].Mentions > trends[j].Mentions
		}
		return trends[i].Symbol < trends[j].Symbol
	})

	return Result{
		Documents: len(docs),
		Trends:    trends,
		Contracts: allContracts,
	}, nil
}
