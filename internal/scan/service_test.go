package scan

import (
	"context"
	"errors"
	"testing"

	"trendfin/internal/interfaces"
	"trendfin/internal/parse"
	"trendfin/internal/sentiment"
	"trendfin/internal/types"
)

type stubSource struct {
	name string
	docs []types.Document
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Collect(ctx context.Context) ([]types.Document, error) {
	return s.docs, s.err
}

func newService(t *testing.T, sources ...interfaces.TextSource) *Service {
	t.Helper()
	lex, err := parse.NewLexicon([]string{"AAPL", "TSLA", "GME"})
	if err != nil {
		t.Fatalf("Failed to build lexicon: %v", err)
	}
	tickers, err := parse.NewTickerParser(lex, parse.TickerParserConfig{})
	if err != nil {
		t.Fatalf("Failed to build ticker parser: %v", err)
	}
	contracts, err := parse.NewContractParser(lex, parse.ContractParserConfig{})
	if err != nil {
		t.Fatalf("Failed to build contract parser: %v", err)
	}
	analyzer, err := sentiment.NewAnalyzer(sentiment.Config{})
	if err != nil {
		t.Fatalf("Failed to build analyzer: %v", err)
	}
	return New(tickers, contracts, analyzer, sources)
}

func TestAnalyzeText(t *testing.T) {
	svc := newService(t)

	report, err := svc.AnalyzeText("AAPL 500C 9/12 to the moon 🚀")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(report.Tickers) != 1 || report.Tickers[0].Symbol != "AAPL" {
		t.Errorf("Unexpected tickers: %+v", report.Tickers)
	}
	if len(report.Contracts) != 1 || report.Contracts[0].Underlying != "AAPL" {
		t.Errorf("Unexpected contracts: %+v", report.Contracts)
	}
	if report.Score.Polarity <= 0 {
		t.Errorf("Expected positive document score, got %v", report.Score.Polarity)
	}
	if report.TickerScores["AAPL"] <= 0 {
		t.Errorf("Expected positive AAPL score, got %v", report.TickerScores["AAPL"])
	}
}

func TestAnalyzeTextInvalid(t *testing.T) {
	svc := newService(t)

	_, err := svc.AnalyzeText(string([]byte{0xff, 0xfe}))
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestRunAggregatesTrends(t *testing.T) {
	src := &stubSource{name: "stub", docs: []types.Document{
		{Source: "stub", ID: "1", Title: "AAPL mooning", Body: "AAPL 500C 9/12 🚀"},
		{Source: "stub", ID: "2", Body: "TSLA crashing, AAPL holding"},
		{Source: "stub", ID: "3", Body: "nothing relevant here"},
	}}
	svc := newService(t, src)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Documents != 3 {
		t.Errorf("Expected 3 documents, got %d", result.Documents)
	}
	if len(result.Contracts) != 1 {
		t.Errorf("Expected 1 contract overall, got %d", len(result.Contracts))
	}
	if len(result.Trends) != 2 {
		t.Fatalf("Expected 2 trends, got %d", len(result.Trends))
	}

	// AAPL has more mentions, so it sorts first.
	aapl := result.Trends[0]
	if aapl.Symbol != "AAPL" {
		t.Fatalf("Expected AAPL first, got %q", aapl.Symbol)
	}
	if aapl.Mentions != 3 || aapl.Documents != 2 || aapl.Contracts != 1 {
		t.Errorf("Unexpected AAPL trend: %+v", aapl)
	}
	if aapl.Polarity <= 0 {
		t.Errorf("Expected positive AAPL polarity, got %v", aapl.Polarity)
	}

	tsla := result.Trends[1]
	if tsla.Symbol != "TSLA" || tsla.Mentions != 1 || tsla.Documents != 1 {
		t.Errorf("Unexpected TSLA trend: %+v", tsla)
	}
	if tsla.Polarity >= 0 {
		t.Errorf("Expected negative TSLA polarity, got %v", tsla.Polarity)
	}
}

func TestRunSkipsFailingSource(t *testing.T) {
	bad := &stubSource{name: "bad", err: errors.New("upstream down")}
	good := &stubSource{name: "good", docs: []types.Document{
		{Source: "good", ID: "1", Body: "GME squeeze"},
	}}
	svc := newService(t, bad, good)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Expected the scan to survive a failing source, got %v", err)
	}
	if result.Documents != 1 {
		t.Errorf("Expected 1 document from the surviving source, got %d", result.Documents)
	}
	if len(result.Trends) != 1 || result.Trends[0].Symbol != "GME" {
		t.Errorf("Unexpected trends: %+v", result.Trends)
	}
}

func TestRunNoSources(t *testing.T) {
	svc := newService(t)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Documents != 0 || len(result.Trends) != 0 {
		t.Errorf("Expected an empty result, got %+v", result)
	}
}
