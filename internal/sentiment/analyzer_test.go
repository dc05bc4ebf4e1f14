package sentiment

import (
	"errors"
	"strings"
	"testing"

	"trendfin/internal/types"
)

func newAnalyzer(t *testing.T, cfg Config) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(cfg)
	if err != nil {
		t.Fatalf("Failed to build analyzer: %v", err)
	}
	return a
}

func TestScoreNeutral(t *testing.T) {
	a := newAnalyzer(t, Config{})

	for _, text := range []string{"", "   \n\t", "the quick brown fox"} {
		if got := a.Score(text).Polarity; got != 0 {
			t.Errorf("Expected neutral score for %q, got %v", text, got)
		}
	}
}

func TestScorePolarity(t *testing.T) {
	a := newAnalyzer(t, Config{})

	if got := a.Score("AAPL to the moon!").Polarity; got <= 0 {
		t.Errorf("Expected positive score, got %v", got)
	}
	if got := a.Score("AAPL is a bagholder's nightmare").Polarity; got >= 0 {
		t.Errorf("Expected negative score, got %v", got)
	}
}

func TestScoreBounded(t *testing.T) {
	a := newAnalyzer(t, Config{})

	texts := []string{
		"moon moon moon rocket tendies 🚀🚀🚀",
		"crash dump worthless rugpull scam",
		"bullish but also crashing, mixed feelings",
	}
	for _, text := range texts {
		got := a.Score(text).Polarity
		if got < -1 || got > 1 {
			t.Errorf("Score for %q out of range: %v", text, got)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := newAnalyzer(t, Config{})
	text := "GME squeeze incoming 🚀 shorts getting rekt"

	first := a.Score(text)
	for i := 0; i < 5; i++ {
		if got := a.Score(text); got != first {
			t.Fatalf("Expected identical scores, got %v vs %v", got, first)
		}
	}
}

func TestScoreNegation(t *testing.T) {
	a := newAnalyzer(t, Config{})

	if got := a.Score("not bullish at all").Polarity; got >= 0 {
		t.Errorf("Expected negated bullish to score negative, got %v", got)
	}
	if got := a.Score("never selling this").Polarity; got <= 0 {
		t.Errorf("Expected negated bearish to score positive, got %v", got)
	}
}

func TestScoreIntensifier(t *testing.T) {
	a := newAnalyzer(t, Config{})

	plain := a.Score("bullish but crashing").Polarity
	boosted := a.Score("very bullish but crashing").Polarity
	if boosted <= plain {
		t.Errorf("Expected intensifier to raise the score: plain %v, boosted %v", plain, boosted)
	}

	damped := a.Score("slightly bullish but crashing").Polarity
	if damped >= plain {
		t.Errorf("Expected dampener to lower the score: plain %v, damped %v", plain, damped)
	}
}

func TestScoreEmoji(t *testing.T) {
	a := newAnalyzer(t, Config{})

	if got := a.Score("AAPL 🚀🚀").Polarity; got <= 0 {
		t.Errorf("Expected rocket emoji to score positive, got %v", got)
	}
	if got := a.Score("GME 📉").Polarity; got >= 0 {
		t.Errorf("Expected chart-down emoji to score negative, got %v", got)
	}
}

func TestScoreOverrides(t *testing.T) {
	a := newAnalyzer(t, Config{
		Bullish: map[string]float64{"stonks": 1.0},
	})

	if got := a.Score("stonks only go up").Polarity; got <= 0 {
		t.Errorf("Expected override word to score positive, got %v", got)
	}
}

func TestTickerScoreScoped(t *testing.T) {
	a := newAnalyzer(t, Config{})

	// The bearish word sits outside the ten-word window around AAPL, so only
	// the nearby bullish word counts.
	fillers := strings.Repeat("x ", 11)
	text := "AAPL mooning " + fillers + "crash"

	score, err := a.TickerScore(text, "AAPL")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score.Polarity != 1.0 {
		t.Errorf("Expected window-scoped score 1.0, got %v", score.Polarity)
	}

	whole := a.Score(text).Polarity
	if whole >= score.Polarity {
		t.Errorf("Expected whole-text score below the scoped score, got %v vs %v", whole, score.Polarity)
	}
}

func TestTickerScoreAbsent(t *testing.T) {
	a := newAnalyzer(t, Config{})

	score, err := a.TickerScore("I like AAPL", "MSFT")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score.Polarity != 0 {
		t.Errorf("Expected neutral score for absent symbol, got %v", score.Polarity)
	}
}

func TestTickerScoreCashtag(t *testing.T) {
	a := newAnalyzer(t, Config{})

	score, err := a.TickerScore("$AAPL mooning", "AAPL")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score.Polarity <= 0 {
		t.Errorf("Expected positive score for cashtag occurrence, got %v", score.Polarity)
	}

	score, err = a.TickerScore("AAPL mooning", "$AAPL")
	if err != nil {
		t.Fatalf("Expected cashtag-form symbol to be accepted, got %v", err)
	}
	if score.Polarity <= 0 {
		t.Errorf("Expected positive score, got %v", score.Polarity)
	}
}

func TestTickerScoreInvalidSymbol(t *testing.T) {
	a := newAnalyzer(t, Config{})

	_, err := a.TickerScore("some text", "not-a-ticker")
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestTickerScoreAggregation(t *testing.T) {
	// Two occurrences with window 2: the first sits next to a bullish word
	// and scores 1.0, the second sees only fillers and scores 0.
	text := "AAPL mooning x1 x2 x3 x4 x5 x6 AAPL x7 x8"

	mean := newAnalyzer(t, Config{Window: 2, Aggregate: AggregateMean})
	score, err := mean.TickerScore(text, "AAPL")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score.Polarity != 0.5 {
		t.Errorf("Expected mean 0.5, got %v", score.Polarity)
	}

	strongest := newAnalyzer(t, Config{Window: 2, Aggregate: AggregateMax})
	score, err = strongest.TickerScore(text, "AAPL")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score.Polarity != 1.0 {
		t.Errorf("Expected max 1.0, got %v", score.Polarity)
	}
}

func TestNewAnalyzerBadAggregate(t *testing.T) {
	_, err := NewAnalyzer(Config{Aggregate: "median"})
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for unknown aggregate, got %v", err)
	}
}
