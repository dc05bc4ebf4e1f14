// Package sentiment scores text polarity for retail-trading discussion.
// The scorer is a fixed word-weight lexicon with negation and intensifier
// handling, so the same input always produces the same score.
package sentiment

import (
	"fmt"
	"strings"
	"unicode"

	"trendfin/internal/parse"
	"trendfin/internal/types"
)

const (
	defaultWindow = 10

	// AggregateMean averages the per-occurrence window scores.
	AggregateMean = "mean"
	// AggregateMax keeps the strongest window score (by magnitude).
	AggregateMax = "max"
)

// Config tunes the analyzer. The zero value is usable.
type Config struct {
	// Window is the number of words kept on each side of a ticker
	// occurrence when scoring ticker-scoped sentiment. Zero means 10.
	Window int
	// Aggregate combines multi-occurrence window scores: AggregateMean
	// (default) or AggregateMax.
	Aggregate string
	// Bullish and Bearish are merged over the built-in word weights,
	// overriding on collision. Lets deployments grow the slang table
	// without a code change.
	Bullish map[string]float64
	Bearish map[string]float64
}

// Analyzer computes polarity scores. It is immutable after construction and
// safe for concurrent use.
type Analyzer struct {
	bullish      map[string]float64
	bearish      map[string]float64
	negators     map[string]bool
	intensifiers map[string]float64
	window       int
	aggregate    string
}

// NewAnalyzer builds an analyzer from cfg.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	aggregate := cfg.Aggregate
	if aggregate == "" {
		aggregate = AggregateMean
	}
	if aggregate != AggregateMean && aggregate != AggregateMax {
		return nil, fmt.Errorf("%w: unknown aggregate rule %q", types.ErrInvalidInput, cfg.Aggregate)
	}
	window := cfg.Window
	if window <= 0 {
		window = defaultWindow
	}

	bullish := bullishWords()
	for w, score := range cfg.Bullish {
		bullish[strings.ToLower(w)] = score
	}
	bearish := bearishWords()
	for w, score := range cfg.Bearish {
		bearish[strings.ToLower(w)] = score
	}

	return &Analyzer{
		bullish:      bullish,
		bearish:      bearish,
		negators:     negatorWords(),
		intensifiers: intensifierWords(),
		window:       window,
		aggregate:    aggregate,
	}, nil
}

// Score computes the polarity of the whole text. Empty or signal-free text
// scores neutral, never errors.
func (a *Analyzer) Score(text string) types.SentimentScore {
	return types.SentimentScore{Polarity: a.scoreTokens(tokenize(text))}
}

// TickerScore computes the polarity of text scoped to one symbol: each
// occurrence of the symbol (plain or cashtag form) contributes the score of
// a bounded window of surrounding words, and the windows are combined by the
// configured aggregation rule. A symbol that never occurs scores neutral.
//
// The symbol must be ticker-shaped; lexicon membership is the caller's
// concern, via the ticker parser.
func (a *Analyzer) TickerScore(text, symbol string) (types.SentimentScore, error) {
	sym := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(symbol, "$")))
	if !parse.ValidSymbol(sym) {
		return types.SentimentScore{}, fmt.Errorf("%w: %q is not a ticker symbol", types.ErrInvalidInput, symbol)
	}

	tokens := tokenize(text)
	var scores []float64
	for i, tok := range tokens {
		if strings.ToUpper(tok) != sym {
			continue
		}
		lo := i - a.window
		if lo < 0 {
			lo = 0
		}
		hi := i + a.window + 1
		if hi > len(tokens) {
			hi = len(tokens)
		}
		scores = append(scores, a.scoreTokens(tokens[lo:hi]))
	}

	if len(scores) == 0 {
		return types.SentimentScore{}, nil
	}
	return types.SentimentScore{Polarity: a.combine(scores)}, nil
}

func (a *Analyzer) combine(scores []float64) float64 {
	if a.aggregate == AggregateMax {
		best := scores[0]
		for _, s := range scores[1:] {
			if abs(s) > abs(best) {
				best = s
			}
		}
		return best
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// scoreTokens runs the lexicon over a token slice. The score is the signed
// share of weighted sentiment: (bullish - bearish) / (bullish + bearish),
// which is bounded to [-1, +1] by construction.
func (a *Analyzer) scoreTokens(tokens []string) float64 {
	var bull, bear float64

	for i, tok := range tokens {
		weight, polarity := a.lookup(tok)
		if weight == 0 {
			continue
		}
		weight *= a.intensity(tokens, i)
		if a.negated(tokens, i) {
			polarity = -polarity
		}
		if polarity > 0 {
			bull += weight
		} else {
			bear += weight
		}
	}

	total := bull + bear
	if total == 0 {
		return 0
	}
	return (bull - bear) / total
}

// lookup returns the word weight and its polarity (+1 bullish, -1 bearish).
func (a *Analyzer) lookup(tok string) (float64, int) {
	if w, ok := a.bullish[tok]; ok {
		return w, 1
	}
	if w, ok := a.bearish[tok]; ok {
		return w, -1
	}
	return 0, 0
}

// negated checks the three preceding tokens for a negator.
func (a *Analyzer) negated(tokens []string, i int) bool {
	for j := max(0, i-3); j < i; j++ {
		if a.negators[tokens[j]] {
			return true
		}
	}
	return false
}

// intensity checks the two preceding tokens for an intensifier.
func (a *Analyzer) intensity(tokens []string, i int) float64 {
	for j := max(0, i-2); j < i; j++ {
		if mult, ok := a.intensifiers[tokens[j]]; ok {
			return mult
		}
	}
	return 1.0
}

// tokenize splits text into lowercased words. Emoji (symbol runes) are
// emitted as standalone tokens so the lexicon can weigh them; all other
// punctuation and markup is treated as separator.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(unicode.ToLower(r))
		case unicode.Is(unicode.So, r):
			flush()
			tokens = append(tokens, string(r))
		default:
			flush()
		}
	}
	flush()

	return tokens
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
