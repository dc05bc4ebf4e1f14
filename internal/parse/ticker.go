package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"trendfin/internal/types"
)

// TickerParserConfig configures a TickerParser instance. The zero value is
// usable: every occurrence is reported and the built-in common-word table
// applies.
type TickerParserConfig struct {
	// IgnoreDuplicates emits only the first occurrence of each symbol per
	// parse call.
	IgnoreDuplicates bool
	// CommonWords replaces the default ambiguity table when non-nil. An
	// empty non-nil slice disables suppression entirely.
	CommonWords []string
}

// TickerParser finds ticker mentions in free text. It is pure per call and
// safe for concurrent use.
type TickerParser struct {
	lexicon          *Lexicon
	ignoreDuplicates bool
	common           map[string]struct{}
}

// NewTickerParser builds a parser over the given lexicon.
func NewTickerParser(lexicon *Lexicon, cfg TickerParserConfig) (*TickerParser, error) {
	if lexicon == nil {
		return nil, fmt.Errorf("%w: nil lexicon", types.ErrInvalidInput)
	}

	words := cfg.CommonWords
	if words == nil {
		words = DefaultCommonWords()
	}
	common := make(map[string]struct{}, len(words))
	for _, w := range words {
		common[strings.ToUpper(w)] = struct{}{}
	}

	return &TickerParser{
		lexicon:          lexicon,
		ignoreDuplicates: cfg.IgnoreDuplicates,
		common:           common,
	}, nil
}

// Tickers returns the confirmed ticker mentions in text, in source order.
// Text without any match yields an empty slice, not an error.
//
// A candidate without a cashtag that collides with the common-word table is
// suppressed; the cashtag is the author's explicit disambiguation signal and
// always wins.
func (p *TickerParser) Tickers(text string) ([]types.TickerMention, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", types.ErrInvalidInput)
	}

	mentions := []types.TickerMention{}
	var seen map[string]struct{}
	if p.ignoreDuplicates {
		seen = make(map[string]struct{})
	}

	for _, c := range scanCandidates(text) {
		symbol := c.text
		if !p.lexicon.Contains(symbol) {
			continue
		}
		if !c.cashtag {
			if _, ambiguous := p.common[symbol]; ambiguous {
				continue
			}
		}
		if p.ignoreDuplicates {
			if _, dup := seen[symbol]; dup {
				continue
			}
			seen[symbol] = struct{}{}
		}

		mentions = append(mentions, types.TickerMention{
			Symbol:   symbol,
			Position: c.pos,
			Raw:      text[c.pos:c.end],
		})
	}

	return mentions, nil
}
