// Package parse extracts ticker and option-contract mentions from noisy
// social-media text. All matching is validated against a closed, caller
// supplied set of symbols rather than an open symbol grammar, so words that
// merely look like tickers never leak through.
package parse

import (
	"fmt"
	"regexp"
	"strings"

	"trendfin/internal/types"
)

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.]{0,5}$`)

// ValidSymbol reports whether s has the shape of a ticker symbol.
func ValidSymbol(s string) bool {
	return symbolPattern.MatchString(strings.ToUpper(s))
}

// Lexicon is an immutable set of valid ticker symbols. It is built once,
// outlives all parse calls, and is safe for concurrent readers.
type Lexicon struct {
	symbols map[string]struct{}
}

// NewLexicon builds a lexicon from the caller's ticker universe. Entries are
// case-normalized. An empty universe or a malformed entry is a
// construction-time error; the instance cannot be half-built.
func NewLexicon(symbols []string) (*Lexicon, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: ticker universe is empty", types.ErrInvalidInput)
	}

	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		u := strings.ToUpper(strings.TrimSpace(s))
		if !symbolPattern.MatchString(u) {
			return nil, fmt.Errorf("%w: malformed ticker symbol %q", types.ErrInvalidInput, s)
		}
		set[u] = struct{}{}
	}
	return &Lexicon{symbols: set}, nil
}

// Contains reports whether the case-normalized symbol is in the universe.
func (l *Lexicon) Contains(symbol string) bool {
	_, ok := l.symbols[strings.ToUpper(symbol)]
	return ok
}

// Len returns the number of symbols in the universe.
func (l *Lexicon) Len() int {
	return len(l.symbols)
}

// DefaultCommonWords returns the built-in table of capitalized English words
// and forum slang that collide with ticker shapes. A candidate matching one
// of these is suppressed unless the author marked it with a cashtag. The
// table is data, not control flow: callers can replace it wholesale.
func DefaultCommonWords() []string {
	return []string{
		"A", "ABOUT", "ACTUALLY", "AFTER", "AGAIN", "ALL", "ALREADY", "ALSO",
		"ALWAYS", "AM", "AN", "AND", "ANOTHER", "ANY", "ANYONE", "ANYTHING",
		"ARE", "AROUND", "AS", "AT", "BACK", "BE", "BECAUSE", "BEEN", "BEFORE",
		"BEING", "BEST", "BETTER", "BIG", "BOT", "BUT", "BUY", "BY", "CALL",
		"CALLS", "CAN", "CANT", "COME", "COULD", "DAY", "DAYS", "DD",
		"DELETED", "DID", "DIDNT", "DO", "DOES", "DOESNT", "DOING", "DONT",
		"EDIT", "EVEN", "EVER", "EVERY", "EVERYONE", "FEEL", "FEW", "FIND",
		"FIRST", "FOR", "FROM", "FUCK", "FUCKING", "GET", "GETTING", "GO",
		"GOING", "GONNA", "GOOD", "GOT", "HAD", "HAS", "HAVE", "HE", "HERE",
		"HIS", "HOLD", "HOW", "I", "IF", "ILL", "IM", "IN", "INTO", "IS",
		"ISNT", "IT", "ITS", "JUST", "KEEP", "KNOW", "LAST", "LIKE", "LOL",
		"LONG", "LOOK", "LOOKING", "LOT", "MADE", "MAKE", "MANY", "MARKET",
		"MAYBE", "ME", "MEAN", "MIGHT", "MONTHS", "MORE", "MOST", "MUCH",
		"MY", "NEED", "NEW", "NEWS", "NO", "NOT", "NOW", "OF", "ON", "ONE",
		"ONLY", "OPTIONS", "OR", "OTHER", "OUT", "OVER", "PEOPLE", "PLEASE",
		"POINT", "PRETTY", "PROBABLY", "PUT", "PUTS", "REALLY", "REMOVED",
		"SAID", "SAME", "SAY", "SEE", "SELL", "SHOULD", "SINCE", "SO", "SOME",
		"SOMETHING", "STILL", "STOCK", "STOCKS", "SURE", "TAKE", "THAN",
		"THANKS", "THAT", "THATS", "THE", "THEIR", "THEM", "THEN", "THERE",
		"THERES", "THESE", "THEY", "THEYRE", "THING", "THINK", "THIS",
		"THOSE", "THOUGH", "TIME", "TO", "TODAY", "TOMORROW", "TOO",
		"TRADING", "UNTIL", "UP", "US", "USE", "WAS", "WAY", "WE", "WEEK",
		"WERE", "WHAT", "WHEN", "WHERE", "WHICH", "WHILE", "WHO", "WHY",
		"WILL", "WITH", "WOULD", "YEAH", "YEAR", "YEARS", "YES", "YOLO",
		"YOU", "YOUR", "YOURE",
	}
}
