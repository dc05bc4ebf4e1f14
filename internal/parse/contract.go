package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"trendfin/internal/types"
)

const defaultContractWindow = 5

var (
	urlPattern    = regexp.MustCompile(`(?i)https?://\S+`)
	strikePattern = regexp.MustCompile(`^\$?(\d+(?:\.\d+)?)(C|P|CALL|CALLS|PUT|PUTS)$`)
	numberPattern = regexp.MustCompile(`^\$?\d+(?:\.\d+)?$`)
	sidePattern   = regexp.MustCompile(`^(C|P|CALL|CALLS|PUT|PUTS)$`)
	datePattern   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?$`)
)

// ContractParserConfig configures a ContractParser instance.
type ContractParserConfig struct {
	// IgnoreDuplicates emits only the first occurrence of each
	// (symbol, side, strike, expiry) tuple per parse call.
	IgnoreDuplicates bool
	// Window is the maximum number of unrelated tokens tolerated between
	// the elements of one contract. Zero means the default of 5.
	Window int
}

// ContractParser finds option-contract mentions of the form
// "<ticker> <strike><C|P> <expiration>" in free text. The grammar is matched
// by a tolerant state machine over token windows rather than a strict
// fixed-format parse: elements may arrive in any order, spacing and verbose
// forms ("500 CALLS") are accepted, and any candidate failing validation is
// silently dropped.
type ContractParser struct {
	lexicon          *Lexicon
	ignoreDuplicates bool
	window           int
}

// NewContractParser builds a parser over the given lexicon.
func NewContractParser(lexicon *Lexicon, cfg ContractParserConfig) (*ContractParser, error) {
	if lexicon == nil {
		return nil, fmt.Errorf("%w: nil lexicon", types.ErrInvalidInput)
	}
	window := cfg.Window
	if window <= 0 {
		window = defaultContractWindow
	}
	return &ContractParser{
		lexicon:          lexicon,
		ignoreDuplicates: cfg.IgnoreDuplicates,
		window:           window,
	}, nil
}

// word is a whitespace-and-punctuation delimited token carrying its byte
// span in the source text.
type word struct {
	text string
	pos  int
	end  int
}

// scanContractWords tokenizes text for contract matching. Tokens are maximal
// runs of letters, digits, '$', '/' and '.', with stray leading/trailing
// dots trimmed so sentence punctuation does not glue onto strikes and dates.
func scanContractWords(text string) []word {
	var out []word

	isTokenByte := func(b byte) bool {
		return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' ||
			b >= '0' && b <= '9' || b == '$' || b == '/' || b == '.'
	}

	i := 0
	for i < len(text) {
		if !isTokenByte(text[i]) {
			i++
			continue
		}
		start := i
		for i < len(text) && isTokenByte(text[i]) {
			i++
		}
		pos, end := start, i
		for pos < end && text[pos] == '.' {
			pos++
		}
		for end > pos && text[end-1] == '.' {
			end--
		}
		if end > pos {
			out = append(out, word{text: text[pos:end], pos: pos, end: end})
		}
	}
	return out
}

// pendingContract accumulates contract elements during the token walk.
type pendingContract struct {
	ticker  string
	strike  decimal.Decimal
	side    types.Side
	expiry  types.Expiry
	hasStrk bool
	hasDate bool
	started bool
	first   int // byte offset of the first contributing token
	end     int // byte offset past the last contributing token
	lastIdx int // token index of the last contributing token
}

func (pc *pendingContract) contribute(idx int, w word) {
	if !pc.started {
		pc.started = true
		pc.first = w.pos
	}
	if w.end > pc.end {
		pc.end = w.end
	}
	pc.lastIdx = idx
}

func (pc *pendingContract) complete() bool {
	return pc.ticker != "" && pc.hasStrk && pc.hasDate
}

// Contracts returns the option-contract mentions in text, in source order.
// Grammatically plausible candidates that reference an unknown ticker or
// fail numeric/date validation are discarded, never reported as partial.
func (p *ContractParser) Contracts(text string) ([]types.ContractMention, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", types.ErrInvalidInput)
	}

	mentions := []types.ContractMention{}
	var seen map[string]struct{}
	if p.ignoreDuplicates {
		seen = make(map[string]struct{})
	}

	excluded := urlPattern.FindAllStringIndex(text, -1)
	inURL := func(pos int) bool {
		for _, span := range excluded {
			if pos >= span[0] && pos < span[1] {
				return true
			}
		}
		return false
	}

	words := scanContractWords(text)
	var pend pendingContract

	emit := func() {
		if m, ok := p.validate(&pend, text); ok {
			if p.ignoreDuplicates {
				key := m.Key()
				if _, dup := seen[key]; dup {
					pend = pendingContract{}
					return
				}
				seen[key] = struct{}{}
			}
			mentions = append(mentions, m)
		}
		pend = pendingContract{}
	}

	// A contract whose elements drift too far apart is noise, not a
	// contract. Called before applying the next element.
	resetIfStale := func(i int) {
		if pend.started && i-pend.lastIdx > p.window+1 {
			pend = pendingContract{}
		}
	}

	for i := 0; i < len(words); i++ {
		w := words[i]
		if inURL(w.pos) {
			continue
		}
		upper := strings.ToUpper(w.text)

		switch {
		case strikePattern.MatchString(upper):
			sub := strikePattern.FindStringSubmatch(upper)
			resetIfStale(i)
			pend.strike, _ = decimal.NewFromString(sub[1])
			pend.side = sideFor(sub[2])
			pend.hasStrk = true
			pend.contribute(i, w)

		case numberPattern.MatchString(upper) && i+1 < len(words) &&
			sidePattern.MatchString(strings.ToUpper(words[i+1].text)) &&
			!inURL(words[i+1].pos):
			// Detached side token: "500 C", "120 puts".
			resetIfStale(i)
			pend.strike, _ = decimal.NewFromString(strings.TrimPrefix(upper, "$"))
			pend.side = sideFor(strings.ToUpper(words[i+1].text))
			pend.hasStrk = true
			pend.contribute(i, w)
			pend.contribute(i+1, words[i+1])
			i++

		case datePattern.MatchString(upper):
			sub := datePattern.FindStringSubmatch(upper)
			resetIfStale(i)
			pend.expiry = parseExpiry(sub)
			pend.hasDate = true
			pend.contribute(i, w)

		case p.lexicon.Contains(strings.TrimPrefix(upper, "$")):
			resetIfStale(i)
			pend.ticker = strings.TrimPrefix(upper, "$")
			pend.contribute(i, w)
		}

		if pend.complete() {
			emit()
		}
	}

	return mentions, nil
}

// validate applies the numeric and calendar checks and builds the mention.
func (p *ContractParser) validate(pend *pendingContract, text string) (types.ContractMention, bool) {
	if !pend.strike.IsPositive() {
		return types.ContractMention{}, false
	}
	if !validExpiry(pend.expiry) {
		return types.ContractMention{}, false
	}
	return types.ContractMention{
		Underlying: pend.ticker,
		Side:       pend.side,
		Strike:     pend.strike,
		Expiry:     pend.expiry,
		Position:   pend.first,
		Raw:        text[pend.first:pend.end],
	}, true
}

func sideFor(suffix string) types.Side {
	if strings.HasPrefix(suffix, "P") {
		return types.SidePut
	}
	return types.SideCall
}

// parseExpiry builds an Expiry from the date regexp submatches. Two-digit
// years are normalized by assuming the current century.
func parseExpiry(sub []string) types.Expiry {
	e := types.Expiry{
		Month: atoi(sub[1]),
		Day:   atoi(sub[2]),
	}
	if sub[3] != "" {
		e.Year = atoi(sub[3])
		if e.Year < 100 {
			e.Year += 2000
		}
	}
	return e
}

func validExpiry(e types.Expiry) bool {
	if e.Month < 1 || e.Month > 12 {
		return false
	}
	return e.Day >= 1 && e.Day <= daysInMonth(e.Month, e.Year)
}

func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		// With no year stated a Feb 29 expiry cannot be ruled out.
		if year == 0 || (year%4 == 0 && (year%100 != 0 || year%400 == 0)) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
