package types

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for configuration-time misuse: an empty or
// malformed ticker universe, non-UTF-8 text, or a badly shaped symbol
// argument. Runtime peculiarities of noisy text never produce an error.
var ErrInvalidInput = errors.New("invalid input")

// Side is the option contract side.
type Side string

const (
	SideCall Side = "CALL"
	SidePut  Side = "PUT"
)

// TickerMention is a confirmed ticker reference found in a text.
type TickerMention struct {
	Symbol   string `json:"symbol"`
	Position int    `json:"position"` // byte offset into the source text
	Raw      string `json:"raw"`      // as it appeared, cashtag included
}

// Expiry is an option expiration date. Year is 0 when the text did not
// state one.
type Expiry struct {
	Month int `json:"month"`
	Day   int `json:"day"`
	Year  int `json:"year,omitempty"`
}

func (e Expiry) String() string {
	if e.Year == 0 {
		return fmt.Sprintf("%d/%d", e.Month, e.Day)
	}
	return fmt.Sprintf("%d/%d/%d", e.Month, e.Day, e.Year)
}

// ContractMention is an option contract reference found in a text.
type ContractMention struct {
	Underlying string          `json:"underlying"`
	Side       Side            `json:"side"`
	Strike     decimal.Decimal `json:"strike"`
	Expiry     Expiry          `json:"expiry"`
	Position   int             `json:"position"`
	Raw        string          `json:"raw"`
}

// Key identifies the contract tuple for duplicate suppression.
func (c ContractMention) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s", c.Underlying, c.Side, c.Strike.String(), c.Expiry)
}

// SentimentScore is a polarity in [-1, +1]: negative is bearish, positive
// is bullish, zero is neutral.
type SentimentScore struct {
	Polarity float64 `json:"polarity"`
}

// Document is one unit of text supplied by a collaborator (a post title,
// post body, comment, or headline).
type Document struct {
	Source string `json:"source"` // e.g. "reddit/wallstreetbets", "news/finviz"
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Body   string `json:"body,omitempty"`
}

// Text returns the analyzable text of the document.
func (d Document) Text() string {
	if d.Title == "" {
		return d.Body
	}
	if d.Body == "" {
		return d.Title
	}
	return d.Title + "\n" + d.Body
}

// TickerTrend aggregates one symbol's activity across a batch of documents.
type TickerTrend struct {
	Symbol    string  `json:"symbol"`
	Mentions  int     `json:"mentions"`
	Contracts int     `json:"contracts"`
	Documents int     `json:"documents"`
	Polarity  float64 `json:"polarity"` // mean ticker-scoped polarity
}
