package parse

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"trendfin/internal/types"
)

func newContractParser(t *testing.T, cfg ContractParserConfig) *ContractParser {
	t.Helper()
	lex, err := NewLexicon([]string{"AAPL", "TSLA", "AMD"})
	if err != nil {
		t.Fatalf("Failed to build lexicon: %v", err)
	}
	p, err := NewContractParser(lex, cfg)
	if err != nil {
		t.Fatalf("Failed to build parser: %v", err)
	}
	return p
}

func TestContractsCompact(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	mentions, err := p.Contracts("AAPL $500C for 9/12")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 {
		t.Fatalf("Expected 1 contract, got %d", len(mentions))
	}

	m := mentions[0]
	if m.Underlying != "AAPL" {
		t.Errorf("Expected underlying AAPL, got %q", m.Underlying)
	}
	if m.Side != types.SideCall {
		t.Errorf("Expected CALL side, got %v", m.Side)
	}
	if !m.Strike.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected strike 500, got %s", m.Strike)
	}
	if m.Expiry != (types.Expiry{Month: 9, Day: 12}) {
		t.Errorf("Expected expiry 9/12 with no year, got %+v", m.Expiry)
	}
	if m.Position != 0 || m.Raw != "AAPL $500C for 9/12" {
		t.Errorf("Unexpected span: position %d raw %q", m.Position, m.Raw)
	}
}

func TestContractsUnknownTicker(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	mentions, err := p.Contracts("XXXX $500C for 9/12")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 0 {
		t.Errorf("Expected 0 contracts for unknown ticker, got %d", len(mentions))
	}
}

func TestContractsLowercaseWithYear(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	mentions, err := p.Contracts("tsla 120p 1/17/25")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 {
		t.Fatalf("Expected 1 contract, got %d", len(mentions))
	}

	m := mentions[0]
	if m.Underlying != "TSLA" || m.Side != types.SidePut {
		t.Errorf("Expected TSLA put, got %+v", m)
	}
	if !m.Strike.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Expected strike 120, got %s", m.Strike)
	}
	if m.Expiry != (types.Expiry{Month: 1, Day: 17, Year: 2025}) {
		t.Errorf("Expected expiry 1/17/2025, got %+v", m.Expiry)
	}
}

func TestContractsFourDigitYear(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	mentions, err := p.Contracts("TSLA 120P 1/17/2025")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 || mentions[0].Expiry.Year != 2025 {
		t.Errorf("Expected a single contract expiring in 2025, got %+v", mentions)
	}
}

func TestContractsDetachedSide(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	for _, text := range []string{"AAPL 500 c 9/12", "AAPL 500 calls 9/12", "AAPL $500 CALL 9/12"} {
		mentions, err := p.Contracts(text)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", text, err)
		}
		if len(mentions) != 1 {
			t.Fatalf("Expected 1 contract for %q, got %d", text, len(mentions))
		}
		m := mentions[0]
		if m.Underlying != "AAPL" || m.Side != types.SideCall || !m.Strike.Equal(decimal.NewFromInt(500)) {
			t.Errorf("Unexpected contract for %q: %+v", text, m)
		}
	}
}

func TestContractsDecimalStrike(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	mentions, err := p.Contracts("AMD 12.5C 6/20")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 {
		t.Fatalf("Expected 1 contract, got %d", len(mentions))
	}
	if !mentions[0].Strike.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Expected strike 12.5, got %s", mentions[0].Strike)
	}
}

func TestContractsInvalidDiscarded(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	cases := []string{
		"AAPL 500C 13/1",  // month out of range
		"AAPL 500C 2/30",  // day out of range
		"AAPL 0C 9/12",    // zero strike
		"AAPL 500C",       // no expiration
		"500C 9/12",       // no ticker
		"AAPL going to 500 by 9/12", // no side marker
	}
	for _, text := range cases {
		mentions, err := p.Contracts(text)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", text, err)
		}
		if len(mentions) != 0 {
			t.Errorf("Expected 0 contracts for %q, got %+v", text, mentions)
		}
	}
}

func TestContractsLeapDay(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	// Feb 29 is allowed when no year is stated or the year is a leap year.
	mentions, err := p.Contracts("AAPL 500C 2/29")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 {
		t.Errorf("Expected yearless 2/29 to be accepted, got %+v", mentions)
	}

	mentions, err = p.Contracts("AAPL 500C 2/29/25")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 0 {
		t.Errorf("Expected 2/29/2025 to be rejected, got %+v", mentions)
	}
}

func TestContractsDuplicatePolicy(t *testing.T) {
	text := "AAPL 500C 9/12 and again AAPL 500C 9/12"

	p := newContractParser(t, ContractParserConfig{})
	mentions, err := p.Contracts(text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 2 {
		t.Errorf("Expected 2 contracts with duplicates reported, got %d", len(mentions))
	}

	p = newContractParser(t, ContractParserConfig{IgnoreDuplicates: true})
	mentions, err = p.Contracts(text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 {
		t.Errorf("Expected 1 contract with duplicates ignored, got %d", len(mentions))
	}
}

func TestContractsGapWindow(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	// Five filler tokens keep the elements within the default window.
	mentions, err := p.Contracts("AAPL w1 w2 w3 w4 w5 500C 9/12")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 {
		t.Errorf("Expected 1 contract within the gap window, got %d", len(mentions))
	}

	// One more filler pushes the strike out of range of the ticker.
	mentions, err = p.Contracts("AAPL w1 w2 w3 w4 w5 w6 500C 9/12")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 0 {
		t.Errorf("Expected 0 contracts beyond the gap window, got %+v", mentions)
	}
}

func TestContractsURLExcluded(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	mentions, err := p.Contracts("check https://example.com/9/12 AAPL 500C 9/15")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(mentions) != 1 {
		t.Fatalf("Expected 1 contract, got %d", len(mentions))
	}
	if mentions[0].Expiry != (types.Expiry{Month: 9, Day: 15}) {
		t.Errorf("Expected the URL date to be ignored, got expiry %+v", mentions[0].Expiry)
	}
}

func TestContractsInvalidUTF8(t *testing.T) {
	p := newContractParser(t, ContractParserConfig{})

	_, err := p.Contracts(string([]byte{0xff, 0xfe}))
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for invalid UTF-8, got %v", err)
	}
}
