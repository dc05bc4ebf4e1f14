package parse

import (
	"unicode"
)

// candidate is a token shaped like a ticker symbol: a maximal run of
// uppercase ASCII letters and digits with word boundaries on both sides,
// optionally preceded by a '$' cashtag marker.
type candidate struct {
	text    string // the run itself, cashtag excluded
	pos     int    // byte offset of the raw token (the '$' when cashtagged)
	end     int    // byte offset just past the run
	cashtag bool
}

// scanCandidates walks text left to right and returns ticker-shaped tokens
// in source order. Runs containing lowercase or non-ASCII letters are not
// candidates; arbitrary Unicode around them is tolerated and skipped.
func scanCandidates(text string) []candidate {
	var out []candidate

	runStart := -1
	runOK := true
	prev := rune(0)
	prevStart := 0

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if runOK {
			c := candidate{
				text: text[runStart:end],
				pos:  runStart,
				end:  end,
			}
			if prev == '$' {
				c.cashtag = true
				c.pos = prevStart
			}
			out = append(out, c)
		}
		runStart = -1
		runOK = true
	}

	for i, r := range text {
		alnum := unicode.IsLetter(r) || unicode.IsDigit(r)
		if alnum {
			if runStart < 0 {
				runStart = i
			}
			// Only uppercase ASCII letters and ASCII digits qualify.
			if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
				runOK = false
			}
			continue
		}
		flush(i)
		prev = r
		prevStart = i
	}
	flush(len(text))

	return out
}
