// ABOUTME: Folds several duration spec tokens into one total
// ABOUTME: Fails fast on the first bad token; empty input is zero seconds

package duration

import "math"

// Accumulate parses every token and returns the sum of their seconds.
// The first token that fails to parse (or overflows the running total)
// is reported as a *ParseError naming that token.
func Accumulate(tokens []string) (Seconds, error) {
	var total Seconds
	for _, tok := range tokens {
		s, err := Parse(tok)
		if err != nil {
			return 0, err
		}
		if uint64(total) > math.MaxUint64-uint64(s) {
			return 0, &ParseError{Token: tok, Err: ErrOverflow}
		}
		total += s
	}
	return total, nil
}
