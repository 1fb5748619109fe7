// ABOUTME: Duration spec parser: turns a single "<n>h", "<n>m" or "<n>s" token into seconds
// ABOUTME: Anchored per-unit patterns; bare numerals and composite specs are rejected

package duration

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Seconds is a non-negative span of whole seconds.
type Seconds uint64

// Duration converts s to a time.Duration, saturating at the largest
// representable value.
func (s Seconds) Duration() time.Duration {
	if uint64(s) > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(s) * time.Second
}

// String renders s using time.Duration notation (e.g. "25m0s").
func (s Seconds) String() string {
	return s.Duration().String()
}

// Form describes one accepted spec shape.
type Form struct {
	Unit       byte
	Multiplier uint64
	pattern    *regexp.Regexp
}

// Pattern returns the anchored regular expression of the form.
func (f Form) Pattern() string {
	return f.pattern.String()
}

// forms are mutually exclusive: each one requires a distinct trailing unit letter.
var forms = []Form{
	{Unit: 'h', Multiplier: 3600, pattern: regexp.MustCompile(`^(\d+)h$`)},
	{Unit: 'm', Multiplier: 60, pattern: regexp.MustCompile(`^(\d+)m$`)},
	{Unit: 's', Multiplier: 1, pattern: regexp.MustCompile(`^(\d+)s$`)},
}

// Forms returns the accepted spec forms in evaluation order.
func Forms() []Form {
	out := make([]Form, len(forms))
	copy(out, forms)
	return out
}

// MatchingForms returns every form whose pattern matches token.
func MatchingForms(token string) []Form {
	var out []Form
	for _, f := range forms {
		if f.pattern.MatchString(token) {
			out = append(out, f)
		}
	}
	return out
}

// Parse converts a single duration spec token into seconds.
// The returned error is always a *ParseError.
func Parse(token string) (Seconds, error) {
	for _, f := range forms {
		m := f.pattern.FindStringSubmatch(token)
		if m == nil {
			continue
		}

		n, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, &ParseError{Token: token, Err: ErrOverflow}
			}
			return 0, &ParseError{Token: token, Err: ErrInvalid}
		}
		if n > math.MaxUint64/f.Multiplier {
			return 0, &ParseError{Token: token, Err: ErrOverflow}
		}
		return Seconds(n * f.Multiplier), nil
	}

	return 0, &ParseError{Token: token, Err: ErrInvalid, Suggestion: suggest(token)}
}
