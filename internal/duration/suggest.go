// ABOUTME: Spelling suggestions for rejected duration specs ("25min" -> "25m")
// ABOUTME: Fuzzy-matches the unit word against the long unit names via sahilm/fuzzy

package duration

import (
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	bareNumeral = regexp.MustCompile(`^\d+$`)
	wordUnit    = regexp.MustCompile(`^\s*(\d+)\s*([A-Za-z]+)\s*$`)
)

// unitWords are indexed so that the first byte is the unit letter of a Form.
var unitWords = []string{"hours", "minutes", "seconds"}

// suggest proposes a valid spec close to token, or "" when nothing fits.
func suggest(token string) string {
	if bareNumeral.MatchString(token) {
		return token + "s"
	}

	m := wordUnit.FindStringSubmatch(token)
	if m == nil {
		return ""
	}

	matches := fuzzy.Find(strings.ToLower(m[2]), unitWords)
	if len(matches) == 0 {
		return ""
	}
	return m[1] + unitWords[matches[0].Index][:1]
}
