// ABOUTME: Display-width measurement of plain text with grapheme-aware segmentation
// ABOUTME: Fast path for pure ASCII; clusters, truncation and centering helpers for layout

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster together with its display width in cells.
type Cluster struct {
	Text  string
	Width int
}

// Clusters splits s into grapheme clusters. Zero-width clusters (combining
// marks that could not attach, control bytes) are dropped.
func Clusters(s string) []Cluster {
	if isPlainASCII(s) {
		out := make([]Cluster, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = Cluster{Text: s[i : i+1], Width: 1}
		}
		return out
	}

	var out []Cluster
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		if w := graphemeWidth(cluster); w > 0 {
			out = append(out, Cluster{Text: cluster, Width: w})
		}
		s = rest
		state = newState
	}
	return out
}

// VisibleWidth returns the display width of s in terminal cells.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	for _, c := range Clusters(s) {
		w += c.Width
	}
	return w
}

// Truncate clips s to at most maxWidth cells. A wide cluster that would
// straddle the limit is dropped entirely.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	var b strings.Builder
	col := 0
	for _, c := range Clusters(s) {
		if col+c.Width > maxWidth {
			break
		}
		b.WriteString(c.Text)
		col += c.Width
	}
	return b.String()
}

// TruncateEllipsis clips s to maxWidth cells, replacing the last visible
// cell with an ellipsis when anything was cut.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return Truncate(s, maxWidth-1) + "…"
}

// CenterOffset returns the left padding that centers s in a field of
// fieldWidth cells. Odd leftovers go to the right; the result is never negative.
func CenterOffset(s string, fieldWidth int) int {
	pad := (fieldWidth - VisibleWidth(s)) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
