// ABOUTME: Time readout formatting and the gauge fill ratio
// ABOUTME: Both are pure functions of a countdown snapshot

package render

import (
	"fmt"

	"github.com/mauromedda/spomo-go/internal/countdown"
)

// FormatTime formats seconds as HH:MM:SS. Hours wrap at 24; the readout is
// cosmetic and runs are expected to stay well under a day.
func FormatTime(seconds uint64) string {
	h := (seconds / 3600) % 24
	m := (seconds / 60) % 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Ratio returns remaining/total clamped to [0,1]. A zero total counts as full.
func Ratio(s countdown.Snapshot) float64 {
	if s.Total == 0 {
		return 1
	}
	r := float64(s.Remaining) / float64(s.Total)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}
