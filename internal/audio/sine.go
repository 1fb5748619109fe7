// ABOUTME: SineWave streams a fixed-length sine tone as signed 16-bit little-endian mono PCM
// ABOUTME: Samples are computed on demand so the reader holds no sample buffer

package audio

import (
	"io"
	"math"
	"time"
)

// SineWave is an io.Reader of PCM samples for a single tone.
type SineWave struct {
	freq  float64
	rate  int
	total int64 // bytes
	pos   int64
}

// NewSineWave returns a reader producing d worth of a freq Hz sine at rate
// samples per second.
func NewSineWave(freq float64, rate int, d time.Duration) *SineWave {
	samples := int64(rate) * int64(d) / int64(time.Second)
	return &SineWave{freq: freq, rate: rate, total: max(samples, 0) * 2}
}

// Len returns the total stream length in bytes.
func (s *SineWave) Len() int64 {
	return s.total
}

// Sample returns the i-th sample value.
func (s *SineWave) Sample(i int64) int16 {
	v := math.Sin(2 * math.Pi * s.freq * float64(i) / float64(s.rate))
	return int16(math.Round(v * math.MaxInt16))
}

func (s *SineWave) Read(p []byte) (int, error) {
	if s.pos >= s.total {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && s.pos < s.total {
		v := uint16(s.Sample(s.pos / 2))
		if s.pos%2 == 0 {
			p[n] = byte(v)
		} else {
			p[n] = byte(v >> 8)
		}
		n++
		s.pos++
	}
	return n, nil
}
