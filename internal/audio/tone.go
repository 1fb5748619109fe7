// ABOUTME: ToneBeeper plays a short sine tone through the default output device via oto
// ABOUTME: oto permits one context per process, so it is created lazily and shared

package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/mauromedda/spomo-go/internal/log"
)

const (
	sampleRate = 44100

	// DefaultFrequency is the tone pitch in Hz.
	DefaultFrequency = 932.0
	// DefaultVolume is the player volume in [0,1].
	DefaultVolume = 0.4
	// DefaultDuration is how long the tone plays.
	DefaultDuration = 800 * time.Millisecond
)

var errStillPlaying = errors.New("player did not finish")

var (
	contextOnce sync.Once
	sharedCtx   *oto.Context
	contextErr  error
)

func sharedContext() (*oto.Context, error) {
	contextOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			contextErr = err
			return
		}
		<-ready
		sharedCtx = ctx
	})
	return sharedCtx, contextErr
}

// ToneBeeper plays a sine tone on the system audio output.
type ToneBeeper struct {
	Frequency float64
	Volume    float64
	Duration  time.Duration

	context func() (*oto.Context, error)
}

// NewToneBeeper returns a ToneBeeper with the default pitch, volume and length.
func NewToneBeeper() *ToneBeeper {
	return &ToneBeeper{
		Frequency: DefaultFrequency,
		Volume:    DefaultVolume,
		Duration:  DefaultDuration,
		context:   sharedContext,
	}
}

// Beep plays the tone and blocks until it has finished.
func (b *ToneBeeper) Beep() error {
	ctx, err := b.context()
	if err != nil {
		return &AudioError{Op: OpOpen, Err: err}
	}

	log.Debug("playing tone", "freq", b.Frequency, "volume", b.Volume, "duration", b.Duration)

	p := ctx.NewPlayer(NewSineWave(b.Frequency, sampleRate, b.Duration))
	p.SetVolume(b.Volume)
	p.Play()

	time.Sleep(b.Duration)
	// Allow the device buffer to drain, but never hang on a stuck player.
	deadline := time.Now().Add(b.Duration)
	for p.IsPlaying() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	var errs []error
	if p.IsPlaying() {
		errs = append(errs, errStillPlaying)
	}
	if err := p.Err(); err != nil {
		errs = append(errs, err)
	}
	if err := p.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return &AudioError{Op: OpPlay, Err: err}
	}
	return nil
}
