// ABOUTME: Tests for beeper selection, bell and no-op beepers, AudioError, and the sine stream
// ABOUTME: The tone's device path is exercised only through its open-failure branch

package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ebitengine/oto/v3"
)

// compile-time checks.
var (
	_ Beeper = (*ToneBeeper)(nil)
	_ Beeper = (*BellBeeper)(nil)
	_ Beeper = NopBeeper{}
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{kind: "", want: "*audio.ToneBeeper"},
		{kind: KindTone, want: "*audio.ToneBeeper"},
		{kind: KindBell, want: "*audio.BellBeeper"},
		{kind: KindNone, want: "audio.NopBeeper"},
		{kind: "siren", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			t.Parallel()
			b, err := New(tt.kind, io.Discard)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("New(%q) error = %v, want ErrUnknownKind", tt.kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) unexpected error: %v", tt.kind, err)
			}
			if got := typeName(b); got != tt.want {
				t.Errorf("New(%q) = %s, want %s", tt.kind, got, tt.want)
			}
		})
	}
}

func typeName(b Beeper) string {
	switch b.(type) {
	case *ToneBeeper:
		return "*audio.ToneBeeper"
	case *BellBeeper:
		return "*audio.BellBeeper"
	case NopBeeper:
		return "audio.NopBeeper"
	}
	return "?"
}

func TestBellBeeper(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := (&BellBeeper{W: &buf}).Beep(); err != nil {
		t.Fatalf("Beep() unexpected error: %v", err)
	}
	if buf.String() != "\a" {
		t.Errorf("wrote %q, want BEL", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBellBeeper_WriteFailure(t *testing.T) {
	t.Parallel()

	err := (&BellBeeper{W: failWriter{}}).Beep()
	var ae *AudioError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *AudioError", err)
	}
	if ae.Op != OpPlay {
		t.Errorf("Op = %q, want %q", ae.Op, OpPlay)
	}
}

func TestNopBeeper(t *testing.T) {
	t.Parallel()

	if err := (NopBeeper{}).Beep(); err != nil {
		t.Errorf("Beep() = %v", err)
	}
}

func TestToneBeeper_Defaults(t *testing.T) {
	t.Parallel()

	b := NewToneBeeper()
	if b.Frequency != 932 || b.Volume != 0.4 || b.Duration != 800*time.Millisecond {
		t.Errorf("defaults = %v Hz, %v vol, %v", b.Frequency, b.Volume, b.Duration)
	}
}

func TestToneBeeper_OpenFailure(t *testing.T) {
	t.Parallel()

	noDevice := errors.New("no audio device")
	b := NewToneBeeper()
	b.context = func() (*oto.Context, error) { return nil, noDevice }

	err := b.Beep()
	var ae *AudioError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *AudioError", err)
	}
	if ae.Op != OpOpen {
		t.Errorf("Op = %q, want %q", ae.Op, OpOpen)
	}
	if !errors.Is(err, noDevice) {
		t.Error("AudioError should unwrap to the device error")
	}
	if got := err.Error(); got != "cannot open audio output: no audio device" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSineWave_Length(t *testing.T) {
	t.Parallel()

	s := NewSineWave(932, 44100, 800*time.Millisecond)
	if s.Len() != 35280*2 {
		t.Fatalf("Len() = %d, want %d", s.Len(), 35280*2)
	}

	data, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if int64(len(data)) != s.Len() {
		t.Errorf("read %d bytes, want %d", len(data), s.Len())
	}
}

func TestSineWave_Samples(t *testing.T) {
	t.Parallel()

	// 1 kHz at 4 kHz: quarter-period steps give 0, max, 0, -max.
	s := NewSineWave(1000, 4000, time.Millisecond)
	data, err := io.ReadAll(s)
	if err != nil {
		t.Fatal(err)
	}
	want := []int16{0, 32767, 0, -32767}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[2*i:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestSineWave_OddReads(t *testing.T) {
	t.Parallel()

	whole, _ := io.ReadAll(NewSineWave(932, 8000, 10*time.Millisecond))

	s := NewSineWave(932, 8000, 10*time.Millisecond)
	var pieces []byte
	buf := make([]byte, 3)
	for {
		n, err := s.Read(buf)
		pieces = append(pieces, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(whole, pieces) {
		t.Error("reading in 3-byte chunks changed the stream")
	}
}
