// ABOUTME: Tests for Painter: grid composition, clipping, wide clusters, deterministic styling
// ABOUTME: Plain output is checked through PlainLines and an Ascii-profile painter

package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/mauromedda/spomo-go/pkg/tui/theme"
)

func plainRegion(r Rect, lines ...string) Region {
	reg := Region{Rect: r}
	for _, l := range lines {
		reg.Lines = append(reg.Lines, Line{{Text: l, Role: RoleLabel}})
	}
	return reg
}

func TestPlainLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		frame Frame
		want  []string
	}{
		{
			name:  "blank grid",
			frame: Frame{Width: 3, Height: 2},
			want:  []string{"   ", "   "},
		},
		{
			name: "clipped to region width",
			frame: Frame{Width: 8, Height: 1, Regions: []Region{
				plainRegion(Rect{X: 2, Y: 0, Width: 3, Height: 1}, "abcdef"),
			}},
			want: []string{"  abc   "},
		},
		{
			name: "clipped to region height",
			frame: Frame{Width: 2, Height: 3, Regions: []Region{
				plainRegion(Rect{X: 0, Y: 0, Width: 2, Height: 2}, "aa", "bb", "cc"),
			}},
			want: []string{"aa", "bb", "  "},
		},
		{
			name: "clipped to frame",
			frame: Frame{Width: 4, Height: 1, Regions: []Region{
				plainRegion(Rect{X: 2, Y: 0, Width: 10, Height: 5}, "xyz", "hidden"),
			}},
			want: []string{"  xy"},
		},
		{
			name: "later regions paint on top",
			frame: Frame{Width: 5, Height: 1, Regions: []Region{
				plainRegion(Rect{X: 0, Y: 0, Width: 5, Height: 1}, "aaaaa"),
				plainRegion(Rect{X: 1, Y: 0, Width: 2, Height: 1}, "bb"),
			}},
			want: []string{"abbaa"},
		},
		{
			name: "wide cluster occupies two cells",
			frame: Frame{Width: 4, Height: 1, Regions: []Region{
				plainRegion(Rect{X: 0, Y: 0, Width: 4, Height: 1}, "日x"),
			}},
			want: []string{"日x "},
		},
		{
			name: "wide cluster straddling the edge is dropped",
			frame: Frame{Width: 3, Height: 1, Regions: []Region{
				plainRegion(Rect{X: 0, Y: 0, Width: 3, Height: 1}, "a日本"),
			}},
			want: []string{"a日"},
		},
		{
			name: "negative origin",
			frame: Frame{Width: 3, Height: 2, Regions: []Region{
				plainRegion(Rect{X: -1, Y: -1, Width: 4, Height: 3}, "skip", "abcd"),
			}},
			want: []string{"bcd", "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PlainLines(tt.frame)
			if !slices.Equal(got, tt.want) {
				t.Errorf("PlainLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainLines_EmptyFrame(t *testing.T) {
	t.Parallel()

	if got := PlainLines(Frame{Width: 0, Height: 10}); len(got) != 0 {
		t.Errorf("expected no lines for zero width, got %q", got)
	}
}

func sampleFrame() Frame {
	return Frame{Width: 12, Height: 2, Regions: []Region{
		{
			Rect: Rect{X: 0, Y: 0, Width: 12, Height: 2},
			Lines: []Line{
				{{Text: "Left: ", Role: RoleLabel}, {Text: "00:01", Role: RoleRemaining}},
				{{Text: "####", Role: RoleGaugeFilled}, {Text: "----", Role: RoleGaugeEmpty}},
			},
		},
	}}
}

func TestPainter_AsciiMatchesPlain(t *testing.T) {
	t.Parallel()

	p := NewPainter(theme.DefaultPalette(), termenv.Ascii)
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	p.Compose(sampleFrame(), buf)
	want := PlainLines(sampleFrame())
	if !slices.Equal(buf.Lines, want) {
		t.Errorf("Ascii Compose = %q, want %q", buf.Lines, want)
	}
}

func TestPainter_Deterministic(t *testing.T) {
	t.Parallel()

	p := NewPainter(theme.DefaultPalette(), termenv.ANSI256)
	render := func() []string {
		buf := AcquireBuffer()
		defer ReleaseBuffer(buf)
		p.Compose(sampleFrame(), buf)
		return slices.Clone(buf.Lines)
	}

	first := render()
	second := render()
	if !slices.Equal(first, second) {
		t.Errorf("Compose is not deterministic:\n%q\n%q", first, second)
	}
	if !strings.Contains(first[0], "\x1b[") {
		t.Errorf("expected styled output with ANSI256 profile, got %q", first[0])
	}
	if !strings.Contains(first[0], "00:01") {
		t.Errorf("styled row lost its text: %q", first[0])
	}
}

func TestPainter_PaletteChangesOutput(t *testing.T) {
	t.Parallel()

	light := theme.Builtin("light")
	if light == nil {
		t.Fatal("light theme missing")
	}
	a := NewPainter(theme.DefaultPalette(), termenv.ANSI256)
	b := NewPainter(light.Palette, termenv.ANSI256)

	bufA, bufB := AcquireBuffer(), AcquireBuffer()
	defer ReleaseBuffer(bufA)
	defer ReleaseBuffer(bufB)

	a.Compose(sampleFrame(), bufA)
	b.Compose(sampleFrame(), bufB)
	if slices.Equal(bufA.Lines, bufB.Lines) {
		t.Error("different palettes produced identical output")
	}
}
