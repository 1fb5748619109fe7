// ABOUTME: Painter composes a Frame onto a cell grid and emits one styled string per row
// ABOUTME: Role styles come from lipgloss with a pinned color profile so output is reproducible

package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mauromedda/spomo-go/pkg/tui/theme"
	"github.com/mauromedda/spomo-go/pkg/tui/width"
)

// Painter turns Frames into styled terminal lines.
type Painter struct {
	styles map[Role]lipgloss.Style
}

// NewPainter builds role styles from the palette using the given color
// profile. Pass termenv.Ascii to emit plain text.
func NewPainter(p theme.Palette, profile termenv.Profile) *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &Painter{
		styles: map[Role]lipgloss.Style{
			RoleBorder:           fg(p.Border),
			RoleTitle:            fg(p.Title).Bold(true),
			RoleLabel:            fg(p.Label),
			RoleRemaining:        fg(p.Remaining).Bold(true),
			RoleElapsed:          fg(p.Elapsed),
			RoleGaugeFilled:      fg(p.GaugeFilled),
			RoleGaugeEmpty:       fg(p.GaugeEmpty),
			RoleGaugeLabelFilled: fg(p.GaugeLabel).Background(lipgloss.Color(p.GaugeFilled)).Bold(true),
			RoleGaugeLabelEmpty:  fg(p.Label).Bold(true),
			RoleHint:             fg(p.Hint),
		},
	}
}

// cell is one terminal cell. A wide cluster occupies its first cell; the
// following cells are marked as continuations and emit nothing.
type cell struct {
	text string
	role Role
	cont bool
}

// Compose paints f onto a blank grid and writes one line per row into out.
// Identical frames always produce identical bytes.
func (p *Painter) Compose(f Frame, out *RenderBuffer) {
	if f.Width <= 0 || f.Height <= 0 {
		return
	}

	grid := make([][]cell, f.Height)
	for y := range grid {
		row := make([]cell, f.Width)
		for x := range row {
			row[x] = cell{text: " "}
		}
		grid[y] = row
	}

	for _, r := range f.Regions {
		paintRegion(grid, f.Width, f.Height, r)
	}

	for _, row := range grid {
		out.WriteLine(p.renderRow(row))
	}
}

func paintRegion(grid [][]cell, w, h int, r Region) {
	if r.Rect.Empty() {
		return
	}
	right := min(r.Rect.X+r.Rect.Width, w)
	for i, line := range r.Lines {
		y := r.Rect.Y + i
		if i >= r.Rect.Height || y >= h {
			return
		}
		if y < 0 {
			continue
		}
		x := r.Rect.X
		for _, span := range line {
			for _, c := range width.Clusters(span.Text) {
				if x+c.Width > right {
					break
				}
				if x >= 0 {
					grid[y][x] = cell{text: c.Text, role: span.Role}
					for k := 1; k < c.Width; k++ {
						grid[y][x+k] = cell{role: span.Role, cont: true}
					}
				}
				x += c.Width
			}
		}
	}
}

// renderRow groups consecutive cells of the same role into one styled run.
func (p *Painter) renderRow(row []cell) string {
	var b strings.Builder
	var run strings.Builder
	runRole := RoleNone

	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(p.style(runRole, run.String()))
		run.Reset()
	}

	for _, c := range row {
		if c.cont {
			continue
		}
		if c.role != runRole {
			flush()
			runRole = c.role
		}
		run.WriteString(c.text)
	}
	flush()
	return b.String()
}

func (p *Painter) style(role Role, text string) string {
	s, ok := p.styles[role]
	if !ok {
		return text
	}
	return s.Render(text)
}

// PlainLines composes f without any styling. Useful for tests and logs.
func PlainLines(f Frame) []string {
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	p := &Painter{}
	p.Compose(f, buf)
	out := make([]string, buf.Len())
	copy(out, buf.Lines)
	return out
}
