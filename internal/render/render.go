// ABOUTME: Render projects a countdown snapshot onto a backend-agnostic Frame
// ABOUTME: Builds the titled border, the centered readout, the labeled gauge and the footer hint

package render

import (
	"math"
	"strings"

	"github.com/mauromedda/spomo-go/internal/countdown"
	"github.com/mauromedda/spomo-go/pkg/tui"
	"github.com/mauromedda/spomo-go/pkg/tui/width"
)

const (
	// DefaultTitle is drawn in the top border when Options.Title is empty.
	DefaultTitle = "spomo"
	// QuitHint is the footer text.
	QuitHint = "q / ctrl+c  quit"

	gaugeFilled = "█"
	gaugeEmpty  = "░"
)

type borderSet struct {
	topLeft, top, topRight          string
	side                            string
	bottomLeft, bottom, bottomRight string
}

var (
	thickBorder = borderSet{"┏", "━", "┓", "┃", "┗", "━", "┛"}
	plainBorder = borderSet{"┌", "─", "┐", "│", "└", "─", "┘"}
)

// Options tweak the rendered frame.
type Options struct {
	Title string
}

// Render builds the frame for s on a g-sized terminal. It performs no I/O
// and returns deeply-equal frames for equal inputs.
func Render(s countdown.Snapshot, g Geometry, o Options) tui.Frame {
	l := ComputeLayout(g)
	f := tui.Frame{Width: max(g.Width, 0), Height: max(g.Height, 0)}
	if f.Width == 0 || f.Height == 0 {
		return f
	}

	title := o.Title
	if title == "" {
		title = DefaultTitle
	}

	f.Regions = append(f.Regions, tui.Region{
		Rect:  l.Main,
		Lines: box(l.Main.Width, l.Main.Height, thickBorder, title, -1, nil),
	})

	if !l.Content.Empty() {
		lines := make([]tui.Line, 0, l.Padding+contentHeight)
		for range l.Padding {
			lines = append(lines, nil)
		}
		lines = append(lines,
			centered("Remaining: "+FormatTime(s.Remaining), tui.RoleRemaining, l.Content.Width),
			centered("Elapsed: "+FormatTime(s.Elapsed), tui.RoleElapsed, l.Content.Width),
			nil,
			gauge(s, l.Content.Width),
		)
		f.Regions = append(f.Regions, tui.Region{Rect: l.Content, Lines: lines})
	}

	if !l.Footer.Empty() {
		f.Regions = append(f.Regions, tui.Region{Rect: l.Footer, Lines: footer(l.Footer)})
	}
	return f
}

func footer(r tui.Rect) []tui.Line {
	if r.Height < 3 {
		return []tui.Line{centered(QuitHint, tui.RoleHint, r.Width)}
	}
	hint := centered(QuitHint, tui.RoleHint, r.Width-2)
	return box(r.Width, r.Height, plainBorder, "", (r.Height-1)/2, hint)
}

// box draws a w x h border. title goes centered into the top edge; inner,
// when non-nil, is drawn between the sides on row innerRow.
func box(w, h int, b borderSet, title string, innerRow int, inner tui.Line) []tui.Line {
	if w <= 0 || h <= 0 {
		return nil
	}
	lines := make([]tui.Line, 0, h)
	lines = append(lines, topEdge(w, b, title))
	for y := 1; y < h-1; y++ {
		if y == innerRow {
			lines = append(lines, sides(w, b, inner))
			continue
		}
		lines = append(lines, sides(w, b, nil))
	}
	if h > 1 {
		lines = append(lines, edge(w, b.bottomLeft, b.bottom, b.bottomRight))
	}
	return lines
}

func edge(w int, left, fill, right string) tui.Line {
	if w == 1 {
		return tui.Line{{Text: left, Role: tui.RoleBorder}}
	}
	return tui.Line{{Text: left + strings.Repeat(fill, w-2) + right, Role: tui.RoleBorder}}
}

func topEdge(w int, b borderSet, title string) tui.Line {
	inner := w - 2
	title = width.Truncate(title, inner)
	if title == "" {
		return edge(w, b.topLeft, b.top, b.topRight)
	}
	left := width.CenterOffset(title, inner)
	right := inner - left - width.VisibleWidth(title)
	return tui.Line{
		{Text: b.topLeft + strings.Repeat(b.top, left), Role: tui.RoleBorder},
		{Text: title, Role: tui.RoleTitle},
		{Text: strings.Repeat(b.top, right) + b.topRight, Role: tui.RoleBorder},
	}
}

func sides(w int, b borderSet, inner tui.Line) tui.Line {
	if w == 1 {
		return tui.Line{{Text: b.side, Role: tui.RoleBorder}}
	}
	line := tui.Line{{Text: b.side, Role: tui.RoleBorder}}
	used := 0
	for _, sp := range inner {
		line = append(line, sp)
		used += width.VisibleWidth(sp.Text)
	}
	if pad := w - 2 - used; pad > 0 {
		line = append(line, tui.Span{Text: strings.Repeat(" ", pad)})
	}
	return append(line, tui.Span{Text: b.side, Role: tui.RoleBorder})
}

// centered truncates text to w cells and left-pads it to the middle.
func centered(text string, role tui.Role, w int) tui.Line {
	text = width.Truncate(text, w)
	if text == "" {
		return nil
	}
	var line tui.Line
	if off := width.CenterOffset(text, w); off > 0 {
		line = append(line, tui.Span{Text: strings.Repeat(" ", off)})
	}
	return append(line, tui.Span{Text: text, Role: role})
}

// FilledCells returns how many of w gauge cells are filled for s.
func FilledCells(s countdown.Snapshot, w int) int {
	if w <= 0 {
		return 0
	}
	return min(int(math.Floor(Ratio(s)*float64(w))), w)
}

// gauge draws the bar with the remaining time centered over it. Label
// cells take the filled or empty label role of the cell underneath.
func gauge(s countdown.Snapshot, w int) tui.Line {
	if w <= 0 {
		return nil
	}
	filled := FilledCells(s, w)
	label := width.Truncate(FormatTime(s.Remaining), w)
	start := width.CenterOffset(label, w)
	end := start + len(label)

	var line tui.Line
	push := func(text string, role tui.Role) {
		if n := len(line); n > 0 && line[n-1].Role == role {
			line[n-1].Text += text
			return
		}
		line = append(line, tui.Span{Text: text, Role: role})
	}

	for x := range w {
		isFilled := x < filled
		switch {
		case x >= start && x < end && isFilled:
			push(label[x-start:x-start+1], tui.RoleGaugeLabelFilled)
		case x >= start && x < end:
			push(label[x-start:x-start+1], tui.RoleGaugeLabelEmpty)
		case isFilled:
			push(gaugeFilled, tui.RoleGaugeFilled)
		default:
			push(gaugeEmpty, tui.RoleGaugeEmpty)
		}
	}
	return line
}
