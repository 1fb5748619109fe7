// ABOUTME: Splits the terminal area into the bordered main block and the footer
// ABOUTME: and centers the readout and gauge vertically inside the main block

package render

import "github.com/mauromedda/spomo-go/pkg/tui"

const (
	footerHeight  = 3
	minMainHeight = 3
	// remaining, elapsed, spacer, gauge
	contentHeight = 4
)

// Geometry is the drawable terminal area in cells.
type Geometry struct {
	Width  int
	Height int
}

// Layout holds the rectangles derived from a Geometry.
type Layout struct {
	Main    tui.Rect // bordered block, title in its top edge
	Footer  tui.Rect // quit hint box
	Content tui.Rect // inside the border and the 1-cell margin
	Padding int      // blank rows above the readout
}

// ComputeLayout derives the layout for g. The main block keeps at least
// three rows; below six rows it keeps min(height, 3) and the footer gets
// whatever is left.
func ComputeLayout(g Geometry) Layout {
	w, h := max(g.Width, 0), max(g.Height, 0)

	mainH := h - footerHeight
	if h < minMainHeight+footerHeight {
		mainH = min(h, minMainHeight)
	}

	l := Layout{
		Main:   tui.Rect{X: 0, Y: 0, Width: w, Height: mainH},
		Footer: tui.Rect{X: 0, Y: mainH, Width: w, Height: h - mainH},
	}
	l.Content = l.Main.Inset(1).Inset(1)
	l.Padding = max((l.Content.Height-contentHeight)/2, 0)
	return l
}
