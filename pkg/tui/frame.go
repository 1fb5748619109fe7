// ABOUTME: Backend-agnostic frame model: styled text runs placed in rectangular regions
// ABOUTME: Producers build Frames as plain data; the Painter turns them into terminal output

package tui

// Role names the foreground/emphasis attribute of a text run.
// The Theme decides how each role looks on a real terminal.
type Role int

const (
	RoleNone Role = iota
	RoleBorder
	RoleTitle
	RoleLabel
	RoleRemaining
	RoleElapsed
	RoleGaugeFilled
	RoleGaugeEmpty
	RoleGaugeLabelFilled
	RoleGaugeLabelEmpty
	RoleHint
)

var roleNames = map[Role]string{
	RoleNone:             "none",
	RoleBorder:           "border",
	RoleTitle:            "title",
	RoleLabel:            "label",
	RoleRemaining:        "remaining",
	RoleElapsed:          "elapsed",
	RoleGaugeFilled:      "gauge-filled",
	RoleGaugeEmpty:       "gauge-empty",
	RoleGaugeLabelFilled: "gauge-label-filled",
	RoleGaugeLabelEmpty:  "gauge-label-empty",
	RoleHint:             "hint",
}

// String returns a short role name for debug output.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Rect is a rectangle in cell coordinates; (0,0) is the top-left cell.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks r by n cells on every side. The result never has negative size.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Span is a run of text drawn with a single role.
type Span struct {
	Text string
	Role Role
}

// Line is a sequence of spans drawn left to right on one row.
type Line []Span

// Text returns the concatenated plain text of the line.
func (l Line) Text() string {
	var n int
	for _, s := range l {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range l {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Region places lines inside a rectangle. Line i is drawn on row Rect.Y+i,
// starting at column Rect.X; anything outside the rectangle is clipped.
type Region struct {
	Rect  Rect
	Lines []Line
}

// Frame is a complete screen: regions are painted in order over a blank
// Width x Height grid, later regions on top.
type Frame struct {
	Width   int
	Height  int
	Regions []Region
}
