// ABOUTME: Semantic color palette for the countdown display, one entry per frame role
// ABOUTME: Colors are lipgloss color specs ("196", "#ff5f5f"); empty fields inherit defaults

package theme

// Palette maps display roles to lipgloss color specs.
type Palette struct {
	Border      string `mapstructure:"border" yaml:"border"`
	Title       string `mapstructure:"title" yaml:"title"`
	Label       string `mapstructure:"label" yaml:"label"`
	Remaining   string `mapstructure:"remaining" yaml:"remaining"`
	Elapsed     string `mapstructure:"elapsed" yaml:"elapsed"`
	GaugeFilled string `mapstructure:"gauge_filled" yaml:"gauge_filled"`
	GaugeEmpty  string `mapstructure:"gauge_empty" yaml:"gauge_empty"`
	GaugeLabel  string `mapstructure:"gauge_label" yaml:"gauge_label"`
	Hint        string `mapstructure:"hint" yaml:"hint"`
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the stock palette: red remaining, green elapsed.
func DefaultPalette() Palette {
	return Palette{
		Border:      "250",
		Title:       "15",
		Label:       "252",
		Remaining:   "196",
		Elapsed:     "34",
		GaugeFilled: "34",
		GaugeEmpty:  "240",
		GaugeLabel:  "16",
		Hint:        "243",
	}
}

// Merge returns p with every empty field taken from base.
func (p Palette) Merge(base Palette) Palette {
	out := p
	pick := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	pick(&out.Border, base.Border)
	pick(&out.Title, base.Title)
	pick(&out.Label, base.Label)
	pick(&out.Remaining, base.Remaining)
	pick(&out.Elapsed, base.Elapsed)
	pick(&out.GaugeFilled, base.GaugeFilled)
	pick(&out.GaugeEmpty, base.GaugeEmpty)
	pick(&out.GaugeLabel, base.GaugeLabel)
	pick(&out.Hint, base.Hint)
	return out
}
