// ABOUTME: Built-in themes: default, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "sort"

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Border:      "240",
			Title:       "16",
			Label:       "238",
			Remaining:   "160",
			Elapsed:     "28",
			GaugeFilled: "28",
			GaugeEmpty:  "250",
			GaugeLabel:  "231",
			Hint:        "244",
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Border:      "7",
			Title:       "15",
			Label:       "7",
			Remaining:   "15",
			Elapsed:     "7",
			GaugeFilled: "15",
			GaugeEmpty:  "8",
			GaugeLabel:  "0",
			Hint:        "8",
		},
	},
}

// Builtin returns the built-in theme with the given name, or nil.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the named built-in palette with overrides applied on top.
// Unknown names fall back to the default theme.
func Resolve(name string, overrides Palette) Palette {
	base := DefaultPalette()
	if t := Builtin(name); t != nil {
		base = t.Palette
	}
	return overrides.Merge(base)
}
