// ABOUTME: Long help text, written in Markdown and rendered through glamour on demand
// ABOUTME: Falls back to the raw Markdown when rendering fails

package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mauromedda/spomo-go/internal/log"
)

const helpMarkdown = `# spomo

Count down in the terminal, then play a short tone.

## Durations

Each argument is one number followed by a unit:

| Form | Meaning |
|------|---------|
| ` + "`2h`" + ` | hours |
| ` + "`25m`" + ` | minutes |
| ` + "`90s`" + ` | seconds |

Arguments are added together: ` + "`spomo 1h 30m`" + ` runs for 90 minutes.
Bare numbers such as ` + "`15`" + ` and combined forms such as ` + "`1h30m`" + ` are rejected.

## Keys

- ` + "`q`" + `, ` + "`Esc`" + ` or ` + "`Ctrl+C`" + ` stop early (exit status 130)

## Configuration

Settings live in ` + "`~/.spomo/config.yaml`" + ` and can be overridden with
` + "`SPOMO_*`" + ` environment variables, e.g. ` + "`SPOMO_SOUND=bell`" + `.
Run ` + "`spomo config`" + ` to see the effective values.
`

const helpWrap = 80

// renderMarkdown renders md for the terminal.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWrap),
	)
	if err != nil {
		log.Debug("help renderer unavailable", "err", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debug("help render failed", "err", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}

// installHelp renders the root command's Markdown long help only when
// help is actually requested.
func installHelp(root *cobra.Command) {
	base := root.HelpFunc()
	root.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c == root {
			c.Long = renderMarkdown(helpMarkdown)
		}
		base(c, args)
	})
}
