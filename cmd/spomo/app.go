// ABOUTME: app bundles the process resources the commands use: streams, terminal, clock
// ABOUTME: Tests swap in a VirtualTerminal and FakeClock to run a countdown end to end

package main

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/mauromedda/spomo-go/internal/countdown"
	"github.com/mauromedda/spomo-go/pkg/tui/terminal"
)

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	term    terminal.Terminal
	input   io.Reader
	clock   countdown.Clock
	profile termenv.Profile

	// flags
	configPath string
	verbose    bool
}

func newApp() *app {
	pt := terminal.NewProcessTerminal()
	return &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		term:    pt,
		input:   pt,
		clock:   countdown.RealClock{},
		profile: termenv.NewOutput(os.Stdout).EnvColorProfile(),
	}
}
