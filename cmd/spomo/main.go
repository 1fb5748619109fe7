// ABOUTME: CLI entry point for spomo with terminal crash recovery
// ABOUTME: Maps the command result to an exit status: 0 done, 1 error, 130 quit early

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/mauromedda/spomo-go/internal/driver"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit statuses.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(execute(newApp(), os.Args[1:]))
}

// execute runs the command tree for args and returns the exit status.
func execute(a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	return exitCode(cmd.Execute(), a.stderr)
}

// exitCode reports err on w and maps it to an exit status.
func exitCode(err error, w io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, driver.ErrInterrupted):
		return exitInterrupted
	}
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
	return exitError
}
