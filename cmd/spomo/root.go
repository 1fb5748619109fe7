// ABOUTME: Root cobra command: parses duration specs, loads settings, runs the countdown
// ABOUTME: Prints the end time after the terminal has been restored

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mauromedda/spomo-go/internal/audio"
	"github.com/mauromedda/spomo-go/internal/config"
	"github.com/mauromedda/spomo-go/internal/driver"
	"github.com/mauromedda/spomo-go/internal/duration"
	"github.com/mauromedda/spomo-go/internal/log"
	"github.com/mauromedda/spomo-go/pkg/tui"
	"github.com/mauromedda/spomo-go/pkg/tui/terminal"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "spomo [flags] <duration>...",
		Short: "Terminal countdown timer",
		Long:  helpMarkdown,
		Example: `  spomo 25m
  spomo 1h 30m
  spomo --sound bell 90s`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCountdown(cmd, args)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.spomo/config.yaml)")
	pf.String("title", "spomo", "title shown in the top border")
	pf.String("sound", audio.KindTone, fmt.Sprintf("completion sound: one of %v", audio.Kinds()))
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	installHelp(root)

	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

// loadSettings reads the layered config and sets up logging.
// The returned closer releases the log file, if any.
func (a *app) loadSettings(cmd *cobra.Command) (*config.Settings, func(), error) {
	s, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if a.verbose {
		log.SetLevel(log.LevelDebug)
	}
	closer := func() {}
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		closer = func() {
			log.SetOutput(a.stderr)
			_ = f.Close()
		}
	}
	return s, closer, nil
}

func (a *app) runCountdown(cmd *cobra.Command, args []string) error {
	total, err := duration.Accumulate(args)
	if err != nil {
		return fmt.Errorf("cannot parse duration spec: %w", err)
	}

	s, closeLog, err := a.loadSettings(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	beeper, err := audio.New(s.Sound, a.stderr)
	if err != nil {
		return err
	}

	log.Debug("starting", "tokens", args, "total", total, "sound", s.Sound, "theme", s.Theme.Name)

	defer terminal.RestoreOnPanic(a.term)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := driver.New(driver.Options{
		Terminal: a.term,
		Painter:  tui.NewPainter(s.Palette(), a.profile),
		Clock:    a.clock,
		Beeper:   beeper,
		Title:    s.Title,
		Input:    a.input,
	})
	err = d.Run(ctx, total)

	var ae *audio.AudioError
	switch {
	case err == nil, errors.As(err, &ae):
		a.printStatus("✓", "Ended: "+a.clock.Now().Format(time.RFC3339), color.FgGreen)
	case errors.Is(err, driver.ErrInterrupted):
		a.printStatus("✗", "Stopped: "+a.clock.Now().Format(time.RFC3339), color.FgYellow)
	}
	return err
}

// printStatus prints a status line with a colored symbol.
func (a *app) printStatus(symbol, message string, attr color.Attribute) {
	printStatus(a.stdout, symbol, message, attr)
}

func printStatus(w io.Writer, symbol, message string, attr color.Attribute) {
	c := color.New(attr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}
