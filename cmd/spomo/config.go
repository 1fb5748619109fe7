package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/spomo-go/internal/config"
	"github.com/mauromedda/spomo-go/pkg/tui/theme"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML.

Settings are layered: built-in defaults, then ~/.spomo/config.yaml
(or --config), then SPOMO_* environment variables, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeLog, err := a.loadSettings(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			data, err := s.YAML()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "# %s\n", a.configSource())
			_, err = a.stdout.Write(data)
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range theme.BuiltinNames() {
				fmt.Fprintln(a.stdout, name)
			}
		},
	})
	return cmd
}

func (a *app) configSource() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.GlobalConfigFile()
}
