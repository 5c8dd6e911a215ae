// Package cli provides the command-line interface for pomodo7o.
package cli

import (
	"github.com/spf13/cobra"
)

// AppName names the settings directory and the single-instance lock.
const AppName = "Pomodo7o"

// launchDesktopFunc and launchTUIFunc are function variables so tests can
// run the commands without opening a window or a terminal program.
var (
	launchDesktopFunc = runDesktop
	launchTUIFunc     = runTUI
)

// NewRootCommand creates the root command. Without a subcommand it runs the
// desktop timer.
func NewRootCommand(version string) *cobra.Command {
	options := &Options{LogLevel: "info"}

	root := &cobra.Command{
		Use:   "pomodo7o",
		Short: "Pomodoro work/rest timer",
		Long: `pomodo7o alternates a work countdown and a rest countdown.
The desktop mode shows a timer window and a system tray menu; the tui
subcommand runs the same cycle in the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := prepare(options)
			if err != nil {
				return err
			}
			return launchDesktopFunc(session)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&options.ConfigPath, "config", "", "settings file (.yaml or .toml)")
	flags.DurationVar(&options.Work, "work", 0, "work phase duration, e.g. 25m")
	flags.DurationVar(&options.Rest, "rest", 0, "rest phase duration, e.g. 5m")
	flags.DurationVar(&options.Tick, "tick", 0, "progress refresh interval, e.g. 5s")
	flags.StringVar(&options.LogLevel, "log-level", options.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&options.NoAutoStart, "no-autostart", false, "wait for start instead of running the work phase at launch")

	root.AddCommand(newTUICommand(options))
	return root
}

func newTUICommand(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			session, err := prepare(options)
			if err != nil {
				return err
			}
			return launchTUIFunc(session)
		},
	}
}
