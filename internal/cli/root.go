// Package cli implements the sysdash command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a run function for the actual work:
//
//	sysdash             - Start the dashboard (the root command)
//	sysdash init        - Create a configuration file interactively
//	sysdash version     - Print version information
//	sysdash completion  - Generate shell completion scripts
//
// Global flags (--config, --refresh, --debug) are defined on the root
// command. The dashboard itself owns the terminal once started; anything
// worth logging during a session goes to a debug log file instead of the
// screen.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkendall/sysdash/internal/errors"
)

// Root command flags
var (
	configFlag  string
	refreshFlag string
	debugFlag   bool
)

// rootCmd starts the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sysdash",
	Short: "Terminal dashboard for live system metrics",
	Long: `sysdash renders live host metrics in the terminal: CPU and memory
gauges with scrolling history charts, a sortable process table, disk
usage, and per-interface network counters.

Navigation:
  tab / shift+tab   cycle tabs
  1-4               jump directly to a tab
  up/down or k/j    scroll the process table
  r                 force an immediate metrics refresh
  q / esc / ctrl+c  quit

Examples:
  sysdash
  sysdash --refresh 500ms
  sysdash --config ~/.config/sysdash/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(configFlag, refreshFlag, debugFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to config file")
	rootCmd.Flags().StringVar(&refreshFlag, "refresh", "", "sampling interval override (e.g. 500ms, 2s)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write debug logs to the sysdash log file")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseRefresh parses the --refresh flag into a duration.
// Returns zero duration if the flag is empty.
func parseRefresh(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid refresh interval", flag),
			"Try something like 500ms, 1s, or 2s.")
	}
	return duration, nil
}
