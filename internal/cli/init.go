package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pkendall/sysdash/internal/config"
	"github.com/pkendall/sysdash/internal/errors"
)

var initForce bool

// initCmd creates a new sysdash configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sysdash configuration file",
	Long: `Initialize a new sysdash configuration file.

Walks through the dashboard settings with interactive prompts and writes
the result as YAML. The file goes to --config if given, otherwise to
~/.config/sysdash/config.yaml.

Examples:
  sysdash init
  sysdash init --force
  sysdash init --config ./sysdash.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(configFlag, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// initCommand prompts for dashboard settings and writes the config file.
func initCommand(path string, force bool) error {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	// Check for existing config
	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	title := cfg.Dashboard.Title
	refreshMS := strconv.Itoa(cfg.Dashboard.RefreshRateMS)
	maxProcs := strconv.Itoa(cfg.System.MaxProcessesDisplayed)
	showProcs := cfg.System.EnableProcessMonitoring

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dashboard title").
				Placeholder(config.DefaultTitle).
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh rate (milliseconds)").
				Description("How often metrics are sampled").
				Placeholder("1000").
				Value(&refreshMS).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable process monitoring?").
				Description("Collects the per-process CPU and memory table").
				Value(&showProcs),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Max processes displayed").
				Placeholder("20").
				Value(&maxProcs).
				Validate(validatePositiveInt),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility, or edit the config file by hand")
	}

	cfg.Dashboard.Title = title
	cfg.Dashboard.RefreshRateMS, _ = strconv.Atoi(refreshMS)
	cfg.System.EnableProcessMonitoring = showProcs
	cfg.System.MaxProcessesDisplayed, _ = strconv.Atoi(maxProcs)

	if err := config.Write(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}
