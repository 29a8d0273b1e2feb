package cli

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/pkendall/sysdash/internal/config"
	"github.com/pkendall/sysdash/internal/dashboard"
	"github.com/pkendall/sysdash/internal/errors"
	"github.com/pkendall/sysdash/internal/logger"
	"github.com/pkendall/sysdash/internal/metrics"
	"github.com/pkendall/sysdash/internal/sampler"
	"github.com/pkendall/sysdash/internal/store"
)

// dashboardCommand loads the config, wires the sampler to the store, and
// runs the Bubble Tea program until the user quits.
func dashboardCommand(configPath, refreshOverride string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	interval, err := parseRefresh(refreshOverride)
	if err != nil {
		return err
	}
	if interval > 0 {
		cfg.Dashboard.RefreshRateMS = int(interval / time.Millisecond)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"stdout is not a terminal",
			"Run sysdash directly in an interactive terminal, not through a pipe.")
	}
	// EnvColorProfile honors NO_COLOR and CLICOLOR downgrades.
	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	smpLog := logger.Noop()
	if debug {
		f, err := openDebugLog()
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
		os.Setenv("SYSDASH_DEBUG", "1")
		smpLog = logger.NewEnvLogger("[sampler]")
	}

	source := metrics.NewGopsutilSource()
	st := store.New(cfg.System.CPUHistoryLength, cfg.System.MemoryHistoryLength)
	smp := sampler.New(source, st, sampler.Options{
		Interval:         cfg.RefreshInterval(),
		MaxProcesses:     cfg.System.MaxProcessesDisplayed,
		CollectProcesses: cfg.System.EnableProcessMonitoring,
		Logger:           smpLog,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go smp.Run(ctx)

	model := dashboard.NewModel(cfg, st, smp, smpLog)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The dashboard stopped unexpectedly",
			"Check terminal compatibility, or rerun with --debug for logs.")
	}

	return nil
}

// openDebugLog opens the session log file next to the default config.
func openDebugLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot locate your home directory for the debug log",
			"Set the HOME environment variable.")
	}

	dir := filepath.Join(home, config.DefaultConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create the sysdash config directory",
			"Check permissions on "+dir+".")
	}

	path := filepath.Join(dir, "sysdash.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open the debug log file",
			"Check permissions on "+path+".")
	}
	return f, nil
}
