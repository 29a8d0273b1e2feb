package config

import (
	"fmt"

	"github.com/pkendall/sysdash/internal/errors"
)

// Validate checks the config for errors that would break the dashboard at
// runtime. Any failure here is fatal before startup.
func Validate(cfg *Config) error {
	if cfg.Dashboard.RefreshRateMS <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("dashboard.refresh_rate_ms must be positive (got %d)", cfg.Dashboard.RefreshRateMS),
			"Use 1000 for a one-second sampling cadence")
	}

	if cfg.Dashboard.FrameRateMS <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("dashboard.frame_rate_ms must be positive (got %d)", cfg.Dashboard.FrameRateMS),
			"Use 250 for four redraws per second")
	}

	if cfg.Dashboard.TabDebounceMS < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("dashboard.tab_debounce_ms must not be negative (got %d)", cfg.Dashboard.TabDebounceMS),
			"Use 150, or 0 to disable debouncing")
	}

	if cfg.System.CPUHistoryLength < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("system.cpu_history_length must not be negative (got %d)", cfg.System.CPUHistoryLength),
			"Use 60 to keep one minute of one-second samples")
	}

	if cfg.System.MemoryHistoryLength < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("system.memory_history_length must not be negative (got %d)", cfg.System.MemoryHistoryLength),
			"Use 60 to keep one minute of one-second samples")
	}

	if cfg.System.MaxProcessesDisplayed < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("system.max_processes_displayed must not be negative (got %d)", cfg.System.MaxProcessesDisplayed),
			"Use 20, or 0 for no cap")
	}

	return nil
}
