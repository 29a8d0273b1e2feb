package config

import "time"

// Defaults applied when no config file is present or a field is unset.
const (
	DefaultTitle         = "System Monitor Dashboard"
	DefaultRefreshRateMS = 1000
	DefaultHistoryLength = 60
	DefaultMaxProcesses  = 20
	DefaultTabDebounceMS = 150
	DefaultFrameRateMS   = 250
	DefaultConfigDir     = ".config/sysdash"
	DefaultConfigFile    = "config.yaml"
)

// Config is the complete sysdash configuration file.
type Config struct {
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	System    SystemConfig    `yaml:"system" mapstructure:"system"`
	Display   DisplayConfig   `yaml:"display" mapstructure:"display"`
}

// DashboardConfig controls the top-level dashboard behavior.
type DashboardConfig struct {
	// Title shown in the tab strip header.
	Title string `yaml:"title" mapstructure:"title"`

	// RefreshRateMS is the sampling cadence in milliseconds.
	RefreshRateMS int `yaml:"refresh_rate_ms" mapstructure:"refresh_rate_ms"`

	// FrameRateMS bounds the redraw cadence, independent of sampling.
	FrameRateMS int `yaml:"frame_rate_ms" mapstructure:"frame_rate_ms"`

	// TabDebounceMS is the minimum gap between accepted tab-cycle transitions.
	TabDebounceMS int `yaml:"tab_debounce_ms" mapstructure:"tab_debounce_ms"`
}

// SystemConfig controls metric collection.
type SystemConfig struct {
	// EnableProcessMonitoring toggles per-process collection entirely.
	EnableProcessMonitoring bool `yaml:"enable_process_monitoring" mapstructure:"enable_process_monitoring"`

	// MaxProcessesDisplayed caps the process list kept per cycle.
	MaxProcessesDisplayed int `yaml:"max_processes_displayed" mapstructure:"max_processes_displayed"`

	// CPUHistoryLength is the CPU chart buffer capacity in samples.
	CPUHistoryLength int `yaml:"cpu_history_length" mapstructure:"cpu_history_length"`

	// MemoryHistoryLength is the memory chart buffer capacity in samples.
	MemoryHistoryLength int `yaml:"memory_history_length" mapstructure:"memory_history_length"`
}

// DisplayConfig toggles individual dashboard widgets.
type DisplayConfig struct {
	ShowCPUGraph    bool `yaml:"show_cpu_graph" mapstructure:"show_cpu_graph"`
	ShowMemoryGraph bool `yaml:"show_memory_graph" mapstructure:"show_memory_graph"`
	ShowProcessList bool `yaml:"show_process_list" mapstructure:"show_process_list"`
	ShowNetworkInfo bool `yaml:"show_network_info" mapstructure:"show_network_info"`
	ShowDiskInfo    bool `yaml:"show_disk_info" mapstructure:"show_disk_info"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Title:         DefaultTitle,
			RefreshRateMS: DefaultRefreshRateMS,
			FrameRateMS:   DefaultFrameRateMS,
			TabDebounceMS: DefaultTabDebounceMS,
		},
		System: SystemConfig{
			EnableProcessMonitoring: true,
			MaxProcessesDisplayed:   DefaultMaxProcesses,
			CPUHistoryLength:        DefaultHistoryLength,
			MemoryHistoryLength:     DefaultHistoryLength,
		},
		Display: DisplayConfig{
			ShowCPUGraph:    true,
			ShowMemoryGraph: true,
			ShowProcessList: true,
			ShowNetworkInfo: true,
			ShowDiskInfo:    true,
		},
	}
}

// RefreshInterval returns the sampling cadence as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Dashboard.RefreshRateMS) * time.Millisecond
}

// FrameInterval returns the redraw cadence as a duration.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Dashboard.FrameRateMS) * time.Millisecond
}

// TabDebounce returns the tab-cycle debounce window as a duration.
func (c *Config) TabDebounce() time.Duration {
	return time.Duration(c.Dashboard.TabDebounceMS) * time.Millisecond
}
