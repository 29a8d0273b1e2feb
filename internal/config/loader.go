package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pkendall/sysdash/internal/errors"
)

// Load reads config from the specified path, or falls back to the default
// search locations when path is empty. An explicitly specified path that does
// not exist is a fatal error; when no file is found in the default locations
// the built-in defaults are used.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Check the path, or run 'sysdash init' to create one")
		}
		return loadFile(path)
	}

	found := findDefault()
	if found == "" {
		return Default(), nil
	}
	return loadFile(found)
}

// loadFile parses a YAML config file via viper over the defaults,
// then validates the result.
func loadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Check the file is valid YAML")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file: "+path,
			"Check field names and types against 'sysdash init' output")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers the built-in defaults so that a sparse config file
// only needs to override the fields it cares about.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("dashboard.title", d.Dashboard.Title)
	v.SetDefault("dashboard.refresh_rate_ms", d.Dashboard.RefreshRateMS)
	v.SetDefault("dashboard.frame_rate_ms", d.Dashboard.FrameRateMS)
	v.SetDefault("dashboard.tab_debounce_ms", d.Dashboard.TabDebounceMS)
	v.SetDefault("system.enable_process_monitoring", d.System.EnableProcessMonitoring)
	v.SetDefault("system.max_processes_displayed", d.System.MaxProcessesDisplayed)
	v.SetDefault("system.cpu_history_length", d.System.CPUHistoryLength)
	v.SetDefault("system.memory_history_length", d.System.MemoryHistoryLength)
	v.SetDefault("display.show_cpu_graph", d.Display.ShowCPUGraph)
	v.SetDefault("display.show_memory_graph", d.Display.ShowMemoryGraph)
	v.SetDefault("display.show_process_list", d.Display.ShowProcessList)
	v.SetDefault("display.show_network_info", d.Display.ShowNetworkInfo)
	v.SetDefault("display.show_disk_info", d.Display.ShowDiskInfo)
}

// findDefault returns the first existing config file in the default search
// order: ./sysdash.yaml, then ~/.config/sysdash/config.yaml.
func findDefault() string {
	if _, err := os.Stat("sysdash.yaml"); err == nil {
		return "sysdash.yaml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	global := filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global
	}
	return ""
}

// DefaultPath returns the global config file path (~/.config/sysdash/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory", "")
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// Write marshals cfg to YAML and writes it to path, creating parent
// directories as needed. Used by 'sysdash init'.
func Write(cfg *Config, path string) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory: "+filepath.Dir(path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check file permissions")
	}
	return nil
}
