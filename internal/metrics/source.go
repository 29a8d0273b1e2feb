// Package metrics defines the point-in-time metric categories sampled by the
// dashboard and the Source interface they are pulled from. Each category can
// fail independently; the sampler tolerates per-category failures by keeping
// the previous reading.
package metrics

import "context"

// Source is a pull-based provider of point-in-time host metric readings.
// Implementations may block on OS queries; callers pass a context to bound
// collection during shutdown.
type Source interface {
	// CPUPercent returns aggregate CPU utilization in the range [0, 100].
	CPUPercent(ctx context.Context) (float64, error)

	// Memory returns the current host memory reading.
	Memory(ctx context.Context) (MemoryInfo, error)

	// Processes returns a reading for every running process, unsorted.
	Processes(ctx context.Context) ([]ProcessInfo, error)

	// Disks returns a reading per mounted physical filesystem.
	Disks(ctx context.Context) ([]DiskInfo, error)

	// NetworkInterfaces returns cumulative I/O counters per interface.
	NetworkInterfaces(ctx context.Context) ([]NetInterfaceInfo, error)

	// SystemInfo returns general host information.
	SystemInfo(ctx context.Context) (SystemInfo, error)
}
