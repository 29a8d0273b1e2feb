// Package store owns the shared state between the sampler and the render
// loop: bounded metric histories plus the latest full readings per category.
// The sampler is the only writer; the render loop takes copy-out snapshots.
// One mutex guards the whole store so a reader never observes fields from two
// different sampling cycles.
package store

import (
	"sync"
	"time"

	"github.com/pkendall/sysdash/internal/metrics"
)

// Store holds the latest committed readings and the bounded histories.
type Store struct {
	mu sync.RWMutex

	cpuHistory *History
	memHistory *History

	cpuPercent float64
	memory     metrics.MemoryInfo
	processes  []metrics.ProcessInfo
	disks      []metrics.DiskInfo
	network    []metrics.NetInterfaceInfo
	system     metrics.SystemInfo

	lastUpdate time.Time
	cycle      uint64
}

// Update is one sampling cycle's worth of readings. Absent categories (nil
// pointers, unset Has flags) leave the previous committed value untouched,
// which is how transient per-category failures are tolerated.
type Update struct {
	Timestamp time.Time

	CPUPercent *float64
	Memory     *metrics.MemoryInfo
	System     *metrics.SystemInfo

	Processes    []metrics.ProcessInfo
	HasProcesses bool

	Disks    []metrics.DiskInfo
	HasDisks bool

	Network    []metrics.NetInterfaceInfo
	HasNetwork bool
}

// Snapshot is a consistent copy-out view of the store, safe to read without
// synchronization. All slices are copies.
type Snapshot struct {
	CPUPercent    float64
	MemoryPercent float64
	Memory        metrics.MemoryInfo

	CPUHistory    []Sample
	MemoryHistory []Sample

	Processes []metrics.ProcessInfo
	Disks     []metrics.DiskInfo
	Network   []metrics.NetInterfaceInfo
	System    metrics.SystemInfo

	LastUpdate time.Time
	Cycle      uint64
}

// New creates a store with CPU and memory histories of the given capacities.
func New(cpuHistoryLen, memHistoryLen int) *Store {
	return &Store{
		cpuHistory: NewHistory(cpuHistoryLen),
		memHistory: NewHistory(memHistoryLen),
	}
}

// Commit applies one logically atomic update: scalar pushes into the
// histories and wholesale replacement of the category lists happen under a
// single critical section, so no reader can see a torn mix of cycles.
func (s *Store) Commit(u Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.CPUPercent != nil {
		s.cpuPercent = *u.CPUPercent
		s.cpuHistory.Push(*u.CPUPercent, u.Timestamp)
	}
	if u.Memory != nil {
		s.memory = *u.Memory
		s.memHistory.Push(u.Memory.UsedPercent, u.Timestamp)
	}
	if u.HasProcesses {
		s.processes = u.Processes
	}
	if u.HasDisks {
		s.disks = u.Disks
	}
	if u.HasNetwork {
		s.network = u.Network
	}
	if u.System != nil {
		s.system = *u.System
	}

	s.lastUpdate = u.Timestamp
	s.cycle++
}

// Snapshot returns a consistent copy of the entire store. The critical
// section is bounded by the size of one snapshot, never by a system call.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		CPUPercent:    s.cpuPercent,
		MemoryPercent: s.memory.UsedPercent,
		Memory:        s.memory,
		CPUHistory:    s.cpuHistory.Values(),
		MemoryHistory: s.memHistory.Values(),
		Processes:     copySlice(s.processes),
		Disks:         copySlice(s.disks),
		Network:       copySlice(s.network),
		System:        s.system,
		LastUpdate:    s.lastUpdate,
		Cycle:         s.cycle,
	}
}

func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}
