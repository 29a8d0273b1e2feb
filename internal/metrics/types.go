package metrics

import "time"

// ProcessInfo is one process reading. The full set is replaced wholesale each
// sampling cycle, never patched, so exited PIDs cannot linger.
type ProcessInfo struct {
	PID         int32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
}

// MemoryInfo is the host memory reading backing the memory gauge.
type MemoryInfo struct {
	UsedBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
}

// DiskInfo is one mounted filesystem reading.
type DiskInfo struct {
	Device      string
	Mount       string
	Filesystem  string
	UsedBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
}

// NetInterfaceInfo contains cumulative I/O counters for a single interface.
type NetInterfaceInfo struct {
	Name        string
	BytesRecv   uint64
	BytesSent   uint64
	PacketsRecv uint64
	PacketsSent uint64
}

// SystemInfo contains general host information, replaced wholesale each cycle.
type SystemInfo struct {
	Hostname     string
	Uptime       time.Duration
	BootTime     time.Time
	LoadAvg      [3]float64
	ProcessCount int
	CPUCount     int
}
