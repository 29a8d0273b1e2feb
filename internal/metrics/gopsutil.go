package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	gonet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// GopsutilSource reads host metrics via gopsutil. CPU utilization is computed
// from the delta since the previous call, so the first reading of a run
// reports zero.
type GopsutilSource struct{}

// NewGopsutilSource returns a Source backed by the local host.
func NewGopsutilSource() *GopsutilSource {
	return &GopsutilSource{}
}

func (g *GopsutilSource) CPUPercent(ctx context.Context) (float64, error) {
	// Interval 0 diffs against the timings captured on the previous call.
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("no aggregate cpu reading available")
	}
	return percents[0], nil
}

func (g *GopsutilSource) Memory(ctx context.Context) (MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryInfo{}, err
	}
	return MemoryInfo{
		UsedBytes:   vm.Used,
		TotalBytes:  vm.Total,
		UsedPercent: vm.UsedPercent,
	}, nil
}

func (g *GopsutilSource) Processes(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		// Kernel threads and just-exited processes fail individual field
		// reads; skip them rather than failing the whole category.
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}
		var rss uint64
		if memInfo, err := p.MemoryInfoWithContext(ctx); err == nil && memInfo != nil {
			rss = memInfo.RSS
		}
		infos = append(infos, ProcessInfo{
			PID:         p.Pid,
			Name:        name,
			CPUPercent:  cpuPct,
			MemoryBytes: rss,
		})
	}
	return infos, nil
}

func (g *GopsutilSource) Disks(ctx context.Context) ([]DiskInfo, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	infos := make([]DiskInfo, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil || usage.Total == 0 {
			// Pseudo-filesystems and unreadable mounts are not readings.
			continue
		}
		infos = append(infos, DiskInfo{
			Device:      part.Device,
			Mount:       part.Mountpoint,
			Filesystem:  part.Fstype,
			UsedBytes:   usage.Used,
			TotalBytes:  usage.Total,
			UsedPercent: usage.UsedPercent,
		})
	}
	return infos, nil
}

func (g *GopsutilSource) NetworkInterfaces(ctx context.Context) ([]NetInterfaceInfo, error) {
	counters, err := gonet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	infos := make([]NetInterfaceInfo, 0, len(counters))
	for _, c := range counters {
		infos = append(infos, NetInterfaceInfo{
			Name:        c.Name,
			BytesRecv:   c.BytesRecv,
			BytesSent:   c.BytesSent,
			PacketsRecv: c.PacketsRecv,
			PacketsSent: c.PacketsSent,
		})
	}
	return infos, nil
}

func (g *GopsutilSource) SystemInfo(ctx context.Context) (SystemInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return SystemInfo{}, err
	}

	sys := SystemInfo{
		Hostname:     info.Hostname,
		Uptime:       time.Duration(info.Uptime) * time.Second,
		BootTime:     time.Unix(int64(info.BootTime), 0),
		ProcessCount: int(info.Procs),
	}

	// Load averages are unavailable on some platforms; report the rest of the
	// category rather than failing it.
	if avg, err := load.AvgWithContext(ctx); err == nil {
		sys.LoadAvg = [3]float64{avg.Load1, avg.Load5, avg.Load15}
	}

	if count, err := cpu.CountsWithContext(ctx, true); err == nil {
		sys.CPUCount = count
	}

	return sys, nil
}
