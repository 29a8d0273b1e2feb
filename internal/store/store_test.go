package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkendall/sysdash/internal/metrics"
)

func floatPtr(v float64) *float64 { return &v }

func fullUpdate(ts time.Time, cpuPct float64) Update {
	return Update{
		Timestamp:  ts,
		CPUPercent: floatPtr(cpuPct),
		Memory: &metrics.MemoryInfo{
			UsedBytes:   4 << 30,
			TotalBytes:  8 << 30,
			UsedPercent: 50,
		},
		Processes:    []metrics.ProcessInfo{{PID: 1, Name: "init", CPUPercent: 0.1}},
		HasProcesses: true,
		Disks:        []metrics.DiskInfo{{Mount: "/", TotalBytes: 100, UsedBytes: 40, UsedPercent: 40}},
		HasDisks:     true,
		Network:      []metrics.NetInterfaceInfo{{Name: "eth0", BytesRecv: 100, BytesSent: 50}},
		HasNetwork:   true,
		System:       &metrics.SystemInfo{Hostname: "box", ProcessCount: 42},
	}
}

func TestCommitAndSnapshot(t *testing.T) {
	s := New(10, 10)
	now := time.Now()

	s.Commit(fullUpdate(now, 33.3))
	snap := s.Snapshot()

	assert.Equal(t, 33.3, snap.CPUPercent)
	assert.Equal(t, 50.0, snap.MemoryPercent)
	require.Len(t, snap.CPUHistory, 1)
	assert.Equal(t, 33.3, snap.CPUHistory[0].Value)
	require.Len(t, snap.MemoryHistory, 1)
	assert.Equal(t, 50.0, snap.MemoryHistory[0].Value)
	assert.Equal(t, "box", snap.System.Hostname)
	assert.Equal(t, now, snap.LastUpdate)
	assert.Equal(t, uint64(1), snap.Cycle)
}

// A cycle with a missing category keeps the previous committed value for that
// category while still pushing history samples for the ones that succeeded.
func TestCommitAbsentCategoryKeepsPrevious(t *testing.T) {
	s := New(10, 10)
	t0 := time.Now()
	s.Commit(fullUpdate(t0, 20))

	// Cycle N+1: process reading failed, everything else present.
	u := fullUpdate(t0.Add(time.Second), 60)
	u.Processes = nil
	u.HasProcesses = false
	s.Commit(u)

	snap := s.Snapshot()

	// Processes unchanged from cycle N
	require.Len(t, snap.Processes, 1)
	assert.Equal(t, "init", snap.Processes[0].Name)

	// Unaffected categories did not skip a history sample
	assert.Len(t, snap.CPUHistory, 2)
	assert.Len(t, snap.MemoryHistory, 2)
	assert.Equal(t, 60.0, snap.CPUPercent)
}

func TestCommitScalarFailureSkipsHistoryPush(t *testing.T) {
	s := New(10, 10)
	t0 := time.Now()
	s.Commit(fullUpdate(t0, 20))

	u := fullUpdate(t0.Add(time.Second), 0)
	u.CPUPercent = nil
	s.Commit(u)

	snap := s.Snapshot()

	// CPU scalar and history retain the last good reading; no sentinel pushed.
	assert.Equal(t, 20.0, snap.CPUPercent)
	assert.Len(t, snap.CPUHistory, 1)
	assert.Len(t, snap.MemoryHistory, 2)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(10, 10)
	s.Commit(fullUpdate(time.Now(), 10))

	snap := s.Snapshot()
	snap.Processes[0].Name = "mutated"
	snap.CPUHistory[0].Value = 999

	fresh := s.Snapshot()
	assert.Equal(t, "init", fresh.Processes[0].Name)
	assert.Equal(t, 10.0, fresh.CPUHistory[0].Value)
}

func TestEmptySnapshot(t *testing.T) {
	s := New(5, 5)
	snap := s.Snapshot()

	assert.Zero(t, snap.CPUPercent)
	assert.Nil(t, snap.CPUHistory)
	assert.Nil(t, snap.Processes)
	assert.Zero(t, snap.Cycle)
}

// Concurrent commits and snapshots must never tear: within one snapshot the
// scalar, the history tail, and the process list all come from the same cycle.
func TestNoCrossFieldTearing(t *testing.T) {
	s := New(100, 100)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			v := float64(i)
			s.Commit(Update{
				Timestamp:  time.Now(),
				CPUPercent: &v,
				Memory:     &metrics.MemoryInfo{UsedPercent: v},
				Processes:  []metrics.ProcessInfo{{PID: int32(i), CPUPercent: v}},
				HasProcesses: true,
			})
		}
	}()

	for i := 0; i < 1000; i++ {
		snap := s.Snapshot()
		if snap.Cycle == 0 {
			continue
		}
		// All fields written in the same Commit must agree.
		require.Equal(t, snap.CPUPercent, snap.MemoryPercent)
		require.Equal(t, snap.CPUPercent, snap.CPUHistory[len(snap.CPUHistory)-1].Value)
		require.Len(t, snap.Processes, 1)
		require.Equal(t, snap.CPUPercent, snap.Processes[0].CPUPercent)
	}

	close(stop)
	wg.Wait()
}
