// Package sampler runs the background sampling activity: on a fixed cadence
// it pulls each metric category from the source and commits one atomic update
// to the store. A force-refresh request runs the next cycle immediately and
// retimes the cadence from that point.
package sampler

import (
	"context"
	"sort"
	"time"

	"github.com/pkendall/sysdash/internal/logger"
	"github.com/pkendall/sysdash/internal/metrics"
	"github.com/pkendall/sysdash/internal/store"
)

// MinInterval is the enforced sampling cadence floor; anything shorter would
// busy-loop on OS queries.
const MinInterval = 100 * time.Millisecond

// Options configure a Sampler.
type Options struct {
	// Interval is the sampling cadence. Values below MinInterval are clamped.
	Interval time.Duration

	// MaxProcesses caps the committed process list. Zero means no cap.
	MaxProcesses int

	// CollectProcesses toggles per-process collection.
	CollectProcesses bool

	// Logger receives per-category failure warnings. Defaults to logger.Default().
	Logger logger.Logger
}

// Sampler pulls readings from a metrics source and commits them to the store.
// It is the store's only writer.
type Sampler struct {
	source    metrics.Source
	store     *store.Store
	log       logger.Logger
	interval  time.Duration
	maxProcs  int
	withProcs bool
	refreshCh chan struct{}
	clock     func() time.Time
}

// New creates a sampler writing to st.
func New(source metrics.Source, st *store.Store, opts Options) *Sampler {
	interval := opts.Interval
	if interval < MinInterval {
		interval = MinInterval
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	return &Sampler{
		source:    source,
		store:     st,
		log:       log,
		interval:  interval,
		maxProcs:  opts.MaxProcesses,
		withProcs: opts.CollectProcesses,
		refreshCh: make(chan struct{}, 1),
		clock:     time.Now,
	}
}

// Interval returns the effective sampling cadence after clamping.
func (s *Sampler) Interval() time.Duration {
	return s.interval
}

// Refresh requests an immediate sampling cycle. The cadence timer is reset
// from the refreshed cycle, not stacked on top of it. Requests arriving while
// one is already pending coalesce; Refresh never blocks.
func (s *Sampler) Refresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

// Run samples on the configured cadence until ctx is cancelled. An initial
// cycle runs immediately so the first frame has data. On cancellation the
// next scheduled tick is simply abandoned.
func (s *Sampler) Run(ctx context.Context) {
	s.Collect(ctx)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.Collect(ctx)
			timer.Reset(s.interval)
		case <-s.refreshCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			s.Collect(ctx)
			timer.Reset(s.interval)
		}
	}
}

// Collect performs one sampling cycle: every category is pulled, failures are
// logged and dropped from the update (the store keeps the previous reading),
// and the surviving readings are committed atomically.
func (s *Sampler) Collect(ctx context.Context) {
	u := store.Update{Timestamp: s.clock()}

	if v, err := s.source.CPUPercent(ctx); err != nil {
		s.log.Warn("cpu reading unavailable: %v", err)
	} else {
		u.CPUPercent = &v
	}

	if m, err := s.source.Memory(ctx); err != nil {
		s.log.Warn("memory reading unavailable: %v", err)
	} else {
		u.Memory = &m
	}

	if s.withProcs {
		if procs, err := s.source.Processes(ctx); err != nil {
			s.log.Warn("process reading unavailable: %v", err)
		} else {
			u.Processes = sortAndCap(procs, s.maxProcs)
			u.HasProcesses = true
		}
	}

	if disks, err := s.source.Disks(ctx); err != nil {
		s.log.Warn("disk reading unavailable: %v", err)
	} else {
		u.Disks = disks
		u.HasDisks = true
	}

	if ifaces, err := s.source.NetworkInterfaces(ctx); err != nil {
		s.log.Warn("network reading unavailable: %v", err)
	} else {
		u.Network = ifaces
		u.HasNetwork = true
	}

	if sys, err := s.source.SystemInfo(ctx); err != nil {
		s.log.Warn("system info unavailable: %v", err)
	} else {
		u.System = &sys
	}

	s.store.Commit(u)
}

// sortAndCap orders processes by CPU usage descending with ties broken by
// ascending PID, then truncates to maxProcs when a cap is configured.
func sortAndCap(procs []metrics.ProcessInfo, maxProcs int) []metrics.ProcessInfo {
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].CPUPercent != procs[j].CPUPercent {
			return procs[i].CPUPercent > procs[j].CPUPercent
		}
		return procs[i].PID < procs[j].PID
	})

	if maxProcs > 0 && len(procs) > maxProcs {
		procs = procs[:maxProcs]
	}
	return procs
}
