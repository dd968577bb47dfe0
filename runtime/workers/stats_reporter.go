package workers

import (
	"accelerator-hub/domain"
	"accelerator-hub/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// RegistrySizer is the part of the registry the reporter needs.
type RegistrySizer interface {
	Stats() domain.RegistryStats
}

// StatsReporterWorker periodically samples the process and the registry
// and refreshes the monitoring snapshot served by the health endpoint.
type StatsReporterWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	registry   RegistrySizer
	interval   time.Duration
	pid        int32
}

func NewStatsReporterWorker(log *slog.Logger, monitoring *observability.MonitoringManager,
	registry RegistrySizer, interval time.Duration) *StatsReporterWorker {
	return &StatsReporterWorker{
		log:        log,
		monitoring: monitoring,
		registry:   registry,
		interval:   interval,
		pid:        int32(os.Getpid()),
	}
}

func (w *StatsReporterWorker) Run(ctx context.Context) error {
	proc, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}
	w.report(proc)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping stats reporter")
			return nil
		case <-ticker.C:
			w.report(proc)
		}
	}
}

func (w *StatsReporterWorker) report(proc *process.Process) {
	var stats observability.ProcessStats
	if mem, err := proc.MemoryInfo(); err != nil {
		w.log.Debug("Error while reading process memory", "pid", w.pid, "error", err)
	} else {
		stats.RSSBytes = mem.RSS
	}
	if cpu, err := proc.CPUPercent(); err != nil {
		w.log.Debug("Error while reading process cpu usage", "pid", w.pid, "error", err)
	} else {
		stats.CPUPercent = cpu
	}
	w.monitoring.Refresh(w.registry.Stats(), stats)
}
