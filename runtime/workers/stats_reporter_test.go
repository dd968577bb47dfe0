package workers

import (
	"accelerator-hub/domain"
	"accelerator-hub/observability"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fixedRegistry domain.RegistryStats

func (f fixedRegistry) Stats() domain.RegistryStats { return domain.RegistryStats(f) }

func TestStatsReporterWorker_RefreshesSnapshot(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(log)
	registry := fixedRegistry{Connections: 3, Identities: 2, Groups: 7}

	w := NewStatsReporterWorker(log, monitoring, registry, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// When the reporter runs until its context ends
	req.NoError(w.Run(ctx))

	// Then the snapshot carries the registry size and this process' memory
	stats := monitoring.GetLatest()
	req.Equal(3, stats.Connections)
	req.Equal(7, stats.Groups)
	req.Positive(stats.RSSBytes)
	req.NotEmpty(stats.UpdatedAt)
}
