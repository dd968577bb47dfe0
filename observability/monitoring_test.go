package observability

import (
	"log/slog"
	"testing"

	"accelerator-hub/domain"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Refresh(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given some traffic
	mm.IncrDelivered(3)
	mm.IncrDelivered(2)
	mm.IncrDropped()
	mm.IncrMalformed()
	mm.IncrRateLimited()
	mm.IncrRejected()

	// Then nothing shows until the next refresh
	req.Zero(mm.GetLatest().Delivered)

	// When the snapshot is refreshed
	mm.Refresh(domain.RegistryStats{Connections: 2, Identities: 1, Groups: 4}, ProcessStats{RSSBytes: 1024, CPUPercent: 1.5})

	// Then counters and readings are visible
	stats := mm.GetLatest()
	req.Equal(uint64(5), stats.Delivered)
	req.Equal(uint64(1), stats.Dropped)
	req.Equal(uint64(1), stats.Malformed)
	req.Equal(uint64(1), stats.RateLimited)
	req.Equal(uint64(1), stats.Rejected)
	req.Equal(2, stats.Connections)
	req.Equal(uint64(1024), stats.RSSBytes)
	req.Positive(stats.Goroutines)
	req.NotEmpty(stats.UpdatedAt)
}
