package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"accelerator-hub/domain"
)

// ProcessStats is what the OS reports about the hub process.
type ProcessStats struct {
	RSSBytes   uint64  `json:"rssBytes"`
	CPUPercent float64 `json:"cpuPercent"`
}

// MonitoringStats aggregates delivery counters, registry size and process usage.
type MonitoringStats struct {
	domain.RegistryStats
	ProcessStats

	Delivered      uint64  `json:"delivered"`
	Dropped        uint64  `json:"dropped"`
	Malformed      uint64  `json:"malformed"`
	RateLimited    uint64  `json:"rateLimited"`
	Rejected       uint64  `json:"rejected"`
	DeliveryPerSec float64 `json:"deliveryPerSec"`
	Goroutines     int     `json:"goroutines"`
	AllocMemMb     uint64  `json:"allocMemMb"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

// MonitoringManager counts what happens on the hub.
// Counters are lock-free, the aggregated snapshot is refreshed periodically.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats

	delivered   uint64
	dropped     uint64
	malformed   uint64
	rateLimited uint64
	rejected    uint64

	lastDelivered uint64
	lastCheck     time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, lastCheck: time.Now()}
}

func (mm *MonitoringManager) IncrDelivered(n int) {
	atomic.AddUint64(&mm.delivered, uint64(n))
}

func (mm *MonitoringManager) IncrDropped() {
	atomic.AddUint64(&mm.dropped, 1)
}

func (mm *MonitoringManager) IncrMalformed() {
	atomic.AddUint64(&mm.malformed, 1)
}

func (mm *MonitoringManager) IncrRateLimited() {
	atomic.AddUint64(&mm.rateLimited, 1)
}

func (mm *MonitoringManager) IncrRejected() {
	atomic.AddUint64(&mm.rejected, 1)
}

// Refresh recomputes the snapshot from the counters and the given readings.
func (mm *MonitoringManager) Refresh(registry domain.RegistryStats, process ProcessStats) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	delivered := atomic.LoadUint64(&mm.delivered)
	if elapsed := now.Sub(mm.lastCheck).Seconds(); elapsed > 0 {
		mm.latestStats.DeliveryPerSec = float64(delivered-mm.lastDelivered) / elapsed
	}
	mm.lastDelivered = delivered
	mm.lastCheck = now

	mm.latestStats.RegistryStats = registry
	mm.latestStats.ProcessStats = process
	mm.latestStats.Delivered = delivered
	mm.latestStats.Dropped = atomic.LoadUint64(&mm.dropped)
	mm.latestStats.Malformed = atomic.LoadUint64(&mm.malformed)
	mm.latestStats.RateLimited = atomic.LoadUint64(&mm.rateLimited)
	mm.latestStats.Rejected = atomic.LoadUint64(&mm.rejected)
	mm.latestStats.Goroutines = runtime.NumGoroutine()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.UpdatedAt = now.UTC().Format(time.RFC3339)

	mm.log.Debug("Stats updated",
		"connections", registry.Connections,
		"identities", registry.Identities,
		"delivery_per_sec", mm.latestStats.DeliveryPerSec,
		"rss_bytes", process.RSSBytes,
	)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
