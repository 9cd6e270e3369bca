package monitoring

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HealthSnapshot is the most recent process/host sample served by the
// health endpoint.
type HealthSnapshot struct {
	Uptime       string  `json:"uptime"`
	CPUPercent   float64 `json:"cpuPercent"`
	MemoryUsedMb float64 `json:"memoryUsedMb"`
	Goroutines   int     `json:"goroutines"`
	SampledAt    string  `json:"sampledAt"`
}

// StatUpdater periodically samples host stats so the health endpoint
// never blocks a request on a gopsutil call.
type StatUpdater struct {
	started  time.Time
	ticker   *time.Ticker
	done     chan bool
	mu       sync.RWMutex
	snapshot HealthSnapshot
}

// NewStatUpdater creates a new StatUpdater.
func NewStatUpdater() *StatUpdater {
	return &StatUpdater{
		started: time.Now(),
		done:    make(chan bool),
	}
}

// Run starts the periodic updates.
func (su *StatUpdater) Run() {
	log.Info().Msg("Starting background stat updater...")
	su.ticker = time.NewTicker(15 * time.Second)
	defer su.ticker.Stop()

	// Run once immediately on start
	su.sample()

	for {
		select {
		case <-su.done:
			log.Info().Msg("Stopping background stat updater.")
			return
		case <-su.ticker.C:
			su.sample()
		}
	}
}

// Stop halts the updater.
func (su *StatUpdater) Stop() {
	su.done <- true
}

// Snapshot returns the latest sample.
func (su *StatUpdater) Snapshot() HealthSnapshot {
	su.mu.RLock()
	defer su.mu.RUnlock()
	return su.snapshot
}

func (su *StatUpdater) sample() {
	snap := HealthSnapshot{
		Uptime:     time.Since(su.started).Round(time.Second).String(),
		Goroutines: runtime.NumGoroutine(),
		SampledAt:  time.Now().Format(time.RFC3339),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("Failed to sample CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryUsedMb = float64(vm.Used) / (1024 * 1024)
	} else {
		log.Warn().Err(err).Msg("Failed to sample memory usage")
	}

	su.mu.Lock()
	su.snapshot = snap
	su.mu.Unlock()
}
