// benchmark.go
// Wraps any tool run and logs execution time and memory usage

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// Stats is what Run measured.
type Stats struct {
	Elapsed        time.Duration
	AllocatedBytes uint64
	GCCycles       uint32
}

// Run wraps any function to measure its runtime and memory usage.
func Run(label string, f func()) Stats {
	logger := log.WithPrefix("benchmark")
	logger.Info("running", "label", label)

	// Snapshot environment info
	host, _ := os.Hostname()
	logger.Info("environment",
		"host", host,
		"go", runtime.Version(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"cpus", runtime.NumCPU(),
	)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	stats := Stats{
		Elapsed:        elapsed,
		AllocatedBytes: memEnd.TotalAlloc - memStart.TotalAlloc,
		GCCycles:       memEnd.NumGC - memStart.NumGC,
	}
	logger.Info("finished",
		"elapsed", stats.Elapsed,
		"allocated_mb", float64(stats.AllocatedBytes)/1024.0/1024.0,
		"peak_heap_mb", float64(memEnd.HeapAlloc)/1024.0/1024.0,
		"gc_cycles", stats.GCCycles,
	)
	return stats
}
