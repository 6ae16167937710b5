package profiler

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Profiler times named operations of a single-threaded run.
//
// It is not safe for concurrent use; a run owns exactly one Profiler and drives it from
// the goroutine that executes the run.
type Profiler struct {
	startTime time.Time
	logger    zerolog.Logger

	// Operation names in first-seen order, for stable reports.
	order          []string
	operationTimes map[string]*TimeTracker
}

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	name      string
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// Name returns the operation name.
func (t *TimeTracker) Name() string { return t.name }

// Count returns how many times the operation completed.
func (t *TimeTracker) Count() int64 { return t.count }

// Total returns the accumulated duration.
func (t *TimeTracker) Total() time.Duration { return t.totalTime }

// Min returns the shortest recorded duration.
func (t *TimeTracker) Min() time.Duration { return t.minTime }

// Max returns the longest recorded duration.
func (t *TimeTracker) Max() time.Duration { return t.maxTime }

// Average returns the mean duration, or zero if nothing was recorded.
func (t *TimeTracker) Average() time.Duration {
	if t.count == 0 {
		return 0
	}
	return t.totalTime / time.Duration(t.count)
}

// New creates a profiler whose uptime starts now.
//
// Arguments:
// - logger: Destination for Report.
//
// Returns:
// - A ready Profiler.
func New(logger zerolog.Logger) *Profiler {
	return &Profiler{
		startTime:      time.Now(),
		logger:         logger,
		operationTimes: make(map[string]*TimeTracker),
	}
}

// Uptime returns the time elapsed since the profiler was created.
func (p *Profiler) Uptime() time.Duration {
	return time.Since(p.startTime)
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.Record(name, time.Since(start))
	}
}

// Record adds a completed operation duration.
func (p *Profiler) Record(name string, duration time.Duration) {
	tracker, exists := p.operationTimes[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		p.operationTimes[name] = tracker
		p.order = append(p.order, name)
	}

	tracker.totalTime += duration
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// Operation returns the tracker for name, if any duration was recorded under it.
func (p *Profiler) Operation(name string) (*TimeTracker, bool) {
	tracker, ok := p.operationTimes[name]
	return tracker, ok
}

// Snapshot forces a collection and reads the runtime memory statistics.
func (p *Profiler) Snapshot() runtime.MemStats {
	var stats runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&stats)
	return stats
}

// Report logs the uptime, current memory usage and every operation timing.
func (p *Profiler) Report() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	p.logger.Info().
		Dur("uptime", p.Uptime().Truncate(time.Millisecond)).
		Str("alloc", formatBytes(mem.Alloc)).
		Str("total_alloc", formatBytes(mem.TotalAlloc)).
		Str("sys", formatBytes(mem.Sys)).
		Uint32("gc_cycles", mem.NumGC).
		Msg("runtime profile")

	for _, name := range p.order {
		tracker := p.operationTimes[name]
		p.logger.Info().
			Str("operation", name).
			Dur("avg", tracker.Average().Truncate(time.Microsecond)).
			Dur("min", tracker.minTime.Truncate(time.Microsecond)).
			Dur("max", tracker.maxTime.Truncate(time.Microsecond)).
			Int64("count", tracker.count).
			Msg("operation timing")
	}
}

// formatBytes formats byte counts in human-readable format.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
