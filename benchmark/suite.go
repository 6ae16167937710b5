package benchmark

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/nvr-ai/go-searchbench/profiler"
)

// Suite runs one sweep per distribution and exports the results.
type Suite struct {
	config   Config
	rng      Rand
	stdout   io.Writer
	exporter *Exporter
	profiler *profiler.Profiler
	results  []*SweepResult
}

// NewSuiteArgs represents the arguments for creating a new benchmark suite.
type NewSuiteArgs struct {
	Config Config
	// Rand is shared by all sweeps in order.
	Rand Rand
	// Stdout receives progress lines and exported sequences. Defaults to os.Stdout.
	Stdout io.Writer
	// Profiler times sweeps and exports. Defaults to a new profiler on the global logger.
	Profiler *profiler.Profiler
}

// NewSuite creates a new benchmark suite.
//
// Arguments:
//   - args: The arguments for creating a new benchmark suite.
//
// Returns:
//   - *Suite: The benchmark suite.
func NewSuite(args NewSuiteArgs) *Suite {
	stdout := args.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	prof := args.Profiler
	if prof == nil {
		prof = profiler.New(log.Logger)
	}

	return &Suite{
		config:   args.Config,
		rng:      args.Rand,
		stdout:   stdout,
		exporter: NewExporter(args.Config.OutputDir, stdout),
		profiler: prof,
		results:  make([]*SweepResult, 0, len(Distributions())),
	}
}

// Run sweeps every distribution in order, then exports each result.
//
// The context is checked between sweeps; a sweep in progress always completes.
func (s *Suite) Run(ctx context.Context) ([]*SweepResult, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if s.rng == nil {
		return nil, errors.New("benchmark: suite has no random source")
	}

	s.results = s.results[:0]
	for _, dist := range Distributions() {
		if err := ctx.Err(); err != nil {
			return s.Results(), errors.Wrapf(err, "before %s sweep", dist)
		}

		fmt.Fprintf(s.stdout, "Testing %s...\n", dist.Label())
		result, err := s.RunSweep(dist)
		if err != nil {
			return s.Results(), errors.Wrapf(err, "%s sweep", dist)
		}
		s.results = append(s.results, result)
	}

	// Sizes are identical for every distribution but each gets its own pair of files.
	for _, result := range s.results {
		done := s.profiler.StartOperation("export")
		err := s.exporter.SaveResult(result)
		done()
		if err != nil {
			return s.Results(), errors.Wrapf(err, "export %s results", result.Distribution)
		}
	}

	return s.Results(), nil
}

// RunSweep executes a single sweep and records its wall time and memory delta.
func (s *Suite) RunSweep(dist Distribution) (*SweepResult, error) {
	startMem := s.profiler.Snapshot()
	start := time.Now()

	result, err := Sweep(s.config, s.rng, dist, s.stdout)
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	s.profiler.Record("sweep", result.Duration)
	result.MemoryStats = NewMemoryMetrics(startMem, s.profiler.Snapshot())

	log.Debug().
		Str("distribution", dist.String()).
		Int("sizes", len(result.Sizes)).
		Dur("duration", result.Duration).
		Uint64("total_alloc_bytes", result.MemoryStats.TotalAllocBytes).
		Msg("sweep completed")

	return result, nil
}

// Results returns the sweeps completed so far.
func (s *Suite) Results() []*SweepResult {
	results := make([]*SweepResult, len(s.results))
	copy(results, s.results)
	return results
}

// Profiler returns the profiler timing this suite.
func (s *Suite) Profiler() *profiler.Profiler {
	return s.profiler
}
