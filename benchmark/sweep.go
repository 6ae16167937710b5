package benchmark

import (
	"fmt"
	"io"
	"time"
)

// Sweep times a linear search for every size in config and returns the averaged results.
//
// Every trial refills the haystack and draws a new needle from dist before the timed scan.
// Only the scan itself is timed. One progress line per size is written to out.
//
// Arguments:
//   - config: The size range and trial count.
//   - rng: The random source, shared with the other sweeps of a run.
//   - dist: The distribution values and needles are drawn from.
//   - out: Destination for progress lines.
//
// Returns:
//   - *SweepResult: Sizes and average scan durations in nanoseconds.
//   - error: Error if config fails Validate.
func Sweep(config Config, rng Rand, dist Distribution, out io.Writer) (*SweepResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sizes := config.Sizes()
	result := &SweepResult{
		Distribution: dist,
		Sizes:        make([]int, 0, len(sizes)),
		Totals:       make([]int64, 0, len(sizes)),
	}

	for _, size := range sizes {
		haystack := make([]int, size)
		var total int64

		for i := 0; i < config.Trials; i++ {
			dist.Fill(rng, haystack)
			needle := dist.Sample(rng, size)

			start := time.Now()
			if indexOf(haystack, needle) >= 0 {
				// Consumed so the scan cannot be optimized away.
				result.Matches++
			}
			total += time.Since(start).Nanoseconds()
		}

		total /= int64(config.Trials)
		fmt.Fprintf(out, "size = %d, total = %d\n", size, total)
		result.Sizes = append(result.Sizes, size)
		result.Totals = append(result.Totals, total)
	}

	fmt.Fprintf(out, "Garbage data with the only purpose to fight the compiler which is too good at optimizing-out things: %d\n", result.Matches)

	return result, nil
}

// indexOf returns the index of the first element equal to needle, or -1.
func indexOf(haystack []int, needle int) int {
	for i, value := range haystack {
		if value == needle {
			return i
		}
	}
	return -1
}
