package benchmark

import "fmt"

// Rand is the random number source shared by every sweep of a run.
//
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Distribution selects how array values and needles are drawn for a given array size.
type Distribution int

const (
	// Normal draws from [-n, n].
	Normal Distribution = iota
	// Wide draws from [-10n, 10n].
	Wide
	// Narrow draws from [0, n/2].
	Narrow
)

// Distributions returns every distribution in sweep order.
func Distributions() []Distribution {
	return []Distribution{Normal, Wide, Narrow}
}

// Range returns the inclusive bounds values are drawn from for an array of the given size.
func (d Distribution) Range(size int) (low, high int) {
	switch d {
	case Normal:
		return -size, size
	case Wide:
		return -size * 10, size * 10
	case Narrow:
		return 0, size / 2
	default:
		panic(fmt.Sprintf("benchmark: unknown distribution %d", int(d)))
	}
}

// Sample draws a single value uniformly from the inclusive range for size.
func (d Distribution) Sample(rng Rand, size int) int {
	low, high := d.Range(size)
	return low + rng.IntN(high-low+1)
}

// Fill overwrites every slot of haystack with a fresh sample.
func (d Distribution) Fill(rng Rand, haystack []int) {
	low, high := d.Range(len(haystack))
	span := high - low + 1
	for i := range haystack {
		haystack[i] = low + rng.IntN(span)
	}
}

// Label is the human readable interval printed before a sweep.
func (d Distribution) Label() string {
	switch d {
	case Normal:
		return "[-n;n]"
	case Wide:
		return "[-10n;10n]"
	case Narrow:
		return "[0;n/2]"
	default:
		return fmt.Sprintf("distribution(%d)", int(d))
	}
}

// String returns the file stem used for exported results.
func (d Distribution) String() string {
	switch d {
	case Normal:
		return "normal"
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	default:
		return fmt.Sprintf("distribution(%d)", int(d))
	}
}
