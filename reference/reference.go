// Package reference provides the known-correct prime counts for
// standard sieve limits, used to sanity-check sieve results.
package reference

import (
	"maps"
	"slices"
)

// knownCounts maps a sieve limit to the number of primes at or below it.
var knownCounts = map[int64]int64{
	10:       4,
	100:      25,
	1000:     168,
	10000:    1229,
	100000:   9592,
	500000:   41538,
	1000000:  78498,
	5000000:  348513,
	10000000: 664579,
}

// Validate reports whether count is the known-correct number of primes
// up to limit. Limits absent from the table validate as false, the same
// as a wrong count.
func Validate(limit, count int64) bool {
	want, ok := knownCounts[limit]

	return ok && want == count
}

// Count returns the known prime count for limit, if the table has one.
func Count(limit int64) (int64, bool) {
	count, ok := knownCounts[limit]

	return count, ok
}

// Limits returns every limit with a known count, in ascending order.
func Limits() []int64 {
	return slices.Sorted(maps.Keys(knownCounts))
}
