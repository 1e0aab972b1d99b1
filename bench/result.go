// Package bench drives repeated sieve passes under a wall-clock budget
// and validates the outcome against the reference counts.
package bench

import "time"

// Result holds the finalized outcome of one benchmark run.
type Result struct {
	Limit   int64
	Passes  int
	Elapsed time.Duration
	Primes  int64
	Valid   bool
}

// TimePerPass returns the average wall-clock duration of a single
// pass, or zero when no pass completed.
func (r Result) TimePerPass() time.Duration {
	if r.Passes < 1 {
		return 0
	}

	return r.Elapsed / time.Duration(r.Passes)
}
