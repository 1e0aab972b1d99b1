package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rbergen/BitsAndBobs/reference"
	"github.com/rbergen/BitsAndBobs/sieve"
)

// Options holds the parameters for a single benchmark run.
type Options struct {
	Limit   int64
	Budget  time.Duration
	Oneshot bool
}

// Driver runs sieve passes until the stop condition for its Options is
// met. The sieve buffer is allocated once, when the Driver is created,
// and reset at the start of every pass.
type Driver struct {
	opts   Options
	sieve  *sieve.Sieve
	logger *slog.Logger
}

// NewDriver allocates a sieve for opts.Limit and returns a Driver
// ready to run. An allocation failure is fatal to the run and surfaces
// here.
func NewDriver(opts Options, logger *slog.Logger) (*Driver, error) {
	s, err := sieve.New(opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("allocate sieve: %w", err)
	}

	return &Driver{
		opts:   opts,
		sieve:  s,
		logger: logger.With(slog.Int64("limit", opts.Limit)),
	}, nil
}

// Run executes sieve passes until the stop condition is met and
// returns the finalized result. In oneshot mode exactly one pass runs;
// otherwise passes repeat while the elapsed time is below the budget.
// The loop body always runs before the condition is checked, so Passes
// is at least 1 even for a zero or negative budget. Elapsed time is
// computed once, from the final clock sample, and primes are counted
// once, after the loop, so counting never skews the measurement.
func (d *Driver) Run() Result {
	start := time.Now()

	var (
		passes int
		end    time.Time
	)

	for {
		d.sieve.RunPass()
		passes++
		end = time.Now()

		if d.opts.Oneshot || end.Sub(start) >= d.opts.Budget {
			break
		}
	}

	elapsed := end.Sub(start)
	primes := d.sieve.CountPrimes()

	result := Result{
		Limit:   d.opts.Limit,
		Passes:  passes,
		Elapsed: elapsed,
		Primes:  primes,
		Valid:   reference.Validate(d.opts.Limit, primes),
	}

	d.logger.Info("run finished",
		slog.Int("passes", result.Passes),
		slog.Duration("elapsed", result.Elapsed),
		slog.Int64("primes", result.Primes),
		slog.Bool("valid", result.Valid),
	)

	return result
}

// RunSweep performs one oneshot run per reference limit, in ascending
// order, and returns their results.
func RunSweep(logger *slog.Logger) ([]Result, error) {
	limits := reference.Limits()
	results := make([]Result, 0, len(limits))

	for _, limit := range limits {
		driver, err := NewDriver(Options{Limit: limit, Oneshot: true}, logger)
		if err != nil {
			return nil, fmt.Errorf("sweep limit %d: %w", limit, err)
		}

		results = append(results, driver.Run())
	}

	return results, nil
}
