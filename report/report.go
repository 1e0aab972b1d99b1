// Package report formats benchmark results for terminal output and
// comparison tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/rbergen/BitsAndBobs/bench"
	"github.com/rbergen/BitsAndBobs/config"
	"github.com/rbergen/BitsAndBobs/reference"
)

const (
	bannerRule  = "------------------------------------------------------------------"
	resultsRule = "---------------------------------------------"

	// dragraceLabel identifies this solution in drag-race comparison
	// tooling; the line format is shared across implementations.
	dragraceLabel = "davepl"
)

// Preamble writes the banner and the pre-run description line for cfg.
// Quiet and JSON runs get no preamble.
func Preamble(w io.Writer, cfg config.Config) {
	if cfg.Quiet || cfg.JSON {
		return
	}

	fmt.Fprintln(w, bannerRule)
	fmt.Fprintln(w, "Sieve of Eratosthenes by Davepl 2024 for the PDP-11 running 211BSD")
	fmt.Fprintln(w, "Modified by rbergen to compile for an Intel 8086 and run on MS-DOS")
	fmt.Fprintln(w, "Ported to Go by rbergen, preserving the bit-packed sieve layout")
	fmt.Fprintln(w, bannerRule)
	fmt.Fprintln(w)

	if cfg.Oneshot {
		fmt.Fprintf(w, "Solving primes up to %d for one pass...\n", cfg.Limit)
	} else {
		fmt.Fprintf(w, "Solving primes up to %d for %d seconds...\n",
			cfg.Limit, cfg.Seconds)
	}
}

// Results writes the human-readable results block. Unless quiet, the
// block is introduced by a separator line.
func Results(w io.Writer, res bench.Result, quiet bool) {
	if !quiet {
		fmt.Fprintln(w, resultsRule)
	}

	fmt.Fprintf(w, "Total time taken      : %.3f seconds\n", res.Elapsed.Seconds())
	fmt.Fprintf(w, "Number of passes      : %d\n", res.Passes)
	fmt.Fprintf(w, "Time per pass         : %.3f seconds\n", res.TimePerPass().Seconds())
	fmt.Fprintf(w, "Count of primes found : %d\n", res.Primes)
	fmt.Fprintf(w, "Prime validator       : %s\n", passFail(res.Valid))
}

// Dragrace appends the machine-readable drag-race summary line: label,
// pass count, elapsed seconds, thread count, then the algorithm and
// bit-width tags.
func Dragrace(w io.Writer, res bench.Result) {
	fmt.Fprintf(w, "\n%s;%d;%.3f;1;algorithm=base,faithful=no;bits=1\n",
		dragraceLabel, res.Passes, res.Elapsed.Seconds())
}

type runJSON struct {
	Limit              int64   `json:"limit"`
	Passes             int     `json:"passes"`
	ElapsedSeconds     float64 `json:"elapsed_seconds"`
	TimePerPassSeconds float64 `json:"time_per_pass_seconds"`
	Primes             int64   `json:"primes"`
	Valid              bool    `json:"valid"`
}

// JSON writes a single run result as indented JSON.
func JSON(w io.Writer, res bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(runJSON{
		Limit:              res.Limit,
		Passes:             res.Passes,
		ElapsedSeconds:     res.Elapsed.Seconds(),
		TimePerPassSeconds: res.TimePerPass().Seconds(),
		Primes:             res.Primes,
		Valid:              res.Valid,
	})
}

// Sweep writes a markdown table validating one single-pass result per
// reference limit.
func Sweep(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Sieve Sweep")
	fmt.Fprintln(w)

	if failures := countFailures(results); failures == 0 {
		fmt.Fprintln(w, "Reference counts: **all pass**")
	} else {
		fmt.Fprintf(w, "Reference counts: **%d FAILED**\n", failures)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Limit | Primes | Expected | Pass Time | Validator |")
	fmt.Fprintln(w, "|-------|--------|----------|-----------|-----------|")

	for _, res := range results {
		fmt.Fprintf(w, "| %d | %d | %s | %.3fs | %s |\n",
			res.Limit,
			res.Primes,
			expectedColumn(res.Limit),
			res.Elapsed.Seconds(),
			passFail(res.Valid),
		)
	}

	return nil
}

type sweepJSON struct {
	Limit          int64   `json:"limit"`
	Primes         int64   `json:"primes"`
	Expected       int64   `json:"expected,omitempty"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Valid          bool    `json:"valid"`
}

// SweepJSON writes sweep results as indented JSON.
func SweepJSON(w io.Writer, results []bench.Result) error {
	rows := make([]sweepJSON, 0, len(results))

	for _, res := range results {
		row := sweepJSON{
			Limit:          res.Limit,
			Primes:         res.Primes,
			ElapsedSeconds: res.Elapsed.Seconds(),
			Valid:          res.Valid,
		}

		if want, ok := reference.Count(res.Limit); ok {
			row.Expected = want
		}

		rows = append(rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rows)
}

func passFail(valid bool) string {
	if valid {
		return "PASS"
	}

	return "FAIL"
}

func countFailures(results []bench.Result) int {
	failures := 0
	for _, res := range results {
		if !res.Valid {
			failures++
		}
	}

	return failures
}

func expectedColumn(limit int64) string {
	want, ok := reference.Count(limit)
	if !ok {
		return "-"
	}

	return strconv.FormatInt(want, 10)
}
