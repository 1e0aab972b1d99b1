package bench

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rbergen/BitsAndBobs/reference"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOneshotRunsExactlyOnePass(t *testing.T) {
	driver, err := NewDriver(Options{
		Limit:   100,
		Budget:  time.Hour,
		Oneshot: true,
	}, testLogger())
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	result := driver.Run()

	if result.Passes != 1 {
		t.Errorf("passes = %d, want 1", result.Passes)
	}
	if result.Primes != 25 {
		t.Errorf("primes = %d, want 25", result.Primes)
	}
	if !result.Valid {
		t.Error("result did not validate")
	}
}

func TestZeroOrNegativeBudgetStillRunsOnePass(t *testing.T) {
	for _, budget := range []time.Duration{0, -time.Second} {
		driver, err := NewDriver(Options{
			Limit:  1000,
			Budget: budget,
		}, testLogger())
		if err != nil {
			t.Fatalf("NewDriver failed: %v", err)
		}

		result := driver.Run()

		if result.Passes < 1 {
			t.Errorf("budget %v: passes = %d, want >= 1", budget, result.Passes)
		}
		if result.Primes != 168 {
			t.Errorf("budget %v: primes = %d, want 168", budget, result.Primes)
		}
	}
}

func TestTimedRunSpendsTheBudget(t *testing.T) {
	budget := 50 * time.Millisecond

	driver, err := NewDriver(Options{Limit: 10, Budget: budget}, testLogger())
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	result := driver.Run()

	if result.Passes < 1 {
		t.Errorf("passes = %d, want >= 1", result.Passes)
	}
	if result.Elapsed < budget {
		t.Errorf("elapsed = %v, want >= %v", result.Elapsed, budget)
	}
}

func TestUnknownLimitDoesNotValidate(t *testing.T) {
	driver, err := NewDriver(Options{Limit: 9999, Oneshot: true}, testLogger())
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	result := driver.Run()

	if result.Valid {
		t.Error("limit 9999 validated, but it has no reference count")
	}
	if result.Primes != 1229 {
		t.Errorf("primes = %d, want 1229", result.Primes)
	}
}

func TestNewDriverRejectsBadLimit(t *testing.T) {
	if _, err := NewDriver(Options{Limit: 0}, testLogger()); err == nil {
		t.Error("NewDriver accepted limit 0")
	}
}

func TestTimePerPass(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   time.Duration
	}{
		{"multiple passes", Result{Passes: 4, Elapsed: 6 * time.Second}, 1500 * time.Millisecond},
		{"single pass", Result{Passes: 1, Elapsed: 300 * time.Millisecond}, 300 * time.Millisecond},
		{"no passes", Result{Passes: 0, Elapsed: time.Second}, 0},
	}

	for _, tt := range tests {
		if got := tt.result.TimePerPass(); got != tt.want {
			t.Errorf("%s: TimePerPass() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRunSweep(t *testing.T) {
	results, err := RunSweep(testLogger())
	if err != nil {
		t.Fatalf("RunSweep failed: %v", err)
	}

	if want := len(reference.Limits()); len(results) != want {
		t.Fatalf("got %d results, want %d", len(results), want)
	}

	var prev int64
	for _, res := range results {
		if res.Limit <= prev {
			t.Errorf("limits not ascending: %d after %d", res.Limit, prev)
		}
		prev = res.Limit

		if res.Passes != 1 {
			t.Errorf("limit %d: passes = %d, want 1", res.Limit, res.Passes)
		}
		if !res.Valid {
			t.Errorf("limit %d: count %d did not validate", res.Limit, res.Primes)
		}
	}
}
