package reference

import (
	"slices"
	"testing"
)

func TestValidateKnownLimits(t *testing.T) {
	tests := []struct {
		limit int64
		count int64
	}{
		{10, 4},
		{100, 25},
		{1000, 168},
		{10000, 1229},
		{100000, 9592},
		{500000, 41538},
		{1000000, 78498},
		{5000000, 348513},
		{10000000, 664579},
	}

	for _, tt := range tests {
		if !Validate(tt.limit, tt.count) {
			t.Errorf("Validate(%d, %d) = false, want true", tt.limit, tt.count)
		}
	}
}

func TestValidateWrongCount(t *testing.T) {
	if Validate(1000, 167) {
		t.Error("Validate(1000, 167) = true, want false")
	}
	if Validate(1000, 0) {
		t.Error("Validate(1000, 0) = true, want false")
	}
}

func TestValidateUnknownLimit(t *testing.T) {
	// 9999 has no table entry, so validation fails even for 1229, the
	// true number of primes up to 9999.
	if Validate(9999, 1229) {
		t.Error("Validate(9999, 1229) = true, want false")
	}
	if Validate(9999, 0) {
		t.Error("Validate(9999, 0) = true, want false")
	}
}

func TestCount(t *testing.T) {
	count, ok := Count(100)
	if !ok || count != 25 {
		t.Errorf("Count(100) = %d, %v, want 25, true", count, ok)
	}

	if _, ok := Count(9999); ok {
		t.Error("Count(9999) reported a known count")
	}
}

func TestLimitsAscending(t *testing.T) {
	limits := Limits()

	if len(limits) != len(knownCounts) {
		t.Fatalf("Limits() returned %d entries, want %d",
			len(limits), len(knownCounts))
	}
	if !slices.IsSorted(limits) {
		t.Errorf("Limits() not in ascending order: %v", limits)
	}
}
