// Package sieve implements the Sieve of Eratosthenes over a bit-packed
// buffer of odd numbers.
package sieve

import (
	"fmt"
	"math"
)

// Sieve computes primes up to a fixed limit. It owns a buffer holding
// one bit per odd number from 3 to the limit; a set bit marks its
// number as a proven composite, so candidate primality holds until
// disproven. Even numbers and 1 are never represented: among them only
// 2 is prime, and the counting step accounts for it.
type Sieve struct {
	limit int64
	bits  []byte
}

// New allocates a sieve for primes up to limit inclusive.
func New(limit int64) (*Sieve, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	size := bufferSize(limit)
	if size > math.MaxInt {
		return nil, fmt.Errorf(
			"sieve buffer of %d bytes exceeds addressable memory", size,
		)
	}

	return &Sieve{
		limit: limit,
		bits:  make([]byte, size),
	}, nil
}

// Limit returns the inclusive upper bound the sieve was allocated for.
func (s *Sieve) Limit() int64 {
	return s.limit
}

// RunPass clears the buffer and marks every odd composite up to the
// limit. For each unmarked odd factor i with i*i <= limit, the odd
// multiples of i from i*i upward are marked; smaller multiples were
// already covered by smaller factors.
func (s *Sieve) RunPass() {
	clear(s.bits)

	for i := int64(3); i*i <= s.limit; i += 2 {
		if s.composite(i) {
			continue
		}

		for j := i * i; j <= s.limit; j += 2 * i {
			s.markComposite(j)
		}
	}
}

// CountPrimes scans the buffer and returns the number of primes up to
// the limit. The tally starts at 1 to account for 2, the only even
// prime.
func (s *Sieve) CountPrimes() int64 {
	count := int64(1)

	for i := int64(3); i <= s.limit; i += 2 {
		if !s.composite(i) {
			count++
		}
	}

	return count
}

// composite reports whether the odd number n has been marked composite.
func (s *Sieve) composite(n int64) bool {
	bit := n / 2

	return s.bits[bit/8]>>(bit%8)&1 == 1
}

// markComposite marks the odd number n as composite.
func (s *Sieve) markComposite(n int64) {
	bit := n / 2
	s.bits[bit/8] |= 1 << (bit % 8)
}

// bufferSize returns the number of bytes holding one bit per odd
// number up to limit. The highest bit index used is limit/2, so
// (limit/2)/8 + 1 bytes always cover it.
func bufferSize(limit int64) int64 {
	return (limit/2)/8 + 1
}
