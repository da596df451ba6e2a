// Package bitstore provides the fixed-length bit array backing a bloom
// filter: monotonic set-only bits with a popcount-based fill ratio.
package bitstore

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ErrIndexOutOfRange reports a bit index at or beyond the store length.
// The filter reduces every derived position mod the bit length, so reaching
// this indicates a bug in position derivation, not bad caller input. Set
// and Test panic with an error wrapping this sentinel.
var ErrIndexOutOfRange = errors.New("bitstore: bit index out of range")

// Store is a fixed-length bit array. Bits only ever go from unset to set;
// there is no clearing and no resizing. The zero value is not usable; use
// New.
type Store struct {
	bits *bitset.BitSet
	n    uint64
}

// New returns an all-zero store of length bits. length must be positive;
// the sizing planner guarantees this before the store is allocated.
func New(length uint64) *Store {
	return &Store{
		bits: bitset.New(uint(length)),
		n:    length,
	}
}

// Len returns the store length in bits.
func (s *Store) Len() uint64 { return s.n }

// Set sets the bit at index i. Setting an already-set bit is a no-op.
func (s *Store) Set(i uint64) {
	s.check(i)
	s.bits.Set(uint(i))
}

// Test reports whether the bit at index i is set.
func (s *Store) Test(i uint64) bool {
	s.check(i)
	return s.bits.Test(uint(i))
}

// check fences off the backing bitset's auto-grow: the store length is
// fixed for its lifetime.
func (s *Store) check(i uint64) {
	if i >= s.n {
		panic(fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, i, s.n))
	}
}

// Count returns the number of set bits.
func (s *Store) Count() uint64 {
	return uint64(s.bits.Count())
}

// FillRatio returns the fraction of set bits, in [0, 1].
func (s *Store) FillRatio() float64 {
	return float64(s.Count()) / float64(s.n)
}
