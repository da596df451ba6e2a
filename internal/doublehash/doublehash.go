package doublehash

import (
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Default seeds for the two base hashes. Arbitrary constants, fixed so that
// derived positions are stable across processes.
const (
	DefaultSeed1 uint32 = 0x9747b28c
	DefaultSeed2 uint64 = 0x1f0a2b3c4d5e6f71
)

// Sum computes the two base hashes of data: h1 via murmur3, h2 via xxHash,
// each with its own seed.
func Sum(data []byte, seed1 uint32, seed2 uint64) (h1, h2 uint64) {
	h1 = murmur3.Sum64WithSeed(data, seed1)

	var d xxhash.Digest
	d.ResetWithSeed(seed2)
	_, _ = d.Write(data)
	h2 = d.Sum64()

	return h1, h2
}

// Positions returns the k bit positions in [0, m) derived from the base
// hash pair; the i-th position is (h1 + i*h2 + i*i) mod m with h2 forced
// odd. m must be positive.
//
// The sequence is lazy and restartable: ranging over it twice yields the
// identical positions, and no state is shared between invocations.
func Positions(h1, h2, m uint64, k uint32) iter.Seq[uint64] {
	h2 |= 1
	return func(yield func(uint64) bool) {
		for i := uint64(0); i < uint64(k); i++ {
			if !yield((h1 + i*h2 + i*i) % m) {
				return
			}
		}
	}
}
