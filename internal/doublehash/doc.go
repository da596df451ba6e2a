// Package doublehash derives bloom filter bit positions from two base
// hashes of an item's byte serialization.
//
// # Two algorithms, not two seeds
//
// The two base hashes use distinct algorithms — murmur3 for h1 and xxHash
// for h2 — rather than one algorithm with two seeds. The double-hashing
// derivation treats h1 and h2 as independent uniform hash functions, and
// structurally unrelated algorithms are the cheapest way to get close to
// that assumption.
//
// # Position derivation
//
// The i-th of k positions is
//
//	(h1 + i*h2 + i*i) mod m
//
// Plain double hashing, (h1 + i*h2) mod m, degenerates when h2 mod m == 0:
// every probe lands on the same bit and the filter's effective k drops to 1.
// Two mitigations close this off: h2 is forced odd, and the quadratic i*i
// term varies the probe even when h2 mod m is still 0 (possible for odd m).
//
// # Determinism
//
// Seeds default to fixed package constants, so the same bytes always derive
// the same positions, across calls and across processes. Callers that want
// their own seeds pass them explicitly; nothing here reads process-global
// random state.
package doublehash
