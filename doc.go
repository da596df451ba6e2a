// Package bloomgo provides a precision bloom filter for Go: a probabilistic
// set that answers "possibly present" or "definitely absent" for arbitrary
// byte-serializable items, using sub-linear space relative to storing the
// items themselves.
//
// # Guarantees
//
// A bloom filter is a probabilistic prefilter:
//
//   - If the filter says "definitely not present", the item is not present.
//     There are no false negatives.
//   - If the filter says "possibly present", the item may or may not be
//     present; false positives occur with a rate you choose at construction.
//
// It is not an exact set: items cannot be enumerated, ordered, or deleted.
//
// # Quick Start
//
//	// Create a filter for 10,000 items with a 1% false-positive rate.
//	filter, err := bloomgo.New(10_000, 0.01)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filter.InsertString("hello")
//	filter.InsertUint64(42)
//
//	filter.ContainsString("hello") // true  - definitely inserted
//	filter.ContainsString("world") // false - definitely absent
//
// Typed values implement the Keyer interface to define their stable byte
// serialization:
//
//	type UserID uint64
//
//	func (id UserID) BloomKey() []byte {
//	    var b [8]byte
//	    binary.BigEndian.PutUint64(b[:], uint64(id))
//	    return b[:]
//	}
//
//	filter.InsertItem(UserID(7))
//
// # How It Works
//
// Construction plans the optimal bit array length m and hash round count k
// from the expected item count n and target false-positive rate p:
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//	k = round((m/n) * ln(2))
//
// Each operation derives k bit positions from two independent base hashes
// (murmur3 and xxHash) via double hashing, (h1 + i*h2 + i*i) mod m. Insert
// sets all k bits; Contains requires all k bits set. The quadratic term
// guards against the classic double-hashing degeneracy where h2 mod m == 0
// collapses every probe onto one bit.
//
// # Determinism
//
// Hash seeds are fixed package constants, so the same bytes map to the same
// bit positions across calls and across processes. Seeds can be overridden
// with WithSeeds; two filters agree on positions only when their seeds
// match.
//
// # Capacity Monitoring
//
// The planned false-positive rate holds at the planned capacity. Inserting
// past capacity degrades it gracefully; EstimatedFPRate and Stats expose
// the live rate and fill ratios:
//
//	stats := filter.Stats()
//	if stats.Overfilled {
//	    log.Printf("filter past capacity: %s", stats)
//	}
//
// # Concurrency
//
// A Filter carries no internal synchronization and every operation is
// synchronous O(k) CPU work with no I/O. Concurrent Contains calls are
// safe; callers that insert from multiple goroutines must serialize the
// inserts externally.
package bloomgo
