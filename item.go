package bloomgo

import "encoding/binary"

// Keyer is the item-to-bytes boundary: any type that can serialize itself
// to bytes deterministically can be stored in a Filter. Equal values must
// produce equal bytes across calls and across processes; the filter has no
// false negatives only as long as this holds.
//
// The capability is an explicit interface rather than reflection so the
// determinism requirement is visible at the definition site of each type.
type Keyer interface {
	// BloomKey returns the stable byte serialization of the item.
	BloomKey() []byte
}

// StringKey adapts a string for InsertItem and ContainsItem.
type StringKey string

// BloomKey implements Keyer.
func (s StringKey) BloomKey() []byte { return []byte(s) }

// Uint64Key adapts an unsigned integer for InsertItem and ContainsItem.
// The serialization is the fixed-width big-endian encoding.
type Uint64Key uint64

// BloomKey implements Keyer.
func (u Uint64Key) BloomKey() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(u))
	return b[:]
}
