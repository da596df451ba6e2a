package bloomgo

import (
	"errors"

	"github.com/hupe1980/bloomgo/internal/bitstore"
)

var (
	// ErrInvalidConfiguration is returned by the constructors when the
	// expected item count is zero or the target false-positive rate is not
	// strictly between 0 and 1. The sizing formulas are undefined at those
	// boundaries, so construction does not proceed.
	//
	// Match with errors.Is; the returned error carries the offending value.
	ErrInvalidConfiguration = errors.New("bloomgo: invalid configuration")

	// ErrIndexOutOfRange is carried by the panic raised when a bit index
	// falls outside the bit array. Derived positions are always reduced mod
	// the bit length, so this is unreachable unless position derivation is
	// broken; it is an assertion, not a recoverable condition.
	ErrIndexOutOfRange = bitstore.ErrIndexOutOfRange
)
