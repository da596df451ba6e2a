package bloomgo

import (
	"fmt"
	"math"
)

// Params fixes the shape of a Filter: the bit array length m, the number of
// hash rounds k, and the capacity assumptions they were planned from. Both
// m and k are immutable for the lifetime of a Filter.
type Params struct {
	// BitLength is the length m of the bit array.
	BitLength uint64
	// HashRounds is the number k of bit positions derived per item.
	HashRounds uint32
	// ExpectedItems is the capacity n the filter was planned for.
	ExpectedItems uint64
	// FPRate is the theoretical false-positive rate at capacity.
	FPRate float64
}

// EstimateParams plans optimal filter parameters for an expected item count
// and a target false-positive rate:
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//	k = round((m/n) * ln(2)), at least 1
//
// It returns ErrInvalidConfiguration when expectedItems is zero or fpRate
// is not strictly between 0 and 1 (NaN included).
func EstimateParams(expectedItems uint64, fpRate float64) (Params, error) {
	if expectedItems == 0 {
		return Params{}, fmt.Errorf("%w: expected items must be positive", ErrInvalidConfiguration)
	}
	if !(fpRate > 0 && fpRate < 1) {
		return Params{}, fmt.Errorf("%w: false-positive rate %v outside (0, 1)", ErrInvalidConfiguration, fpRate)
	}

	n := float64(expectedItems)

	m := uint64(math.Ceil(-n * math.Log(fpRate) / (math.Ln2 * math.Ln2)))
	if m == 0 {
		m = 1
	}

	return Params{
		BitLength:     m,
		HashRounds:    hashRounds(m, expectedItems),
		ExpectedItems: expectedItems,
		FPRate:        fpRate,
	}, nil
}

// ParamsForBits plans parameters from an explicit bit budget instead of a
// target rate: the hash round count is derived the same way as in
// EstimateParams and FPRate is the resulting theoretical rate at capacity.
func ParamsForBits(bitLength, expectedItems uint64) (Params, error) {
	if bitLength == 0 {
		return Params{}, fmt.Errorf("%w: bit length must be positive", ErrInvalidConfiguration)
	}
	if expectedItems == 0 {
		return Params{}, fmt.Errorf("%w: expected items must be positive", ErrInvalidConfiguration)
	}

	k := hashRounds(bitLength, expectedItems)

	return Params{
		BitLength:     bitLength,
		HashRounds:    k,
		ExpectedItems: expectedItems,
		FPRate:        FPRate(bitLength, k, expectedItems),
	}, nil
}

// hashRounds returns round((m/n) * ln(2)), clamped to at least one round.
// Without the clamp a tiny n or a large p computes zero rounds, and a
// filter with zero rounds accepts everything.
func hashRounds(m, n uint64) uint32 {
	k := math.Round(float64(m) / float64(n) * math.Ln2)
	if k < 1 {
		return 1
	}
	return uint32(k)
}

// FPRate returns the theoretical false-positive rate of a filter with
// bitLength bits and hashRounds rounds holding items items:
//
//	p = (1 - e^(-k*n/m))^k
//
// An empty filter has rate 0.
func FPRate(bitLength uint64, hashRounds uint32, items uint64) float64 {
	if bitLength == 0 || items == 0 {
		return 0
	}

	m := float64(bitLength)
	k := float64(hashRounds)
	n := float64(items)

	return math.Pow(1-math.Exp(-k*n/m), k)
}

// Validate reports whether p describes a usable filter shape. All errors
// wrap ErrInvalidConfiguration.
func (p Params) Validate() error {
	if p.BitLength == 0 {
		return fmt.Errorf("%w: bit length must be positive", ErrInvalidConfiguration)
	}
	if p.HashRounds == 0 {
		return fmt.Errorf("%w: hash rounds must be positive", ErrInvalidConfiguration)
	}
	if p.ExpectedItems == 0 {
		return fmt.Errorf("%w: expected items must be positive", ErrInvalidConfiguration)
	}
	if !(p.FPRate > 0 && p.FPRate < 1) {
		return fmt.Errorf("%w: false-positive rate %v outside (0, 1)", ErrInvalidConfiguration, p.FPRate)
	}
	return nil
}
