package bloomgo

import (
	"fmt"
	"math"
)

// Stats is a point-in-time snapshot of a Filter, for capacity monitoring.
type Stats struct {
	// BitLength and HashRounds are the fixed filter shape.
	BitLength  uint64
	HashRounds uint32

	// ExpectedItems is the planned capacity; InsertedCount the number of
	// insert operations performed so far.
	ExpectedItems uint64
	InsertedCount uint64

	// BitFillRatio is the fraction of set bits in the bit array.
	BitFillRatio float64
	// ItemFillRatio is InsertedCount / ExpectedItems; above 1 the filter
	// is past its planned capacity.
	ItemFillRatio float64
	// Overfilled reports ItemFillRatio > 1; OverfillAmount is how many
	// inserts past capacity, zero when not overfilled.
	Overfilled     bool
	OverfillAmount uint64

	// TargetFPRate is the rate the filter was planned for.
	// EstimatedFPRate is recomputed from the current inserted count and
	// rises past the target once the filter is overfilled.
	TargetFPRate    float64
	EstimatedFPRate float64

	// ApproxItems estimates the number of distinct items from the bit
	// fill, -m/k * ln(1 - setBits/m). Unlike InsertedCount it is not
	// inflated by duplicate inserts.
	ApproxItems float64
}

// Stats returns a snapshot of the filter.
func (f *Filter) Stats() Stats {
	s := Stats{
		BitLength:       f.params.BitLength,
		HashRounds:      f.params.HashRounds,
		ExpectedItems:   f.params.ExpectedItems,
		InsertedCount:   f.inserted,
		BitFillRatio:    f.bits.FillRatio(),
		ItemFillRatio:   float64(f.inserted) / float64(f.params.ExpectedItems),
		TargetFPRate:    f.params.FPRate,
		EstimatedFPRate: f.EstimatedFPRate(),
		ApproxItems:     f.approxItems(),
	}
	if f.inserted > f.params.ExpectedItems {
		s.Overfilled = true
		s.OverfillAmount = f.inserted - f.params.ExpectedItems
	}
	return s
}

// approxItems derives the distinct-item estimate from the popcount.
func (f *Filter) approxItems() float64 {
	m := f.params.BitLength
	set := f.bits.Count()
	// A saturated array would put ln(0) in the formula; treating one bit
	// as unset keeps the estimate finite.
	if set == m {
		set = m - 1
	}
	return -float64(m) / float64(f.params.HashRounds) * math.Log(1-float64(set)/float64(m))
}

// String returns a one-line human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf(
		"inserted %d/%d items (%.1f%% of capacity), %.2f%% bits set, target FPR %.4f%%, estimated FPR %.4f%%",
		s.InsertedCount, s.ExpectedItems, s.ItemFillRatio*100,
		s.BitFillRatio*100, s.TargetFPRate*100, s.EstimatedFPRate*100,
	)
}
