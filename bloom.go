package bloomgo

import (
	"github.com/hupe1980/bloomgo/internal/bitstore"
	"github.com/hupe1980/bloomgo/internal/doublehash"
)

// Filter is a bloom filter: a probabilistic set that answers "possibly
// present" or "definitely absent" for arbitrary byte-serializable items.
// Items that were inserted are always reported present; items that were
// not may be reported present with probability close to the planned
// false-positive rate.
//
// The bit length and hash round count are fixed at construction, and bits
// only ever go from unset to set — there is no deletion and no resizing.
//
// A Filter carries no internal synchronization. Concurrent Contains calls
// are safe as long as no Insert runs concurrently; callers that share a
// Filter across goroutines must serialize inserts themselves.
type Filter struct {
	params   Params
	bits     *bitstore.Store
	inserted uint64

	seed1 uint32
	seed2 uint64

	logger  *Logger
	metrics MetricsCollector
}

// New creates a Filter planned for expectedItems items at the target
// false-positive rate fpRate.
//
// It returns ErrInvalidConfiguration when expectedItems is zero or fpRate
// is not strictly between 0 and 1.
func New(expectedItems uint64, fpRate float64, optFns ...Option) (*Filter, error) {
	params, err := EstimateParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewWithParams(params, optFns...)
}

// NewWithParams creates a Filter from explicit parameters, for callers that
// plan with ParamsForBits or carry a parameter set of their own.
func NewWithParams(params Params, optFns ...Option) (*Filter, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	o := options{
		seed1:   doublehash.DefaultSeed1,
		seed2:   doublehash.DefaultSeed2,
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}

	f := &Filter{
		params:  params,
		bits:    bitstore.New(params.BitLength),
		seed1:   o.seed1,
		seed2:   o.seed2,
		logger:  o.logger,
		metrics: o.metrics,
	}

	if f.logger != nil {
		f.logger.LogCreate(params)
	}

	return f, nil
}

// Insert adds data to the filter and reports whether the item was
// definitely absent before: false means every derived bit was already set,
// either by an earlier insert of the same item or by colliding items.
//
// After Insert returns, Contains for the same bytes is guaranteed true for
// the lifetime of the filter.
func (f *Filter) Insert(data []byte) bool {
	h1, h2 := doublehash.Sum(data, f.seed1, f.seed2)

	wasAbsent := false
	for pos := range doublehash.Positions(h1, h2, f.params.BitLength, f.params.HashRounds) {
		if !f.bits.Test(pos) {
			wasAbsent = true
			f.bits.Set(pos)
		}
	}
	f.inserted++

	f.metrics.RecordInsert(wasAbsent)
	if f.logger != nil {
		f.logger.LogInsert(len(data), wasAbsent)
	}

	return wasAbsent
}

// Contains reports whether data is possibly in the filter. A false return
// is definitive: at least one derived bit is unset, which proves the item
// was never inserted. A true return may be a false positive.
func (f *Filter) Contains(data []byte) bool {
	h1, h2 := doublehash.Sum(data, f.seed1, f.seed2)

	found := true
	for pos := range doublehash.Positions(h1, h2, f.params.BitLength, f.params.HashRounds) {
		if !f.bits.Test(pos) {
			found = false
			break
		}
	}

	f.metrics.RecordQuery(found)
	if f.logger != nil {
		f.logger.LogQuery(len(data), found)
	}

	return found
}

// InsertString adds a string to the filter; see Insert.
func (f *Filter) InsertString(s string) bool {
	return f.Insert([]byte(s))
}

// ContainsString reports whether a string is possibly in the filter; see
// Contains.
func (f *Filter) ContainsString(s string) bool {
	return f.Contains([]byte(s))
}

// InsertUint64 adds an unsigned integer to the filter using its fixed-width
// big-endian serialization; see Insert.
func (f *Filter) InsertUint64(v uint64) bool {
	return f.InsertItem(Uint64Key(v))
}

// ContainsUint64 reports whether an unsigned integer is possibly in the
// filter; see Contains.
func (f *Filter) ContainsUint64(v uint64) bool {
	return f.ContainsItem(Uint64Key(v))
}

// InsertItem adds any Keyer to the filter; see Insert.
func (f *Filter) InsertItem(item Keyer) bool {
	return f.Insert(item.BloomKey())
}

// ContainsItem reports whether a Keyer is possibly in the filter; see
// Contains.
func (f *Filter) ContainsItem(item Keyer) bool {
	return f.Contains(item.BloomKey())
}

// BitLength returns the bit array length m.
func (f *Filter) BitLength() uint64 { return f.params.BitLength }

// HashRounds returns the number k of bit positions derived per item.
func (f *Filter) HashRounds() uint32 { return f.params.HashRounds }

// InsertedCount returns the number of insert operations performed.
// Duplicate inserts of the same item are counted each time.
func (f *Filter) InsertedCount() uint64 { return f.inserted }

// Params returns the parameters the filter was constructed with.
func (f *Filter) Params() Params { return f.params }

// FillRatio returns the fraction of set bits, in [0, 1]. It rises
// monotonically with insertions.
func (f *Filter) FillRatio() float64 { return f.bits.FillRatio() }

// EstimatedFPRate returns the live false-positive probability,
// (1 - e^(-k*n/m))^k recomputed from the current inserted count. It rises
// past the planned rate once more items are inserted than the filter was
// sized for.
func (f *Filter) EstimatedFPRate() float64 {
	return FPRate(f.params.BitLength, f.params.HashRounds, f.inserted)
}
