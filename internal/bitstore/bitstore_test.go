package bitstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_NewAllZero(t *testing.T) {
	s := New(128)

	assert.Equal(t, uint64(128), s.Len())
	assert.Equal(t, uint64(0), s.Count())
	assert.Equal(t, 0.0, s.FillRatio())

	for i := uint64(0); i < 128; i++ {
		require.False(t, s.Test(i), "bit %d set in a fresh store", i)
	}
}

func TestStore_SetAndTest(t *testing.T) {
	s := New(100)

	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(99)

	assert.True(t, s.Test(0))
	assert.True(t, s.Test(63))
	assert.True(t, s.Test(64))
	assert.True(t, s.Test(99))
	assert.False(t, s.Test(50))

	assert.Equal(t, uint64(4), s.Count())
}

func TestStore_SetIdempotent(t *testing.T) {
	s := New(10)

	s.Set(3)
	s.Set(3)
	s.Set(3)

	assert.True(t, s.Test(3))
	assert.Equal(t, uint64(1), s.Count())
}

func TestStore_FillRatio(t *testing.T) {
	s := New(10)

	s.Set(1)
	s.Set(2)
	s.Set(3)

	assert.InDelta(t, 0.3, s.FillRatio(), 1e-12)
}

func TestStore_OutOfRangePanics(t *testing.T) {
	s := New(10)

	defer func() {
		r := recover()
		require.NotNil(t, r, "Set past the store length must panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}()

	s.Set(10)
}

func TestStore_TestOutOfRangePanics(t *testing.T) {
	s := New(10)

	assert.Panics(t, func() { s.Test(10) })
	assert.Panics(t, func() { s.Test(1 << 40) })

	// The length boundary itself is the first invalid index.
	assert.NotPanics(t, func() { s.Test(9) })
}
