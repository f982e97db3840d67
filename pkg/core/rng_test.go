package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMT19937ReferenceOutputs(t *testing.T) {
	m := NewMT19937(5489)
	var last uint32
	for i := 0; i < 10000; i++ {
		last = m.Uint32()
	}
	require.Equal(t, uint32(4123659995), last, "10000th output of the default seed")

	require.Equal(t, uint32(1608637542), NewMT19937(42).Uint32())
}

func TestMT19937SeedUsesLow32Bits(t *testing.T) {
	a := NewMT19937(-1)
	b := NewMT19937(math.MaxUint32)
	c := NewMT19937(1<<32 | 7)
	d := NewMT19937(7)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32())
		require.Equal(t, c.Uint32(), d.Uint32())
	}
}

func TestUint32nMatchesReferenceDraws(t *testing.T) {
	rng := NewRNGWith(NewMT19937(42))
	got := make([]uint32, 16)
	for i := range got {
		got[i] = rng.Uint32n(5)
	}
	want := []uint32{1, 3, 4, 0, 3, 3, 2, 2, 0, 2, 0, 0, 0, 2, 4, 1}
	assert.Equal(t, want, got)
}

func TestIntRangeBounds(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int32
	}{
		{"single", 3, 3},
		{"tiles", 0, 4},
		{"negative", -7, -2},
		{"wide", math.MinInt32, math.MaxInt32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := NewRNG(99)
			for i := 0; i < 2000; i++ {
				v := rng.IntRange(tc.lo, tc.hi)
				require.GreaterOrEqual(t, v, tc.lo)
				require.LessOrEqual(t, v, tc.hi)
			}
		})
	}
}

func TestIntRangeInvertedReturnsLow(t *testing.T) {
	rng := NewRNG(1)
	assert.Equal(t, int32(5), rng.IntRange(5, 2))
}

func TestUint32nZero(t *testing.T) {
	assert.Equal(t, uint32(0), NewRNG(5).Uint32n(0))
}

func TestRegisteredSources(t *testing.T) {
	assert.Equal(t, []string{AlgorithmMT19937, AlgorithmPCG}, SourceNames())

	f, ok := LookupSource(AlgorithmMT19937)
	require.True(t, ok)
	assert.Equal(t, uint32(1608637542), f(42).Uint32())

	_, ok = LookupSource("xorshift")
	assert.False(t, ok)
}

func TestRegisterSourceIgnoresInvalid(t *testing.T) {
	RegisterSource("", func(int64) Source32 { return NewMT19937(0) })
	RegisterSource("nil-factory", nil)
	_, ok := LookupSource("nil-factory")
	assert.False(t, ok)
	assert.Len(t, SourceNames(), 2)
}
