package core

import "math/rand/v2"

// Source32 produces uniformly distributed 32-bit words.
type Source32 interface {
	Uint32() uint32
}

// RNG is a thin convenience wrapper over a Source32 for deterministic seeding
// and bias-free bounded draws.
type RNG struct {
	src Source32
}

// NewRNG creates a deterministic PCG-backed RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewRNGWith(NewPCGSource(seed))
}

// NewRNGWith wraps an existing source.
func NewRNGWith(src Source32) *RNG {
	return &RNG{src: src}
}

// Uint32 returns the next raw word from the source.
func (r *RNG) Uint32() uint32 { return r.src.Uint32() }

// Uint32n returns a uniformly distributed value in [0, n). It uses Lemire's
// multiply-shift reduction with rejection, so the result depends only on the
// sequence of words drawn from the source.
func (r *RNG) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	product := uint64(r.src.Uint32()) * uint64(n)
	low := uint32(product)
	if low < n {
		threshold := -n % n
		for low < threshold {
			product = uint64(r.src.Uint32()) * uint64(n)
			low = uint32(product)
		}
	}
	return uint32(product >> 32)
}

// IntRange returns a uniformly distributed value in the closed range [lo, hi].
// When hi < lo it returns lo without consuming the source.
func (r *RNG) IntRange(lo, hi int32) int32 {
	if hi < lo {
		return lo
	}
	span := uint64(int64(hi) - int64(lo) + 1)
	if span > 1<<32-1 {
		return int32(int64(lo) + int64(r.src.Uint32()))
	}
	return int32(int64(lo) + int64(r.Uint32n(uint32(span))))
}

// PCGSource adapts math/rand/v2's PCG generator to Source32 by taking the high
// half of each 64-bit output.
type PCGSource struct {
	pcg *rand.PCG
}

// NewPCGSource seeds a PCG source with (uint64(seed), 0).
func NewPCGSource(seed int64) *PCGSource {
	return &PCGSource{pcg: rand.NewPCG(uint64(seed), 0)}
}

// Uint32 returns the high 32 bits of the next PCG output.
func (p *PCGSource) Uint32() uint32 {
	return uint32(p.pcg.Uint64() >> 32)
}
