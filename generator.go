// Package pcg64dxsm implements the PCG64-DXSM pseudo-random number
// generator: a 128-bit linear congruential generator whose state is passed
// through a double-xorshift-multiply permutation to produce 64-bit outputs.
// The period is 2^128.
//
// The generator can be positioned exactly, forwards or backwards, in
// logarithmic time. The LCG step, output permutation and jump distance are
// those of NumPy's PCG64DXSM bit generator.
//
// It is not safe for cryptographic use, and a Generator must not be used
// from several goroutines at once. Use Jumped to hand out independent
// generators instead.
package pcg64dxsm

import (
	"errors"
	"math/big"

	"github.com/colocohen/pcg64dxsm/uint128"
)

const (
	// Multiplier is the LCG multiplier. The same constant is used as the
	// 64-bit multiplier of the DXSM output permutation.
	Multiplier = 0xDA942042E4DD58B5
)

var (
	// JumpDistance is the number of steps Jumped advances per jump:
	// 0x9e3779b97f4a7c15f39cc0605cedc835, NumPy's PCG64DXSM jump constant.
	JumpDistance = uint128.New(0x9e3779b97f4a7c15, 0xf39cc0605cedc835)

	mul    = uint128.From64(Multiplier)
	invMul = mustInverse(mul)
)

var (
	ErrNoEntropy  = errors.New("pcg64dxsm: no entropy source available")
	ErrSeedLength = errors.New("pcg64dxsm: seed bytes must be 16 or 32 long")
	ErrBound      = errors.New("pcg64dxsm: bound must be positive")
	ErrSnapshot   = errors.New("pcg64dxsm: invalid state snapshot")
)

// Generator is a PCG64-DXSM generator.
type Generator struct {
	state uint128.Uint128
	inc   uint128.Uint128

	// seed record, before the canonical seeding step
	seedState uint128.Uint128
	seedInc   uint128.Uint128

	// logical position is base+n; n counts plain draws so that NextUint64
	// does not touch the big.Int
	base *big.Int
	n    uint64
}

// New creates a generator. Without a WithSeed option it is seeded from the
// entropy source.
func New(opts ...Option) (*Generator, error) {
	opt := newOptions(opts...)

	state, inc, err := opt.seed.material(opt.entropy)
	if err != nil {
		return nil, err
	}

	g := &Generator{}
	g.seed(state, inc)
	return g, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// FromSeed creates a generator from an explicit state and increment.
func FromSeed(state, inc uint128.Uint128) *Generator {
	g := &Generator{}
	g.seed(state, inc)
	return g
}

// FromRandom creates a generator seeded from DefaultEntropy.
func FromRandom() (*Generator, error) {
	return New()
}

func (g *Generator) seed(state, inc uint128.Uint128) {
	g.seedState = state
	g.seedInc = inc.SetOdd()
	g.restart()
}

// restart puts the generator at position zero of its seed record.
func (g *Generator) restart() {
	g.inc = g.seedInc
	g.state = g.seedState.Add(g.seedInc)
	g.next()
	if g.base == nil {
		g.base = new(big.Int)
	}
	g.base.SetInt64(0)
	g.n = 0
}

// next steps the LCG and returns the DXSM permutation of the state it
// stepped from. It does not count toward the position.
func (g *Generator) next() uint64 {
	s := g.state
	g.state = s.Mul(mul).Add(g.inc)

	hi, lo := s.Hi, s.Lo|1
	hi ^= hi >> 32
	hi *= Multiplier
	hi ^= hi >> 48
	hi *= lo
	return hi
}

// NextUint64 returns the next 64-bit output and advances the position by one.
func (g *Generator) NextUint64() uint64 {
	g.n++
	if g.n == 0 {
		g.base.Add(g.base, new(big.Int).Lsh(big.NewInt(1), 64))
	}
	return g.next()
}

// Float64 returns a float in [0, 1) built from the top 53 bits of a draw.
func (g *Generator) Float64() float64 {
	return float64(g.NextUint64()>>11) / (1 << 53)
}

// Clone returns an independent copy of g.
func (g *Generator) Clone() *Generator {
	c := *g
	c.base = new(big.Int).Set(g.base)
	return &c
}

// Increment returns the stream constant.
func (g *Generator) Increment() uint128.Uint128 {
	return g.inc
}

func mustInverse(a uint128.Uint128) uint128.Uint128 {
	inv, ok := uint128.Inverse(a)
	if !ok {
		panic("pcg64dxsm: multiplier is not invertible")
	}
	return inv
}
