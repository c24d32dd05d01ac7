package pcg64dxsm

import (
	"fmt"

	"github.com/colocohen/pcg64dxsm/uint128"
)

// IntBelow returns an unbiased integer in [0, bound). A zero bound is an
// error and consumes no draws. The bound is a uint64, so bounds of 2^64 and
// above are not accepted; use NextUint64 for the full 64-bit range.
//
// For implementation details, see:
// https://lemire.me/blog/2016/06/30/fast-random-shuffling
// https://arxiv.org/abs/1805.10941
func (g *Generator) IntBelow(bound uint64) (uint64, error) {
	if bound == 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBound, bound)
	}
	return g.uint64n(bound), nil
}

// Uint64n is like IntBelow but panics if bound is zero.
func (g *Generator) Uint64n(bound uint64) uint64 {
	if bound == 0 {
		panic(ErrBound)
	}
	return g.uint64n(bound)
}

func (g *Generator) uint64n(bound uint64) uint64 {
	m := uint128.Mul64(g.NextUint64(), bound)
	if m.Lo < bound {
		thresh := -bound % bound
		for m.Lo < thresh {
			m = uint128.Mul64(g.NextUint64(), bound)
		}
	}
	return m.Hi
}
