package pcg64dxsm

import (
	"math/big"

	"github.com/colocohen/pcg64dxsm/uint128"
)

// Advance moves the generator d steps, backwards when d is negative, as if
// NextUint64 had been called (or un-called) |d| times. It runs in
// O(log |d|) and returns g.
func (g *Generator) Advance(d *big.Int) *Generator {
	if d.Sign() == 0 {
		return g
	}
	g.state = move(g.state, g.inc, d)
	g.flush()
	g.base.Add(g.base, d)
	return g
}

// AdvanceInt64 is Advance for a native delta.
func (g *Generator) AdvanceInt64(d int64) *Generator {
	if d == 0 {
		return g
	}
	return g.Advance(big.NewInt(d))
}

// Seek positions the generator p draws past its seed point, whatever its
// current position. It returns g.
func (g *Generator) Seek(p *big.Int) *Generator {
	g.restart()
	if p.Sign() != 0 {
		g.Advance(p)
	}
	return g
}

// SeekInt64 is Seek for a native position.
func (g *Generator) SeekInt64(p int64) *Generator {
	return g.Seek(big.NewInt(p))
}

// Reset is Seek(0).
func (g *Generator) Reset() *Generator {
	g.restart()
	return g
}

// Pos returns the number of draws since the seed point, net of any
// advancing. It may be negative and may exceed 64 bits.
func (g *Generator) Pos() *big.Int {
	return new(big.Int).Add(g.base, new(big.Int).SetUint64(g.n))
}

// Pos64 returns the position when it fits in an int64.
func (g *Generator) Pos64() (int64, bool) {
	p := g.Pos()
	if !p.IsInt64() {
		return 0, false
	}
	return p.Int64(), true
}

// Jumped returns a copy of g advanced by j*JumpDistance. g is unchanged.
func (g *Generator) Jumped(j int64) *Generator {
	return g.JumpedBig(big.NewInt(j))
}

// JumpedBig is Jumped for an arbitrary-width jump count.
func (g *Generator) JumpedBig(j *big.Int) *Generator {
	c := g.Clone()
	c.Advance(new(big.Int).Mul(JumpDistance.Big(), j))
	return c
}

// flush folds the draw count into base.
func (g *Generator) flush() {
	if g.n != 0 {
		g.base.Add(g.base, new(big.Int).SetUint64(g.n))
		g.n = 0
	}
}

// move returns state after d steps on stream inc. Only |d| mod 2^128
// matters since the period is 2^128.
func move(state, inc uint128.Uint128, d *big.Int) uint128.Uint128 {
	if d.Sign() == 0 {
		return state
	}
	n := uint128.FromBig(new(big.Int).Abs(d))
	t := forward(inc)
	if d.Sign() < 0 {
		t = backward(inc)
	}
	return t.pow(n).apply(state)
}
