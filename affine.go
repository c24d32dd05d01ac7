package pcg64dxsm

import "github.com/colocohen/pcg64dxsm/uint128"

// affine is the map s -> mul*s + add (mod 2^128). One LCG step is
// affine{mul: Multiplier, add: inc}.
type affine struct {
	mul uint128.Uint128
	add uint128.Uint128
}

var identity = affine{mul: uint128.One}

// forward is one LCG step on stream inc.
func forward(inc uint128.Uint128) affine {
	return affine{mul: mul, add: inc}
}

// backward undoes one LCG step on stream inc.
func backward(inc uint128.Uint128) affine {
	return affine{mul: invMul, add: invMul.Mul(inc).Neg()}
}

// compose returns the map applying inner first and then outer.
func compose(outer, inner affine) affine {
	return affine{
		mul: outer.mul.Mul(inner.mul),
		add: outer.mul.Mul(inner.add).Add(outer.add),
	}
}

// pow returns t applied n times, by squaring.
func (t affine) pow(n uint128.Uint128) affine {
	acc, cur := identity, t
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(uint(i)) == 1 {
			acc = compose(cur, acc)
		}
		cur = compose(cur, cur)
	}
	return acc
}

func (t affine) apply(s uint128.Uint128) uint128.Uint128 {
	return t.mul.Mul(s).Add(t.add)
}
